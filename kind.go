// Package nbt implements the Named Binary Tag format: an in-memory tag
// tree, binary readers and writers for the Java, Bedrock file, and
// Bedrock network wire variants, and helpers for compressed files and
// JSON conversion. The textual SNBT form lives in the snbt subpackage.
package nbt

import "fmt"

// Kind identifies the payload type of a tag. The numeric values are
// wire constants shared by every protocol profile.
type Kind uint8

const (
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

// maxKind is the highest valid wire value; any type byte above it is
// outside the enumeration.
const maxKind = KindLongArray

var kindNames = [...]string{
	"TAG_End",
	"TAG_Byte",
	"TAG_Short",
	"TAG_Int",
	"TAG_Long",
	"TAG_Float",
	"TAG_Double",
	"TAG_Byte_Array",
	"TAG_String",
	"TAG_List",
	"TAG_Compound",
	"TAG_Int_Array",
	"TAG_Long_Array",
}

// String returns the conventional TAG_* name for the kind.
func (k Kind) String() string {
	if k > maxKind {
		return fmt.Sprintf("TAG_Unknown(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k is inside the fixed enumeration.
func (k Kind) Valid() bool {
	return k <= maxKind
}

// IsArray reports whether k is one of the contiguous-buffer kinds.
func (k Kind) IsArray() bool {
	return k == KindByteArray || k == KindIntArray || k == KindLongArray
}

// IsNumeric reports whether k carries a fixed-width numeric payload.
func (k Kind) IsNumeric() bool {
	return k >= KindByte && k <= KindDouble
}
