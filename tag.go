package nbt

// Tag is one node of an NBT tree: a kind discriminator, an optional
// name, and the payload field for that kind. Exactly one payload field
// is meaningful at a time, selected by Kind. Container payloads (List,
// Compound) own their children exclusively; array payloads own their
// element buffers.
//
// A tag carries a name only when it is the document root or a direct
// child of a compound. List elements are always unnamed; the owning
// container enforces this on insert.
type Tag struct {
	Kind Kind
	Name string

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	Str    string

	Bytes []byte
	Ints  []int32
	Longs []int64

	List     *List
	Compound *Compound
}

// NewByte creates a TAG_Byte.
func NewByte(name string, v int8) *Tag {
	return &Tag{Kind: KindByte, Name: name, Byte: v}
}

// NewBool creates a TAG_Byte holding 1 for true and 0 for false.
func NewBool(name string, v bool) *Tag {
	t := &Tag{Kind: KindByte, Name: name}
	if v {
		t.Byte = 1
	}
	return t
}

// NewShort creates a TAG_Short.
func NewShort(name string, v int16) *Tag {
	return &Tag{Kind: KindShort, Name: name, Short: v}
}

// NewInt creates a TAG_Int.
func NewInt(name string, v int32) *Tag {
	return &Tag{Kind: KindInt, Name: name, Int: v}
}

// NewLong creates a TAG_Long.
func NewLong(name string, v int64) *Tag {
	return &Tag{Kind: KindLong, Name: name, Long: v}
}

// NewFloat creates a TAG_Float.
func NewFloat(name string, v float32) *Tag {
	return &Tag{Kind: KindFloat, Name: name, Float: v}
}

// NewDouble creates a TAG_Double.
func NewDouble(name string, v float64) *Tag {
	return &Tag{Kind: KindDouble, Name: name, Double: v}
}

// NewString creates a TAG_String.
func NewString(name, v string) *Tag {
	return &Tag{Kind: KindString, Name: name, Str: v}
}

// NewByteArray creates a TAG_Byte_Array owning a copy of data.
func NewByteArray(name string, data []byte) *Tag {
	return &Tag{Kind: KindByteArray, Name: name, Bytes: append([]byte(nil), data...)}
}

// NewIntArray creates a TAG_Int_Array owning a copy of data.
func NewIntArray(name string, data []int32) *Tag {
	return &Tag{Kind: KindIntArray, Name: name, Ints: append([]int32(nil), data...)}
}

// NewLongArray creates a TAG_Long_Array owning a copy of data.
func NewLongArray(name string, data []int64) *Tag {
	return &Tag{Kind: KindLongArray, Name: name, Longs: append([]int64(nil), data...)}
}

// NewList creates a TAG_List with the declared element kind. KindEnd
// declares an undetermined element kind, fixed by the first append.
func NewList(name string, elem Kind) *Tag {
	return &Tag{Kind: KindList, Name: name, List: &List{Elem: elem}}
}

// NewCompound creates an empty TAG_Compound.
func NewCompound(name string) *Tag {
	return &Tag{Kind: KindCompound, Name: name, Compound: &Compound{}}
}
