package snbt

import (
	"fmt"
	"strconv"
	"strings"

	nbt "github.com/blockforge/nbt-go"
)

// Encode renders a tag tree as SNBT text. Numeric payloads carry
// their conventional suffixes, names and strings are quoted only when
// required, and compound members appear in insertion order, so the
// output parses back to an equal tree.
func Encode(t *nbt.Tag) (string, error) {
	var sb strings.Builder
	if err := encodeTag(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func encodeTag(sb *strings.Builder, t *nbt.Tag) error {
	switch t.Kind {
	case nbt.KindByte:
		sb.WriteString(strconv.FormatInt(int64(t.Byte), 10))
		sb.WriteByte('b')
	case nbt.KindShort:
		sb.WriteString(strconv.FormatInt(int64(t.Short), 10))
		sb.WriteByte('s')
	case nbt.KindInt:
		sb.WriteString(strconv.FormatInt(int64(t.Int), 10))
	case nbt.KindLong:
		sb.WriteString(strconv.FormatInt(t.Long, 10))
		sb.WriteByte('L')
	case nbt.KindFloat:
		sb.WriteString(strconv.FormatFloat(float64(t.Float), 'g', -1, 32))
		sb.WriteByte('f')
	case nbt.KindDouble:
		sb.WriteString(strconv.FormatFloat(t.Double, 'g', -1, 64))
		sb.WriteByte('d')
	case nbt.KindString:
		writeQuoted(sb, t.Str)
	case nbt.KindByteArray:
		sb.WriteString("[B;")
		for i, v := range t.Bytes {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(int64(int8(v)), 10))
			sb.WriteByte('b')
		}
		sb.WriteByte(']')
	case nbt.KindIntArray:
		sb.WriteString("[I;")
		for i, v := range t.Ints {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		}
		sb.WriteByte(']')
	case nbt.KindLongArray:
		sb.WriteString("[L;")
		for i, v := range t.Longs {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(v, 10))
			sb.WriteByte('L')
		}
		sb.WriteByte(']')
	case nbt.KindList:
		sb.WriteByte('[')
		if t.List != nil {
			for i, item := range t.List.Items() {
				if i > 0 {
					sb.WriteByte(',')
				}
				if err := encodeTag(sb, item); err != nil {
					return err
				}
			}
		}
		sb.WriteByte(']')
	case nbt.KindCompound:
		sb.WriteByte('{')
		if t.Compound != nil {
			for i, child := range t.Compound.Tags() {
				if i > 0 {
					sb.WriteByte(',')
				}
				writeName(sb, child.Name)
				sb.WriteByte(':')
				if err := encodeTag(sb, child); err != nil {
					return err
				}
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("%w: cannot render %s as SNBT", nbt.ErrUnknownTag, t.Kind)
	}
	return nil
}

// writeName emits a member name, bare when it is safely unquotable.
func writeName(sb *strings.Builder, name string) {
	if bareSafe(name) {
		sb.WriteString(name)
		return
	}
	writeQuoted(sb, name)
}

// bareSafe reports whether s can appear unquoted without being
// re-tokenized as anything but itself.
func bareSafe(s string) bool {
	if s == "" || s == "true" || s == "false" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-' || c == '.' || c == '+':
		default:
			return false
		}
	}
	return true
}

func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
}
