package nbt

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/minio/simdjson-go"
)

// FromJSON parses JSON using simdjson-go and builds the equivalent
// tag tree. The document root must be a JSON object, which becomes an
// unnamed root compound. JSON arrays become lists; a mixed-kind array
// fails with ErrKindMismatch because NBT lists are homogeneous. JSON
// null has no NBT representation and is rejected.
func FromJSON(data []byte) (*Tag, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("json input is empty")
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("json document root must be an object")
	}
	parsed, err := simdjson.Parse(data, nil)
	if err != nil {
		return nil, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, err
	}
	if typ != simdjson.TypeObject {
		return nil, fmt.Errorf("json document root must be an object")
	}
	return tagFromJSONIter(typ, root)
}

func tagFromJSONIter(typ simdjson.Type, it *simdjson.Iter) (*Tag, error) {
	switch typ {
	case simdjson.TypeBool:
		v, err := it.Bool()
		if err != nil {
			return nil, err
		}
		return NewBool("", v), nil
	case simdjson.TypeInt:
		v, err := it.Int()
		if err != nil {
			return nil, err
		}
		return tagFromInt(v), nil
	case simdjson.TypeUint:
		v, err := it.Uint()
		if err != nil {
			return nil, err
		}
		if v > math.MaxInt64 {
			return NewDouble("", float64(v)), nil
		}
		return tagFromInt(int64(v)), nil
	case simdjson.TypeFloat:
		v, err := it.Float()
		if err != nil {
			return nil, err
		}
		return NewDouble("", v), nil
	case simdjson.TypeString:
		b, err := it.StringBytes()
		if err != nil {
			return nil, err
		}
		return NewString("", string(b)), nil
	case simdjson.TypeObject:
		obj, err := it.Object(nil)
		if err != nil {
			return nil, err
		}
		t := NewCompound("")
		var parseErr error
		err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
			if parseErr != nil {
				return
			}
			child, err := tagFromJSONIter(elem.Type(), &elem)
			if err != nil {
				parseErr = err
				return
			}
			t.Compound.Put(string(key), child)
		}, nil)
		if err != nil {
			return nil, err
		}
		if parseErr != nil {
			return nil, parseErr
		}
		return t, nil
	case simdjson.TypeArray:
		arr, err := it.Array(nil)
		if err != nil {
			return nil, err
		}
		t := NewList("", KindEnd)
		iter := arr.Iter()
		for {
			et := iter.Advance()
			if et == simdjson.TypeNone {
				break
			}
			elem := iter
			child, err := tagFromJSONIter(et, &elem)
			if err != nil {
				return nil, err
			}
			if err := t.List.Append(child); err != nil {
				return nil, err
			}
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported json type: %v", typ)
	}
}

func tagFromInt(v int64) *Tag {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return NewInt("", int32(v))
	}
	return NewLong("", v)
}

// ToJSON renders a tag tree as a JSON string. Compounds become
// objects in insertion order, lists and array tags become arrays, and
// non-finite floating-point values become null.
func ToJSON(t *Tag) (string, error) {
	var sb strings.Builder
	if err := writeJSONTag(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeJSONTag(sb *strings.Builder, t *Tag) error {
	switch t.Kind {
	case KindByte:
		sb.WriteString(strconv.FormatInt(int64(t.Byte), 10))
	case KindShort:
		sb.WriteString(strconv.FormatInt(int64(t.Short), 10))
	case KindInt:
		sb.WriteString(strconv.FormatInt(int64(t.Int), 10))
	case KindLong:
		sb.WriteString(strconv.FormatInt(t.Long, 10))
	case KindFloat:
		writeJSONFloat(sb, float64(t.Float), 32)
	case KindDouble:
		writeJSONFloat(sb, t.Double, 64)
	case KindString:
		writeJSONString(sb, t.Str)
	case KindByteArray:
		sb.WriteByte('[')
		for i, v := range t.Bytes {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(int64(int8(v)), 10))
		}
		sb.WriteByte(']')
	case KindIntArray:
		sb.WriteByte('[')
		for i, v := range t.Ints {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		}
		sb.WriteByte(']')
	case KindLongArray:
		sb.WriteByte('[')
		for i, v := range t.Longs {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(v, 10))
		}
		sb.WriteByte(']')
	case KindList:
		sb.WriteByte('[')
		if t.List != nil {
			for i, item := range t.List.items {
				if i > 0 {
					sb.WriteByte(',')
				}
				if err := writeJSONTag(sb, item); err != nil {
					return err
				}
			}
		}
		sb.WriteByte(']')
	case KindCompound:
		sb.WriteByte('{')
		if t.Compound != nil {
			for i, child := range t.Compound.items {
				if i > 0 {
					sb.WriteByte(',')
				}
				writeJSONString(sb, child.Name)
				sb.WriteByte(':')
				if err := writeJSONTag(sb, child); err != nil {
					return err
				}
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("%w: cannot render %s as JSON", ErrUnknownTag, t.Kind)
	}
	return nil
}

func writeJSONFloat(sb *strings.Builder, f float64, bits int) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		sb.WriteString("null")
		return
	}
	sb.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
}

func writeJSONString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigit(c >> 4))
				sb.WriteByte(hexDigit(c & 0xF))
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'A' + (n - 10)
}
