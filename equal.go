package nbt

import "math"

// Clone returns a deep copy of t: containers, children, and array
// buffers are all duplicated, so the copy shares no storage with the
// original.
func (t *Tag) Clone() *Tag {
	if t == nil {
		return nil
	}
	out := &Tag{
		Kind:   t.Kind,
		Name:   t.Name,
		Byte:   t.Byte,
		Short:  t.Short,
		Int:    t.Int,
		Long:   t.Long,
		Float:  t.Float,
		Double: t.Double,
		Str:    t.Str,
	}
	if t.Bytes != nil {
		out.Bytes = append([]byte(nil), t.Bytes...)
	}
	if t.Ints != nil {
		out.Ints = append([]int32(nil), t.Ints...)
	}
	if t.Longs != nil {
		out.Longs = append([]int64(nil), t.Longs...)
	}
	if t.List != nil {
		l := &List{Elem: t.List.Elem}
		for _, item := range t.List.items {
			l.items = append(l.items, item.Clone())
		}
		out.List = l
	}
	if t.Compound != nil {
		c := &Compound{}
		for _, child := range t.Compound.items {
			c.Put(child.Name, child.Clone())
		}
		out.Compound = c
	}
	return out
}

// Equal reports structural equality over kind, name, values, and
// children, in order. Floating-point payloads compare by bit pattern
// so NaN-carrying documents still compare equal after a round trip.
func Equal(a, b *Tag) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Name != b.Name {
		return false
	}
	switch a.Kind {
	case KindByte:
		return a.Byte == b.Byte
	case KindShort:
		return a.Short == b.Short
	case KindInt:
		return a.Int == b.Int
	case KindLong:
		return a.Long == b.Long
	case KindFloat:
		return math.Float32bits(a.Float) == math.Float32bits(b.Float)
	case KindDouble:
		return math.Float64bits(a.Double) == math.Float64bits(b.Double)
	case KindString:
		return a.Str == b.Str
	case KindByteArray:
		if len(a.Bytes) != len(b.Bytes) {
			return false
		}
		for i := range a.Bytes {
			if a.Bytes[i] != b.Bytes[i] {
				return false
			}
		}
		return true
	case KindIntArray:
		if len(a.Ints) != len(b.Ints) {
			return false
		}
		for i := range a.Ints {
			if a.Ints[i] != b.Ints[i] {
				return false
			}
		}
		return true
	case KindLongArray:
		if len(a.Longs) != len(b.Longs) {
			return false
		}
		for i := range a.Longs {
			if a.Longs[i] != b.Longs[i] {
				return false
			}
		}
		return true
	case KindList:
		la, lb := a.List, b.List
		if la == nil || lb == nil {
			return la == lb
		}
		if la.Elem != lb.Elem || len(la.items) != len(lb.items) {
			return false
		}
		for i := range la.items {
			if !Equal(la.items[i], lb.items[i]) {
				return false
			}
		}
		return true
	case KindCompound:
		ca, cb := a.Compound, b.Compound
		if ca == nil || cb == nil {
			return ca == cb
		}
		if len(ca.items) != len(cb.items) {
			return false
		}
		for i := range ca.items {
			if !Equal(ca.items[i], cb.items[i]) {
				return false
			}
		}
		return true
	default:
		return a.Kind == KindEnd
	}
}
