package nbt

import (
	"fmt"
	"io"
	"math"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// Encoder writes NBT documents to a stream using a fixed protocol
// profile. Writing mirrors the read algorithm exactly: same framing,
// same length encodings, and compound children emitted in insertion
// order.
type Encoder struct {
	w       io.Writer
	profile Profile
}

// NewEncoder creates an encoder writing to w with profile p.
func NewEncoder(w io.Writer, p Profile) *Encoder {
	return &Encoder{w: w, profile: p}
}

// Encode writes t as a complete document.
func (e *Encoder) Encode(t *Tag) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := writeRoot(buf, e.profile, t); err != nil {
		return err
	}
	_, err := e.w.Write(buf.Bytes())
	return err
}

// Marshal encodes t as a complete in-memory document with profile p.
func Marshal(t *Tag, p Profile) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := writeRoot(buf, p, t); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.Bytes()...), nil
}

func writeRoot(buf *bytebufferpool.ByteBuffer, p Profile, t *Tag) error {
	if t.Kind == KindEnd || !t.Kind.Valid() {
		return fmt.Errorf("%w: cannot write %s as document root", ErrUnknownTag, t.Kind)
	}
	buf.WriteByte(byte(t.Kind))
	if p.RootNamed {
		if err := writeString(buf, p, t.Name); err != nil {
			return err
		}
	}
	return writePayload(buf, p, t)
}

func writeString(buf *bytebufferpool.ByteBuffer, p Profile, s string) error {
	if p.VarLength {
		var scratch [MaxVarInt32Len]byte
		buf.Write(AppendVarInt32(scratch[:0], int32(len(s))))
	} else {
		if len(s) > math.MaxUint16 {
			return fmt.Errorf("%w: string length %d exceeds %d", ErrInvalidLength, len(s), math.MaxUint16)
		}
		var scratch [2]byte
		p.Order.PutUint16(scratch[:], uint16(len(s)))
		buf.Write(scratch[:])
	}
	buf.WriteString(s)
	return nil
}

func writeCount(buf *bytebufferpool.ByteBuffer, p Profile, n int) error {
	if n < 0 || n > math.MaxInt32 {
		return fmt.Errorf("%w: count %d", ErrInvalidLength, n)
	}
	if p.VarLength {
		var scratch [MaxVarInt32Len]byte
		buf.Write(AppendVarInt32(scratch[:0], int32(n)))
		return nil
	}
	var scratch [4]byte
	p.Order.PutUint32(scratch[:], uint32(int32(n)))
	buf.Write(scratch[:])
	return nil
}

func writePayload(buf *bytebufferpool.ByteBuffer, p Profile, t *Tag) error {
	var scratch [8]byte
	switch t.Kind {
	case KindByte:
		buf.WriteByte(byte(t.Byte))
	case KindShort:
		p.Order.PutUint16(scratch[:2], uint16(t.Short))
		buf.Write(scratch[:2])
	case KindInt:
		p.Order.PutUint32(scratch[:4], uint32(t.Int))
		buf.Write(scratch[:4])
	case KindLong:
		p.Order.PutUint64(scratch[:8], uint64(t.Long))
		buf.Write(scratch[:8])
	case KindFloat:
		p.Order.PutUint32(scratch[:4], math.Float32bits(t.Float))
		buf.Write(scratch[:4])
	case KindDouble:
		p.Order.PutUint64(scratch[:8], math.Float64bits(t.Double))
		buf.Write(scratch[:8])
	case KindString:
		return writeString(buf, p, t.Str)
	case KindByteArray:
		if err := writeCount(buf, p, len(t.Bytes)); err != nil {
			return err
		}
		buf.Write(t.Bytes)
	case KindIntArray:
		if err := writeCount(buf, p, len(t.Ints)); err != nil {
			return err
		}
		for _, v := range t.Ints {
			p.Order.PutUint32(scratch[:4], uint32(v))
			buf.Write(scratch[:4])
		}
	case KindLongArray:
		if err := writeCount(buf, p, len(t.Longs)); err != nil {
			return err
		}
		for _, v := range t.Longs {
			p.Order.PutUint64(scratch[:8], uint64(v))
			buf.Write(scratch[:8])
		}
	case KindList:
		return writeList(buf, p, t.List)
	case KindCompound:
		return writeCompound(buf, p, t.Compound)
	default:
		return fmt.Errorf("%w: cannot write %s payload", ErrUnknownTag, t.Kind)
	}
	return nil
}

func writeList(buf *bytebufferpool.ByteBuffer, p Profile, l *List) error {
	if l == nil {
		l = &List{}
	}
	// An empty undetermined list emits the End sentinel as its
	// element kind byte with a zero count.
	buf.WriteByte(byte(l.Elem))
	if err := writeCount(buf, p, len(l.items)); err != nil {
		return err
	}
	for _, item := range l.items {
		if err := writePayload(buf, p, item); err != nil {
			return err
		}
	}
	return nil
}

func writeCompound(buf *bytebufferpool.ByteBuffer, p Profile, c *Compound) error {
	if c == nil {
		c = &Compound{}
	}
	for _, child := range c.items {
		if child.Kind == KindEnd || !child.Kind.Valid() {
			return fmt.Errorf("%w: cannot write %s as compound child", ErrUnknownTag, child.Kind)
		}
		buf.WriteByte(byte(child.Kind))
		if err := writeString(buf, p, child.Name); err != nil {
			return err
		}
		if err := writePayload(buf, p, child); err != nil {
			return err
		}
	}
	buf.WriteByte(byte(KindEnd))
	return nil
}
