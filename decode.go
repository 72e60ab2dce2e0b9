package nbt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
)

// Progress observes a streaming read. When set on a Decoder it is
// invoked synchronously after each tag (scalar, array, or full
// container) has been completely read, with the tag's kind, name, and
// nesting depth. It is observation only: it cannot alter parsing, and
// anything it does is outside the codec's error taxonomy.
type Progress func(kind Kind, name string, depth int)

// Decoder reads one NBT document from a stream using a fixed protocol
// profile. The input is consumed sequentially in a single pass; the
// stream position after a failed read is undefined and the read is
// never retried.
type Decoder struct {
	r       *bufio.Reader
	profile Profile

	// Progress, when non-nil, observes each completed tag.
	Progress Progress
}

// NewDecoder creates a decoder reading from r with profile p. The
// input is expected to be decompressed already; see Read for the
// compression-aware entry point.
func NewDecoder(r io.Reader, p Profile) *Decoder {
	return &Decoder{r: bufio.NewReader(r), profile: p}
}

// Unmarshal decodes a complete in-memory document with profile p.
func Unmarshal(data []byte, p Profile) (*Tag, error) {
	return NewDecoder(bytes.NewReader(data), p).Decode()
}

// Decode reads the root tag and its entire subtree. On any failure no
// partial tree is returned.
func (d *Decoder) Decode() (*Tag, error) {
	kind, err := d.readKind()
	if err != nil {
		return nil, err
	}
	if kind == KindEnd {
		return nil, fmt.Errorf("%w: TAG_End as document root", ErrUnknownTag)
	}
	name := ""
	if d.profile.RootNamed {
		name, err = d.readString()
		if err != nil {
			return nil, err
		}
	}
	t, err := d.readPayload(kind, 0)
	if err != nil {
		return nil, err
	}
	t.Name = name
	d.notify(kind, name, 0)
	return t, nil
}

func (d *Decoder) notify(kind Kind, name string, depth int) {
	if d.Progress != nil {
		d.Progress(kind, name, depth)
	}
}

// truncated maps end-of-stream conditions onto ErrTruncated; other
// stream failures surface unchanged.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}

func (d *Decoder) readByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, truncated(err)
	}
	return b, nil
}

func (d *Decoder) readFull(buf []byte) error {
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return truncated(err)
	}
	return nil
}

func (d *Decoder) readKind() (Kind, error) {
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	k := Kind(b)
	if !k.Valid() {
		return 0, fmt.Errorf("%w: type byte 0x%02X", ErrUnknownTag, b)
	}
	return k, nil
}

// readVarUint32 reads an unsigned 7-bit-group integer from the stream.
func (d *Decoder) readVarUint32() (uint32, error) {
	var u uint32
	for i := 0; ; i++ {
		if i >= MaxVarInt32Len {
			return 0, fmt.Errorf("%w: varint32 exceeds %d bytes", ErrOverflow, MaxVarInt32Len)
		}
		c, err := d.readByte()
		if err != nil {
			return 0, err
		}
		u |= uint32(c&0x7F) << (7 * i)
		if c&0x80 == 0 {
			return u, nil
		}
	}
}

// readCount reads a list count or array length and validates it is
// representable as a non-negative int.
func (d *Decoder) readCount() (int, error) {
	if d.profile.VarLength {
		u, err := d.readVarUint32()
		if err != nil {
			return 0, err
		}
		if u > math.MaxInt32 {
			return 0, fmt.Errorf("%w: count %d out of range", ErrInvalidLength, u)
		}
		return int(u), nil
	}
	var scratch [4]byte
	if err := d.readFull(scratch[:]); err != nil {
		return 0, err
	}
	n := int32(d.profile.Order.Uint32(scratch[:]))
	if n < 0 {
		return 0, fmt.Errorf("%w: count %d", ErrInvalidLength, n)
	}
	return int(n), nil
}

// readString reads a length-prefixed UTF-8 string using the profile's
// string length rule. The returned string is an owned copy; nothing
// references the decoder's buffers after it returns.
func (d *Decoder) readString() (string, error) {
	var n int
	if d.profile.VarLength {
		u, err := d.readVarUint32()
		if err != nil {
			return "", err
		}
		if u > math.MaxInt32 {
			return "", fmt.Errorf("%w: string length %d out of range", ErrInvalidLength, u)
		}
		n = int(u)
	} else {
		var scratch [2]byte
		if err := d.readFull(scratch[:]); err != nil {
			return "", err
		}
		n = int(d.profile.Order.Uint16(scratch[:]))
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := d.readFull(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// readPayload reads the payload for a tag of the given kind at the
// given nesting depth. The returned tag has its kind set and no name.
func (d *Decoder) readPayload(kind Kind, depth int) (*Tag, error) {
	t := &Tag{Kind: kind}
	var scratch [8]byte
	switch kind {
	case KindByte:
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		t.Byte = int8(b)
	case KindShort:
		if err := d.readFull(scratch[:2]); err != nil {
			return nil, err
		}
		t.Short = int16(d.profile.Order.Uint16(scratch[:2]))
	case KindInt:
		if err := d.readFull(scratch[:4]); err != nil {
			return nil, err
		}
		t.Int = int32(d.profile.Order.Uint32(scratch[:4]))
	case KindLong:
		if err := d.readFull(scratch[:8]); err != nil {
			return nil, err
		}
		t.Long = int64(d.profile.Order.Uint64(scratch[:8]))
	case KindFloat:
		if err := d.readFull(scratch[:4]); err != nil {
			return nil, err
		}
		t.Float = math.Float32frombits(d.profile.Order.Uint32(scratch[:4]))
	case KindDouble:
		if err := d.readFull(scratch[:8]); err != nil {
			return nil, err
		}
		t.Double = math.Float64frombits(d.profile.Order.Uint64(scratch[:8]))
	case KindString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		t.Str = s
	case KindByteArray:
		buf, err := d.readByteArray()
		if err != nil {
			return nil, err
		}
		t.Bytes = buf
	case KindIntArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		out := make([]int32, 0, clampPrealloc(n))
		for i := 0; i < n; i++ {
			if err := d.readFull(scratch[:4]); err != nil {
				return nil, err
			}
			out = append(out, int32(d.profile.Order.Uint32(scratch[:4])))
		}
		t.Ints = out
	case KindLongArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		out := make([]int64, 0, clampPrealloc(n))
		for i := 0; i < n; i++ {
			if err := d.readFull(scratch[:8]); err != nil {
				return nil, err
			}
			out = append(out, int64(d.profile.Order.Uint64(scratch[:8])))
		}
		t.Longs = out
	case KindList:
		l, err := d.readList(depth)
		if err != nil {
			return nil, err
		}
		t.List = l
	case KindCompound:
		c, err := d.readCompound(depth)
		if err != nil {
			return nil, err
		}
		t.Compound = c
	default:
		// KindEnd: reachable only as a list element kind with a
		// non-zero count; it never has a readable payload.
		return nil, fmt.Errorf("%w: cannot read %s payload", ErrUnknownTag, kind)
	}
	return t, nil
}

// readByteArray reads a length-prefixed byte buffer in bounded chunks
// so a hostile count cannot force a giant allocation up front; the
// count is only trusted as far as the stream actually delivers.
func (d *Decoder) readByteArray() ([]byte, error) {
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	const chunk = 64 << 10
	out := make([]byte, 0, clampPrealloc(n))
	for remaining := n; remaining > 0; {
		step := remaining
		if step > chunk {
			step = chunk
		}
		start := len(out)
		out = append(out, make([]byte, step)...)
		if err := d.readFull(out[start:]); err != nil {
			return nil, err
		}
		remaining -= step
	}
	return out, nil
}

func clampPrealloc(n int) int {
	const limit = 16 << 10
	if n > limit {
		return limit
	}
	return n
}

func (d *Decoder) readList(depth int) (*List, error) {
	elemByte, err := d.readByte()
	if err != nil {
		return nil, err
	}
	elem := Kind(elemByte)
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	// An out-of-range or End element kind only fails once an element
	// is actually read; a zero-count list round-trips its declared
	// kind byte untouched.
	l := &List{Elem: elem}
	for i := 0; i < n; i++ {
		if !elem.Valid() {
			return nil, fmt.Errorf("%w: list element type byte 0x%02X", ErrUnknownTag, elemByte)
		}
		item, err := d.readPayload(elem, depth+1)
		if err != nil {
			return nil, err
		}
		l.items = append(l.items, item)
		d.notify(elem, "", depth+1)
	}
	return l, nil
}

func (d *Decoder) readCompound(depth int) (*Compound, error) {
	c := &Compound{}
	for {
		kindByte, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if Kind(kindByte) == KindEnd {
			return c, nil
		}
		kind := Kind(kindByte)
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: type byte 0x%02X", ErrUnknownTag, kindByte)
		}
		name, err := d.readString()
		if err != nil {
			return nil, err
		}
		child, err := d.readPayload(kind, depth+1)
		if err != nil {
			return nil, err
		}
		c.Put(name, child)
		d.notify(kind, name, depth+1)
	}
}
