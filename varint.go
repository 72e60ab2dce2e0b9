package nbt

import "fmt"

// Variable-length integer encoding used by the Bedrock network
// profile: 7 data bits per byte, low-order group first, high bit set
// on every byte except the last. The full two's-complement bit
// pattern is preserved, so negative values always occupy the maximum
// byte count. There is no zig-zag transform; downstream wire
// compatibility depends on that.

// MaxVarInt32Len is the longest encoding of a 32-bit value.
const MaxVarInt32Len = 5

// MaxVarInt64Len is the longest encoding of a 64-bit value.
const MaxVarInt64Len = 10

// AppendVarInt32 appends the encoding of v to dst and returns the
// extended slice.
func AppendVarInt32(dst []byte, v int32) []byte {
	u := uint32(v)
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

// AppendVarInt64 appends the encoding of v to dst and returns the
// extended slice.
func AppendVarInt64(dst []byte, v int64) []byte {
	u := uint64(v)
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

// DecodeVarInt32 decodes a 32-bit value from the front of b and
// returns it with the number of bytes consumed. It fails with
// ErrOverflow after more than five continuation groups and with
// ErrTruncated if b ends before a terminating byte.
func DecodeVarInt32(b []byte) (int32, int, error) {
	var u uint32
	for i := 0; ; i++ {
		if i >= MaxVarInt32Len {
			return 0, 0, fmt.Errorf("%w: varint32 exceeds %d bytes", ErrOverflow, MaxVarInt32Len)
		}
		if i >= len(b) {
			return 0, 0, fmt.Errorf("%w: varint32 unterminated after %d bytes", ErrTruncated, len(b))
		}
		c := b[i]
		u |= uint32(c&0x7F) << (7 * i)
		if c&0x80 == 0 {
			return int32(u), i + 1, nil
		}
	}
}

// DecodeVarInt64 decodes a 64-bit value from the front of b and
// returns it with the number of bytes consumed. It fails with
// ErrOverflow after more than ten continuation groups and with
// ErrTruncated if b ends before a terminating byte.
func DecodeVarInt64(b []byte) (int64, int, error) {
	var u uint64
	for i := 0; ; i++ {
		if i >= MaxVarInt64Len {
			return 0, 0, fmt.Errorf("%w: varint64 exceeds %d bytes", ErrOverflow, MaxVarInt64Len)
		}
		if i >= len(b) {
			return 0, 0, fmt.Errorf("%w: varint64 unterminated after %d bytes", ErrTruncated, len(b))
		}
		c := b[i]
		u |= uint64(c&0x7F) << (7 * i)
		if c&0x80 == 0 {
			return int64(u), i + 1, nil
		}
	}
}
