package nbt

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestVarInt32Vectors(t *testing.T) {
	cases := []struct {
		value int32
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{-1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
		{math.MinInt32, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
		{math.MaxInt32, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}},
	}
	for _, tc := range cases {
		got := AppendVarInt32(nil, tc.value)
		if !bytes.Equal(got, tc.want) {
			t.Errorf("encode %d: got % X, want % X", tc.value, got, tc.want)
		}
		decoded, n, err := DecodeVarInt32(got)
		if err != nil {
			t.Errorf("decode %d: %v", tc.value, err)
			continue
		}
		if decoded != tc.value || n != len(tc.want) {
			t.Errorf("decode %d: got (%d, %d), want (%d, %d)", tc.value, decoded, n, tc.value, len(tc.want))
		}
	}
}

func TestVarInt64Vectors(t *testing.T) {
	cases := []struct {
		value int64
		want  []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{-1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
		{math.MinInt64, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}},
		{math.MaxInt64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}},
	}
	for _, tc := range cases {
		got := AppendVarInt64(nil, tc.value)
		if !bytes.Equal(got, tc.want) {
			t.Errorf("encode %d: got % X, want % X", tc.value, got, tc.want)
		}
		decoded, n, err := DecodeVarInt64(got)
		if err != nil {
			t.Errorf("decode %d: %v", tc.value, err)
			continue
		}
		if decoded != tc.value || n != len(tc.want) {
			t.Errorf("decode %d: got (%d, %d), want (%d, %d)", tc.value, decoded, n, tc.value, len(tc.want))
		}
	}
}

func TestVarInt32RoundTrip(t *testing.T) {
	values := []int32{
		math.MinInt32, math.MinInt32 + 1, -300, -128, -2, -1,
		0, 1, 2, 63, 64, 127, 128, 16383, 16384, 1 << 21, math.MaxInt32 - 1, math.MaxInt32,
	}
	for _, v := range values {
		enc := AppendVarInt32(nil, v)
		if len(enc) > MaxVarInt32Len {
			t.Fatalf("%d encoded to %d bytes", v, len(enc))
		}
		got, n, err := DecodeVarInt32(enc)
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v || n != len(enc) {
			t.Fatalf("roundtrip %d: got (%d, %d), want (%d, %d)", v, got, n, v, len(enc))
		}
	}
}

func TestVarIntOverflow(t *testing.T) {
	long32 := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}
	if _, _, err := DecodeVarInt32(long32); !errors.Is(err, ErrOverflow) {
		t.Fatalf("got %v, want ErrOverflow", err)
	}
	long64 := bytes.Repeat([]byte{0x80}, 10)
	long64 = append(long64, 0x00)
	if _, _, err := DecodeVarInt64(long64); !errors.Is(err, ErrOverflow) {
		t.Fatalf("got %v, want ErrOverflow", err)
	}
}

func TestVarIntTruncated(t *testing.T) {
	for _, in := range [][]byte{nil, {0x80}, {0xFF, 0xFF}} {
		if _, _, err := DecodeVarInt32(in); !errors.Is(err, ErrTruncated) {
			t.Fatalf("decode % X: got %v, want ErrTruncated", in, err)
		}
		if _, _, err := DecodeVarInt64(in); !errors.Is(err, ErrTruncated) {
			t.Fatalf("decode64 % X: got %v, want ErrTruncated", in, err)
		}
	}
}
