package nbt

import (
	"testing"
)

func FuzzDecodeBinary(f *testing.F) {
	seeds := [][]byte{
		javaDoc,
		{0x0A, 0x00, 0x00, 0x00},
		{0x0A, 0x00, 0x00, 0x08, 0x00, 0x01, 's', 0x00, 0x02, 'h', 'i', 0x00},
		{0x0A, 0x00, 0x00, 0x09, 0x00, 0x01, 'l', 0x01, 0x00, 0x00, 0x00, 0x02, 0x05, 0x06, 0x00},
		{0x0A, 0x00, 0x00, 0x07, 0x00, 0x01, 'b', 0x00, 0x00, 0x00, 0x03, 0x01, 0x02, 0x03, 0x00},
		{0x01, 0x00, 0x01, 'x', 0x7F},
		{0x00},
		{0xFF},
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		for _, p := range []Profile{Java, BedrockFile, BedrockNetwork} {
			root, err := Unmarshal(data, p)
			if err != nil {
				continue
			}
			enc, err := Marshal(root, p)
			if err != nil {
				t.Fatalf("%s: re-encode of decoded tree failed: %v", p, err)
			}
			again, err := Unmarshal(enc, p)
			if err != nil {
				t.Fatalf("%s: decode of own encoding failed: %v", p, err)
			}
			if !Equal(root, again) {
				t.Fatalf("%s: roundtrip mismatch", p)
			}
		}
	})
}

func FuzzVarIntRoundTrip(f *testing.F) {
	for _, seed := range []int64{0, 1, -1, 127, 128, -128, 1 << 33, -1 << 62} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, v int64) {
		enc := AppendVarInt64(nil, v)
		got, n, err := DecodeVarInt64(enc)
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v || n != len(enc) {
			t.Fatalf("roundtrip %d: got (%d, %d)", v, got, n)
		}

		v32 := int32(v)
		enc32 := AppendVarInt32(nil, v32)
		got32, n32, err := DecodeVarInt32(enc32)
		if err != nil {
			t.Fatalf("decode32 %d: %v", v32, err)
		}
		if got32 != v32 || n32 != len(enc32) {
			t.Fatalf("roundtrip32 %d: got (%d, %d)", v32, got32, n32)
		}
	})
}
