package nbt

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestReadWriteCompression(t *testing.T) {
	root := buildBigTest(t)
	for _, c := range []Compression{CompressionNone, CompressionGZip, CompressionZLib} {
		var buf bytes.Buffer
		if err := Write(&buf, root, Java, c); err != nil {
			t.Fatalf("%s: write: %v", c, err)
		}
		if got := DetectCompression(buf.Bytes()); got != c {
			t.Fatalf("%s: detected %s", c, got)
		}
		got, err := Read(bytes.NewReader(buf.Bytes()), Java)
		if err != nil {
			t.Fatalf("%s: read: %v", c, err)
		}
		if !Equal(root, got) {
			t.Fatalf("%s: round trip changed the tree", c)
		}
	}
}

func TestDetectCompression(t *testing.T) {
	cases := []struct {
		prefix []byte
		want   Compression
	}{
		{[]byte{0x1F, 0x8B}, CompressionGZip},
		{[]byte{0x78, 0x9C}, CompressionZLib},
		{[]byte{0x78}, CompressionZLib},
		{[]byte{0x0A, 0x00}, CompressionNone},
		{nil, CompressionNone},
	}
	for _, tc := range cases {
		if got := DetectCompression(tc.prefix); got != tc.want {
			t.Errorf("% X: got %s, want %s", tc.prefix, got, tc.want)
		}
	}
}

func TestParseCompression(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionGZip, CompressionZLib} {
		got, err := ParseCompression(c.String())
		if err != nil || got != c {
			t.Errorf("parse %q: (%s, %v)", c.String(), got, err)
		}
	}
	if _, err := ParseCompression("lz4"); err == nil {
		t.Fatal("lz4 accepted")
	}
}

func TestReadWriteFile(t *testing.T) {
	root := buildBigTest(t)
	path := filepath.Join(t.TempDir(), "level.dat")
	if err := WriteFile(path, root, BedrockFile, CompressionGZip); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, BedrockFile)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(root, got) {
		t.Fatal("file round trip changed the tree")
	}
}
