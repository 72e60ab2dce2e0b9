package nbt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Compression identifies the stream compression wrapped around a
// binary NBT document on disk or on the wire. The codec itself always
// operates on decompressed bytes; this layer is the glue between the
// two.
type Compression uint8

const (
	// CompressionNone stores the document raw.
	CompressionNone Compression = iota

	// CompressionGZip wraps the document in a gzip stream. The usual
	// choice for Java Edition files.
	CompressionGZip

	// CompressionZLib wraps the document in a zlib stream. Used by
	// region-file chunk payloads.
	CompressionZLib
)

// String returns the human-readable name of the compression mode.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGZip:
		return "gzip"
	case CompressionZLib:
		return "zlib"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression parses a compression mode from its string form.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "gzip":
		return CompressionGZip, nil
	case "zlib":
		return CompressionZLib, nil
	default:
		return 0, fmt.Errorf("unknown compression: %q", name)
	}
}

// DetectCompression classifies a stream by its magic-byte prefix:
// 0x1F 0x8B is gzip, a leading 0x78 is zlib, anything else is raw.
func DetectCompression(prefix []byte) Compression {
	if len(prefix) >= 2 && prefix[0] == 0x1F && prefix[1] == 0x8B {
		return CompressionGZip
	}
	if len(prefix) >= 1 && prefix[0] == 0x78 {
		return CompressionZLib
	}
	return CompressionNone
}

// Read decodes a document from r with profile p, auto-detecting and
// unwrapping gzip or zlib compression.
func Read(r io.Reader, p Profile) (*Tag, error) {
	br := bufio.NewReader(r)
	prefix, err := br.Peek(2)
	if err != nil && len(prefix) == 0 {
		return nil, truncated(err)
	}
	switch DetectCompression(prefix) {
	case CompressionGZip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		return NewDecoder(gz, p).Decode()
	case CompressionZLib:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		defer zr.Close()
		return NewDecoder(zr, p).Decode()
	default:
		return NewDecoder(br, p).Decode()
	}
}

// Write encodes t to w with profile p, wrapped in the requested
// compression.
func Write(w io.Writer, t *Tag, p Profile, c Compression) error {
	switch c {
	case CompressionNone:
		return NewEncoder(w, p).Encode(t)
	case CompressionGZip:
		gz := gzip.NewWriter(w)
		if err := NewEncoder(gz, p).Encode(t); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	case CompressionZLib:
		zw := zlib.NewWriter(w)
		if err := NewEncoder(zw, p).Encode(t); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	default:
		return fmt.Errorf("unknown compression: %d", c)
	}
}

// ReadFile decodes the document stored at path with profile p,
// auto-detecting compression.
func ReadFile(path string, p Profile) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, p)
}

// WriteFile encodes t to path with profile p and the requested
// compression.
func WriteFile(path string, t *Tag, p Profile, c Compression) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, t, p, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
