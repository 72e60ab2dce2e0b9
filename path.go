package nbt

import (
	"fmt"
	"strconv"
	"strings"
)

// Lookup resolves a dotted path expression against a tree and returns
// the tag it names. Segments are compound member names, optionally
// quoted when they contain separators, and each segment may carry
// [index] suffixes that step into lists and array tags:
//
//	Lookup(root, `entities[0].pos[1]`)
//	Lookup(root, `"weird.name".value`)
//
// Indexing an array tag yields a synthetic unnamed scalar of the
// element's kind. A missing member reports ErrKeyNotFound; stepping
// into a non-container reports ErrTypeMismatch.
func Lookup(root *Tag, expr string) (*Tag, error) {
	segs, err := splitPath(expr)
	if err != nil {
		return nil, err
	}
	cur := root
	for _, seg := range segs {
		if seg.name != "" || !seg.indexOnly {
			if cur.Kind != KindCompound {
				return nil, fmt.Errorf("%w: %s is not a compound", ErrTypeMismatch, cur.Kind)
			}
			child, ok := cur.Compound.Get(seg.name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, seg.name)
			}
			cur = child
		}
		for _, idx := range seg.indexes {
			next, err := indexTag(cur, idx)
			if err != nil {
				return nil, err
			}
			cur = next
		}
	}
	return cur, nil
}

func indexTag(t *Tag, idx int) (*Tag, error) {
	switch t.Kind {
	case KindList:
		if idx < 0 || idx >= t.List.Len() {
			return nil, fmt.Errorf("%w: index %d out of range for list of %d", ErrInvalidLength, idx, t.List.Len())
		}
		return t.List.At(idx), nil
	case KindByteArray:
		if idx < 0 || idx >= len(t.Bytes) {
			return nil, fmt.Errorf("%w: index %d out of range for %d bytes", ErrInvalidLength, idx, len(t.Bytes))
		}
		return NewByte("", int8(t.Bytes[idx])), nil
	case KindIntArray:
		if idx < 0 || idx >= len(t.Ints) {
			return nil, fmt.Errorf("%w: index %d out of range for %d ints", ErrInvalidLength, idx, len(t.Ints))
		}
		return NewInt("", t.Ints[idx]), nil
	case KindLongArray:
		if idx < 0 || idx >= len(t.Longs) {
			return nil, fmt.Errorf("%w: index %d out of range for %d longs", ErrInvalidLength, idx, len(t.Longs))
		}
		return NewLong("", t.Longs[idx]), nil
	default:
		return nil, fmt.Errorf("%w: cannot index into %s", ErrTypeMismatch, t.Kind)
	}
}

type pathSegment struct {
	name      string
	indexOnly bool
	indexes   []int
}

// splitPath tokenizes a path expression into segments. The grammar is
// deliberately small: bare or double-quoted names joined by dots, with
// any number of bracketed indexes after each name. A leading bracket
// indexes the root itself.
func splitPath(expr string) ([]pathSegment, error) {
	if expr == "" {
		return nil, fmt.Errorf("nbt: empty path")
	}
	var segs []pathSegment
	i := 0
	for i < len(expr) {
		var seg pathSegment
		switch {
		case expr[i] == '"':
			end := i + 1
			var sb strings.Builder
			for ; end < len(expr); end++ {
				if expr[end] == '\\' && end+1 < len(expr) {
					end++
					sb.WriteByte(expr[end])
					continue
				}
				if expr[end] == '"' {
					break
				}
				sb.WriteByte(expr[end])
			}
			if end >= len(expr) {
				return nil, fmt.Errorf("nbt: unterminated quoted name in path %q", expr)
			}
			seg.name = sb.String()
			i = end + 1
		case expr[i] == '[':
			if len(segs) > 0 {
				return nil, fmt.Errorf("nbt: unexpected '[' at offset %d in path %q", i, expr)
			}
			seg.indexOnly = true
		default:
			end := i
			for end < len(expr) && expr[end] != '.' && expr[end] != '[' {
				end++
			}
			if end == i {
				return nil, fmt.Errorf("nbt: empty segment at offset %d in path %q", i, expr)
			}
			seg.name = expr[i:end]
			i = end
		}
		for i < len(expr) && expr[i] == '[' {
			close := strings.IndexByte(expr[i:], ']')
			if close < 0 {
				return nil, fmt.Errorf("nbt: unterminated index in path %q", expr)
			}
			idx, err := strconv.Atoi(expr[i+1 : i+close])
			if err != nil {
				return nil, fmt.Errorf("nbt: bad index %q in path %q", expr[i+1:i+close], expr)
			}
			seg.indexes = append(seg.indexes, idx)
			i += close + 1
		}
		segs = append(segs, seg)
		if i < len(expr) {
			if expr[i] != '.' {
				return nil, fmt.Errorf("nbt: expected '.' at offset %d in path %q", i, expr)
			}
			i++
			if i == len(expr) {
				return nil, fmt.Errorf("nbt: trailing '.' in path %q", expr)
			}
		}
	}
	return segs, nil
}
