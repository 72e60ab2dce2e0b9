package nbt

import "errors"

// Error taxonomy for the codec. Binary read/write and container
// failures wrap one of these sentinels so callers can classify them
// with errors.Is. Typed compound lookups return ErrTypeMismatch or
// ErrKeyNotFound; those are local to the lookup and never invalidate
// the tree they were asked of.
var (
	// ErrTruncated indicates the source was exhausted mid-record.
	ErrTruncated = errors.New("nbt: truncated input")

	// ErrUnknownTag indicates a type byte outside the fixed enumeration.
	ErrUnknownTag = errors.New("nbt: unknown tag kind")

	// ErrInvalidLength indicates a negative length or count field.
	ErrInvalidLength = errors.New("nbt: invalid length")

	// ErrOverflow indicates a variable-length integer exceeded its
	// maximum byte count.
	ErrOverflow = errors.New("nbt: varint overflow")

	// ErrKindMismatch indicates a list append whose kind differs from
	// the list's fixed element kind.
	ErrKindMismatch = errors.New("nbt: list element kind mismatch")

	// ErrTypeMismatch indicates a typed compound lookup found a tag of
	// a different kind than requested.
	ErrTypeMismatch = errors.New("nbt: tag type mismatch")

	// ErrKeyNotFound indicates a compound lookup for an absent name.
	ErrKeyNotFound = errors.New("nbt: key not found")
)
