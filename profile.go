package nbt

import (
	"encoding/binary"
	"fmt"
)

// Profile is the fixed wire configuration for one protocol variant:
// scalar endianness, how string lengths and list/array counts are
// encoded, and whether the document root carries a name. The caller
// selects a profile explicitly; nothing is auto-detected and no
// ambient state is consulted.
type Profile struct {
	// Order is the byte order of fixed-width scalar payloads and of
	// fixed-width length fields.
	Order binary.ByteOrder

	// VarLength selects variable-length (7-bit continuation) encoding
	// for string lengths and list/array counts instead of fixed-width
	// fields.
	VarLength bool

	// RootNamed reports whether the document root tag carries a name.
	RootNamed bool

	name string
}

var (
	// Java is the big-endian Java Edition profile.
	Java = Profile{Order: binary.BigEndian, RootNamed: true, name: "java"}

	// BedrockFile is the little-endian Bedrock Edition disk profile.
	BedrockFile = Profile{Order: binary.LittleEndian, RootNamed: true, name: "bedrock"}

	// BedrockNetwork is the Bedrock Edition network profile:
	// little-endian scalars with variable-length string lengths and
	// counts, and an unnamed root.
	BedrockNetwork = Profile{Order: binary.LittleEndian, VarLength: true, name: "network"}
)

// String returns the profile's short name.
func (p Profile) String() string {
	if p.name == "" {
		return "custom"
	}
	return p.name
}

// ProfileNamed returns the profile with the given short name:
// "java", "bedrock", or "network".
func ProfileNamed(name string) (Profile, error) {
	switch name {
	case "java":
		return Java, nil
	case "bedrock":
		return BedrockFile, nil
	case "network":
		return BedrockNetwork, nil
	default:
		return Profile{}, fmt.Errorf("unknown protocol profile: %q", name)
	}
}
