package cpucaps

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCapability is returned when a capability name is not registered.
var ErrUnknownCapability = errors.New("unknown capability")

// Capability identifies one hardware extension by its bit position.
//
// Bit positions follow the OpenSSL ARMCAP layout and are shared with the
// assembly kernels that consume the mask. They must never change.
type Capability uint8

const (
	NEON   Capability = 0
	AES    Capability = 2
	SHA256 Capability = 4
	PMULL  Capability = 5
	SHA512 Capability = 6
)

// registry lists capabilities in bit order.
var registry = []Capability{NEON, AES, SHA256, PMULL, SHA512}

var names = map[Capability]string{
	NEON:   "neon",
	AES:    "aes",
	SHA256: "sha256",
	PMULL:  "pmull",
	SHA512: "sha512",
}

// All returns every registered capability in bit order.
func All() []Capability {
	out := make([]Capability, len(registry))
	copy(out, registry)
	return out
}

// Mask returns the single-bit set for c.
func (c Capability) Mask() Set {
	return Set(1) << c
}

// Bit returns the bit position of c.
func (c Capability) Bit() uint {
	return uint(c)
}

// String returns the lowercase capability name.
func (c Capability) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("bit%d", uint8(c))
}

// ParseCapability looks up a capability by name (case-insensitive).
func ParseCapability(name string) (Capability, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range registry {
		if names[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCapability, name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Capability) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Capability) UnmarshalText(text []byte) error {
	parsed, err := ParseCapability(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Set is a capability bitmask. A set bit means the capability is available.
// The zero value means no accelerated capability is confirmed.
type Set uint32

// Has reports whether c is in s.
func (s Set) Has(c Capability) bool {
	return s&c.Mask() != 0
}

// Contains reports whether every bit of other is in s.
func (s Set) Contains(other Set) bool {
	return s&other == other
}

// Union returns s | other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Intersect returns s & other.
func (s Set) Intersect(other Set) Set {
	return s & other
}

// Without returns s with every bit of other cleared.
func (s Set) Without(other Set) Set {
	return s &^ other
}

// IsEmpty reports whether no capability is set.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Capabilities returns the registered capabilities present in s, in bit order.
// Bits outside the registry are ignored.
func (s Set) Capabilities() []Capability {
	var out []Capability
	for _, c := range registry {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String returns a comma-separated list of capability names, or "none".
func (s Set) String() string {
	caps := s.Capabilities()
	if len(caps) == 0 {
		return "none"
	}
	parts := make([]string, len(caps))
	for i, c := range caps {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// Hex returns the mask formatted as a 32-bit hex literal.
func (s Set) Hex() string {
	return fmt.Sprintf("0x%08x", uint32(s))
}

// SetOf builds a set from capabilities.
func SetOf(caps ...Capability) Set {
	var s Set
	for _, c := range caps {
		s |= c.Mask()
	}
	return s
}

// ParseSet parses a comma-separated capability list such as "neon,aes".
// Empty input and "none" yield the empty set.
func ParseSet(list string) (Set, error) {
	list = strings.TrimSpace(list)
	if list == "" || strings.EqualFold(list, "none") {
		return 0, nil
	}

	var s Set
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := ParseCapability(name)
		if err != nil {
			return 0, fmt.Errorf("parse capability set: %w", err)
		}
		s |= c.Mask()
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Set) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Set) UnmarshalText(text []byte) error {
	parsed, err := ParseSet(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
