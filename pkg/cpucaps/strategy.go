package cpucaps

import (
	"fmt"
	"strings"
)

// Strategy selects how capabilities are resolved in the current environment.
type Strategy uint8

const (
	// StaticOnly trusts the static baseline exclusively and never queries the OS.
	// It is the zero value so an unconfigured Detector never reads the auxiliary vector.
	StaticOnly Strategy = iota

	// StaticPlusDynamic confirms NEON through AT_HWCAP when the static
	// baseline does not already guarantee it.
	StaticPlusDynamic
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StaticOnly:
		return "static-only"
	case StaticPlusDynamic:
		return "static-plus-dynamic"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy parses a strategy name as printed by String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "static-only", "static":
		return StaticOnly, nil
	case "static-plus-dynamic", "dynamic":
		return StaticPlusDynamic, nil
	default:
		return StaticOnly, fmt.Errorf("unknown strategy %q", name)
	}
}

// DefaultStrategy returns the strategy for the running build.
//
// Minimal runtimes (TinyGo, or the cpucaps_staticonly build tag) and
// platforms without an auxv reader or a designated HWCAP bit get StaticOnly.
func DefaultStrategy() Strategy {
	if !auxvAvailable || hwcapSIMD == 0 {
		return StaticOnly
	}
	return StaticPlusDynamic
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
