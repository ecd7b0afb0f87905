package cpucaps

import (
	"os"
	"runtime"
	"strings"
	"sync"
)

// DisableEnv names the environment variable listing capabilities to turn off,
// e.g. CPUCAPS_DISABLE=neon or CPUCAPS_DISABLE=all. It can only remove
// capabilities, never add them.
const DisableEnv = "CPUCAPS_DISABLE"

// Merge combines the static baseline with the runtime result. Static claims
// covered by ForceDynamicDetection are dropped first.
func Merge(static, dynamic Set) Set {
	return static.Without(ForceDynamicDetection).Union(dynamic)
}

// Snapshot describes one capability resolution.
type Snapshot struct {
	Strategy     Strategy `json:"strategy" yaml:"strategy"`
	Static       Set      `json:"static" yaml:"static"`
	Dynamic      Set      `json:"dynamic" yaml:"dynamic"`
	Disabled     Set      `json:"disabled" yaml:"disabled"`
	Effective    Set      `json:"effective" yaml:"effective"`
	ForceDynamic Set      `json:"force_dynamic" yaml:"force_dynamic"`
	GOOS         string   `json:"goos" yaml:"goos"`
	GOARCH       string   `json:"goarch" yaml:"goarch"`
}

// Inspect runs d once and merges its result with d.Static, removing disabled.
func Inspect(d Detector, disabled Set) Snapshot {
	dynamic := d.Detect()
	return Snapshot{
		Strategy:     d.Strategy,
		Static:       d.Static,
		Dynamic:      dynamic,
		Disabled:     disabled,
		Effective:    Merge(d.Static, dynamic).Without(disabled),
		ForceDynamic: ForceDynamicDetection,
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
	}
}

var report = sync.OnceValue(func() Snapshot {
	return Inspect(DefaultDetector(), DisabledFromEnv(os.Getenv(DisableEnv)))
})

// Report returns the process-wide resolution. The OS is queried at most once
// per process no matter how many goroutines call Report or Features.
func Report() Snapshot {
	return report()
}

// Features returns the effective capability mask for dispatch decisions.
func Features() Set {
	return report().Effective
}

// Has reports whether c is usable in this process.
func Has(c Capability) bool {
	return Features().Has(c)
}

// DisabledFromEnv parses a disable list. Unknown names are skipped, "all"
// disables every registered capability.
func DisabledFromEnv(value string) Set {
	var s Set
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if strings.EqualFold(name, "all") {
			return SetOf(registry...)
		}
		if c, err := ParseCapability(name); err == nil {
			s |= c.Mask()
		}
	}
	return s
}
