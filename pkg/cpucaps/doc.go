// Package cpucaps provides runtime CPU capability detection for crypto dispatch.
//
// It decides which hardware-accelerated instruction extensions are safe to use
// on the executing processor and reports them as a bitmask in the
// OpenSSL ARMCAP layout.
//
// Build configuration is not trusted for crypto extensions: some compiler
// CPU-tuning profiles claim AES/SHA/PMULL on processors that lack them. Only
// the foundational SIMD extension (NEON) is taken from the static baseline or
// confirmed at runtime; every other static claim is stripped by
// ForceDynamicDetection when the sets are merged.
//
// Detection Flow:
//
//	StaticCapabilities ──┐
//	                     ├─► Merge ─► Features (cached once)
//	DetectFeatures ──────┘
//	  └─ AT_HWCAP (Linux auxv)
//
// Build Tags:
//
//   - tinygo, cpucaps_staticonly: minimal runtime, rely on the static baseline only
//
// Static baseline can be extended at link time:
//
//	go build -ldflags "-X github.com/yndnr/cpucaps-go/pkg/cpucaps.staticFeatures=neon"
//
// Under-detection is always acceptable. Over-detection is never produced.
package cpucaps
