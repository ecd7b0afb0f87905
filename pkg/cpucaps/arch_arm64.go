//go:build arm64

package cpucaps

// HWCAP_ASIMD from arch/arm64/include/uapi/asm/hwcap.h.
const hwcapSIMD uint = 1 << 1

// Advanced SIMD is mandatory in ARMv8-A.
const archStatic Set = 1 << NEON
