//go:build arm

package cpucaps

// HWCAP_NEON from arch/arm/include/uapi/asm/hwcap.h.
const hwcapSIMD uint = 1 << 12

const archStatic Set = 0
