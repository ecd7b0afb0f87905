package cpucaps

// ForceDynamicDetection marks every capability other than NEON as never
// trusted from static configuration alone.
//
// LLVM-based toolchains tuned for Cortex-A72 (including "native" builds on
// Raspberry Pi boards) advertise aes, sha2 and pmull even though not every
// Cortex-A72 implements them. Merge strips these claims with AND-NOT before
// combining with the runtime result.
const ForceDynamicDetection Set = ^Set(1 << NEON)

// RuntimeChecked is the set Detector.Detect can confirm at runtime.
const RuntimeChecked Set = 1 << NEON
