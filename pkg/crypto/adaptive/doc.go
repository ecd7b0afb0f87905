// Package adaptive provides adaptive authenticated encryption.
//
// The algorithm is chosen from confirmed hardware capabilities rather than
// from the target architecture alone:
//
//   - AES-GCM: amd64 with AES-NI and PCLMULQDQ, or arm64 with NEON, AES and PMULL
//   - ChaCha20-Poly1305: everything else, including all 32-bit ARM
//
// ARM decisions go through cpucaps.Features, so CPUCAPS_DISABLE=neon forces
// the software path.
//
// Usage:
//
//	c, err := adaptive.New(key)
//	encrypted, err := c.Encrypt(plaintext, aad)
//	plaintext, err := c.Decrypt(encrypted, aad)
package adaptive
