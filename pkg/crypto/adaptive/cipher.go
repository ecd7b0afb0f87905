// Package adaptive provides adaptive encryption with automatic algorithm selection.
//
// It selects the optimal cipher based on confirmed hardware capabilities:
// - AES-GCM when AES and carry-less multiply run in hardware
// - ChaCha20-Poly1305 otherwise
package adaptive

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/yndnr/cpucaps-go/pkg/cpucaps"
)

// CipherType identifies the cipher algorithm.
type CipherType string

const (
	CipherAESGCM   CipherType = "aes-gcm"
	CipherChaCha20 CipherType = "chacha20-poly1305"
)

// Cipher provides authenticated encryption.
type Cipher interface {
	// Type returns the cipher type.
	Type() CipherType

	// Encrypt encrypts plaintext with additional data.
	Encrypt(plaintext, additionalData []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with additional data.
	Decrypt(ciphertext, additionalData []byte) ([]byte, error)

	// NonceSize returns the nonce size in bytes.
	NonceSize() int

	// Overhead returns the authentication tag size in bytes.
	Overhead() int
}

// New creates a new adaptive cipher with the given key.
//
// It automatically selects the optimal algorithm based on hardware.
func New(key []byte) (Cipher, error) {
	return NewWithType(key, Select())
}

// Select returns the cipher type New would use on this machine.
func Select() CipherType {
	return SelectFor(cpucaps.Features())
}

// SelectFor picks a cipher using caps as the confirmed ARM capability set.
// Callers that resolved capabilities themselves (with extra capabilities
// disabled) pass that result so the choice never exceeds it.
func SelectFor(caps cpucaps.Set) CipherType {
	return selectFor(runtime.GOARCH, hardware{
		x86AES:    cpu.X86.HasAES && cpu.X86.HasPCLMULQDQ,
		arm64AES:  cpu.ARM64.HasAES && cpu.ARM64.HasPMULL,
		armFamily: caps,
	})
}

// NewWithType creates a cipher of the specified type.
func NewWithType(key []byte, cipherType CipherType) (Cipher, error) {
	switch cipherType {
	case CipherAESGCM:
		c, err := NewAESGCM(key)
		if err != nil {
			return nil, err
		}
		return c, nil
	case CipherChaCha20:
		c, err := NewChaCha20(key)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cipher type: %q", cipherType)
	}
}

// hardware holds the capability facts the selection depends on.
type hardware struct {
	x86AES    bool
	arm64AES  bool
	armFamily cpucaps.Set
}

// selectFor picks AES-GCM only when constant-time hardware AES and GHASH are
// confirmed. Without NEON no ARM crypto extension is used at all. 32-bit ARM
// never enables hardware AES.
func selectFor(goarch string, hw hardware) CipherType {
	switch goarch {
	case "amd64":
		if hw.x86AES {
			return CipherAESGCM
		}
	case "arm64":
		if hw.armFamily.Has(cpucaps.NEON) && hw.arm64AES {
			return CipherAESGCM
		}
	}
	return CipherChaCha20
}

// baseCipher provides the AEAD plumbing shared by both algorithms.
// Ciphertext layout: nonce || sealed(plaintext) || tag.
type baseCipher struct {
	aead cipher.AEAD
}

// NonceSize returns the nonce size in bytes.
func (c *baseCipher) NonceSize() int {
	return c.aead.NonceSize()
}

// Overhead returns the authentication tag size in bytes.
func (c *baseCipher) Overhead() int {
	return c.aead.Overhead()
}

// Encrypt encrypts plaintext with a fresh random nonce.
func (c *baseCipher) Encrypt(plaintext, additionalData []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}

	return c.aead.Seal(nonce, nonce, plaintext, additionalData), nil
}

// Decrypt authenticates and decrypts ciphertext produced by Encrypt.
func (c *baseCipher) Decrypt(ciphertext, additionalData []byte) ([]byte, error) {
	n := c.aead.NonceSize()
	if len(ciphertext) < n {
		return nil, ErrCiphertextTooShort
	}

	return c.aead.Open(nil, ciphertext[:n], ciphertext[n:], additionalData)
}
