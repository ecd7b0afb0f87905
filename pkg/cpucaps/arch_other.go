//go:build !arm && !arm64

package cpucaps

const (
	hwcapSIMD  uint = 0
	archStatic Set  = 0
)
