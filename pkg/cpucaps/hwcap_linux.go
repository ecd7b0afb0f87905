//go:build linux && !tinygo && !cpucaps_staticonly

package cpucaps

import "golang.org/x/sys/unix"

const auxvAvailable = true

// atHWCAP is the AT_HWCAP key from linux/auxvec.h.
const atHWCAP = 16

// readHWCap returns the AT_HWCAP word from the process auxiliary vector.
// Any failure to read the vector yields 0, which reads as "no capability".
func readHWCap() uint {
	auxv, err := unix.Auxv()
	if err != nil {
		return 0
	}
	for _, kv := range auxv {
		if kv[0] == atHWCAP {
			return uint(kv[1])
		}
	}
	return 0
}
