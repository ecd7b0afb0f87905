//go:build !linux || tinygo || cpucaps_staticonly

package cpucaps

// Statically linked minimal runtimes do not reliably expose the auxiliary
// vector. Such targets know their feature set in advance.
const auxvAvailable = false

func readHWCap() uint {
	return 0
}
