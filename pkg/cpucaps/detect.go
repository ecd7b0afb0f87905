package cpucaps

// HWCapReader returns the raw hardware-capability word reported by the OS.
// It must always return a fully formed value, 0 when nothing can be read.
type HWCapReader func() uint

// Detector resolves the dynamically confirmed capabilities.
//
// A Detector holds only immutable inputs; Detect may be called concurrently.
type Detector struct {
	// Strategy selects whether the OS is queried at all.
	Strategy Strategy
	// Static is the build-time baseline.
	Static Set
	// ReadHWCap queries AT_HWCAP. Nil disables probing.
	ReadHWCap HWCapReader
	// SIMDBit is the HWCAP bit that designates NEON. Zero disables probing.
	SIMDBit uint
}

// DefaultDetector returns the detector for the running build and platform.
func DefaultDetector() Detector {
	return Detector{
		Strategy:  DefaultStrategy(),
		Static:    StaticCapabilities(),
		ReadHWCap: readHWCap,
		SIMDBit:   hwcapSIMD,
	}
}

// Detect returns the capabilities confirmed at runtime: either 0 or NEON.
//
// The OS is queried at most once per call, and only when the static baseline
// does not already guarantee NEON.
func (d Detector) Detect() Set {
	var features Set

	if d.Strategy != StaticPlusDynamic {
		return features
	}

	// OpenSSL and BoringSSL enable nothing else without NEON, so a static
	// guarantee settles the question.
	if d.Static.Has(NEON) {
		return features
	}

	if d.ReadHWCap == nil || d.SIMDBit == 0 {
		return features
	}

	if word := d.ReadHWCap(); word&d.SIMDBit == d.SIMDBit {
		features |= NEON.Mask()
	}

	return features
}

// DetectFeatures returns the dynamically confirmed capability mask for this
// process. It is not cached; see Features for the memoized, merged result.
func DetectFeatures() Set {
	return DefaultDetector().Detect()
}
