package cpucaps

// staticFeatures is a comma-separated capability list injected at link time:
//
//	-ldflags "-X github.com/yndnr/cpucaps-go/pkg/cpucaps.staticFeatures=neon"
var staticFeatures string

var staticCaps = archStatic | parseStatic(staticFeatures)

// StaticCapabilities returns the capabilities guaranteed by the build.
// The value is fixed at package initialization.
func StaticCapabilities() Set {
	return staticCaps
}

// parseStatic drops a malformed list entirely rather than guessing.
func parseStatic(list string) Set {
	s, err := ParseSet(list)
	if err != nil {
		return 0
	}
	return s
}
