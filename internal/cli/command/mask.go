package command

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cpucaps-go/internal/cli/output"
	"github.com/yndnr/cpucaps-go/pkg/cpucaps"
)

// Resolution values for a capability.
const (
	resolutionStaticRuntime = "static+runtime"
	resolutionStatic        = "static"
	resolutionRuntime       = "runtime"
	resolutionDropped       = "dropped"
)

// maskEntry describes how one capability is resolved.
type maskEntry struct {
	Capability cpucaps.Capability `json:"capability" yaml:"capability"`
	Bit        uint               `json:"bit" yaml:"bit"`
	Forced     bool               `json:"forced_dynamic" yaml:"forced_dynamic"`
	Runtime    bool               `json:"runtime" yaml:"runtime"`
	Resolution string             `json:"resolution" yaml:"resolution"`
}

// maskView is the force-dynamic mask with a per-capability breakdown.
type maskView struct {
	Mask         string      `json:"mask" yaml:"mask"`
	Capabilities []maskEntry `json:"capabilities" yaml:"capabilities"`
}

// Table implements output.Tabular.
func (v maskView) Table() *output.Table {
	t := output.NewTable("CAPABILITY", "BIT", "FORCED", "RUNTIME", "RESOLUTION")
	for _, e := range v.Capabilities {
		t.AddRow(e.Capability.String(), strconv.FormatUint(uint64(e.Bit), 10),
			strconv.FormatBool(e.Forced), strconv.FormatBool(e.Runtime), e.Resolution)
	}
	return t
}

// MaskCommand returns the mask command.
func MaskCommand() *cli.Command {
	return &cli.Command{
		Name:   "mask",
		Usage:  "Show the force-dynamic-detection mask",
		Action: mask,
	}
}

func mask(c *cli.Context) error {
	return render(c, newMaskView(cpucaps.ForceDynamicDetection, cpucaps.RuntimeChecked))
}

// newMaskView explains m against the runtime-checked set rt. Capabilities
// outside m may be trusted from the static baseline; those inside it count
// only when the detector confirms them, so ones outside rt are always dropped.
func newMaskView(m, rt cpucaps.Set) maskView {
	v := maskView{Mask: m.Hex()}
	for _, capability := range cpucaps.All() {
		e := maskEntry{
			Capability: capability,
			Bit:        capability.Bit(),
			Forced:     m.Has(capability),
			Runtime:    rt.Has(capability),
		}
		e.Resolution = resolution(e.Forced, e.Runtime)
		v.Capabilities = append(v.Capabilities, e)
	}
	return v
}

func resolution(forced, runtime bool) string {
	switch {
	case !forced && runtime:
		return resolutionStaticRuntime
	case !forced:
		return resolutionStatic
	case runtime:
		return resolutionRuntime
	default:
		return resolutionDropped
	}
}
