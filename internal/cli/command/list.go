package command

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cpucaps-go/internal/cli/output"
	"github.com/yndnr/cpucaps-go/pkg/cpucaps"
)

type capabilityInfo struct {
	Name    cpucaps.Capability `json:"name" yaml:"name"`
	Bit     uint               `json:"bit" yaml:"bit"`
	Mask    string             `json:"mask" yaml:"mask"`
	Runtime bool               `json:"runtime" yaml:"runtime"`
	Static  bool               `json:"static" yaml:"static"`
}

type capabilityList []capabilityInfo

// Table implements output.Tabular.
func (l capabilityList) Table() *output.Table {
	t := output.NewTable("NAME", "BIT", "MASK", "RUNTIME", "STATIC")
	for _, info := range l {
		t.AddRow(info.Name.String(), strconv.FormatUint(uint64(info.Bit), 10), info.Mask,
			strconv.FormatBool(info.Runtime), strconv.FormatBool(info.Static))
	}
	return t
}

// ListCommand returns the list command.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List registered capabilities",
		Action: func(c *cli.Context) error {
			return render(c, newCapabilityList(cpucaps.StaticCapabilities()))
		},
	}
}

func newCapabilityList(static cpucaps.Set) capabilityList {
	all := cpucaps.All()
	l := make(capabilityList, 0, len(all))
	for _, capability := range all {
		l = append(l, capabilityInfo{
			Name:   capability,
			Bit:    capability.Bit(),
			Mask:   capability.Mask().Hex(),
			Runtime: cpucaps.RuntimeChecked.Has(capability),
			Static:  static.Has(capability),
		})
	}
	return l
}
