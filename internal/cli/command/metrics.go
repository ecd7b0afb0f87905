package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/cpucaps-go/internal/telemetry/metric"
	"github.com/yndnr/cpucaps-go/pkg/cpucaps"
	"github.com/yndnr/cpucaps-go/pkg/crypto/adaptive"
)

// MetricsCommand returns the metrics command.
func MetricsCommand() *cli.Command {
	return &cli.Command{
		Name:  "metrics",
		Usage: "Print capability metrics in Prometheus text format",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "runtime",
				Usage: "Include Go runtime and process metrics",
			},
		},
		Action: metrics,
	}
}

func metrics(c *cli.Context) error {
	var opts []metric.Option
	if c.Bool("runtime") {
		opts = append(opts, metric.WithRuntimeCollectors())
	}

	reg, err := newRegistry(resolve(c), opts...)
	if err != nil {
		return err
	}
	return reg.WriteText(writer(c))
}

// newRegistry exports a fixed snapshot so every scrape reports the same
// resolution the process started with. The cipher label follows the
// snapshot's effective set, not the process-wide one.
func newRegistry(snap cpucaps.Snapshot, opts ...metric.Option) (*metric.Registry, error) {
	collector := metric.NewCollector(func() cpucaps.Snapshot { return snap }, string(adaptive.SelectFor(snap.Effective)))
	return metric.NewRegistry(collector, opts...)
}
