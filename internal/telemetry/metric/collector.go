package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/cpucaps-go/pkg/cpucaps"
)

const namespace = "cpucaps"

// Source label values.
const (
	SourceStatic    = "static"
	SourceDynamic   = "dynamic"
	SourceEffective = "effective"
)

// SnapshotFunc returns the snapshot to export. It is called on every scrape.
type SnapshotFunc func() cpucaps.Snapshot

// Collector exports one gauge per capability and source plus an info series.
type Collector struct {
	snapshot SnapshotFunc
	cipher   string

	capability *prometheus.Desc
	info       *prometheus.Desc
}

// NewCollector creates a collector. A nil snapshot uses cpucaps.Report.
func NewCollector(snapshot SnapshotFunc, cipher string) *Collector {
	if snapshot == nil {
		snapshot = cpucaps.Report
	}
	return &Collector{
		snapshot: snapshot,
		cipher:   cipher,
		capability: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "capability"),
			"Whether a CPU capability is present (1) or absent (0), by source.",
			[]string{"capability", "source"}, nil,
		),
		info: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "info"),
			"Detection strategy, platform and selected cipher.",
			[]string{"strategy", "goos", "goarch", "cipher"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capability
	ch <- c.info
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.snapshot()

	sources := []struct {
		name string
		set  cpucaps.Set
	}{
		{SourceStatic, snap.Static},
		{SourceDynamic, snap.Dynamic},
		{SourceEffective, snap.Effective},
	}

	for _, capability := range cpucaps.All() {
		for _, src := range sources {
			ch <- prometheus.MustNewConstMetric(
				c.capability, prometheus.GaugeValue,
				boolToFloat(src.set.Has(capability)),
				capability.String(), src.name,
			)
		}
	}

	ch <- prometheus.MustNewConstMetric(
		c.info, prometheus.GaugeValue, 1,
		snap.Strategy.String(), snap.GOOS, snap.GOARCH, c.cipher,
	)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
