package metric

import (
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

// Registry wraps a dedicated Prometheus registry.
type Registry struct {
	registry *prometheus.Registry
}

// Option configures a Registry.
type Option func(*Registry) error

// WithRuntimeCollectors adds the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(r *Registry) error {
		if err := r.registry.Register(collectors.NewGoCollector()); err != nil {
			return fmt.Errorf("register go collector: %w", err)
		}
		if err := r.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
			return fmt.Errorf("register process collector: %w", err)
		}
		return nil
	}
}

// NewRegistry creates a registry holding the capability collector c.
func NewRegistry(c *Collector, opts ...Option) (*Registry, error) {
	r := &Registry{registry: prometheus.NewRegistry()}

	if err := r.registry.Register(c); err != nil {
		return nil, fmt.Errorf("register capability collector: %w", err)
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// WriteText writes every gathered family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
