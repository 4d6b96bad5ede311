// Package observe provides the concrete sinks recording catalog activity.
// Importing it registers their factories on the core sink registry.
package observe

import (
	coreobserve "github.com/jmorel/catalog/core/observe"
	"github.com/jmorel/catalog/core/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records catalog events in Prometheus metrics.
type PromSink struct {
	creates  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	kinds    prometheus.Gauge
}

// NewPromSink registers catalog metrics on the default Prometheus registerer.
// The metrics HTTP server is started separately with StartPromServer.
func NewPromSink() (coreobserve.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coreobserve.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	creates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_creates_total",
		Help: "Total number of catalog create calls",
	}, []string{"kind", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_create_duration_seconds",
		Help:    "Time spent constructing a variant",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	kinds := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_kinds_registered",
		Help: "Number of kinds currently registered in the catalog",
	})

	if err := reg.Register(creates); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			creates = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(kinds); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			kinds = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{creates: creates, duration: duration, kinds: kinds}, nil
}

// RecordCreate increments the create counter and observes the duration.
func (s *PromSink) RecordCreate(ev coreobserve.CreateEvent) error {
	s.creates.WithLabelValues(ev.Kind, ev.Outcome).Inc()
	if ev.Outcome == registry.OutcomeOK {
		s.duration.WithLabelValues(ev.Kind).Observe(ev.Duration.Seconds())
	}
	return nil
}

// RecordRegistration tracks the registered kind gauge. Replacements keep the
// count unchanged.
func (s *PromSink) RecordRegistration(ev coreobserve.RegistrationEvent) error {
	if !ev.Replaced {
		s.kinds.Inc()
	}
	return nil
}

// RecordKindCount sets the gauge baseline, covering kinds registered before
// the sink attached.
func (s *PromSink) RecordKindCount(n int) error {
	s.kinds.Set(float64(n))
	return nil
}
