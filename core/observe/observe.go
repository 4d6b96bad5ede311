// Package observe defines the events emitted by catalog activity and the
// sink contract used to record them.
package observe

import (
	"time"

	"github.com/jmorel/catalog/core/registry"
)

// CreateEvent describes one Create call on the catalog registry.
type CreateEvent struct {
	Kind     string
	Outcome  string
	Duration time.Duration
	Time     time.Time
}

// RegistrationEvent describes a factory registration or replacement.
type RegistrationEvent struct {
	Kind     string
	Replaced bool
	Time     time.Time
}

// Sink records catalog events for observability purposes.
type Sink interface {
	RecordCreate(ev CreateEvent) error
	RecordRegistration(ev RegistrationEvent) error
}

// KindCountRecorder is implemented by sinks that track the absolute number of
// registered kinds. Kinds registered before the sink attaches are only
// visible through this baseline.
type KindCountRecorder interface {
	RecordKindCount(n int) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordCreate(CreateEvent) error             { return nil }
func (NopSink) RecordRegistration(RegistrationEvent) error { return nil }

var sinkRegistry = registry.New[Sink]()

// RegisterSink adds a sink factory identified by name.
func RegisterSink(name string, f registry.Factory[Sink]) error {
	return sinkRegistry.Register(name, f)
}

// NewSink creates a Sink from the provided configuration. Several configured
// sinks are fanned out through a MultiSink; none yields a NopSink.
func NewSink(specs []registry.Spec) (Sink, error) {
	if len(specs) == 0 {
		return NopSink{}, nil
	}
	if len(specs) == 1 {
		return sinkRegistry.Create(specs[0].Kind, specs[0].Attrs)
	}
	sinks := make([]Sink, len(specs))
	for i, s := range specs {
		sink, err := sinkRegistry.Create(s.Kind, s.Attrs)
		if err != nil {
			return nil, err
		}
		sinks[i] = sink
	}
	return NewMultiSink(sinks...), nil
}
