package observe

import (
	"time"

	"github.com/jmorel/catalog/core/logger"
	"github.com/jmorel/catalog/internal/eventbus"
)

// Recorder publishes catalog activity to the event bus. It implements
// registry.Observer; sinks consume the events through StartEventCollector.
type Recorder struct {
	bus eventbus.EventBus
	log logger.Logger
}

// NewRecorder creates a Recorder. A nil logger disables debug logging.
func NewRecorder(bus eventbus.EventBus, log logger.Logger) *Recorder {
	return &Recorder{bus: bus, log: log}
}

// ObserveCreate publishes a CreateEvent for one registry Create call.
func (r *Recorder) ObserveCreate(key string, outcome string, d time.Duration) {
	ev := CreateEvent{Kind: key, Outcome: outcome, Duration: d, Time: time.Now()}
	if r.log != nil {
		r.log.Debugw("catalog create", map[string]any{"kind": key, "outcome": outcome})
	}
	if r.bus != nil {
		r.bus.Publish(ev)
	}
}

// ObserveRegistration publishes a RegistrationEvent.
func (r *Recorder) ObserveRegistration(key string, replaced bool) {
	ev := RegistrationEvent{Kind: key, Replaced: replaced, Time: time.Now()}
	if r.log != nil {
		r.log.Debugw("catalog registration", map[string]any{"kind": key, "replaced": replaced})
	}
	if r.bus != nil {
		r.bus.Publish(ev)
	}
}
