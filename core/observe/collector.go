package observe

import (
	"context"

	"github.com/jmorel/catalog/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records catalog events
// on the sink. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink Sink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case CreateEvent:
					_ = sink.RecordCreate(e)
				case RegistrationEvent:
					_ = sink.RecordRegistration(e)
				}
			}
		}
	}()
}
