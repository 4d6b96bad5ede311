package observe

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordCreate forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordCreate(ev CreateEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordCreate(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordRegistration forwards the event to all sinks.
func (m *MultiSink) RecordRegistration(ev RegistrationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRegistration(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordKindCount forwards the baseline to the sinks that track it.
func (m *MultiSink) RecordKindCount(n int) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(KindCountRecorder); ok {
			if err := rec.RecordKindCount(n); err != nil {
				return err
			}
		}
	}
	return nil
}
