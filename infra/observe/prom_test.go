package observe

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coreobserve "github.com/jmorel/catalog/core/observe"
)

func TestPromSink_RecordCreate(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected PromSink")
	}

	evs := []coreobserve.CreateEvent{
		{Kind: "book", Outcome: "ok", Duration: 3 * time.Millisecond, Time: time.Now()},
		{Kind: "book", Outcome: "ok", Duration: 2 * time.Millisecond, Time: time.Now()},
		{Kind: "movie", Outcome: "unknown_key", Time: time.Now()},
	}
	for _, ev := range evs {
		if err := sink.RecordCreate(ev); err != nil {
			t.Fatalf("record error: %v", err)
		}
	}

	expected := `
# HELP catalog_creates_total Total number of catalog create calls
# TYPE catalog_creates_total counter
catalog_creates_total{kind="book",outcome="ok"} 2
catalog_creates_total{kind="movie",outcome="unknown_key"} 1
`
	if err := testutil.CollectAndCompare(sink.creates, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}

	if c := testutil.CollectAndCount(sink.duration); c == 0 {
		t.Errorf("duration not recorded")
	}
}

func TestPromSink_RegistrationGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink := sinkIf.(*PromSink)

	for _, ev := range []coreobserve.RegistrationEvent{
		{Kind: "book"},
		{Kind: "movie"},
		{Kind: "book", Replaced: true},
	} {
		if err := sink.RecordRegistration(ev); err != nil {
			t.Fatalf("record error: %v", err)
		}
	}
	if v := testutil.ToFloat64(sink.kinds); v != 2 {
		t.Errorf("expected 2 registered kinds, got %v", v)
	}

	// A baseline overrides the incremental count.
	if err := sink.RecordKindCount(5); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if v := testutil.ToFloat64(sink.kinds); v != 5 {
		t.Errorf("expected baseline 5, got %v", v)
	}
}

// Registering twice on the same registerer must reuse the existing collectors.
func TestPromSink_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first sink: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second sink: %v", err)
	}
}
