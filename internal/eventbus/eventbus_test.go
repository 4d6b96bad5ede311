package eventbus

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Publish("registered")
	v := <-ch
	if v != "registered" {
		t.Fatalf("expected registered got %v", v)
	}
	bus.Unsubscribe(ch)
}

func TestBusDropsWhenFull(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	for i := 0; i < subscriberBuffer+4; i++ {
		bus.Publish(i)
	}
	// The buffered events are delivered, the overflow was dropped.
	for i := 0; i < subscriberBuffer; i++ {
		if v := <-ch; v != i {
			t.Fatalf("expected %d got %v", i, v)
		}
	}
	select {
	case v := <-ch:
		t.Fatalf("unexpected extra event %v", v)
	default:
	}
	bus.Unsubscribe(ch)
}

func TestBusClose(t *testing.T) {
	bus := New()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
	// Publish after Close is a no-op.
	bus.Publish("late")
}

func TestBusUnsubscribeAfterClose(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on Unsubscribe after Close: %v", r)
		}
	}()
	bus.Unsubscribe(ch)
}
