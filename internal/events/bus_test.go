package events

import (
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := New()
	received := make(chan LogEntryEvent, 1)

	unsub := bus.Subscribe(func(e LogEntryEvent) {
		received <- e
	})
	defer unsub()

	event := LogEntryEvent{
		Timestamp: "2026-08-24T10:30:00Z",
		Group:     "~1",
		Logger:    "ike",
		Message:   "initiating exchange",
	}
	bus.Publish(event)

	got := <-received
	if got.Logger != event.Logger {
		t.Errorf("Expected logger %s, got %s", event.Logger, got.Logger)
	}
	if got.Message != event.Message {
		t.Errorf("Expected message %q, got %q", event.Message, got.Message)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New()
	received := make(chan LevelChangedEvent, 1)

	unsub := bus.Subscribe(func(e LevelChangedEvent) {
		received <- e
	})

	bus.Publish(LevelChangedEvent{Logger: "net", Level: "all2"})
	<-received

	unsub()

	bus.Publish(LevelChangedEvent{Logger: "net", Level: "all3"})
	select {
	case <-received:
		t.Fatal("Should not have received event after unsubscribe")
	case <-time.After(10 * time.Millisecond):
		// Expected - no event
	}
}

func TestBus_TypeSafety(t *testing.T) {
	bus := New()

	logReceived := make(chan bool, 1)
	levelReceived := make(chan bool, 1)

	unsub1 := bus.Subscribe(func(_ LogEntryEvent) {
		logReceived <- true
	})
	defer unsub1()

	unsub2 := bus.Subscribe(func(_ LevelChangedEvent) {
		levelReceived <- true
	})
	defer unsub2()

	bus.Publish(LogEntryEvent{Logger: "ike", Message: "hello"})
	<-logReceived

	select {
	case <-levelReceived:
		t.Fatal("Level subscriber should NOT have received LogEntryEvent")
	case <-time.After(10 * time.Millisecond):
		// Expected
	}

	bus.Publish(LevelChangedEvent{Logger: "ike", Level: "all2"})
	<-levelReceived
}

func TestSubscribeToChannel(t *testing.T) {
	bus := New()
	ch := make(chan any, 10)

	unsub := SubscribeToChannel[LogEntryEvent](bus, ch)
	defer unsub()

	event := LogEntryEvent{
		Group:   "#3",
		Logger:  "net",
		Message: "received packet (28 bytes)",
		Bytes:   28,
	}
	bus.Publish(event)

	received := <-ch
	logEvent, ok := received.(LogEntryEvent)
	if !ok {
		t.Fatalf("Expected LogEntryEvent, got %T", received)
	}
	if logEvent.Bytes != event.Bytes {
		t.Errorf("Expected bytes %d, got %d", event.Bytes, logEvent.Bytes)
	}
}

func TestSubscribeToChannel_NonBlocking(_ *testing.T) {
	bus := New()
	ch := make(chan any) // No buffer

	unsub := SubscribeToChannel[LevelChangedEvent](bus, ch)
	defer unsub()

	done := make(chan bool, 1)
	go func() {
		bus.Publish(LevelChangedEvent{Logger: "cfg", Level: "silent"})
		done <- true
	}()

	<-done // Should complete without blocking
}
