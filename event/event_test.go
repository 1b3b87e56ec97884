package event

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventSwipe, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Expected 5 pending, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Event %d: expected frame %d, got %d", i, i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventSwipe, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
	if q.Dropped() == 0 {
		t.Error("Expected dropped counter to advance")
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventCycleMarker})
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, len(events))
	}
}

func TestDecodeRemoteSwipe(t *testing.T) {
	raw := json.RawMessage(`{"start":{"x":10,"y":20},"end":{"x":110,"y":20},"duration_ms":200}`)
	ev, err := DecodeRemote("swipe", raw)
	if err != nil {
		t.Fatalf("DecodeRemote failed: %v", err)
	}
	if ev.Type != EventSwipe {
		t.Errorf("Expected EventSwipe, got %d", ev.Type)
	}
	p, ok := ev.Payload.(*SwipePayload)
	if !ok {
		t.Fatalf("Expected *SwipePayload, got %T", ev.Payload)
	}
	if p.End.X != 110 || p.Duration().Milliseconds() != 200 {
		t.Errorf("Unexpected payload %+v", p)
	}
}

func TestDecodeRemoteMarker(t *testing.T) {
	raw := json.RawMessage(`{"position":{"x":1,"y":2},"marker":"CD30"}`)
	ev, err := DecodeRemote("drop_receptor", raw)
	if err != nil {
		t.Fatalf("DecodeRemote failed: %v", err)
	}
	p := ev.Payload.(*DropReceptorPayload)
	if p.Marker != core.MarkerCD30 {
		t.Errorf("Expected CD30, got %s", p.Marker)
	}
}

func TestDecodeRemoteRejects(t *testing.T) {
	if _, err := DecodeRemote("nope", nil); err == nil {
		t.Error("Expected error for unknown event")
	}
	if _, err := DecodeRemote("cancer_killed", nil); err == nil {
		t.Error("Expected error for internal-only event")
	}
	if _, err := DecodeRemote("swipe", json.RawMessage(`{"start":`)); err == nil {
		t.Error("Expected error for malformed payload")
	}
}

func TestRegistryNames(t *testing.T) {
	if GetEventName(EventChainKill) != "chain_kill" {
		t.Errorf("Expected chain_kill, got %q", GetEventName(EventChainKill))
	}
	if NewPayloadStruct(EventGameReset) != nil {
		t.Error("Reset should carry no payload")
	}
	if _, ok := NewPayloadStruct(EventChainTriggered).(*ChainTriggerPayload); !ok {
		t.Error("Expected *ChainTriggerPayload")
	}
}

// TestRemoteNames verifies only gesture and control events are listed, sorted
func TestRemoteNames(t *testing.T) {
	names := RemoteNames()
	if len(names) != 11 {
		t.Fatalf("Expected 11 remote names, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Expected sorted names, got %q before %q", names[i-1], names[i])
		}
	}
	for _, n := range names {
		if n == "cancer_killed" || n == "chain_kill" {
			t.Errorf("Expected internal event %q to be excluded", n)
		}
	}
}
