package event

import (
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()

	q.Push(Event{Type: TypePlacementStarted, Frame: 1})
	q.Push(Event{Type: TypePlacementConfirmed, Frame: 2})
	q.Push(Event{Type: TypePlacementCancelled, Frame: 3})

	evs := q.Consume()
	if len(evs) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(evs))
	}
	want := []Type{TypePlacementStarted, TypePlacementConfirmed, TypePlacementCancelled}
	for i, ev := range evs {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], ev.Type)
		}
	}
}

func TestQueueConsumeEmpty(t *testing.T) {
	q := NewQueue()

	if evs := q.Consume(); evs != nil {
		t.Errorf("Expected nil from empty queue, got %v", evs)
	}
}

func TestQueueConsumeDrains(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: TypeGridResized})

	if evs := q.Consume(); len(evs) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(evs))
	}
	if evs := q.Consume(); evs != nil {
		t.Errorf("Expected queue drained, got %v", evs)
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()

	for i := 0; i < QueueSize+10; i++ {
		q.Push(Event{Type: TypeGridResized, Frame: int64(i)})
	}

	evs := q.Consume()
	if len(evs) != QueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", QueueSize, len(evs))
	}
	if evs[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", evs[0].Frame)
	}
	if evs[len(evs)-1].Frame != int64(QueueSize+9) {
		t.Errorf("Expected newest frame %d, got %d", QueueSize+9, evs[len(evs)-1].Frame)
	}
}
