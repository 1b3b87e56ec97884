package engine

import (
	"container/heap"
	"time"

	"github.com/lixenwraith/antigen/event"
)

// DelayQueue holds events until simulation time reaches their due time
// Events due at the same instant are released in scheduling order
type DelayQueue struct {
	items delayHeap
	seq   uint64
}

type delayedEvent struct {
	due time.Duration
	seq uint64
	ev  event.GameEvent
}

type delayHeap []delayedEvent

func (h delayHeap) Len() int { return len(h) }
func (h delayHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h delayHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *delayHeap) Push(x any) { *h = append(*h, x.(delayedEvent)) }
func (h *delayHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// NewDelayQueue returns an empty queue
func NewDelayQueue() *DelayQueue {
	return &DelayQueue{}
}

// Schedule stores ev until simulation time reaches due
func (q *DelayQueue) Schedule(due time.Duration, ev event.GameEvent) {
	q.seq++
	heap.Push(&q.items, delayedEvent{due: due, seq: q.seq, ev: ev})
}

// PopDue removes and returns every event with due <= now, earliest first
func (q *DelayQueue) PopDue(now time.Duration) []event.GameEvent {
	var result []event.GameEvent
	for len(q.items) > 0 && q.items[0].due <= now {
		item := heap.Pop(&q.items).(delayedEvent)
		result = append(result, item.ev)
	}
	return result
}

// Len returns the number of pending events
func (q *DelayQueue) Len() int {
	return len(q.items)
}

// NextDue returns the earliest due time, false when empty
func (q *DelayQueue) NextDue() (time.Duration, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0].due, true
}

// Clear drops every pending event
func (q *DelayQueue) Clear() {
	q.items = q.items[:0]
}
