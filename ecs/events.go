package ecs

// EventType names a world event.
type EventType string

const (
	EventPointerOver EventType = "pointer_over"
	EventPointerOut  EventType = "pointer_out"
	EventPointerDown EventType = "pointer_down"
)

// Event is queued by one system and consumed by a later one in the same
// frame.
type Event struct {
	Type   EventType
	Entity Entity
	X, Y   float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
