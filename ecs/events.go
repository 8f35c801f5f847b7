package ecs

import "github.com/milk9111/antivirus/ecs/component"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventContact          = "contact"
	EventCommand          = "command"
	EventCollisionCount   = "collision_count"
	EventDimensionChanged = "dimension_changed"
)

// ContactEvent is queued by the physics step for every pair of shapes that
// started touching. The pair is unordered.
type ContactEvent struct {
	A Entity
	B Entity
}

// CollisionCountEvent is emitted after an enemy and a projectile destroyed
// each other.
type CollisionCountEvent struct {
	Count int
}

// DimensionChangedEvent is emitted after the scene switched dimension.
type DimensionChangedEvent struct {
	From component.Dimension
	To   component.Dimension
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

// Take removes and returns the events of one type, keeping the order of the
// rest.
func (q *EventQueue) Take(eventType string) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == eventType {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = Event{}
	}
	q.items = kept
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
