package core

import (
	"fmt"
	"strings"
)

// Event is a discrete logical input consumed by a runner session.
// Physical keys are mapped to events by the platform layer; the same key may
// produce different events depending on the session state.
type Event int

const (
	EventNone        Event = iota
	EventStart             // Leave the title screen
	EventJump              // Jump while running
	EventDuckPress         // Start ducking
	EventDuckRelease       // Stop ducking
	EventRestart           // Start a new run after game over
	EventQuit              // End the process loop, valid in any state
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventStart:
		return "start"
	case EventJump:
		return "jump"
	case EventDuckPress:
		return "duck_down"
	case EventDuckRelease:
		return "duck_up"
	case EventRestart:
		return "restart"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseEvent converts an event name (as produced by String) back to an Event.
func ParseEvent(s string) (Event, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return EventStart, nil
	case "jump":
		return EventJump, nil
	case "duck_down", "duck":
		return EventDuckPress, nil
	case "duck_up":
		return EventDuckRelease, nil
	case "restart":
		return EventRestart, nil
	case "quit":
		return EventQuit, nil
	default:
		return EventNone, fmt.Errorf("core: unknown event %q", s)
	}
}

// EventQueue buffers events between ticks.
// Events are delivered in arrival order.
type EventQueue struct {
	pending []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{pending: make([]Event, 0, 8)}
}

// Push appends an event to the queue. EventNone is dropped.
func (q *EventQueue) Push(e Event) {
	if e == EventNone {
		return
	}
	q.pending = append(q.pending, e)
}

// Drain returns all pending events and empties the queue. It never blocks.
func (q *EventQueue) Drain() []Event {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Event, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.pending)
}
