package swarm

import (
	"github.com/akmonengine/swarm/collision"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	IMPACT EventType = iota
	DISCONTINUITY
	RESET
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// ImpactEvent is emitted for every bounce resolved during a step
type ImpactEvent struct {
	Triangle *collision.Triangle
	Index    int        // index of Triangle in the surface
	Time     float64    // time left in the step when the body hit
	Position mgl64.Vec3 // impact point
	Velocity mgl64.Vec3 // velocity after the bounce
}

func (e ImpactEvent) Type() EventType { return IMPACT }

// DiscontinuityEvent is emitted when a tick breaks the run
type DiscontinuityEvent struct {
	Previous float64
	Now      float64
}

func (e DiscontinuityEvent) Type() EventType { return DISCONTINUITY }

type ResetEvent struct {
	Now float64
}

func (e ResetEvent) Type() EventType { return RESET }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 64),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	if len(e.listeners[event.Type()]) == 0 {
		return
	}
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
