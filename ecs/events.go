package ecs

import (
	"iter"
	"reflect"
)

// eventQueue is the type-erased view of an event buffer that the Scheduler
// clears at the end of every frame.
type eventQueue interface {
	clear()
}

type eventBuffer[T any] struct {
	items []T
}

func (b *eventBuffer[T]) clear() {
	b.items = b.items[:0]
}

// Events is a per-frame message queue shared through the storage. Systems
// earlier in the frame Send, later systems read. Anything not consumed is
// dropped when the frame ends.
type Events[T any] struct {
	buffer *eventBuffer[T]
}

// NewEvents returns a handle on the T event queue, creating it if needed.
func NewEvents[T any](storage *Storage) *Events[T] {
	e := &Events[T]{}
	e.Init(storage)
	return e
}

// Init binds the handle to the storage's queue for T.
// This is called automatically by the Scheduler during system registration.
func (e *Events[T]) Init(storage *Storage) {
	bufferType := reflect.TypeFor[eventBuffer[T]]()
	if entry := storage.getSingletonEntry(bufferType); entry != nil {
		e.buffer = (*eventBuffer[T])(entry.dataPtr)
		return
	}

	storage.AddSingleton(eventBuffer[T]{})
	e.buffer = (*eventBuffer[T])(storage.getSingletonEntry(bufferType).dataPtr)
	storage.events = append(storage.events, e.buffer)
}

// Send queues an event for the rest of the frame.
func (e *Events[T]) Send(event T) {
	e.buffer.items = append(e.buffer.items, event)
}

// Len returns the number of queued events.
func (e *Events[T]) Len() int {
	return len(e.buffer.items)
}

// First returns the oldest queued event without consuming the rest.
func (e *Events[T]) First() (T, bool) {
	if len(e.buffer.items) == 0 {
		var zero T
		return zero, false
	}
	return e.buffer.items[0], true
}

// Read iterates the queued events in send order.
func (e *Events[T]) Read() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range e.buffer.items {
			if !yield(item) {
				return
			}
		}
	}
}

// ClearEvents drops every queued event of every type.
func (s *Storage) ClearEvents() {
	for _, q := range s.events {
		q.clear()
	}
}
