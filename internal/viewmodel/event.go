package viewmodel

import "sync/atomic"

// Event is a value meant to be acted upon once. Re-observing the [Live]
// holding it redelivers the same Event, but its content can only be taken once.
type Event[T any] struct {
	content T
	handled atomic.Bool
}

func NewEvent[T any](content T) *Event[T] {
	return &Event[T]{content: content}
}

// Take returns the content and true the first time it is called, and the
// zero value and false afterwards.
func (e *Event[T]) Take() (T, bool) {
	if e == nil || !e.handled.CompareAndSwap(false, true) {
		var zero T
		return zero, false
	}
	return e.content, true
}

// Peek returns the content regardless of whether it was taken.
func (e *Event[T]) Peek() T {
	return e.content
}

// Handled reports whether the content has been taken.
func (e *Event[T]) Handled() bool {
	return e.handled.Load()
}

// Signal is an event that carries no content.
type Signal = Event[struct{}]

func emit[T any](l *Live[*Event[T]], content T) {
	l.Set(NewEvent(content))
}

func signal(l *Live[*Signal]) {
	emit(l, struct{}{})
}
