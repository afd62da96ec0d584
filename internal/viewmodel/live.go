package viewmodel

import "sync"

// Live is an observable value. Observers are called synchronously on the
// goroutine that changes the value.
type Live[T any] struct {
	mu        sync.Mutex
	value     T
	set       bool
	observers map[int]func(T)
	nextID    int
}

// Value returns the current value and whether one has been set.
func (l *Live[T]) Value() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.set
}

// Get returns the current value, or the zero value if unset.
func (l *Live[T]) Get() T {
	v, _ := l.Value()
	return v
}

// Set stores v and notifies observers.
func (l *Live[T]) Set(v T) {
	l.mu.Lock()
	l.value, l.set = v, true
	observers := l.snapshot()
	l.mu.Unlock()

	for _, fn := range observers {
		fn(v)
	}
}

// Reset clears the value back to unset and notifies observers with the zero value.
func (l *Live[T]) Reset() {
	var zero T
	l.mu.Lock()
	l.value, l.set = zero, false
	observers := l.snapshot()
	l.mu.Unlock()

	for _, fn := range observers {
		fn(zero)
	}
}

// Observe registers fn and, if a value is set, calls it with the current
// value right away. The returned function removes the observer.
func (l *Live[T]) Observe(fn func(T)) (stop func()) {
	l.mu.Lock()
	if l.observers == nil {
		l.observers = make(map[int]func(T))
	}
	id := l.nextID
	l.nextID++
	l.observers[id] = fn
	v, set := l.value, l.set
	l.mu.Unlock()

	if set {
		fn(v)
	}
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.observers, id)
	}
}

// snapshot must be called with l.mu held.
func (l *Live[T]) snapshot() []func(T) {
	observers := make([]func(T), 0, len(l.observers))
	for id := 0; id < l.nextID; id++ {
		if fn, ok := l.observers[id]; ok {
			observers = append(observers, fn)
		}
	}
	return observers
}
