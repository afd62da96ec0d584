// Package dispatch runs view-model work off the caller's goroutine.
package dispatch

import "sync"

// Dispatcher schedules a task to run later.
type Dispatcher interface {
	Go(task func())
}

// Pool runs every task on its own goroutine.
type Pool struct {
	wg sync.WaitGroup
}

var _ Dispatcher = (*Pool)(nil)

func (p *Pool) Go(task func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		task()
	}()
}

// Wait blocks until all tasks started so far have returned.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Queue holds tasks until RunPending is called.
//
// Tests use it to observe state between triggering an operation and its
// completion. Thread-safe: Go may be called from any goroutine.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

var _ Dispatcher = (*Queue)(nil)

func (q *Queue) Go(task func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, task)
}

// Len reports the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// RunPending runs queued tasks in FIFO order on the calling goroutine,
// including tasks queued while running, until the queue is empty.
// Returns the number of tasks run.
func (q *Queue) RunPending() int {
	n := 0
	for {
		task, ok := q.next()
		if !ok {
			return n
		}
		task()
		n++
	}
}

func (q *Queue) next() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return nil, false
	}
	task := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	if len(q.tasks) == 0 {
		q.tasks = nil
	}
	return task, true
}
