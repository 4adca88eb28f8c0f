// Package queue implements a single-goroutine event queue of delayed,
// cancelable tasks. A Queue is advanced by its owner (normally once per
// frame with the frame time) and all tasks run on the advancing goroutine.
package queue

import (
	"container/heap"
	"time"
)

// Task is a scheduled unit of work. The zero value and the nil
// pointer are both valid, already-finished tasks.
type Task struct {
	at        time.Time
	seq       uint64
	fn        func()
	index     int
	cancelled bool
	done      bool
}

// Cancel prevents the task from running. Cancelling a task that already
// ran or was already cancelled does nothing.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Pending reports whether the task is still waiting to run.
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.done && t.fn != nil
}

// Deadline returns the instant at which the task is due.
func (t *Task) Deadline() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.at
}

// Queue holds scheduled tasks ordered by deadline, with ties broken by
// scheduling order. Only Post is safe to call from other goroutines.
type Queue struct {
	now    time.Time
	seq    uint64
	tasks  taskHeap
	posted chan func()
	wake   func()
}

// New constructs a Queue whose clock starts at now. wake, if non-nil, is
// invoked from Post so that the owning goroutine can be prompted to
// advance the queue (e.g. by invalidating a window).
func New(now time.Time, wake func()) *Queue {
	return &Queue{
		now:    now,
		posted: make(chan func(), 16),
		wake:   wake,
	}
}

// Now returns the time the queue was last advanced to.
func (q *Queue) Now() time.Time {
	return q.now
}

// After schedules fn to run once d has elapsed from the queue's current
// time. Non-positive delays run on the next call to Advance.
func (q *Queue) After(d time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	q.seq++
	t := &Task{
		at:  q.now.Add(d),
		seq: q.seq,
		fn:  fn,
	}
	heap.Push(&q.tasks, t)
	return t
}

// Post hands fn to the owning goroutine. It may be called from any
// goroutine and blocks only if many posts are outstanding.
func (q *Queue) Post(fn func()) {
	q.posted <- fn
	if q.wake != nil {
		q.wake()
	}
}

// Advance moves the queue clock to now (never backwards) and runs posted
// functions followed by every task due at or before now. Tasks scheduled
// by running tasks are also run if they fall due within the same advance.
func (q *Queue) Advance(now time.Time) {
	if now.After(q.now) {
		q.now = now
	}
	q.drainPosted()
	for len(q.tasks) > 0 {
		next := q.tasks[0]
		if next.at.After(q.now) {
			return
		}
		heap.Pop(&q.tasks)
		if next.cancelled {
			continue
		}
		next.done = true
		next.fn()
		q.drainPosted()
	}
}

func (q *Queue) drainPosted() {
	for {
		select {
		case fn := <-q.posted:
			fn()
		default:
			return
		}
	}
}

// Next returns the deadline of the earliest live task, if any.
func (q *Queue) Next() (time.Time, bool) {
	for len(q.tasks) > 0 && q.tasks[0].cancelled {
		heap.Pop(&q.tasks)
	}
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	return q.tasks[0].at, true
}

// Len returns the number of tasks that have not yet run, including
// cancelled tasks that have not been discarded.
func (q *Queue) Len() int {
	return len(q.tasks)
}

type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x interface{}) {
	t := x.(*Task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
