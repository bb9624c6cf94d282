// Package frame schedules callbacks for the next display paint.
//
// A Queue is flushed once per painted frame by its host. Callbacks requested
// while a flush is running are deferred to the following flush, so a callback
// that re-requests itself runs exactly once per paint.
package frame

// ID identifies a requested frame callback. The zero ID is never issued.
type ID uint64

type task struct {
	id ID
	fn func()
}

// Queue holds pending frame callbacks. It is not safe for concurrent use;
// requests, cancellations and flushes happen on the host's frame goroutine.
type Queue struct {
	last     ID
	pending  []task
	running  []task
	flushing bool
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// RequestFrame schedules fn for the next flush and returns its handle.
func (q *Queue) RequestFrame(fn func()) ID {
	q.last++
	q.pending = append(q.pending, task{id: q.last, fn: fn})
	return q.last
}

// CancelFrame drops a scheduled callback. Unknown, already run and already
// cancelled handles are ignored.
func (q *Queue) CancelFrame(id ID) {
	for i := range q.pending {
		if q.pending[i].id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// A callback may cancel another one from the same batch.
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Flush runs every callback that was pending when Flush was called and
// returns how many ran. Calling Flush from inside a callback is a no-op.
func (q *Queue) Flush() int {
	if q.flushing {
		return 0
	}
	q.flushing = true
	q.running, q.pending = q.pending, nil

	ran := 0
	for i := 0; i < len(q.running); i++ {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		ran++
	}

	q.running = nil
	q.flushing = false
	return ran
}

// Len reports the number of callbacks waiting for the next flush.
func (q *Queue) Len() int {
	return len(q.pending)
}
