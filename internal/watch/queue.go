package watch

// DefaultQueueSize is used when a non-positive queue size is requested.
const DefaultQueueSize = 64

// Op is the kind of change an Event reports.
type Op uint8

const (
	Write Op = 1 << iota
	Create
)

func (o Op) String() string {
	switch o {
	case Write:
		return "write"
	case Create:
		return "create"
	case Write | Create:
		return "write|create"
	default:
		return "none"
	}
}

// Event says the watched path was written or (re)created.
type Event struct {
	Path string
	Op   Op
}

// Queue is a bounded multi-producer queue of events. Neither side blocks: Push
// drops the event when the queue is full, TryPop returns false when it is
// empty. Dropping is safe because consumers only care that some change
// happened.
type Queue struct {
	events chan Event
}

// NewQueue returns a queue holding at most size events; size <= 0 means
// DefaultQueueSize.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{events: make(chan Event, size)}
}

// Push enqueues ev and reports whether it was accepted.
func (q *Queue) Push(ev Event) bool {
	select {
	case q.events <- ev:
		return true
	default:
		return false
	}
}

// TryPop removes the oldest event without blocking.
func (q *Queue) TryPop() (Event, bool) {
	select {
	case ev := <-q.events:
		return ev, true
	default:
		return Event{}, false
	}
}

// Drain empties the queue and returns the last event popped, so several
// queued changes collapse into one. Events pushed while draining may be left
// for the next call.
func (q *Queue) Drain() (last Event, ok bool) {
	for n := len(q.events); n > 0; n-- {
		ev, more := q.TryPop()
		if !more {
			break
		}
		last, ok = ev, true
	}
	return last, ok
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}
