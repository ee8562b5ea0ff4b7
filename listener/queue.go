package listener

// Queue is a Listener that records events in arrival order so they can be replayed later.
type Queue struct {
	Func
	events []Event
}

func NewQueue() *Queue {
	q := new(Queue)
	q.Func = q.Push
	return q
}

// Push appends e to the queue.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

func (q *Queue) Len() int {
	return len(q.events)
}

// Peek returns the event at index i without removing it.
func (q *Queue) Peek(i int) (Event, bool) {
	if i < 0 || i >= len(q.events) {
		return Event{}, false
	}
	return q.events[i], true
}

// Pop removes and returns the oldest event.
func (q *Queue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	return e, true
}

// Events returns a copy of the recorded events.
func (q *Queue) Events() []Event {
	events := make([]Event, len(q.events))
	copy(events, q.events)
	return events
}

// Consume fires all recorded events on l in order, emptying the queue.
// Events pushed while consuming are fired as well.
func (q *Queue) Consume(l Listener) {
	for {
		e, ok := q.Pop()
		if !ok {
			return
		}
		e.Fire(l)
	}
}

// Replay fires all recorded events on l without emptying the queue.
func (q *Queue) Replay(l Listener) {
	for _, e := range q.Events() {
		e.Fire(l)
	}
}

func (q *Queue) Reset() {
	q.events = nil
}
