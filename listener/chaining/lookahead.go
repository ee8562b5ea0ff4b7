package chaining

import (
	"github.com/influxdata/xdom/listener"
)

// LookaheadListener delays events so members further down the chain can peek at the events following the current one.
type LookaheadListener struct {
	Forwarder

	depth   int
	pending *listener.Queue
}

// NewLookahead buffers up to depth events.
func NewLookahead(depth int) *LookaheadListener {
	s := &LookaheadListener{depth: depth, pending: listener.NewQueue()}
	s.Handle(s.handle)
	return s
}

func (s *LookaheadListener) handle(e listener.Event) {
	s.pending.Push(e)
	switch e.Type {
	case listener.BeginDocument, listener.EndDocument:
		s.flush()
	default:
		if s.pending.Len() > s.depth {
			s.release()
		}
	}
}

func (s *LookaheadListener) release() {
	if e, ok := s.pending.Pop(); ok {
		s.Forward(e)
	}
}

func (s *LookaheadListener) flush() {
	for s.pending.Len() > 0 {
		s.release()
	}
}

// NextEvent returns the k-th buffered event, k starting at 1 for the event following the one being forwarded.
func (s *LookaheadListener) NextEvent(k int) (listener.Event, bool) {
	return s.pending.Peek(k - 1)
}

// Buffered returns the number of events not forwarded yet.
func (s *LookaheadListener) Buffered() int {
	return s.pending.Len()
}

func LookaheadOf(c *Chain) *LookaheadListener {
	l, _ := c.Find(func(l ChainingListener) bool {
		_, ok := l.(*LookaheadListener)
		return ok
	}).(*LookaheadListener)
	return l
}
