package chaining

import (
	"github.com/influxdata/xdom/listener"
)

// ConsecutiveNewLineStateListener counts the new line events received in a row.
type ConsecutiveNewLineStateListener struct {
	Forwarder

	count int
}

func NewConsecutiveNewLineState() *ConsecutiveNewLineStateListener {
	s := new(ConsecutiveNewLineStateListener)
	s.Handle(s.handle)
	return s
}

func (s *ConsecutiveNewLineStateListener) handle(e listener.Event) {
	s.Forward(e)
	if e.Type == listener.OnNewLine {
		s.count++
	} else {
		s.count = 0
	}
}

// NewLineCount returns the number of new lines received right before the current event.
func (s *ConsecutiveNewLineStateListener) NewLineCount() int {
	return s.count
}

func ConsecutiveNewLineStateOf(c *Chain) *ConsecutiveNewLineStateListener {
	l, _ := c.Find(func(l ChainingListener) bool {
		_, ok := l.(*ConsecutiveNewLineStateListener)
		return ok
	}).(*ConsecutiveNewLineStateListener)
	return l
}
