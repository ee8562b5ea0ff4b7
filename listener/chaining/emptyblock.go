package chaining

import (
	"github.com/influxdata/xdom/listener"
)

// EmptyBlockListener records whether the current container received any content.
type EmptyBlockListener struct {
	Forwarder

	empty []bool
}

func NewEmptyBlock() *EmptyBlockListener {
	s := new(EmptyBlockListener)
	s.Handle(s.handle)
	return s
}

func (s *EmptyBlockListener) handle(e listener.Event) {
	switch {
	case e.Type.IsBegin():
		s.markNotEmpty()
		s.empty = append(s.empty, true)
		s.Forward(e)
	case e.Type.IsEnd():
		s.Forward(e)
		if n := len(s.empty); n > 0 {
			s.empty = s.empty[:n-1]
		}
	default:
		s.markNotEmpty()
		s.Forward(e)
	}
}

func (s *EmptyBlockListener) markNotEmpty() {
	if n := len(s.empty); n > 0 {
		s.empty[n-1] = false
	}
}

// IsCurrentContainerBlockEmpty reports whether nothing was received since the innermost open begin event.
// It is accurate from the begin event to the matching end event, both included.
func (s *EmptyBlockListener) IsCurrentContainerBlockEmpty() bool {
	if n := len(s.empty); n > 0 {
		return s.empty[n-1]
	}
	return true
}

func EmptyBlockOf(c *Chain) *EmptyBlockListener {
	l, _ := c.Find(func(l ChainingListener) bool {
		_, ok := l.(*EmptyBlockListener)
		return ok
	}).(*EmptyBlockListener)
	return l
}
