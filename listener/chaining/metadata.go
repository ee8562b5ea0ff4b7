package chaining

import (
	"github.com/influxdata/xdom/listener"
)

// MetaDataStateListener tracks the metadata in scope.
// Inner metadata overlays outer metadata: keys missing from an inner scope resolve to outer values.
type MetaDataStateListener struct {
	Forwarder

	stack []*listener.MetaData
}

func NewMetaDataState() *MetaDataStateListener {
	s := new(MetaDataStateListener)
	s.Handle(s.handle)
	return s
}

func (s *MetaDataStateListener) handle(e listener.Event) {
	switch e.Type {
	case listener.BeginDocument, listener.BeginMetaData:
		md, _ := e.Args[0].(*listener.MetaData)
		s.stack = append(s.stack, md)
		s.Forward(e)
	case listener.EndDocument, listener.EndMetaData:
		s.Forward(e)
		if n := len(s.stack); n > 0 {
			s.stack = s.stack[:n-1]
		}
	default:
		s.Forward(e)
	}
}

// MetaData returns the innermost value of key.
func (s *MetaDataStateListener) MetaData(key string) (interface{}, bool) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if v, ok := s.stack[i].Get(key); ok {
			return v, true
		}
	}
	return nil, false
}

// AllMetaData returns the values of key from the innermost scope to the outermost one.
func (s *MetaDataStateListener) AllMetaData(key string) []interface{} {
	var values []interface{}
	for i := len(s.stack) - 1; i >= 0; i-- {
		if v, ok := s.stack[i].Get(key); ok {
			values = append(values, v)
		}
	}
	return values
}

func MetaDataStateOf(c *Chain) *MetaDataStateListener {
	l, _ := c.Find(func(l ChainingListener) bool {
		_, ok := l.(*MetaDataStateListener)
		return ok
	}).(*MetaDataStateListener)
	return l
}
