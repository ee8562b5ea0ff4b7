// Package chaining composes stateful listeners into an ordered chain.
//
// The chain entry offers each event to the first member, and every member forwards
// the event to the member after it through an index based handle into the chain.
// State trackers update their state around the forwarding call, so members further
// down the chain can query them while handling the same event.
package chaining

import (
	"github.com/influxdata/xdom/listener"
)

// ChainingListener is a member of a Chain.
// Implementations embed Forwarder.
type ChainingListener interface {
	listener.Listener
	attach(c *Chain, pos int)
}

// Chain is an ordered sequence of chaining listeners.
// A chain holds per pass state and must not be shared between concurrent passes.
type Chain struct {
	listeners []ChainingListener
}

func NewChain(listeners ...ChainingListener) *Chain {
	c := new(Chain)
	for _, l := range listeners {
		c.Add(l)
	}
	return c
}

// Add appends l to the chain.
func (c *Chain) Add(l ChainingListener) {
	c.listeners = append(c.listeners, l)
	l.attach(c, len(c.listeners)-1)
}

// Insert inserts l at position i, shifting the following members.
func (c *Chain) Insert(i int, l ChainingListener) {
	listeners := make([]ChainingListener, 0, len(c.listeners)+1)
	listeners = append(listeners, c.listeners[:i]...)
	listeners = append(listeners, l)
	c.listeners = append(listeners, c.listeners[i:]...)
	c.reindex()
}

// Remove removes l from the chain and reports whether it was a member.
func (c *Chain) Remove(l ChainingListener) bool {
	for i, m := range c.listeners {
		if m == l {
			c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
			l.attach(nil, -1)
			c.reindex()
			return true
		}
	}
	return false
}

func (c *Chain) reindex() {
	for i, l := range c.listeners {
		l.attach(c, i)
	}
}

func (c *Chain) Len() int {
	return len(c.listeners)
}

func (c *Chain) Listeners() []ChainingListener {
	return c.listeners
}

// Next returns the member following position pos, or nil at the end of the chain.
func (c *Chain) Next(pos int) listener.Listener {
	if c == nil || pos+1 >= len(c.listeners) || pos+1 < 0 {
		return nil
	}
	return c.listeners[pos+1]
}

// Listener returns the entry point of the chain.
func (c *Chain) Listener() listener.Listener {
	if len(c.listeners) == 0 {
		return listener.Void{}
	}
	return c.listeners[0]
}

// Find returns the first member accepted by match, or nil.
func (c *Chain) Find(match func(ChainingListener) bool) ChainingListener {
	for _, l := range c.listeners {
		if match(l) {
			return l
		}
	}
	return nil
}

// Forwarder is the base of chaining listeners: every event it receives is handed to
// its handler, which by default forwards the event to the next member of the chain.
type Forwarder struct {
	listener.Func

	chain   *Chain
	pos     int
	handler func(e listener.Event)
}

func (f *Forwarder) attach(c *Chain, pos int) {
	f.chain = c
	f.pos = pos
	if f.Func == nil {
		f.Func = f.dispatch
	}
}

func (f *Forwarder) dispatch(e listener.Event) {
	if f.handler != nil {
		f.handler(e)
		return
	}
	f.Forward(e)
}

// Handle sets the function receiving all events not overridden by the embedding type.
func (f *Forwarder) Handle(handler func(e listener.Event)) {
	f.handler = handler
	if f.Func == nil {
		f.Func = f.dispatch
	}
}

// Chain returns the chain the listener belongs to, nil if it was not added to one.
func (f *Forwarder) Chain() *Chain {
	return f.chain
}

// Next returns the following member, nil at the end of the chain.
func (f *Forwarder) Next() listener.Listener {
	return f.chain.Next(f.pos)
}

// Forward fires e on the following member, if any.
func (f *Forwarder) Forward(e listener.Event) {
	if next := f.Next(); next != nil {
		e.Fire(next)
	}
}

// Adapter makes a plain listener a chain member.
// Events are handled by the listener, then forwarded.
type Adapter struct {
	Forwarder
	Listener listener.Listener
}

func NewAdapter(l listener.Listener) *Adapter {
	a := &Adapter{Listener: l}
	a.Handle(func(e listener.Event) {
		e.Fire(a.Listener)
		a.Forward(e)
	})
	return a
}
