package block

import (
	"github.com/google/go-cmp/cmp"
	"github.com/influxdata/xdom/listener"
)

// Events returns the events emitted when traversing b.
func Events(b Block) []listener.Event {
	q := listener.NewQueue()
	b.Traverse(q)
	return q.Events()
}

// Equal reports whether a and b emit the same events, i.e. are structurally equal.
func Equal(a, b Block) bool {
	return cmp.Equal(Events(a), Events(b))
}

// Diff returns a human readable difference between the events of want and got.
func Diff(want, got Block) string {
	return cmp.Diff(Events(want), Events(got))
}
