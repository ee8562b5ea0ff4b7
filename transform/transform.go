// Package transform defines tree transformations and runs them in priority order.
package transform

import (
	"sort"

	"github.com/google/uuid"
	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Context carries the document being transformed.
type Context struct {
	// ID identifies the transformation pass in diagnostics.
	ID string
	// XDOM is the whole document, the transformed block may be a part of it.
	XDOM *block.XDOM
	// Syntax is the syntax the document was parsed from.
	Syntax syntax.Syntax
	// TargetSyntax is the syntax the document will be rendered to, if known.
	TargetSyntax syntax.Syntax
	// Restricted disables transformations that are unsafe for untrusted content.
	Restricted bool
}

func NewContext(x *block.XDOM, syn syntax.Syntax) *Context {
	return &Context{
		ID:     uuid.NewString(),
		XDOM:   x,
		Syntax: syn,
	}
}

// Copy returns a shallow copy of the context with a new id.
func (c *Context) Copy() *Context {
	cp := *c
	cp.ID = uuid.NewString()
	return &cp
}

// Transformation rewrites a block tree in place.
type Transformation interface {
	Name() string
	// Priority orders transformations, lower values run first.
	Priority() int
	Transform(b block.Block, ctx *Context) error
}

// Manager runs transformations in priority order.
type Manager struct {
	transformations []Transformation
}

func NewManager(transformations ...Transformation) *Manager {
	m := new(Manager)
	for _, t := range transformations {
		m.Add(t)
	}
	return m
}

// Add registers t, keeping transformations sorted by priority and then by registration order.
func (m *Manager) Add(t Transformation) {
	m.transformations = append(m.transformations, t)
	sort.SliceStable(m.transformations, func(i, j int) bool {
		return m.transformations[i].Priority() < m.transformations[j].Priority()
	})
}

func (m *Manager) Transformations() []Transformation {
	return m.transformations
}

// Perform runs all transformations on b.
// A failing transformation does not prevent the following ones from running; all failures are returned.
func (m *Manager) Perform(b block.Block, ctx *Context) error {
	var err error
	for _, t := range m.transformations {
		if terr := t.Transform(b, ctx); terr != nil {
			err = multierr.Append(err, errors.Wrapf(terr, "transformation %s", t.Name()))
		}
	}
	return err
}
