// Package renderer defines renderers writing block trees in a target syntax.
package renderer

import (
	"bytes"
	"io"
	"sort"
	"sync"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
)

// ErrUnknownSyntax is returned when no renderer is registered for a syntax.
var ErrUnknownSyntax = errors.New("no renderer for syntax")

// Renderer writes a block tree in one syntax.
// Implementations build their listeners per call and are safe for concurrent use.
type Renderer interface {
	Syntax() syntax.Syntax
	Render(b block.Block, w io.Writer) error
}

// RenderString renders b with r and returns the output.
func RenderString(r Renderer, b block.Block) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(b, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Registry holds one renderer per syntax. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{renderers: make(map[string]Renderer)}
	for _, rr := range renderers {
		r.Register(rr)
	}
	return r
}

// Register adds rr, replacing any renderer of the same syntax.
func (r *Registry) Register(rr Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[rr.Syntax().String()] = rr
}

func (r *Registry) Renderer(syn syntax.Syntax) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rr, ok := r.renderers[syn.String()]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSyntax, "%q", syn.String())
	}
	return rr, nil
}

// Syntaxes returns the registered syntaxes sorted by id.
func (r *Registry) Syntaxes() []syntax.Syntax {
	r.mu.RLock()
	defer r.mu.RUnlock()
	syns := make([]syntax.Syntax, 0, len(r.renderers))
	for _, rr := range r.renderers {
		syns = append(syns, rr.Syntax())
	}
	sort.Slice(syns, func(i, j int) bool {
		return syns[i].String() < syns[j].String()
	})
	return syns
}
