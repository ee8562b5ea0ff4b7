// Package parser defines parsers turning source text into documents.
package parser

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
)

// ErrUnknownSyntax is returned when no parser is registered for a syntax.
var ErrUnknownSyntax = errors.New("no parser for syntax")

// Parser reads source text of one syntax.
type Parser interface {
	Syntax() syntax.Syntax
	Parse(r io.Reader) (*block.XDOM, error)
}

// ParseString parses s with p.
func ParseString(p Parser, s string) (*block.XDOM, error) {
	return p.Parse(strings.NewReader(s))
}

// Registry holds one parser per syntax. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser
}

func NewRegistry(parsers ...Parser) *Registry {
	r := &Registry{parsers: make(map[string]Parser)}
	for _, p := range parsers {
		r.Register(p)
	}
	return r
}

// Register adds p, replacing any parser of the same syntax.
func (r *Registry) Register(p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[p.Syntax().String()] = p
}

func (r *Registry) Parser(syn syntax.Syntax) (Parser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parsers[syn.String()]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSyntax, "%q", syn.String())
	}
	return p, nil
}

// Syntaxes returns the registered syntaxes sorted by id.
func (r *Registry) Syntaxes() []syntax.Syntax {
	r.mu.RLock()
	defer r.mu.RUnlock()
	syns := make([]syntax.Syntax, 0, len(r.parsers))
	for _, p := range r.parsers {
		syns = append(syns, p.Syntax())
	}
	sort.Slice(syns, func(i, j int) bool {
		return syns[i].String() < syns[j].String()
	})
	return syns
}
