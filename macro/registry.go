package macro

import (
	"fmt"
	"sort"
	"sync"

	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
)

// ErrMacroNotFound matches every NotFoundError.
var ErrMacroNotFound = errors.New("macro not found")

// NotFoundError is returned when no macro is registered under an id.
type NotFoundError struct {
	ID     string
	Syntax syntax.Syntax
}

func (e *NotFoundError) Error() string {
	if e.Syntax.Zero() {
		return fmt.Sprintf("unknown macro %q", e.ID)
	}
	return fmt.Sprintf("unknown macro %q for syntax %s", e.ID, e.Syntax)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrMacroNotFound
}

// LookupError is returned when a macro exists but could not be instantiated.
type LookupError struct {
	ID  string
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to lookup macro %q: %v", e.ID, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }
func (e *LookupError) Cause() error  { return e.Err }

// Registry resolves macro ids.
type Registry interface {
	// Macro returns the macro registered under id for syn, or a *NotFoundError or *LookupError.
	Macro(id string, syn syntax.Syntax) (Macro, error)
	// IDs returns the ids of the macros available in syn.
	IDs(syn syntax.Syntax) []string
}

// Factory creates a macro on first use.
type Factory func() (Macro, error)

type registryKey struct {
	id     string
	syntax string
}

// MapRegistry is a Registry populated explicitly, safe for concurrent use.
// Macros registered for a specific syntax take precedence over macros registered for all syntaxes.
type MapRegistry struct {
	mu        sync.RWMutex
	macros    map[registryKey]Macro
	factories map[registryKey]Factory
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{
		macros:    make(map[registryKey]Macro),
		factories: make(map[registryKey]Factory),
	}
}

func keys(id string, syns []syntax.Syntax) []registryKey {
	if len(syns) == 0 {
		return []registryKey{{id: id}}
	}
	ks := make([]registryKey, len(syns))
	for i, s := range syns {
		ks[i] = registryKey{id: id, syntax: s.String()}
	}
	return ks
}

// Register registers m under its descriptor id, for the given syntaxes or for all of them when none is given.
func (r *MapRegistry) Register(m Macro, syns ...syntax.Syntax) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys(m.Descriptor().ID, syns) {
		r.macros[k] = m
		delete(r.factories, k)
	}
}

// RegisterFactory registers a factory invoked on the first lookup of id.
func (r *MapRegistry) RegisterFactory(id string, f Factory, syns ...syntax.Syntax) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys(id, syns) {
		r.factories[k] = f
		delete(r.macros, k)
	}
}

func (r *MapRegistry) Unregister(id string, syns ...syntax.Syntax) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys(id, syns) {
		delete(r.macros, k)
		delete(r.factories, k)
	}
}

func (r *MapRegistry) Macro(id string, syn syntax.Syntax) (Macro, error) {
	candidates := []registryKey{{id: id}}
	if !syn.Zero() {
		candidates = []registryKey{{id: id, syntax: syn.String()}, {id: id}}
	}

	r.mu.RLock()
	for _, k := range candidates {
		if m, ok := r.macros[k]; ok {
			r.mu.RUnlock()
			return m, nil
		}
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range candidates {
		if m, ok := r.macros[k]; ok {
			return m, nil
		}
		f, ok := r.factories[k]
		if !ok {
			continue
		}
		m, err := f()
		if err != nil {
			return nil, &LookupError{ID: id, Err: err}
		}
		r.macros[k] = m
		delete(r.factories, k)
		return m, nil
	}
	return nil, &NotFoundError{ID: id, Syntax: syn}
}

func (r *MapRegistry) IDs(syn syntax.Syntax) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := make(map[string]bool)
	add := func(k registryKey) {
		if k.syntax == "" || k.syntax == syn.String() {
			set[k.id] = true
		}
	}
	for k := range r.macros {
		add(k)
	}
	for k := range r.factories {
		add(k)
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
