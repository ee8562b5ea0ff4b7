// Package engine executes the macros of a block tree.
//
// The engine repeatedly selects the macro invocation with the lowest priority,
// executes it and replaces the invocation with a macro marker holding the result.
// Macro failures never abort the transformation: they are replaced by error blocks.
package engine

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/errorblock"
	"github.com/influxdata/xdom/keyvalue"
	"github.com/influxdata/xdom/macro"
	"github.com/influxdata/xdom/transform"
	"github.com/pkg/errors"
)

const (
	Name = "macro"
	// Priority of the macro transformation among the other transformations.
	Priority = 100
)

type Diagnostic interface {
	WithContext(ctx ...keyvalue.T) Diagnostic

	MacroNotFound(id string)
	MacroLookupFailed(id string, err error)
	MacroNotInline(id string)
	InvalidParameters(id string, err error)
	MacroFailed(id string, err error)
	MacroExecuted(id string, d time.Duration, blocks int)
	MaxRecursionsReached(id string, max int)
}

// ExecutionError is the failure of a macro execution.
type ExecutionError struct {
	Macro string
	// Panic is set when the macro panicked instead of returning an error.
	Panic bool
	Err   error
}

func (e *ExecutionError) Error() string {
	if e.Panic {
		return fmt.Sprintf("macro %q panicked: %v", e.Macro, e.Err)
	}
	return fmt.Sprintf("macro %q failed: %v", e.Macro, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
func (e *ExecutionError) Cause() error  { return e.Err }

type Option func(e *Engine)

// WithClock sets the clock timing macro executions.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithContentParser sets the parser given to macros for their content.
func WithContentParser(p macro.ContentParser) Option {
	return func(e *Engine) { e.parser = p }
}

// Engine is the macro transformation.
// It is safe to transform distinct trees concurrently.
type Engine struct {
	c        Config
	registry macro.Registry
	errors   errorblock.Generator
	parser   macro.ContentParser
	clock    clock.Clock
	metrics  *Metrics
	diag     Diagnostic
}

func New(c Config, registry macro.Registry, errs errorblock.Generator, d Diagnostic, opts ...Option) *Engine {
	e := &Engine{
		c:        c,
		registry: registry,
		errors:   errs,
		clock:    clock.New(),
		diag:     d,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Name() string  { return Name }
func (e *Engine) Priority() int { return Priority }

// candidate is a macro invocation and its resolved implementation.
type candidate struct {
	block *block.Macro
	macro macro.Macro
}

// lookupFailure is a macro invocation that could not be resolved.
type lookupFailure struct {
	block *block.Macro
	err   error
}

// Transform executes the macros under b until none is left or the recursion bound is reached.
// Only errors of the tree operations are returned.
func (e *Engine) Transform(b block.Block, ctx *transform.Context) error {
	diag := e.diag.WithContext(keyvalue.KV("transformation", ctx.ID))
	recursions := 0
	for {
		selected, failures := e.selectMacro(b, ctx)
		for _, f := range failures {
			if err := e.replaceLookupFailure(diag, f); err != nil {
				return err
			}
		}
		if selected == nil {
			return nil
		}

		mb := selected.block
		nested := mb.GetFirstBlock(block.TypeMatcher(&block.MacroMarker{}), block.Ancestor) != nil
		if nested && recursions+1 >= e.c.MaxRecursions {
			diag.MaxRecursionsReached(mb.ID, e.c.MaxRecursions)
			return nil
		}

		executed, err := e.process(diag, selected, ctx)
		if err != nil {
			return err
		}
		if executed && nested {
			recursions++
		}
	}
}

// selectMacro walks the tree once and returns the invocation with the lowest priority,
// the first one in document order on ties, along with the invocations that could not be resolved.
func (e *Engine) selectMacro(b block.Block, ctx *transform.Context) (*candidate, []lookupFailure) {
	var (
		selected *candidate
		failures []lookupFailure
	)
	resolved := make(map[string]macro.Macro)
	for _, found := range b.GetBlocks(block.TypeMatcher(&block.Macro{}), block.DescendantOrSelf) {
		mb := found.(*block.Macro)
		m, ok := resolved[mb.ID]
		if !ok {
			var err error
			m, err = e.registry.Macro(mb.ID, ctx.Syntax)
			if err != nil {
				failures = append(failures, lookupFailure{block: mb, err: err})
				continue
			}
			resolved[mb.ID] = m
		}
		if selected == nil || m.Priority() < selected.macro.Priority() {
			selected = &candidate{block: mb, macro: m}
		}
	}
	return selected, failures
}

func (e *Engine) replaceLookupFailure(diag Diagnostic, f lookupFailure) error {
	mb := f.block
	if errors.Is(f.err, macro.ErrMacroNotFound) {
		diag.MacroNotFound(mb.ID)
		e.metrics.outcome(mb.ID, OutcomeNotFound)
		return e.replace(mb, e.errors.Generate(mb.Inline, errorblock.UnknownMacro, mb.ID))
	}
	diag.MacroLookupFailed(mb.ID, f.err)
	e.metrics.outcome(mb.ID, OutcomeLookupFailed)
	return e.replace(mb, e.errors.GenerateFromError(mb.Inline, errorblock.InvalidMacro, f.err, mb.ID))
}

// process runs the selected invocation and reports whether the macro executed successfully.
func (e *Engine) process(diag Diagnostic, c *candidate, ctx *transform.Context) (bool, error) {
	mb := c.block
	d := c.macro.Descriptor()

	if mb.Inline && !d.SupportsInline {
		diag.MacroNotInline(mb.ID)
		e.metrics.outcome(mb.ID, OutcomeNotInline)
		return false, e.replace(mb, e.errors.Generate(true, errorblock.NotInlineMacro, mb.ID))
	}

	params, err := macro.Populate(d, mb.Parameters())
	if err != nil {
		diag.InvalidParameters(mb.ID, err)
		e.metrics.outcome(mb.ID, OutcomeInvalidParameters)
		return false, e.replace(mb, e.errors.GenerateFromError(mb.Inline, errorblock.InvalidParameters, err, mb.ID))
	}

	mctx := &macro.Context{
		Context:           ctx,
		CurrentMacroBlock: mb,
		Inline:            mb.Inline,
		Transformation:    e,
		Parser:            e.parser,
	}
	start := e.clock.Now()
	blocks, err := execute(c.macro, d.ID, params, mb.Content, mctx)
	elapsed := e.clock.Since(start)
	e.metrics.observe(mb.ID, elapsed.Seconds())
	if err != nil {
		diag.MacroFailed(mb.ID, err)
		e.metrics.outcome(mb.ID, OutcomeFailed)
		return false, e.replace(mb, e.errors.GenerateFromError(mb.Inline, errorblock.FailedMacro, err, mb.ID))
	}

	diag.MacroExecuted(mb.ID, elapsed, len(blocks))
	e.metrics.outcome(mb.ID, OutcomeExecuted)
	return true, e.replace(mb, blocks)
}

// execute calls the macro, converting a panic into an ExecutionError.
func execute(m macro.Macro, id string, params interface{}, content *string, ctx *macro.Context) (blocks []block.Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				rerr = errors.Errorf("%v", r)
			}
			blocks, err = nil, &ExecutionError{Macro: id, Panic: true, Err: errors.WithStack(rerr)}
		}
	}()
	blocks, err = m.Execute(params, content, ctx)
	if err != nil {
		return nil, &ExecutionError{Macro: id, Err: err}
	}
	return blocks, nil
}

// replace wraps blocks in a marker describing mb and puts it in place of mb.
func (e *Engine) replace(mb *block.Macro, blocks []block.Block) error {
	marker := block.NewMacroMarker(mb.ID, mb.Parameters(), mb.Content, mb.Inline, blocks)
	parent := mb.Parent()
	if parent == nil {
		return errors.Wrapf(block.ErrBlockNotFound, "macro %q has no parent to be replaced in", mb.ID)
	}
	return errors.Wrapf(parent.ReplaceChild([]block.Block{marker}, mb), "failed to replace macro %q", mb.ID)
}
