// Package macro defines macros, their descriptors and the registry they are looked up from.
package macro

import (
	"sync"

	"github.com/influxdata/xdom/block"
)

// DefaultPriority is the priority of macros without specific ordering needs.
const DefaultPriority = 1000

// Macro expands a macro invocation into blocks.
type Macro interface {
	Descriptor() *Descriptor
	// Priority orders the execution of macros in a document, lower values run first.
	Priority() int
	// Execute runs the macro.
	// params is the value returned by Descriptor().NewParameters, populated from the invocation.
	Execute(params interface{}, content *string, ctx *Context) ([]block.Block, error)
}

// Descriptor describes a macro.
type Descriptor struct {
	ID          string
	Name        string
	Description string
	// SupportsInline reports whether the macro can be used inside a paragraph.
	SupportsInline bool
	Content        *ContentDescriptor
	// NewParameters returns a pointer to a new parameters struct.
	// Nil means the macro accepts no parameters.
	NewParameters func() interface{}

	once       sync.Once
	parameters []ParameterDescriptor
}

// ContentDescriptor describes the content of a macro, nil when the macro takes no content.
type ContentDescriptor struct {
	Description string
	Mandatory   bool
}

// Parameters describes the parameters declared by the NewParameters struct.
func (d *Descriptor) Parameters() []ParameterDescriptor {
	d.once.Do(func() {
		if d.NewParameters != nil {
			d.parameters = describeParameters(d.NewParameters())
		}
	})
	return d.parameters
}
