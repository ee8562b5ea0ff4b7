// Package errorblock generates the blocks displayed in place of content that failed to render.
package errorblock

import (
	"fmt"
	"sync"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
)

// Class values marking error blocks, set on the "class" parameter.
const (
	ClassParameter   = "class"
	ErrorClass       = "rendering-error"
	DescriptionClass = "rendering-error-description"
)

// Message keys of the default catalog. They take the macro id as first argument.
const (
	UnknownMacro      = "macro.unknown"
	InvalidMacro      = "macro.invalid"
	NotInlineMacro    = "macro.notinline"
	InvalidParameters = "macro.parameters"
	FailedMacro       = "macro.failed"
)

// Generator creates error blocks.
type Generator interface {
	// Generate creates error blocks for the message registered under key, formatted with args.
	Generate(inline bool, key string, args ...interface{}) []block.Block
	// GenerateFromError is like Generate and describes err in the details of the message.
	GenerateFromError(inline bool, key string, err error, args ...interface{}) []block.Block
}

// Message is a fmt format for the summary and the optional description of an error.
type Message struct {
	Summary     string
	Description string
}

// CatalogGenerator generates error blocks from a message catalog.
type CatalogGenerator struct {
	mu       sync.RWMutex
	messages map[string]Message
}

func New() *CatalogGenerator {
	return &CatalogGenerator{
		messages: map[string]Message{
			UnknownMacro: {
				Summary:     "Unknown macro: %s.",
				Description: "The %q macro is not in the list of registered macros. Verify the spelling or contact your administrator.",
			},
			InvalidMacro: {
				Summary: "Invalid macro: %s.",
			},
			NotInlineMacro: {
				Summary:     "The [%s] macro is a standalone macro and it cannot be used inline.",
				Description: "This macro generates standalone content. Write it on a line of its own, separated from the content before and after it.",
			},
			InvalidParameters: {
				Summary: "Invalid macro parameters used for the [%s] macro.",
			},
			FailedMacro: {
				Summary: "Failed to execute the [%s] macro.",
			},
		},
	}
}

// Register adds or replaces the message of key.
func (g *CatalogGenerator) Register(key string, m Message) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.messages[key] = m
}

func (g *CatalogGenerator) format(key string, args []interface{}) (summary, description string) {
	g.mu.RLock()
	m, ok := g.messages[key]
	g.mu.RUnlock()
	if !ok {
		return fmt.Sprint(append([]interface{}{key, " "}, args...)...), ""
	}
	summary = fmt.Sprintf(m.Summary, args...)
	if m.Description != "" {
		description = fmt.Sprintf(m.Description, args...)
	}
	return summary, description
}

func (g *CatalogGenerator) Generate(inline bool, key string, args ...interface{}) []block.Block {
	summary, description := g.format(key, args)
	return Blocks(inline, summary, description)
}

func (g *CatalogGenerator) GenerateFromError(inline bool, key string, err error, args ...interface{}) []block.Block {
	summary, _ := g.format(key, args)
	return Blocks(inline, summary, fmt.Sprintf("Cause: %v\n%+v", err, err))
}

// Blocks builds the error blocks for a summary and an optional description.
// Inline errors are formats, standalone errors are groups.
func Blocks(inline bool, summary, description string) []block.Block {
	errorParams := listener.NewParameters(ClassParameter, ErrorClass)
	descriptionParams := listener.NewParameters(ClassParameter, DescriptionClass)
	if inline {
		blocks := []block.Block{block.NewFormat(listener.FormatNone, block.Text(summary), errorParams)}
		if description != "" {
			blocks = append(blocks, block.NewFormat(listener.FormatNone,
				[]block.Block{block.NewVerbatim(description, true, nil)}, descriptionParams))
		}
		return blocks
	}
	blocks := []block.Block{block.NewGroup([]block.Block{block.NewParagraph(block.Text(summary), nil)}, errorParams)}
	if description != "" {
		blocks = append(blocks, block.NewGroup(
			[]block.Block{block.NewVerbatim(description, false, nil)}, descriptionParams))
	}
	return blocks
}

// HasError reports whether b or one of its descendants is an error block.
func HasError(b block.Block) bool {
	return b.GetFirstBlock(block.ParameterMatcher(ClassParameter, ErrorClass), block.DescendantOrSelf) != nil
}

// Errors returns the error blocks under b, in document order.
func Errors(b block.Block) []block.Block {
	return b.GetBlocks(block.ParameterMatcher(ClassParameter, ErrorClass), block.DescendantOrSelf)
}
