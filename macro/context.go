package macro

import (
	"strings"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/parser"
	"github.com/influxdata/xdom/transform"
	"github.com/pkg/errors"
)

// Context is passed to executing macros.
type Context struct {
	*transform.Context

	// CurrentMacroBlock is the invocation being executed.
	CurrentMacroBlock *block.Macro
	// Inline reports whether the invocation is inside a paragraph.
	Inline bool
	// Transformation is the transformation executing the macro, used to transform parsed content.
	Transformation transform.Transformation
	// Parser parses macro content, nil when the macro runs without a content parser.
	Parser ContentParser
}

// ContentParser parses the content of macros that contain markup.
type ContentParser interface {
	// Parse parses content in the syntax of the current document.
	// When transform is set, the macros in content are executed too.
	// When inline is set, content made of a single paragraph is returned as the paragraph children.
	Parse(content string, ctx *Context, transform, inline bool) ([]block.Block, error)
}

// SyntaxContentParser parses content with the parser registered for the document syntax.
type SyntaxContentParser struct {
	parsers *parser.Registry
}

func NewContentParser(parsers *parser.Registry) *SyntaxContentParser {
	return &SyntaxContentParser{parsers: parsers}
}

func (p *SyntaxContentParser) Parse(content string, ctx *Context, doTransform, inline bool) ([]block.Block, error) {
	prs, err := p.parsers.Parser(ctx.Syntax)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find a parser for the macro content")
	}
	x, err := prs.Parse(strings.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse the macro content")
	}
	if doTransform && ctx.Transformation != nil {
		tctx := ctx.Context.Copy()
		tctx.XDOM = x
		if err := ctx.Transformation.Transform(x, tctx); err != nil {
			return nil, errors.Wrap(err, "failed to transform the macro content")
		}
	}
	blocks := append([]block.Block(nil), x.Children()...)
	if inline {
		blocks = ToInline(blocks)
	}
	return blocks, nil
}

// ToInline unwraps the children of a single paragraph so they can be inserted inside another paragraph.
func ToInline(blocks []block.Block) []block.Block {
	if len(blocks) == 1 {
		if p, ok := blocks[0].(*block.Paragraph); ok {
			return append([]block.Block(nil), p.Children()...)
		}
	}
	return blocks
}
