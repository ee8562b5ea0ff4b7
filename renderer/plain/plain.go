// Package plain renders block trees as plain text.
package plain

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/listener/chaining"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
)

type Renderer struct{}

func New() *Renderer {
	return new(Renderer)
}

func (*Renderer) Syntax() syntax.Syntax { return syntax.Plain10 }

func (*Renderer) Render(b block.Block, w io.Writer) error {
	p := newPrinter()
	chain := chaining.NewChain(chaining.NewBlockState(), chaining.NewEmptyBlock(), p)
	p.state = chaining.BlockStateOf(chain)
	p.empty = chaining.EmptyBlockOf(chain)

	b.Traverse(chain.Listener())
	if p.buf.Len() > 0 {
		p.buf.WriteByte('\n')
	}
	_, err := w.Write(p.buf.Bytes())
	return errors.Wrap(err, "failed to write plain text")
}

// printer is the last member of the chain and writes the text.
type printer struct {
	chaining.Forwarder

	state chaining.BlockState
	empty *chaining.EmptyBlockListener

	buf       bytes.Buffer
	listTypes []listener.ListType
	// prefixed is set when only a line prefix was written since the last block started.
	prefixed bool
}

func newPrinter() *printer {
	p := new(printer)
	p.Handle(p.handle)
	return p
}

// separate starts a new block: top level blocks are separated by a blank line,
// nested blocks start on a new line.
func (p *printer) separate(nested bool) {
	if p.buf.Len() == 0 || p.prefixed {
		return
	}
	if nested {
		p.newLine()
		return
	}
	p.buf.WriteString("\n\n")
}

func (p *printer) write(s string) {
	p.buf.WriteString(s)
	p.prefixed = false
}

func (p *printer) prefix(s string) {
	p.buf.WriteString(s)
	p.prefixed = true
}

func (p *printer) newLine() {
	if b := p.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		p.buf.WriteByte('\n')
	}
}

// nested reports whether the block being opened is inside a list, a quotation or a table.
// The begin event of a container already counts itself.
func (p *printer) nested(t listener.EventType) bool {
	lists, quotations, definitions := p.state.ListDepth(), p.state.QuotationDepth(), p.state.DefinitionListDepth()
	inTable := p.state.IsInTable()
	switch t {
	case listener.BeginList:
		lists--
	case listener.BeginQuotation:
		quotations--
	case listener.BeginDefinitionList:
		definitions--
	case listener.BeginTable:
		inTable = false
	}
	return lists > 0 || quotations > 0 || definitions > 0 || inTable
}

func (p *printer) handle(e listener.Event) {
	switch e.Type {
	case listener.BeginParagraph, listener.BeginHeader, listener.BeginTable, listener.BeginDefinitionList:
		p.separate(p.nested(e.Type))
	case listener.BeginList:
		p.separate(p.nested(e.Type))
		p.listTypes = append(p.listTypes, e.Args[0].(listener.ListType))
	case listener.EndList:
		p.listTypes = p.listTypes[:len(p.listTypes)-1]
	case listener.BeginQuotation:
		p.separate(p.nested(e.Type))
	case listener.BeginListItem:
		if p.state.ListItemIndex() > 0 {
			p.newLine()
		}
		marker := "- "
		if p.listTypes[len(p.listTypes)-1] == listener.ListNumbered {
			marker = strconv.Itoa(p.state.ListItemIndex()+1) + ". "
		}
		p.prefix(strings.Repeat("  ", p.state.ListDepth()-1) + marker)
	case listener.BeginQuotationLine:
		if p.state.QuotationLineIndex() > 0 {
			p.newLine()
		}
		p.prefix(strings.Repeat("> ", p.state.QuotationDepth()))
	case listener.BeginTableRow:
		if p.state.TableRowIndex() > 0 {
			p.newLine()
		}
	case listener.BeginTableCell, listener.BeginTableHeadCell:
		if p.state.TableCellIndex() > 0 {
			p.prefix("\t")
		}
	case listener.BeginDefinitionTerm:
		if p.state.DefinitionListItemIndex() > 0 {
			p.newLine()
		}
	case listener.BeginDefinitionDescription:
		p.newLine()
		p.prefix("  ")
	case listener.EndLink:
		if e.Args[1].(bool) || p.empty.IsCurrentContainerBlockEmpty() {
			p.write(e.Args[0].(listener.ResourceReference).Reference)
		}
	case listener.OnWord:
		p.write(e.Args[0].(string))
	case listener.OnSpace:
		p.write(" ")
	case listener.OnSpecialSymbol:
		p.write(string(e.Args[0].(rune)))
	case listener.OnNewLine:
		p.write("\n")
	case listener.OnEmptyLines:
		p.write(strings.Repeat("\n", e.Args[0].(int)))
	case listener.OnHorizontalLine:
		p.separate(p.nested(e.Type))
		p.write("----")
	case listener.OnVerbatim:
		if !e.Args[1].(bool) {
			p.separate(p.nested(e.Type))
		}
		p.write(e.Args[0].(string))
	case listener.OnRawText:
		if e.Args[1].(syntax.Syntax) == syntax.Plain10 {
			p.write(e.Args[0].(string))
		}
	case listener.OnImage:
		if params, _ := e.Args[3].(*listener.Parameters); params.Value("alt") != "" {
			p.write(params.Value("alt"))
		}
	}
	p.Forward(e)
}
