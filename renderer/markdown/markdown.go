// Package markdown renders block trees as Markdown.
//
// Unexecuted macros are written back with the macro tag syntax read by the Markdown parser,
// and document metadata is written as YAML front matter.
package markdown

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/listener/chaining"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
	"github.com/shurcooL/markdownfmt/markdown"
)

// lookaheadDepth is the number of events the printer may peek at.
const lookaheadDepth = 2

type Option func(r *Renderer)

// Normalize reformats the output with markdownfmt.
func Normalize(normalize bool) Option {
	return func(r *Renderer) { r.normalize = normalize }
}

type Renderer struct {
	normalize bool
}

func New(opts ...Option) *Renderer {
	r := new(Renderer)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (*Renderer) Syntax() syntax.Syntax { return syntax.Markdown12 }

func (r *Renderer) Render(b block.Block, w io.Writer) error {
	p := newPrinter()
	chain := chaining.NewChain(chaining.NewLookahead(lookaheadDepth), chaining.NewBlockState(), chaining.NewEmptyBlock(), p)
	p.lookahead = chaining.LookaheadOf(chain)
	p.state = chaining.BlockStateOf(chain)
	p.empty = chaining.EmptyBlockOf(chain)

	x, isDocument := b.(*block.XDOM)
	if isDocument {
		b.Traverse(chain.Listener())
	} else {
		// The lookahead releases its events at the end of a document.
		chain.Listener().BeginDocument(nil)
		b.Traverse(chain.Listener())
		chain.Listener().EndDocument(nil)
	}

	body := p.buf.Bytes()
	if len(body) > 0 {
		body = append(body, '\n')
	}
	if r.normalize && len(body) > 0 {
		formatted, err := markdown.Process("", body, nil)
		if err != nil {
			return errors.Wrap(err, "failed to format markdown")
		}
		body = formatted
	}

	var out bytes.Buffer
	if isDocument {
		if err := writeFrontMatter(&out, x.MetaData()); err != nil {
			return err
		}
	}
	out.Write(body)
	_, err := w.Write(out.Bytes())
	return errors.Wrap(err, "failed to write markdown")
}

// writeFrontMatter writes md as YAML, leaving out the syntax which is implied by the output.
func writeFrontMatter(w *bytes.Buffer, md *listener.MetaData) error {
	values := make(map[string]interface{})
	md.Range(func(key string, value interface{}) bool {
		if key != listener.MetaDataSyntax {
			values[key] = value
		}
		return true
	})
	if len(values) == 0 {
		return nil
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "failed to write front matter")
	}
	w.WriteString("---\n")
	w.Write(data)
	w.WriteString("---\n")
	return nil
}

// escaped are the symbols with a meaning in Markdown text.
const escaped = "\\`*_[]<>#|"

var formatMarkers = map[listener.Format]string{
	listener.FormatBold:       "**",
	listener.FormatItalic:     "*",
	listener.FormatStrikedout: "~~",
	listener.FormatMonospace:  "`",
}

// printer is the last member of the chain and writes the Markdown text.
type printer struct {
	chaining.Forwarder

	lookahead *chaining.LookaheadListener
	state     chaining.BlockState
	empty     *chaining.EmptyBlockListener

	buf       bytes.Buffer
	listTypes []listener.ListType
	formats   []string
	headRow   bool
	prefixed  bool
}

func newPrinter() *printer {
	p := new(printer)
	p.Handle(p.handle)
	return p
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

// separate starts a block: a blank line at the top level, a new line inside containers.
func (p *printer) separate(t listener.EventType) {
	if p.buf.Len() == 0 || p.prefixed {
		return
	}
	lists, quotations := p.state.ListDepth(), p.state.QuotationDepth()
	switch t {
	case listener.BeginList:
		lists--
	case listener.BeginQuotation:
		quotations--
	}
	if lists > 0 || quotations > 0 {
		p.newLine()
		if quotations > 0 {
			p.prefix(strings.Repeat("> ", quotations))
		}
		return
	}
	p.buf.WriteString("\n\n")
}

// nextIs reports whether the event following the current one has type t.
func (p *printer) nextIs(t listener.EventType) bool {
	e, ok := p.lookahead.NextEvent(1)
	return ok && e.Type == t
}

func (p *printer) handle(e listener.Event) {
	switch e.Type {
	case listener.BeginParagraph, listener.BeginDefinitionList, listener.BeginQuotation:
		p.separate(e.Type)
	case listener.BeginHeader:
		p.separate(e.Type)
		p.write(strings.Repeat("#", int(e.Args[0].(listener.HeaderLevel))) + " ")
	case listener.BeginList:
		p.separate(e.Type)
		p.listTypes = append(p.listTypes, e.Args[0].(listener.ListType))
	case listener.EndList:
		p.listTypes = p.listTypes[:len(p.listTypes)-1]
	case listener.BeginListItem:
		if p.state.ListItemIndex() > 0 {
			p.newLine()
		}
		marker := "- "
		if p.listTypes[len(p.listTypes)-1] == listener.ListNumbered {
			marker = strconv.Itoa(p.state.ListItemIndex()+1) + ". "
		}
		p.prefix(strings.Repeat("    ", p.state.ListDepth()-1) + marker)
	case listener.BeginQuotationLine:
		if p.state.QuotationLineIndex() > 0 {
			p.newLine()
		}
		p.prefix(strings.Repeat("> ", p.state.QuotationDepth()))
	case listener.BeginDefinitionTerm:
		if p.state.DefinitionListItemIndex() > 0 {
			p.newLine()
		}
	case listener.BeginDefinitionDescription:
		p.newLine()
		p.prefix(": ")
	case listener.BeginTable:
		p.separate(e.Type)
		p.headRow = false
	case listener.BeginTableRow:
		if p.state.TableRowIndex() > 0 {
			p.newLine()
		}
		p.write("|")
	case listener.BeginTableHeadCell:
		p.headRow = true
		p.write(" ")
	case listener.BeginTableCell:
		p.write(" ")
	case listener.EndTableCell, listener.EndTableHeadCell:
		p.write(" |")
	case listener.EndTableRow:
		if p.state.TableRowIndex() == 0 && p.headRow {
			p.write("\n|" + strings.Repeat(" --- |", p.state.TableCellIndex()+1))
		}
	case listener.BeginFormat:
		marker := formatMarkers[e.Args[0].(listener.Format)]
		if p.nextIs(listener.EndFormat) {
			marker = ""
		}
		p.formats = append(p.formats, marker)
		p.write(marker)
	case listener.EndFormat:
		n := len(p.formats)
		p.write(p.formats[n-1])
		p.formats = p.formats[:n-1]
	case listener.BeginLink:
		ref := e.Args[0].(listener.ResourceReference)
		if e.Args[1].(bool) {
			p.write("<" + ref.Reference + ">")
		} else {
			p.write("[")
		}
	case listener.EndLink:
		if !e.Args[1].(bool) {
			ref := e.Args[0].(listener.ResourceReference)
			if p.empty.IsCurrentContainerBlockEmpty() {
				p.write(ref.Reference)
			}
			p.write("](" + ref.Reference + title(e.Args[2]) + ")")
		}
	case listener.OnImage:
		ref := e.Args[0].(listener.ResourceReference)
		params, _ := e.Args[3].(*listener.Parameters)
		p.write("![" + params.Value("alt") + "](" + ref.Reference + title(params) + ")")
	case listener.OnWord:
		p.write(e.Args[0].(string))
	case listener.OnSpace:
		p.write(" ")
	case listener.OnSpecialSymbol:
		r := e.Args[0].(rune)
		if strings.ContainsRune(escaped, r) {
			p.write("\\")
		}
		p.write(string(r))
	case listener.OnNewLine:
		p.write("\n")
		if depth := p.state.QuotationDepth(); depth > 0 {
			p.prefix(strings.Repeat("> ", depth))
		}
	case listener.OnHorizontalLine:
		p.separate(e.Type)
		p.write("---")
	case listener.OnVerbatim:
		content, inline := e.Args[0].(string), e.Args[1].(bool)
		if inline {
			p.write("`" + content + "`")
			break
		}
		params, _ := e.Args[2].(*listener.Parameters)
		p.separate(e.Type)
		p.write("```" + params.Value("language") + "\n" + content + "\n```")
	case listener.OnRawText:
		switch e.Args[1].(syntax.Syntax).Type {
		case syntax.HTMLType, syntax.XHTMLType, syntax.MarkdownType:
			p.write(e.Args[0].(string))
		}
	case listener.OnMacro:
		id, params, content, inline := e.Args[0].(string), e.Args[1].(*listener.Parameters), e.Args[2].(*string), e.Args[3].(bool)
		if !inline {
			p.separate(e.Type)
		}
		p.write(macroTag(id, params, content, inline))
	}
	p.Forward(e)
}

func title(v interface{}) string {
	params, _ := v.(*listener.Parameters)
	if t := params.Value("title"); t != "" {
		return " " + strconv.Quote(t)
	}
	return ""
}

// macroTag writes a macro invocation in the syntax read by the Markdown parser.
func macroTag(id string, params *listener.Parameters, content *string, inline bool) string {
	var sb strings.Builder
	sb.WriteString("{{" + id)
	params.Range(func(k, v string) bool {
		sb.WriteString(" " + k + "=" + strconv.Quote(v))
		return true
	})
	if content == nil {
		sb.WriteString("/}}")
		return sb.String()
	}
	sb.WriteString("}}")
	if !inline {
		sb.WriteString("\n" + *content + "\n")
	} else {
		sb.WriteString(*content)
	}
	sb.WriteString("{{/" + id + "}}")
	return sb.String()
}
