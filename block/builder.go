package block

import (
	"fmt"

	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/syntax"
)

// Builder is a listener building a block tree from the events it receives.
type Builder struct {
	listener.Func

	stack []Block
	xdom  *XDOM
}

func NewBuilder() *Builder {
	b := new(Builder)
	b.Func = b.handle
	return b
}

// XDOM returns the outermost document, nil if no event was received yet.
func (b *Builder) XDOM() *XDOM {
	if b.xdom == nil && len(b.stack) > 0 {
		x, _ := b.stack[0].(*XDOM)
		return x
	}
	return b.xdom
}

// Build traverses src with a new Builder and returns the resulting document.
func Build(src Block) *XDOM {
	b := NewBuilder()
	src.Traverse(b)
	return b.XDOM()
}

func (b *Builder) push(c Block) {
	if len(b.stack) > 0 {
		b.stack[len(b.stack)-1].AddChild(c)
	} else if _, ok := c.(*XDOM); !ok {
		b.push(NewXDOM(nil, nil))
		b.stack[0].AddChild(c)
	}
	b.stack = append(b.stack, c)
}

func (b *Builder) pop() Block {
	if len(b.stack) == 0 {
		panic("block: unbalanced end event")
	}
	c := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return c
}

func (b *Builder) add(c Block) {
	if len(b.stack) == 0 {
		// Content outside of a document gets an implicit root.
		b.push(NewXDOM(nil, nil))
	}
	b.stack[len(b.stack)-1].AddChild(c)
}

func params(e listener.Event, i int) *listener.Parameters {
	p, _ := e.Args[i].(*listener.Parameters)
	return p
}

func metaData(e listener.Event, i int) *listener.MetaData {
	md, _ := e.Args[i].(*listener.MetaData)
	if md == nil {
		return nil
	}
	return md.Copy()
}

func content(e listener.Event, i int) *string {
	c, _ := e.Args[i].(*string)
	return copyContent(c)
}

func (b *Builder) handle(e listener.Event) {
	if e.Type.IsEnd() {
		c := b.pop()
		if x, ok := c.(*XDOM); ok && len(b.stack) == 0 {
			b.xdom = x
		}
		return
	}
	switch e.Type {
	case listener.BeginDocument:
		b.push(NewXDOM(nil, metaData(e, 0)))
	case listener.BeginGroup:
		b.push(NewGroup(nil, params(e, 0)))
	case listener.BeginFormat:
		b.push(NewFormat(e.Args[0].(listener.Format), nil, params(e, 1)))
	case listener.BeginParagraph:
		b.push(NewParagraph(nil, params(e, 0)))
	case listener.BeginList:
		b.push(NewList(e.Args[0].(listener.ListType), nil, params(e, 1)))
	case listener.BeginListItem:
		b.push(NewListItem(nil, params(e, 0)))
	case listener.BeginDefinitionList:
		b.push(NewDefinitionList(nil, params(e, 0)))
	case listener.BeginDefinitionTerm:
		b.push(NewDefinitionTerm(nil))
	case listener.BeginDefinitionDescription:
		b.push(NewDefinitionDescription(nil))
	case listener.BeginQuotation:
		b.push(NewQuotation(nil, params(e, 0)))
	case listener.BeginQuotationLine:
		b.push(NewQuotationLine(nil))
	case listener.BeginTable:
		b.push(NewTable(nil, params(e, 0)))
	case listener.BeginTableRow:
		b.push(NewTableRow(nil, params(e, 0)))
	case listener.BeginTableCell:
		b.push(NewTableCell(nil, params(e, 0)))
	case listener.BeginTableHeadCell:
		b.push(NewTableHeadCell(nil, params(e, 0)))
	case listener.BeginHeader:
		b.push(NewHeader(e.Args[0].(listener.HeaderLevel), e.Args[1].(string), nil, params(e, 2)))
	case listener.BeginLink:
		ref := e.Args[0].(listener.ResourceReference)
		b.push(NewLink(ref.Copy(), e.Args[1].(bool), nil, params(e, 2)))
	case listener.BeginFigure:
		b.push(NewFigure(nil, params(e, 0)))
	case listener.BeginFigureCaption:
		b.push(NewFigureCaption(nil, params(e, 0)))
	case listener.BeginMetaData:
		b.push(NewMetaData(metaData(e, 0), nil))
	case listener.BeginMacroMarker:
		b.push(NewMacroMarker(e.Args[0].(string), params(e, 1), content(e, 2), e.Args[3].(bool), nil))
	case listener.OnWord:
		b.add(NewWord(e.Args[0].(string)))
	case listener.OnSpace:
		b.add(NewSpace())
	case listener.OnSpecialSymbol:
		b.add(NewSpecialSymbol(e.Args[0].(rune)))
	case listener.OnNewLine:
		b.add(NewNewLine())
	case listener.OnEmptyLines:
		b.add(NewEmptyLines(e.Args[0].(int)))
	case listener.OnImage:
		ref := e.Args[0].(listener.ResourceReference)
		b.add(NewImage(ref.Copy(), e.Args[1].(bool), e.Args[2].(string), params(e, 3)))
	case listener.OnMacro:
		b.add(NewMacro(e.Args[0].(string), params(e, 1), content(e, 2), e.Args[3].(bool)))
	case listener.OnRawText:
		b.add(NewRaw(e.Args[0].(string), e.Args[1].(syntax.Syntax)))
	case listener.OnHorizontalLine:
		b.add(NewHorizontalLine(params(e, 0)))
	case listener.OnID:
		b.add(NewID(e.Args[0].(string)))
	case listener.OnVerbatim:
		b.add(NewVerbatim(e.Args[0].(string), e.Args[1].(bool), params(e, 2)))
	default:
		panic(fmt.Sprintf("block: unexpected event %v", e.Type))
	}
}
