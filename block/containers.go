package block

import (
	"github.com/influxdata/xdom/listener"
)

type Paragraph struct{ Base }

func NewParagraph(children []Block, params *listener.Parameters) *Paragraph {
	b := new(Paragraph)
	b.Init(b, children, params)
	return b
}

func (b *Paragraph) Before(l listener.Listener) { l.BeginParagraph(b.params) }
func (b *Paragraph) After(l listener.Listener)  { l.EndParagraph(b.params) }

// Group is a generic container, used to scope parameters and styles.
type Group struct{ Base }

func NewGroup(children []Block, params *listener.Parameters) *Group {
	b := new(Group)
	b.Init(b, children, params)
	return b
}

func (b *Group) Before(l listener.Listener) { l.BeginGroup(b.params) }
func (b *Group) After(l listener.Listener)  { l.EndGroup(b.params) }

type Format struct {
	Base
	Format listener.Format
}

func NewFormat(format listener.Format, children []Block, params *listener.Parameters) *Format {
	b := &Format{Format: format}
	b.Init(b, children, params)
	return b
}

func (b *Format) Before(l listener.Listener) { l.BeginFormat(b.Format, b.params) }
func (b *Format) After(l listener.Listener)  { l.EndFormat(b.Format, b.params) }

type Header struct {
	Base
	Level listener.HeaderLevel
	// ID is the anchor of the header, possibly empty.
	ID string
}

func NewHeader(level listener.HeaderLevel, id string, children []Block, params *listener.Parameters) *Header {
	b := &Header{Level: level, ID: id}
	b.Init(b, children, params)
	return b
}

func (b *Header) Before(l listener.Listener) { l.BeginHeader(b.Level, b.ID, b.params) }
func (b *Header) After(l listener.Listener)  { l.EndHeader(b.Level, b.ID, b.params) }

type List struct {
	Base
	Type listener.ListType
}

// NewList creates a list; children should be list items.
func NewList(typ listener.ListType, children []Block, params *listener.Parameters) *List {
	b := &List{Type: typ}
	b.Init(b, children, params)
	return b
}

func (b *List) Before(l listener.Listener) { l.BeginList(b.Type, b.params) }
func (b *List) After(l listener.Listener)  { l.EndList(b.Type, b.params) }

type ListItem struct{ Base }

func NewListItem(children []Block, params *listener.Parameters) *ListItem {
	b := new(ListItem)
	b.Init(b, children, params)
	return b
}

func (b *ListItem) Before(l listener.Listener) { l.BeginListItem(b.params) }
func (b *ListItem) After(l listener.Listener)  { l.EndListItem(b.params) }

type DefinitionList struct{ Base }

func NewDefinitionList(children []Block, params *listener.Parameters) *DefinitionList {
	b := new(DefinitionList)
	b.Init(b, children, params)
	return b
}

func (b *DefinitionList) Before(l listener.Listener) { l.BeginDefinitionList(b.params) }
func (b *DefinitionList) After(l listener.Listener)  { l.EndDefinitionList(b.params) }

type DefinitionTerm struct{ Base }

func NewDefinitionTerm(children []Block) *DefinitionTerm {
	b := new(DefinitionTerm)
	b.Init(b, children, nil)
	return b
}

func (b *DefinitionTerm) Before(l listener.Listener) { l.BeginDefinitionTerm() }
func (b *DefinitionTerm) After(l listener.Listener)  { l.EndDefinitionTerm() }

type DefinitionDescription struct{ Base }

func NewDefinitionDescription(children []Block) *DefinitionDescription {
	b := new(DefinitionDescription)
	b.Init(b, children, nil)
	return b
}

func (b *DefinitionDescription) Before(l listener.Listener) { l.BeginDefinitionDescription() }
func (b *DefinitionDescription) After(l listener.Listener)  { l.EndDefinitionDescription() }

type Quotation struct{ Base }

func NewQuotation(children []Block, params *listener.Parameters) *Quotation {
	b := new(Quotation)
	b.Init(b, children, params)
	return b
}

func (b *Quotation) Before(l listener.Listener) { l.BeginQuotation(b.params) }
func (b *Quotation) After(l listener.Listener)  { l.EndQuotation(b.params) }

type QuotationLine struct{ Base }

func NewQuotationLine(children []Block) *QuotationLine {
	b := new(QuotationLine)
	b.Init(b, children, nil)
	return b
}

func (b *QuotationLine) Before(l listener.Listener) { l.BeginQuotationLine() }
func (b *QuotationLine) After(l listener.Listener)  { l.EndQuotationLine() }

type Table struct{ Base }

func NewTable(children []Block, params *listener.Parameters) *Table {
	b := new(Table)
	b.Init(b, children, params)
	return b
}

func (b *Table) Before(l listener.Listener) { l.BeginTable(b.params) }
func (b *Table) After(l listener.Listener)  { l.EndTable(b.params) }

type TableRow struct{ Base }

func NewTableRow(children []Block, params *listener.Parameters) *TableRow {
	b := new(TableRow)
	b.Init(b, children, params)
	return b
}

func (b *TableRow) Before(l listener.Listener) { l.BeginTableRow(b.params) }
func (b *TableRow) After(l listener.Listener)  { l.EndTableRow(b.params) }

type TableCell struct{ Base }

func NewTableCell(children []Block, params *listener.Parameters) *TableCell {
	b := new(TableCell)
	b.Init(b, children, params)
	return b
}

func (b *TableCell) Before(l listener.Listener) { l.BeginTableCell(b.params) }
func (b *TableCell) After(l listener.Listener)  { l.EndTableCell(b.params) }

type TableHeadCell struct{ Base }

func NewTableHeadCell(children []Block, params *listener.Parameters) *TableHeadCell {
	b := new(TableHeadCell)
	b.Init(b, children, params)
	return b
}

func (b *TableHeadCell) Before(l listener.Listener) { l.BeginTableHeadCell(b.params) }
func (b *TableHeadCell) After(l listener.Listener)  { l.EndTableHeadCell(b.params) }

type Link struct {
	Base
	Reference    listener.ResourceReference
	FreeStanding bool
}

// NewLink creates a link; the children are its label.
func NewLink(ref listener.ResourceReference, freeStanding bool, children []Block, params *listener.Parameters) *Link {
	b := &Link{Reference: ref, FreeStanding: freeStanding}
	b.Init(b, children, params)
	return b
}

func (b *Link) Before(l listener.Listener) { l.BeginLink(b.Reference, b.FreeStanding, b.params) }
func (b *Link) After(l listener.Listener)  { l.EndLink(b.Reference, b.FreeStanding, b.params) }

func (b *Link) copyFields() { b.Reference = b.Reference.Copy() }

type Figure struct{ Base }

func NewFigure(children []Block, params *listener.Parameters) *Figure {
	b := new(Figure)
	b.Init(b, children, params)
	return b
}

func (b *Figure) Before(l listener.Listener) { l.BeginFigure(b.params) }
func (b *Figure) After(l listener.Listener)  { l.EndFigure(b.params) }

type FigureCaption struct{ Base }

func NewFigureCaption(children []Block, params *listener.Parameters) *FigureCaption {
	b := new(FigureCaption)
	b.Init(b, children, params)
	return b
}

func (b *FigureCaption) Before(l listener.Listener) { l.BeginFigureCaption(b.params) }
func (b *FigureCaption) After(l listener.Listener)  { l.EndFigureCaption(b.params) }

// MetaData scopes metadata over its children.
type MetaData struct {
	Base
	MetaData *listener.MetaData
}

func NewMetaData(md *listener.MetaData, children []Block) *MetaData {
	if md == nil {
		md = listener.NewMetaData()
	}
	b := &MetaData{MetaData: md}
	b.Init(b, children, nil)
	return b
}

func (b *MetaData) Before(l listener.Listener) { l.BeginMetaData(b.MetaData) }
func (b *MetaData) After(l listener.Listener)  { l.EndMetaData(b.MetaData) }

func (b *MetaData) copyFields() { b.MetaData = b.MetaData.Copy() }

// MacroMarker holds the output of an executed macro.
// ID, parameters, Content and Inline describe the original invocation.
type MacroMarker struct {
	Base
	ID      string
	Content *string
	Inline  bool
}

func NewMacroMarker(id string, params *listener.Parameters, content *string, inline bool, children []Block) *MacroMarker {
	b := &MacroMarker{ID: id, Content: content, Inline: inline}
	b.Init(b, children, params)
	return b
}

func (b *MacroMarker) Before(l listener.Listener) {
	l.BeginMacroMarker(b.ID, b.params, b.Content, b.Inline)
}

func (b *MacroMarker) After(l listener.Listener) {
	l.EndMacroMarker(b.ID, b.params, b.Content, b.Inline)
}

func (b *MacroMarker) copyFields() { b.Content = copyContent(b.Content) }

func copyContent(c *string) *string {
	if c == nil {
		return nil
	}
	s := *c
	return &s
}
