package chaining

import (
	"github.com/influxdata/xdom/listener"
)

// None is returned when there is no parent or previous event.
const None listener.EventType = -1

// BlockState exposes the position of the current event in the document structure.
type BlockState interface {
	ChainingListener

	// ParentEvent returns the innermost open begin event.
	// While a begin event is being handled, it is the parent of that event.
	ParentEvent() listener.EventType
	// PreviousEvent returns the last ended or singleton event.
	PreviousEvent() listener.EventType
	IsInMacro() bool
	MacroDepth() int

	ListDepth() int
	// ListItemIndex returns the 0-based index of the current item of the innermost list, -1 outside lists.
	ListItemIndex() int
	DefinitionListDepth() int
	DefinitionListItemIndex() int
	QuotationDepth() int
	QuotationLineIndex() int
	TableRowIndex() int
	TableCellIndex() int
	IsInParagraph() bool
	IsInHeader() bool
	IsInLink() bool
	IsInTable() bool
	IsInTableCell() bool
	// InlineDepth counts the open formats and links.
	InlineDepth() int
}

// BlockStateListener tracks open containers, macro nesting and positions inside lists, quotations and tables.
type BlockStateListener struct {
	Forwarder

	stack    []listener.EventType
	previous listener.EventType

	macroDepth int

	listItemIndex           []int
	definitionListItemIndex []int
	quotationLineIndex      []int
	tableRowIndex           []int
	tableCellIndex          []int

	paragraphDepth int
	headerDepth    int
	linkDepth      int
	tableCellDepth int
	inlineDepth    int
}

func NewBlockState() *BlockStateListener {
	s := &BlockStateListener{previous: None}
	s.Handle(s.handle)
	return s
}

func (s *BlockStateListener) handle(e listener.Event) {
	switch {
	case e.Type.IsBegin():
		s.begin(e.Type)
		s.Forward(e)
		s.stack = append(s.stack, e.Type)
	case e.Type.IsEnd():
		s.Forward(e)
		if n := len(s.stack); n > 0 {
			s.previous = s.stack[n-1]
			s.stack = s.stack[:n-1]
		}
		s.end(e.Type)
	default:
		s.Forward(e)
		s.previous = e.Type
	}
}

func incTop(stack []int) {
	if n := len(stack); n > 0 {
		stack[n-1]++
	}
}

func top(stack []int) int {
	if n := len(stack); n > 0 {
		return stack[n-1]
	}
	return -1
}

func pop(stack []int) []int {
	if n := len(stack); n > 0 {
		return stack[:n-1]
	}
	return stack
}

// begin updates the state visible while the begin event is handled.
func (s *BlockStateListener) begin(t listener.EventType) {
	switch t {
	case listener.BeginMacroMarker:
		s.macroDepth++
	case listener.BeginList:
		s.listItemIndex = append(s.listItemIndex, -1)
	case listener.BeginListItem:
		incTop(s.listItemIndex)
	case listener.BeginDefinitionList:
		s.definitionListItemIndex = append(s.definitionListItemIndex, -1)
	case listener.BeginDefinitionTerm, listener.BeginDefinitionDescription:
		incTop(s.definitionListItemIndex)
	case listener.BeginQuotation:
		s.quotationLineIndex = append(s.quotationLineIndex, -1)
	case listener.BeginQuotationLine:
		incTop(s.quotationLineIndex)
	case listener.BeginTable:
		s.tableRowIndex = append(s.tableRowIndex, -1)
		s.tableCellIndex = append(s.tableCellIndex, -1)
	case listener.BeginTableRow:
		incTop(s.tableRowIndex)
		if n := len(s.tableCellIndex); n > 0 {
			s.tableCellIndex[n-1] = -1
		}
	case listener.BeginTableCell, listener.BeginTableHeadCell:
		incTop(s.tableCellIndex)
		s.tableCellDepth++
	case listener.BeginParagraph:
		s.paragraphDepth++
	case listener.BeginHeader:
		s.headerDepth++
	case listener.BeginLink:
		s.linkDepth++
		s.inlineDepth++
	case listener.BeginFormat:
		s.inlineDepth++
	}
}

// end updates the state once the end event was handled.
func (s *BlockStateListener) end(t listener.EventType) {
	switch t {
	case listener.EndMacroMarker:
		s.macroDepth--
	case listener.EndList:
		s.listItemIndex = pop(s.listItemIndex)
	case listener.EndDefinitionList:
		s.definitionListItemIndex = pop(s.definitionListItemIndex)
	case listener.EndQuotation:
		s.quotationLineIndex = pop(s.quotationLineIndex)
	case listener.EndTable:
		s.tableRowIndex = pop(s.tableRowIndex)
		s.tableCellIndex = pop(s.tableCellIndex)
	case listener.EndTableCell, listener.EndTableHeadCell:
		s.tableCellDepth--
	case listener.EndParagraph:
		s.paragraphDepth--
	case listener.EndHeader:
		s.headerDepth--
	case listener.EndLink:
		s.linkDepth--
		s.inlineDepth--
	case listener.EndFormat:
		s.inlineDepth--
	}
}

func (s *BlockStateListener) ParentEvent() listener.EventType {
	if n := len(s.stack); n > 0 {
		return s.stack[n-1]
	}
	return None
}

func (s *BlockStateListener) PreviousEvent() listener.EventType {
	return s.previous
}

func (s *BlockStateListener) IsInMacro() bool {
	return s.macroDepth > 0
}

func (s *BlockStateListener) MacroDepth() int {
	return s.macroDepth
}

func (s *BlockStateListener) ListDepth() int               { return len(s.listItemIndex) }
func (s *BlockStateListener) ListItemIndex() int           { return top(s.listItemIndex) }
func (s *BlockStateListener) DefinitionListDepth() int     { return len(s.definitionListItemIndex) }
func (s *BlockStateListener) DefinitionListItemIndex() int { return top(s.definitionListItemIndex) }
func (s *BlockStateListener) QuotationDepth() int          { return len(s.quotationLineIndex) }
func (s *BlockStateListener) QuotationLineIndex() int      { return top(s.quotationLineIndex) }
func (s *BlockStateListener) TableRowIndex() int           { return top(s.tableRowIndex) }
func (s *BlockStateListener) TableCellIndex() int          { return top(s.tableCellIndex) }
func (s *BlockStateListener) IsInParagraph() bool          { return s.paragraphDepth > 0 }
func (s *BlockStateListener) IsInHeader() bool             { return s.headerDepth > 0 }
func (s *BlockStateListener) IsInLink() bool               { return s.linkDepth > 0 }
func (s *BlockStateListener) IsInTable() bool              { return len(s.tableRowIndex) > 0 }
func (s *BlockStateListener) IsInTableCell() bool          { return s.tableCellDepth > 0 }
func (s *BlockStateListener) InlineDepth() int             { return s.inlineDepth }

// NestedBlockStateListener reports one extra level of macro nesting.
// It is used by listeners producing output that ends up inside a macro of an outer document.
type NestedBlockStateListener struct {
	*BlockStateListener
}

func NewNestedBlockState() *NestedBlockStateListener {
	return &NestedBlockStateListener{BlockStateListener: NewBlockState()}
}

func (s *NestedBlockStateListener) IsInMacro() bool {
	return true
}

func (s *NestedBlockStateListener) MacroDepth() int {
	return s.BlockStateListener.MacroDepth() + 1
}

// BlockStateOf returns the first BlockState member of c, or nil.
func BlockStateOf(c *Chain) BlockState {
	l := c.Find(func(l ChainingListener) bool {
		_, ok := l.(BlockState)
		return ok
	})
	if l == nil {
		return nil
	}
	return l.(BlockState)
}
