package listener

import (
	"fmt"

	"github.com/influxdata/xdom/syntax"
)

// EventType identifies a Listener method.
type EventType int

const (
	BeginDocument EventType = iota
	EndDocument
	BeginGroup
	EndGroup
	BeginFormat
	EndFormat
	BeginParagraph
	EndParagraph
	BeginList
	EndList
	BeginListItem
	EndListItem
	BeginDefinitionList
	EndDefinitionList
	BeginDefinitionTerm
	EndDefinitionTerm
	BeginDefinitionDescription
	EndDefinitionDescription
	BeginQuotation
	EndQuotation
	BeginQuotationLine
	EndQuotationLine
	BeginTable
	EndTable
	BeginTableRow
	EndTableRow
	BeginTableCell
	EndTableCell
	BeginTableHeadCell
	EndTableHeadCell
	BeginHeader
	EndHeader
	BeginLink
	EndLink
	BeginFigure
	EndFigure
	BeginFigureCaption
	EndFigureCaption
	BeginMetaData
	EndMetaData
	BeginMacroMarker
	EndMacroMarker
	// Begin/end pairs above, singletons below.
	OnWord
	OnSpace
	OnSpecialSymbol
	OnNewLine
	OnEmptyLines
	OnImage
	OnMacro
	OnRawText
	OnHorizontalLine
	OnID
	OnVerbatim
)

var eventNames = [...]string{
	BeginDocument:              "beginDocument",
	EndDocument:                "endDocument",
	BeginGroup:                 "beginGroup",
	EndGroup:                   "endGroup",
	BeginFormat:                "beginFormat",
	EndFormat:                  "endFormat",
	BeginParagraph:             "beginParagraph",
	EndParagraph:               "endParagraph",
	BeginList:                  "beginList",
	EndList:                    "endList",
	BeginListItem:              "beginListItem",
	EndListItem:                "endListItem",
	BeginDefinitionList:        "beginDefinitionList",
	EndDefinitionList:          "endDefinitionList",
	BeginDefinitionTerm:        "beginDefinitionTerm",
	EndDefinitionTerm:          "endDefinitionTerm",
	BeginDefinitionDescription: "beginDefinitionDescription",
	EndDefinitionDescription:   "endDefinitionDescription",
	BeginQuotation:             "beginQuotation",
	EndQuotation:               "endQuotation",
	BeginQuotationLine:         "beginQuotationLine",
	EndQuotationLine:           "endQuotationLine",
	BeginTable:                 "beginTable",
	EndTable:                   "endTable",
	BeginTableRow:              "beginTableRow",
	EndTableRow:                "endTableRow",
	BeginTableCell:             "beginTableCell",
	EndTableCell:               "endTableCell",
	BeginTableHeadCell:         "beginTableHeadCell",
	EndTableHeadCell:           "endTableHeadCell",
	BeginHeader:                "beginHeader",
	EndHeader:                  "endHeader",
	BeginLink:                  "beginLink",
	EndLink:                    "endLink",
	BeginFigure:                "beginFigure",
	EndFigure:                  "endFigure",
	BeginFigureCaption:         "beginFigureCaption",
	EndFigureCaption:           "endFigureCaption",
	BeginMetaData:              "beginMetaData",
	EndMetaData:                "endMetaData",
	BeginMacroMarker:           "beginMacroMarker",
	EndMacroMarker:             "endMacroMarker",
	OnWord:                     "onWord",
	OnSpace:                    "onSpace",
	OnSpecialSymbol:            "onSpecialSymbol",
	OnNewLine:                  "onNewLine",
	OnEmptyLines:               "onEmptyLines",
	OnImage:                    "onImage",
	OnMacro:                    "onMacro",
	OnRawText:                  "onRawText",
	OnHorizontalLine:           "onHorizontalLine",
	OnID:                       "onId",
	OnVerbatim:                 "onVerbatim",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// IsBegin reports whether t opens a container.
func (t EventType) IsBegin() bool {
	return t < OnWord && t%2 == 0
}

// IsEnd reports whether t closes a container.
func (t EventType) IsEnd() bool {
	return t < OnWord && t%2 == 1
}

// Matching returns the end event of a begin event and the begin event of an end event.
// Singletons match themselves.
func (t EventType) Matching() EventType {
	switch {
	case t.IsBegin():
		return t + 1
	case t.IsEnd():
		return t - 1
	default:
		return t
	}
}

// Event is a recorded Listener call.
// Args hold the call arguments in the order of the Listener method signature.
type Event struct {
	Type EventType
	Args []interface{}
}

func (e Event) String() string {
	return fmt.Sprintf("%v%v", e.Type, e.Args)
}

func (e Event) params(i int) *Parameters {
	p, _ := e.Args[i].(*Parameters)
	return p
}

func (e Event) metaData(i int) *MetaData {
	md, _ := e.Args[i].(*MetaData)
	return md
}

func (e Event) content(i int) *string {
	c, _ := e.Args[i].(*string)
	return c
}

// Fire replays the event on l.
func (e Event) Fire(l Listener) {
	switch e.Type {
	case BeginDocument:
		l.BeginDocument(e.metaData(0))
	case EndDocument:
		l.EndDocument(e.metaData(0))
	case BeginGroup:
		l.BeginGroup(e.params(0))
	case EndGroup:
		l.EndGroup(e.params(0))
	case BeginFormat:
		l.BeginFormat(e.Args[0].(Format), e.params(1))
	case EndFormat:
		l.EndFormat(e.Args[0].(Format), e.params(1))
	case BeginParagraph:
		l.BeginParagraph(e.params(0))
	case EndParagraph:
		l.EndParagraph(e.params(0))
	case BeginList:
		l.BeginList(e.Args[0].(ListType), e.params(1))
	case EndList:
		l.EndList(e.Args[0].(ListType), e.params(1))
	case BeginListItem:
		l.BeginListItem(e.params(0))
	case EndListItem:
		l.EndListItem(e.params(0))
	case BeginDefinitionList:
		l.BeginDefinitionList(e.params(0))
	case EndDefinitionList:
		l.EndDefinitionList(e.params(0))
	case BeginDefinitionTerm:
		l.BeginDefinitionTerm()
	case EndDefinitionTerm:
		l.EndDefinitionTerm()
	case BeginDefinitionDescription:
		l.BeginDefinitionDescription()
	case EndDefinitionDescription:
		l.EndDefinitionDescription()
	case BeginQuotation:
		l.BeginQuotation(e.params(0))
	case EndQuotation:
		l.EndQuotation(e.params(0))
	case BeginQuotationLine:
		l.BeginQuotationLine()
	case EndQuotationLine:
		l.EndQuotationLine()
	case BeginTable:
		l.BeginTable(e.params(0))
	case EndTable:
		l.EndTable(e.params(0))
	case BeginTableRow:
		l.BeginTableRow(e.params(0))
	case EndTableRow:
		l.EndTableRow(e.params(0))
	case BeginTableCell:
		l.BeginTableCell(e.params(0))
	case EndTableCell:
		l.EndTableCell(e.params(0))
	case BeginTableHeadCell:
		l.BeginTableHeadCell(e.params(0))
	case EndTableHeadCell:
		l.EndTableHeadCell(e.params(0))
	case BeginHeader:
		l.BeginHeader(e.Args[0].(HeaderLevel), e.Args[1].(string), e.params(2))
	case EndHeader:
		l.EndHeader(e.Args[0].(HeaderLevel), e.Args[1].(string), e.params(2))
	case BeginLink:
		l.BeginLink(e.Args[0].(ResourceReference), e.Args[1].(bool), e.params(2))
	case EndLink:
		l.EndLink(e.Args[0].(ResourceReference), e.Args[1].(bool), e.params(2))
	case BeginFigure:
		l.BeginFigure(e.params(0))
	case EndFigure:
		l.EndFigure(e.params(0))
	case BeginFigureCaption:
		l.BeginFigureCaption(e.params(0))
	case EndFigureCaption:
		l.EndFigureCaption(e.params(0))
	case BeginMetaData:
		l.BeginMetaData(e.metaData(0))
	case EndMetaData:
		l.EndMetaData(e.metaData(0))
	case BeginMacroMarker:
		l.BeginMacroMarker(e.Args[0].(string), e.params(1), e.content(2), e.Args[3].(bool))
	case EndMacroMarker:
		l.EndMacroMarker(e.Args[0].(string), e.params(1), e.content(2), e.Args[3].(bool))
	case OnWord:
		l.OnWord(e.Args[0].(string))
	case OnSpace:
		l.OnSpace()
	case OnSpecialSymbol:
		l.OnSpecialSymbol(e.Args[0].(rune))
	case OnNewLine:
		l.OnNewLine()
	case OnEmptyLines:
		l.OnEmptyLines(e.Args[0].(int))
	case OnImage:
		l.OnImage(e.Args[0].(ResourceReference), e.Args[1].(bool), e.Args[2].(string), e.params(3))
	case OnMacro:
		l.OnMacro(e.Args[0].(string), e.params(1), e.content(2), e.Args[3].(bool))
	case OnRawText:
		l.OnRawText(e.Args[0].(string), e.Args[1].(syntax.Syntax))
	case OnHorizontalLine:
		l.OnHorizontalLine(e.params(0))
	case OnID:
		l.OnID(e.Args[0].(string))
	case OnVerbatim:
		l.OnVerbatim(e.Args[0].(string), e.Args[1].(bool), e.params(2))
	default:
		panic(fmt.Sprintf("listener: unknown event type %v", e.Type))
	}
}
