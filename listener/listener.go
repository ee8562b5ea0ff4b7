package listener

import (
	"github.com/influxdata/xdom/syntax"
)

// Listener handles document events as they arrive.
//
// Parameters may be nil, which is equivalent to an empty set of parameters.
// Implementations must not retain or mutate parameters, metadata or references they receive
// without copying them first.
type Listener interface {
	BeginDocument(metaData *MetaData)
	EndDocument(metaData *MetaData)

	BeginGroup(params *Parameters)
	EndGroup(params *Parameters)

	BeginFormat(format Format, params *Parameters)
	EndFormat(format Format, params *Parameters)

	BeginParagraph(params *Parameters)
	EndParagraph(params *Parameters)

	BeginList(typ ListType, params *Parameters)
	EndList(typ ListType, params *Parameters)
	BeginListItem(params *Parameters)
	EndListItem(params *Parameters)

	BeginDefinitionList(params *Parameters)
	EndDefinitionList(params *Parameters)
	BeginDefinitionTerm()
	EndDefinitionTerm()
	BeginDefinitionDescription()
	EndDefinitionDescription()

	BeginQuotation(params *Parameters)
	EndQuotation(params *Parameters)
	BeginQuotationLine()
	EndQuotationLine()

	BeginTable(params *Parameters)
	EndTable(params *Parameters)
	BeginTableRow(params *Parameters)
	EndTableRow(params *Parameters)
	BeginTableCell(params *Parameters)
	EndTableCell(params *Parameters)
	BeginTableHeadCell(params *Parameters)
	EndTableHeadCell(params *Parameters)

	BeginHeader(level HeaderLevel, id string, params *Parameters)
	EndHeader(level HeaderLevel, id string, params *Parameters)

	BeginLink(ref ResourceReference, freeStanding bool, params *Parameters)
	EndLink(ref ResourceReference, freeStanding bool, params *Parameters)

	BeginFigure(params *Parameters)
	EndFigure(params *Parameters)
	BeginFigureCaption(params *Parameters)
	EndFigureCaption(params *Parameters)

	BeginMetaData(metaData *MetaData)
	EndMetaData(metaData *MetaData)

	// BeginMacroMarker starts the output of an executed macro.
	// The arguments describe the original invocation.
	BeginMacroMarker(id string, params *Parameters, content *string, inline bool)
	EndMacroMarker(id string, params *Parameters, content *string, inline bool)

	OnWord(word string)
	OnSpace()
	OnSpecialSymbol(symbol rune)
	OnNewLine()
	OnEmptyLines(count int)
	OnImage(ref ResourceReference, freeStanding bool, id string, params *Parameters)
	// OnMacro is a macro invocation that has not been executed.
	OnMacro(id string, params *Parameters, content *string, inline bool)
	OnRawText(text string, syn syntax.Syntax)
	OnHorizontalLine(params *Parameters)
	OnID(name string)
	OnVerbatim(content string, inline bool, params *Parameters)
}

// Content returns a pointer to a copy of s, for use as macro content.
func Content(s string) *string {
	return &s
}
