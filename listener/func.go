package listener

import (
	"github.com/influxdata/xdom/syntax"
)

// Func adapts a function receiving events to the Listener interface.
type Func func(e Event)

func (f Func) emit(t EventType, args ...interface{}) {
	f(Event{Type: t, Args: args})
}

func (f Func) BeginDocument(metaData *MetaData) { f.emit(BeginDocument, metaData) }
func (f Func) EndDocument(metaData *MetaData)   { f.emit(EndDocument, metaData) }

func (f Func) BeginGroup(params *Parameters) { f.emit(BeginGroup, params) }
func (f Func) EndGroup(params *Parameters)   { f.emit(EndGroup, params) }

func (f Func) BeginFormat(format Format, params *Parameters) { f.emit(BeginFormat, format, params) }
func (f Func) EndFormat(format Format, params *Parameters)   { f.emit(EndFormat, format, params) }

func (f Func) BeginParagraph(params *Parameters) { f.emit(BeginParagraph, params) }
func (f Func) EndParagraph(params *Parameters)   { f.emit(EndParagraph, params) }

func (f Func) BeginList(typ ListType, params *Parameters) { f.emit(BeginList, typ, params) }
func (f Func) EndList(typ ListType, params *Parameters)   { f.emit(EndList, typ, params) }
func (f Func) BeginListItem(params *Parameters)           { f.emit(BeginListItem, params) }
func (f Func) EndListItem(params *Parameters)             { f.emit(EndListItem, params) }

func (f Func) BeginDefinitionList(params *Parameters) { f.emit(BeginDefinitionList, params) }
func (f Func) EndDefinitionList(params *Parameters)   { f.emit(EndDefinitionList, params) }
func (f Func) BeginDefinitionTerm()                   { f.emit(BeginDefinitionTerm) }
func (f Func) EndDefinitionTerm()                     { f.emit(EndDefinitionTerm) }
func (f Func) BeginDefinitionDescription()            { f.emit(BeginDefinitionDescription) }
func (f Func) EndDefinitionDescription()              { f.emit(EndDefinitionDescription) }

func (f Func) BeginQuotation(params *Parameters) { f.emit(BeginQuotation, params) }
func (f Func) EndQuotation(params *Parameters)   { f.emit(EndQuotation, params) }
func (f Func) BeginQuotationLine()               { f.emit(BeginQuotationLine) }
func (f Func) EndQuotationLine()                 { f.emit(EndQuotationLine) }

func (f Func) BeginTable(params *Parameters)         { f.emit(BeginTable, params) }
func (f Func) EndTable(params *Parameters)           { f.emit(EndTable, params) }
func (f Func) BeginTableRow(params *Parameters)      { f.emit(BeginTableRow, params) }
func (f Func) EndTableRow(params *Parameters)        { f.emit(EndTableRow, params) }
func (f Func) BeginTableCell(params *Parameters)     { f.emit(BeginTableCell, params) }
func (f Func) EndTableCell(params *Parameters)       { f.emit(EndTableCell, params) }
func (f Func) BeginTableHeadCell(params *Parameters) { f.emit(BeginTableHeadCell, params) }
func (f Func) EndTableHeadCell(params *Parameters)   { f.emit(EndTableHeadCell, params) }

func (f Func) BeginHeader(level HeaderLevel, id string, params *Parameters) {
	f.emit(BeginHeader, level, id, params)
}
func (f Func) EndHeader(level HeaderLevel, id string, params *Parameters) {
	f.emit(EndHeader, level, id, params)
}

func (f Func) BeginLink(ref ResourceReference, freeStanding bool, params *Parameters) {
	f.emit(BeginLink, ref, freeStanding, params)
}
func (f Func) EndLink(ref ResourceReference, freeStanding bool, params *Parameters) {
	f.emit(EndLink, ref, freeStanding, params)
}

func (f Func) BeginFigure(params *Parameters)        { f.emit(BeginFigure, params) }
func (f Func) EndFigure(params *Parameters)          { f.emit(EndFigure, params) }
func (f Func) BeginFigureCaption(params *Parameters) { f.emit(BeginFigureCaption, params) }
func (f Func) EndFigureCaption(params *Parameters)   { f.emit(EndFigureCaption, params) }

func (f Func) BeginMetaData(metaData *MetaData) { f.emit(BeginMetaData, metaData) }
func (f Func) EndMetaData(metaData *MetaData)   { f.emit(EndMetaData, metaData) }

func (f Func) BeginMacroMarker(id string, params *Parameters, content *string, inline bool) {
	f.emit(BeginMacroMarker, id, params, content, inline)
}
func (f Func) EndMacroMarker(id string, params *Parameters, content *string, inline bool) {
	f.emit(EndMacroMarker, id, params, content, inline)
}

func (f Func) OnWord(word string)          { f.emit(OnWord, word) }
func (f Func) OnSpace()                    { f.emit(OnSpace) }
func (f Func) OnSpecialSymbol(symbol rune) { f.emit(OnSpecialSymbol, symbol) }
func (f Func) OnNewLine()                  { f.emit(OnNewLine) }
func (f Func) OnEmptyLines(count int)      { f.emit(OnEmptyLines, count) }
func (f Func) OnImage(ref ResourceReference, freeStanding bool, id string, params *Parameters) {
	f.emit(OnImage, ref, freeStanding, id, params)
}
func (f Func) OnMacro(id string, params *Parameters, content *string, inline bool) {
	f.emit(OnMacro, id, params, content, inline)
}
func (f Func) OnRawText(text string, syn syntax.Syntax) { f.emit(OnRawText, text, syn) }
func (f Func) OnHorizontalLine(params *Parameters)      { f.emit(OnHorizontalLine, params) }
func (f Func) OnID(name string)                         { f.emit(OnID, name) }
func (f Func) OnVerbatim(content string, inline bool, params *Parameters) {
	f.emit(OnVerbatim, content, inline, params)
}
