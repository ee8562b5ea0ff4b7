package listener

import (
	"github.com/influxdata/xdom/syntax"
)

// Void ignores all events. Its zero value is ready to use.
// Renderers embed it to only implement the events they care about.
type Void struct{}

func (Void) BeginDocument(*MetaData)                                   {}
func (Void) EndDocument(*MetaData)                                     {}
func (Void) BeginGroup(*Parameters)                                    {}
func (Void) EndGroup(*Parameters)                                      {}
func (Void) BeginFormat(Format, *Parameters)                           {}
func (Void) EndFormat(Format, *Parameters)                             {}
func (Void) BeginParagraph(*Parameters)                                {}
func (Void) EndParagraph(*Parameters)                                  {}
func (Void) BeginList(ListType, *Parameters)                           {}
func (Void) EndList(ListType, *Parameters)                             {}
func (Void) BeginListItem(*Parameters)                                 {}
func (Void) EndListItem(*Parameters)                                   {}
func (Void) BeginDefinitionList(*Parameters)                           {}
func (Void) EndDefinitionList(*Parameters)                             {}
func (Void) BeginDefinitionTerm()                                      {}
func (Void) EndDefinitionTerm()                                        {}
func (Void) BeginDefinitionDescription()                               {}
func (Void) EndDefinitionDescription()                                 {}
func (Void) BeginQuotation(*Parameters)                                {}
func (Void) EndQuotation(*Parameters)                                  {}
func (Void) BeginQuotationLine()                                       {}
func (Void) EndQuotationLine()                                         {}
func (Void) BeginTable(*Parameters)                                    {}
func (Void) EndTable(*Parameters)                                      {}
func (Void) BeginTableRow(*Parameters)                                 {}
func (Void) EndTableRow(*Parameters)                                   {}
func (Void) BeginTableCell(*Parameters)                                {}
func (Void) EndTableCell(*Parameters)                                  {}
func (Void) BeginTableHeadCell(*Parameters)                            {}
func (Void) EndTableHeadCell(*Parameters)                              {}
func (Void) BeginHeader(HeaderLevel, string, *Parameters)              {}
func (Void) EndHeader(HeaderLevel, string, *Parameters)                {}
func (Void) BeginLink(ResourceReference, bool, *Parameters)            {}
func (Void) EndLink(ResourceReference, bool, *Parameters)              {}
func (Void) BeginFigure(*Parameters)                                   {}
func (Void) EndFigure(*Parameters)                                     {}
func (Void) BeginFigureCaption(*Parameters)                            {}
func (Void) EndFigureCaption(*Parameters)                              {}
func (Void) BeginMetaData(*MetaData)                                   {}
func (Void) EndMetaData(*MetaData)                                     {}
func (Void) BeginMacroMarker(string, *Parameters, *string, bool)       {}
func (Void) EndMacroMarker(string, *Parameters, *string, bool)         {}
func (Void) OnWord(string)                                             {}
func (Void) OnSpace()                                                  {}
func (Void) OnSpecialSymbol(rune)                                      {}
func (Void) OnNewLine()                                                {}
func (Void) OnEmptyLines(int)                                          {}
func (Void) OnImage(ResourceReference, bool, string, *Parameters)      {}
func (Void) OnMacro(string, *Parameters, *string, bool)                {}
func (Void) OnRawText(string, syntax.Syntax)                           {}
func (Void) OnHorizontalLine(*Parameters)                              {}
func (Void) OnID(string)                                               {}
func (Void) OnVerbatim(string, bool, *Parameters)                      {}
