package block

import (
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/syntax"
)

type Word struct {
	Base
	Text string
}

func NewWord(text string) *Word {
	b := &Word{Text: text}
	b.Init(b, nil, nil)
	return b
}

func (b *Word) Before(l listener.Listener) { l.OnWord(b.Text) }

type Space struct{ Base }

func NewSpace() *Space {
	b := new(Space)
	b.Init(b, nil, nil)
	return b
}

func (b *Space) Before(l listener.Listener) { l.OnSpace() }

// SpecialSymbol is a single punctuation character.
type SpecialSymbol struct {
	Base
	Symbol rune
}

func NewSpecialSymbol(symbol rune) *SpecialSymbol {
	b := &SpecialSymbol{Symbol: symbol}
	b.Init(b, nil, nil)
	return b
}

func (b *SpecialSymbol) Before(l listener.Listener) { l.OnSpecialSymbol(b.Symbol) }

type NewLine struct{ Base }

func NewNewLine() *NewLine {
	b := new(NewLine)
	b.Init(b, nil, nil)
	return b
}

func (b *NewLine) Before(l listener.Listener) { l.OnNewLine() }

type EmptyLines struct {
	Base
	Count int
}

func NewEmptyLines(count int) *EmptyLines {
	b := &EmptyLines{Count: count}
	b.Init(b, nil, nil)
	return b
}

func (b *EmptyLines) Before(l listener.Listener) { l.OnEmptyLines(b.Count) }

type Image struct {
	Base
	Reference    listener.ResourceReference
	FreeStanding bool
	ID           string
}

func NewImage(ref listener.ResourceReference, freeStanding bool, id string, params *listener.Parameters) *Image {
	b := &Image{Reference: ref, FreeStanding: freeStanding, ID: id}
	b.Init(b, nil, params)
	return b
}

func (b *Image) Before(l listener.Listener) {
	l.OnImage(b.Reference, b.FreeStanding, b.ID, b.params)
}

func (b *Image) copyFields() { b.Reference = b.Reference.Copy() }

// Macro is a macro invocation that has not been executed yet.
type Macro struct {
	Base
	ID      string
	Content *string
	Inline  bool
}

func NewMacro(id string, params *listener.Parameters, content *string, inline bool) *Macro {
	b := &Macro{ID: id, Content: content, Inline: inline}
	b.Init(b, nil, params)
	return b
}

func (b *Macro) Before(l listener.Listener) {
	l.OnMacro(b.ID, b.params, b.Content, b.Inline)
}

func (b *Macro) copyFields() { b.Content = copyContent(b.Content) }

// Raw is text already in a target syntax, passed through renderers of that syntax.
type Raw struct {
	Base
	Text   string
	Syntax syntax.Syntax
}

func NewRaw(text string, syn syntax.Syntax) *Raw {
	b := &Raw{Text: text, Syntax: syn}
	b.Init(b, nil, nil)
	return b
}

func (b *Raw) Before(l listener.Listener) { l.OnRawText(b.Text, b.Syntax) }

type HorizontalLine struct{ Base }

func NewHorizontalLine(params *listener.Parameters) *HorizontalLine {
	b := new(HorizontalLine)
	b.Init(b, nil, params)
	return b
}

func (b *HorizontalLine) Before(l listener.Listener) { l.OnHorizontalLine(b.params) }

// ID is an anchor.
type ID struct {
	Base
	Name string
}

func NewID(name string) *ID {
	b := &ID{Name: name}
	b.Init(b, nil, nil)
	return b
}

func (b *ID) Before(l listener.Listener) { l.OnID(b.Name) }

type Verbatim struct {
	Base
	Content string
	Inline  bool
}

func NewVerbatim(content string, inline bool, params *listener.Parameters) *Verbatim {
	b := &Verbatim{Content: content, Inline: inline}
	b.Init(b, nil, params)
	return b
}

func (b *Verbatim) Before(l listener.Listener) { l.OnVerbatim(b.Content, b.Inline, b.params) }
