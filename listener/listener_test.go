package listener_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameters(t *testing.T) {
	p := listener.NewParameters("b", "2", "a", "1")
	p.Set("b", "3")
	p.Set("c", "4")

	assert := assert.New(t)
	assert.Equal([]string{"b", "a", "c"}, p.Keys())
	assert.Equal("3", p.Value("b"))
	assert.Equal("[[b]=[3][a]=[1][c]=[4]]", p.String())

	p.Delete("a")
	assert.Equal([]string{"b", "c"}, p.Keys())
	_, ok := p.Get("a")
	assert.False(ok)

	var nilParams *listener.Parameters
	assert.Equal(0, nilParams.Len())
	assert.True(nilParams.Equal(listener.NewParameters()))
	assert.Equal("", nilParams.Value("x"))
}

func TestParameters_Equal(t *testing.T) {
	testCases := []struct {
		name string
		a, b *listener.Parameters
		want bool
	}{
		{name: "order insensitive", a: listener.NewParameters("a", "1", "b", "2"), b: listener.NewParameters("b", "2", "a", "1"), want: true},
		{name: "different value", a: listener.NewParameters("a", "1"), b: listener.NewParameters("a", "2")},
		{name: "missing key", a: listener.NewParameters("a", "1"), b: listener.NewParameters("b", "1")},
		{name: "nil and empty", a: nil, b: listener.NewParameters(), want: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a))
		})
	}
}

func TestParameters_Copy(t *testing.T) {
	p := listener.NewParameters("a", "1")
	c := p.Copy()
	c.Set("a", "2")
	assert.Equal(t, "1", p.Value("a"))

	var nilParams *listener.Parameters
	c = nilParams.Copy()
	c.Set("x", "y")
	assert.Equal(t, 1, c.Len())
}

func TestMetaData_Copy(t *testing.T) {
	md := listener.NewMetaData()
	md.Add(listener.MetaDataSyntax, "markdown/1.2")
	md.Add("tags", []string{"a", "b"})

	c := md.Copy()
	require.True(t, md.Equal(c))

	c.Add("tags", []string{"c"})
	tags, _ := md.Get("tags")
	assert.Equal(t, []string{"a", "b"}, tags)
	assert.False(t, md.Equal(c))
	assert.Equal(t, []string{"syntax", "tags"}, c.Keys())
}

func TestEventType(t *testing.T) {
	assert := assert.New(t)
	assert.True(listener.BeginParagraph.IsBegin())
	assert.True(listener.EndParagraph.IsEnd())
	assert.Equal(listener.EndMacroMarker, listener.BeginMacroMarker.Matching())
	assert.Equal(listener.BeginDocument, listener.EndDocument.Matching())
	assert.False(listener.OnWord.IsBegin())
	assert.False(listener.OnVerbatim.IsEnd())
	assert.Equal("beginHeader", listener.BeginHeader.String())
	assert.Equal("onId", listener.OnID.String())
}

func emitAll(l listener.Listener) {
	params := listener.NewParameters("k", "v")
	ref := listener.ResourceReference{Type: listener.ResourceURL, Reference: "http://x", Typed: true}
	content := listener.Content("c")
	md := listener.NewMetaData()
	md.Add("k", "v")

	l.BeginDocument(md)
	l.BeginGroup(params)
	l.BeginFormat(listener.FormatBold, params)
	l.BeginParagraph(params)
	l.BeginList(listener.ListNumbered, params)
	l.BeginListItem(params)
	l.BeginDefinitionList(params)
	l.BeginDefinitionTerm()
	l.BeginDefinitionDescription()
	l.BeginQuotation(params)
	l.BeginQuotationLine()
	l.BeginTable(params)
	l.BeginTableRow(params)
	l.BeginTableCell(params)
	l.BeginTableHeadCell(params)
	l.BeginHeader(listener.Level2, "Hid", params)
	l.BeginLink(ref, true, params)
	l.BeginFigure(params)
	l.BeginFigureCaption(params)
	l.BeginMetaData(md)
	l.BeginMacroMarker("m", params, content, true)
	l.OnWord("w")
	l.OnSpace()
	l.OnSpecialSymbol('!')
	l.OnNewLine()
	l.OnEmptyLines(2)
	l.OnImage(ref, false, "img", params)
	l.OnMacro("m", params, nil, false)
	l.OnRawText("<b/>", syntax.HTML50)
	l.OnHorizontalLine(params)
	l.OnID("anchor")
	l.OnVerbatim("code", true, params)
	l.EndMacroMarker("m", params, content, true)
	l.EndMetaData(md)
	l.EndFigureCaption(params)
	l.EndFigure(params)
	l.EndLink(ref, true, params)
	l.EndHeader(listener.Level2, "Hid", params)
	l.EndTableHeadCell(params)
	l.EndTableCell(params)
	l.EndTableRow(params)
	l.EndTable(params)
	l.EndQuotationLine()
	l.EndQuotation(params)
	l.EndDefinitionDescription()
	l.EndDefinitionTerm()
	l.EndDefinitionList(params)
	l.EndListItem(params)
	l.EndList(listener.ListNumbered, params)
	l.EndParagraph(params)
	l.EndFormat(listener.FormatBold, params)
	l.EndGroup(params)
	l.EndDocument(md)
}

func TestQueue_RoundTrip(t *testing.T) {
	recorded := listener.NewQueue()
	emitAll(recorded)
	require.Equal(t, 53, recorded.Len())

	replayed := listener.NewQueue()
	recorded.Replay(replayed)

	if !cmp.Equal(recorded.Events(), replayed.Events()) {
		t.Errorf("unexpected replay -want/+got:\n%s", cmp.Diff(recorded.Events(), replayed.Events()))
	}

	var types []listener.EventType
	recorded.Consume(listener.Func(func(e listener.Event) {
		types = append(types, e.Type)
	}))
	assert.Equal(t, 0, recorded.Len())
	assert.Len(t, types, 53)
	assert.Equal(t, listener.BeginDocument, types[0])
	assert.Equal(t, listener.EndDocument, types[52])
}

func TestQueue_PeekPop(t *testing.T) {
	q := listener.NewQueue()
	q.OnWord("a")
	q.OnSpace()

	e, ok := q.Peek(1)
	require.True(t, ok)
	assert.Equal(t, listener.OnSpace, e.Type)
	_, ok = q.Peek(2)
	assert.False(t, ok)

	e, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, listener.Event{Type: listener.OnWord, Args: []interface{}{"a"}}, e)
	assert.Equal(t, 1, q.Len())
}

func TestComposite(t *testing.T) {
	a, b := listener.NewQueue(), listener.NewQueue()
	c := listener.NewComposite(a)
	c.Add(b)

	c.BeginParagraph(nil)
	c.OnWord("x")
	c.EndParagraph(nil)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, a.Events(), b.Events())
}

type upperWords struct {
	*listener.Wrapping
}

func (u upperWords) OnWord(word string) {
	u.Wrapped().OnWord(word + "!")
}

func TestWrapping(t *testing.T) {
	q := listener.NewQueue()
	var l listener.Listener = upperWords{Wrapping: listener.NewWrapping(q)}

	l.BeginParagraph(nil)
	l.OnWord("hi")
	l.EndParagraph(nil)

	events := q.Events()
	require.Len(t, events, 3)
	assert.Equal(t, []interface{}{"hi!"}, events[1].Args)

	w := listener.NewWrapping(nil)
	w.OnWord("dropped")
	w.SetWrapped(q)
	w.OnSpace()
	assert.Equal(t, 4, q.Len())
}

func TestVoid(t *testing.T) {
	var l listener.Listener = listener.Void{}
	emitAll(l)
}

func TestNewResourceReference(t *testing.T) {
	testCases := []struct {
		ref  string
		want listener.ResourceType
	}{
		{ref: "https://example.com", want: listener.ResourceURL},
		{ref: "mailto:a@b.c", want: listener.ResourceMailto},
		{ref: "./img.png", want: listener.ResourcePath},
		{ref: "Space.Page", want: listener.ResourceDocument},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, listener.NewResourceReference(tc.ref).Type, tc.ref)
	}
}
