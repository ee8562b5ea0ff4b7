package event_test

import (
	"bytes"
	"testing"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/renderer/event"
	"github.com/influxdata/xdom/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	x := block.NewXDOM([]block.Block{
		block.NewHeader(listener.Level2, "title", block.Text("Title"), nil),
		block.NewParagraph([]block.Block{
			block.NewFormat(listener.FormatBold, block.Text("Hello"), nil),
			block.NewSpace(),
			block.NewLink(listener.NewResourceReference("http://x.org"), false, block.Text("x"), nil),
			block.NewSpecialSymbol('!'),
			block.NewVerbatim("code", true, nil),
		}, listener.NewParameters("class", "intro")),
		block.NewMacroMarker("box", listener.NewParameters("title", "T"), listener.Content("c"), false, []block.Block{
			block.NewMacro("id", nil, nil, true),
		}),
		block.NewRaw("<br/>", syntax.HTML50),
		block.NewHorizontalLine(nil),
	}, nil)

	want := `beginDocument
beginHeader [2, title]
onWord [Title]
endHeader [2, title]
beginParagraph [[class]=[intro]]
beginFormat [BOLD]
onWord [Hello]
endFormat [BOLD]
onSpace
beginLink [Typed = [false] Type = [url] Reference = [http://x.org]] [false]
onWord [x]
endLink [Typed = [false] Type = [url] Reference = [http://x.org]] [false]
onSpecialSymbol [!]
onVerbatimInline [code]
endParagraph [[class]=[intro]]
beginMacroMarkerStandalone [box] [[title]=[T]] [c]
onMacroInline [id]
endMacroMarkerStandalone [box] [[title]=[T]] [c]
onRawText [<br/>] [html/5.0]
onHorizontalLine
endDocument
`
	assert.Equal(t, want, event.String(x))

	var buf bytes.Buffer
	require.NoError(t, event.New().Render(x, &buf))
	assert.Equal(t, want, buf.String())
}

func TestRender_MetaData(t *testing.T) {
	md := listener.NewMetaData()
	md.Add(listener.MetaDataSyntax, "plain/1.0")
	x := block.NewXDOM([]block.Block{
		block.NewParagraph(block.Text("a"), nil),
	}, md)

	want := `beginDocument [[syntax]=[plain/1.0]]
beginParagraph
onWord [a]
endParagraph
endDocument [[syntax]=[plain/1.0]]
`
	assert.Equal(t, want, event.String(x))
}

func TestLine(t *testing.T) {
	testCases := []struct {
		e    listener.Event
		want string
	}{
		{
			e:    listener.Event{Type: listener.OnEmptyLines, Args: []interface{}{2}},
			want: "onEmptyLines [2]",
		},
		{
			e:    listener.Event{Type: listener.BeginList, Args: []interface{}{listener.ListNumbered, (*listener.Parameters)(nil)}},
			want: "beginList [NUMBERED]",
		},
		{
			e:    listener.Event{Type: listener.OnVerbatim, Args: []interface{}{"x := 1", false, listener.NewParameters("language", "go")}},
			want: "onVerbatimStandalone [x := 1] [[language]=[go]]",
		},
		{
			e:    listener.Event{Type: listener.OnID, Args: []interface{}{"anchor"}},
			want: "onId [anchor]",
		},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, event.Line(tc.e))
	}
}
