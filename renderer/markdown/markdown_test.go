package markdown_test

import (
	"testing"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/parser"
	mdparser "github.com/influxdata/xdom/parser/markdown"
	"github.com/influxdata/xdom/renderer"
	"github.com/influxdata/xdom/renderer/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	md := listener.NewMetaData()
	md.Add(listener.MetaDataSyntax, "markdown/1.2")
	md.Add(listener.MetaDataTitle, "Doc")
	x := block.NewXDOM([]block.Block{
		block.NewHeader(listener.Level1, "doc", block.Text("Doc"), nil),
		block.NewParagraph([]block.Block{
			block.NewFormat(listener.FormatBold, block.Text("bold"), nil),
			block.NewSpace(),
			block.NewWord("a"),
			block.NewSpecialSymbol('*'),
			block.NewSpace(),
			block.NewLink(listener.NewResourceReference("http://x.org"), false, block.Text("x"), nil),
			block.NewSpace(),
			block.NewLink(listener.NewResourceReference("http://y.org"), true, nil, nil),
			block.NewSpace(),
			block.NewFormat(listener.FormatItalic, nil, nil),
		}, nil),
		block.NewList(listener.ListBulleted, []block.Block{
			block.NewListItem(block.Text("a"), nil),
			block.NewListItem([]block.Block{
				block.NewWord("b"),
				block.NewList(listener.ListNumbered, []block.Block{
					block.NewListItem(block.Text("c"), nil),
				}, nil),
			}, nil),
		}, nil),
		block.NewQuotation([]block.Block{
			block.NewQuotationLine(block.Text("q")),
		}, nil),
		block.NewTable([]block.Block{
			block.NewTableRow([]block.Block{
				block.NewTableHeadCell(block.Text("a"), nil),
				block.NewTableHeadCell(block.Text("b"), nil),
			}, nil),
			block.NewTableRow([]block.Block{
				block.NewTableCell(block.Text("1"), nil),
				block.NewTableCell(block.Text("2"), nil),
			}, nil),
		}, nil),
		block.NewVerbatim("x := 1", false, listener.NewParameters("language", "go")),
		block.NewMacro("toc", listener.NewParameters("depth", "2"), nil, false),
		block.NewHorizontalLine(nil),
	}, md)

	want := "---\ntitle: Doc\n---\n" +
		"# Doc\n\n" +
		"**bold** a\\* [x](http://x.org) <http://y.org> \n\n" +
		"- a\n- b\n    1. c\n\n" +
		"> q\n\n" +
		"| a | b |\n| --- | --- |\n| 1 | 2 |\n\n" +
		"```go\nx := 1\n```\n\n" +
		"{{toc depth=\"2\"/}}\n\n" +
		"---\n"

	got, err := renderer.RenderString(markdown.New(), x)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRender_Block(t *testing.T) {
	got, err := renderer.RenderString(markdown.New(), block.NewParagraph([]block.Block{
		block.NewWord("see"),
		block.NewSpace(),
		block.NewLink(listener.NewResourceReference("http://x.org"), false, nil, listener.NewParameters("title", "X")),
	}, nil))
	require.NoError(t, err)
	assert.Equal(t, "see [http://x.org](http://x.org \"X\")\n", got)
}

func TestRender_Normalize(t *testing.T) {
	x := block.NewXDOM([]block.Block{
		block.NewHeader(listener.Level2, "h", block.Text("Heading"), nil),
		block.NewParagraph(block.Text("Some text."), nil),
	}, nil)

	got, err := renderer.RenderString(markdown.New(markdown.Normalize(true)), x)
	require.NoError(t, err)
	assert.Contains(t, got, "Heading")
	assert.Contains(t, got, "Some text.")
}

func TestRender_MacroRoundTrip(t *testing.T) {
	macros := []block.Block{
		block.NewMacro("box", listener.NewParameters("title", "A \"quoted\" title"), listener.Content("first\n\nsecond"), false),
		block.NewParagraph([]block.Block{
			block.NewWord("inline"),
			block.NewSpace(),
			block.NewMacro("info", nil, listener.Content("note"), true),
		}, nil),
	}
	out, err := renderer.RenderString(markdown.New(), block.NewXDOM(macros, nil))
	require.NoError(t, err)

	x, err := parser.ParseString(mdparser.New(), out)
	require.NoError(t, err)

	var children []block.Block
	for _, c := range x.Children() {
		children = append(children, c.Clone(nil))
	}
	want := block.NewXDOM(macros, nil)
	got := block.NewXDOM(children, nil)
	assert.True(t, block.Equal(want, got), block.Diff(want, got))
}
