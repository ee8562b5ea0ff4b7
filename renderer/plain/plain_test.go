package plain_test

import (
	"testing"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/renderer"
	"github.com/influxdata/xdom/renderer/plain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		name   string
		blocks []block.Block
		want   string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name: "blocks and lists",
			blocks: []block.Block{
				block.NewHeader(listener.Level1, "title", block.Text("Title"), nil),
				block.NewParagraph(block.Text("Hello world."), nil),
				block.NewList(listener.ListBulleted, []block.Block{
					block.NewListItem(block.Text("a"), nil),
					block.NewListItem([]block.Block{
						block.NewWord("b"),
						block.NewList(listener.ListNumbered, []block.Block{
							block.NewListItem(block.Text("c"), nil),
							block.NewListItem(block.Text("d"), nil),
						}, nil),
					}, nil),
				}, nil),
				block.NewHorizontalLine(nil),
				block.NewParagraph([]block.Block{
					block.NewLink(listener.NewResourceReference("http://x.org"), true, nil, nil),
					block.NewSpace(),
					block.NewLink(listener.NewResourceReference("http://y.org"), false, block.Text("label"), nil),
				}, nil),
			},
			want: "Title\n\nHello world.\n\n- a\n- b\n  1. c\n  2. d\n\n----\n\nhttp://x.org label\n",
		},
		{
			name: "quotation table and code",
			blocks: []block.Block{
				block.NewQuotation([]block.Block{
					block.NewQuotationLine(block.Text("q1")),
					block.NewQuotationLine(block.Text("q2")),
				}, nil),
				block.NewTable([]block.Block{
					block.NewTableRow([]block.Block{
						block.NewTableHeadCell(block.Text("h1"), nil),
						block.NewTableHeadCell(block.Text("h2"), nil),
					}, nil),
					block.NewTableRow([]block.Block{
						block.NewTableCell(block.Text("1"), nil),
						block.NewTableCell(block.Text("2"), nil),
					}, nil),
				}, nil),
				block.NewVerbatim("x := 1", false, nil),
			},
			want: "> q1\n> q2\n\nh1\th2\n1\t2\n\nx := 1\n",
		},
		{
			name: "loose list items",
			blocks: []block.Block{
				block.NewList(listener.ListBulleted, []block.Block{
					block.NewListItem([]block.Block{
						block.NewParagraph(block.Text("one"), nil),
						block.NewParagraph(block.Text("more"), nil),
					}, nil),
				}, nil),
			},
			want: "- one\nmore\n",
		},
		{
			name: "macro output",
			blocks: []block.Block{
				block.NewMacroMarker("info", nil, listener.Content("x"), false, []block.Block{
					block.NewGroup([]block.Block{block.NewParagraph(block.Text("boxed"), nil)}, nil),
				}),
				block.NewMacro("unexpanded", nil, nil, false),
				block.NewParagraph(block.Text("after"), nil),
			},
			want: "boxed\n\nafter\n",
		},
	}
	r := plain.New()
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := renderer.RenderString(r, block.NewXDOM(tc.blocks, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
