package plain_test

import (
	"testing"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/parser"
	"github.com/influxdata/xdom/parser/plain"
	"github.com/influxdata/xdom/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []block.Block
	}{
		{
			name:  "empty",
			input: "\n \n",
		},
		{
			name:  "single paragraph",
			input: "Hello world!\nSecond line\n",
			want: []block.Block{
				block.NewParagraph(block.Text("Hello world!\nSecond line"), nil),
			},
		},
		{
			name:  "paragraphs",
			input: "a b\r\n\r\n  \n\nc\n\n",
			want: []block.Block{
				block.NewParagraph(block.Text("a b"), nil),
				block.NewParagraph(block.Text("c"), nil),
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			x, err := parser.ParseString(plain.New(), tc.input)
			require.NoError(t, err)
			want := block.NewXDOM(tc.want, listener.NewMetaData())
			want.MetaData().Add(listener.MetaDataSyntax, syntax.Plain10.String())
			assert.True(t, block.Equal(want, x), block.Diff(want, x))
		})
	}
}
