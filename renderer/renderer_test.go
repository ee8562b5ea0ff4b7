package renderer_test

import (
	"testing"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/renderer"
	"github.com/influxdata/xdom/renderer/event"
	"github.com/influxdata/xdom/renderer/markdown"
	"github.com/influxdata/xdom/renderer/plain"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := renderer.NewRegistry(plain.New(), event.New(), markdown.New())
	assert.Equal(t, []syntax.Syntax{syntax.Event10, syntax.Markdown12, syntax.Plain10}, r.Syntaxes())

	rr, err := r.Renderer(syntax.Plain10)
	require.NoError(t, err)
	out, err := renderer.RenderString(rr, block.NewParagraph(block.Text("Hello world"), nil))
	require.NoError(t, err)
	assert.Equal(t, "Hello world\n", out)

	_, err = r.Renderer(syntax.XHTML10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, renderer.ErrUnknownSyntax))
}

func TestConfig_Validate(t *testing.T) {
	c := renderer.NewConfig()
	assert.NoError(t, c.Validate())
	assert.Equal(t, syntax.Event10, c.DefaultSyntax)

	c.DefaultSyntax = syntax.Syntax{}
	assert.EqualError(t, c.Validate(), "must specify a default output syntax")
}
