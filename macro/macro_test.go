package macro_test

import (
	"testing"
	"time"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/macro"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testParameters struct {
	Title    string        `param:"title,mandatory" description:"The title"`
	MaxDepth int           `description:"Maximum depth"`
	Numbered bool          `param:"numbered"`
	Tags     []string      `param:"tags"`
	Timeout  time.Duration `param:"timeout"`
	Scope    string        `param:",mandatory"`
	Ignored  string        `param:"-"`
	internal string
}

func (p *testParameters) Validate() error {
	if p.MaxDepth < 0 {
		return errors.New("max depth must be positive")
	}
	return nil
}

type testMacro struct {
	priority int
	inline   bool
}

var testDescriptor = &macro.Descriptor{
	ID:             "test",
	Name:           "Test",
	SupportsInline: true,
	NewParameters: func() interface{} {
		return &testParameters{MaxDepth: 6}
	},
}

func (m testMacro) Descriptor() *macro.Descriptor { return testDescriptor }
func (m testMacro) Priority() int                 { return m.priority }
func (m testMacro) Execute(params interface{}, content *string, ctx *macro.Context) ([]block.Block, error) {
	return block.Text(params.(*testParameters).Title), nil
}

func TestDescriptor_Parameters(t *testing.T) {
	descs := testDescriptor.Parameters()
	require.Len(t, descs, 6)

	ids := make([]string, len(descs))
	for i, d := range descs {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"title", "max_depth", "numbered", "tags", "timeout", "scope"}, ids)
	assert.True(t, descs[0].Mandatory)
	assert.Equal(t, "The title", descs[0].Description)
	assert.Equal(t, "6", descs[1].Default)
	assert.False(t, descs[1].Mandatory)
	assert.True(t, descs[5].Mandatory)
}

func TestPopulate(t *testing.T) {
	raw := listener.NewParameters(
		"TITLE", "Hello",
		"maxDepth", "3",
		"numbered", "true",
		"tags", "a,b",
		"timeout", "1m",
		"scope", "local",
		"unknown", "ignored",
	)
	params, err := macro.Populate(testDescriptor, raw)
	require.NoError(t, err)
	assert.Equal(t, &testParameters{
		Title:    "Hello",
		MaxDepth: 3,
		Numbered: true,
		Tags:     []string{"a", "b"},
		Timeout:  time.Minute,
		Scope:    "local",
	}, params)
}

func TestPopulate_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		raw       *listener.Parameters
		parameter string
		mandatory bool
	}{
		{name: "missing mandatory", raw: listener.NewParameters("scope", "x"), parameter: "title", mandatory: true},
		{name: "missing untagged mandatory", raw: listener.NewParameters("title", "x"), parameter: "scope", mandatory: true},
		{name: "invalid int", raw: listener.NewParameters("title", "x", "scope", "y", "max_depth", "deep")},
		{name: "failed validation", raw: listener.NewParameters("title", "x", "scope", "y", "max_depth", "-1")},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := macro.Populate(testDescriptor, tc.raw)
			require.Error(t, err)
			var perr *macro.ParameterError
			require.True(t, errors.As(err, &perr), "got %T", err)
			assert.Equal(t, "test", perr.Macro)
			assert.Equal(t, tc.parameter, perr.Parameter)
			assert.Equal(t, tc.mandatory, errors.Is(err, macro.ErrMandatoryParameter))
		})
	}
}

func TestPopulate_NoParameters(t *testing.T) {
	params, err := macro.Populate(&macro.Descriptor{ID: "none"}, listener.NewParameters("a", "b"))
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestMapRegistry(t *testing.T) {
	r := macro.NewMapRegistry()
	generic := testMacro{priority: 1}
	markdownOnly := testMacro{priority: 2}
	r.Register(generic)
	r.Register(markdownOnly, syntax.Markdown12)

	m, err := r.Macro("test", syntax.Plain10)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Priority())

	m, err = r.Macro("test", syntax.Markdown12)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Priority())

	_, err = r.Macro("missing", syntax.Markdown12)
	var nf *macro.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.ID)
	assert.True(t, errors.Is(err, macro.ErrMacroNotFound))
	assert.Equal(t, `unknown macro "missing" for syntax markdown/1.2`, err.Error())
}

func TestMapRegistry_Factory(t *testing.T) {
	r := macro.NewMapRegistry()
	calls := 0
	r.RegisterFactory("lazy", func() (macro.Macro, error) {
		calls++
		return testMacro{priority: 7}, nil
	})
	r.RegisterFactory("broken", func() (macro.Macro, error) {
		return nil, errors.New("no script")
	})

	for i := 0; i < 2; i++ {
		m, err := r.Macro("lazy", syntax.Plain10)
		require.NoError(t, err)
		assert.Equal(t, 7, m.Priority())
	}
	assert.Equal(t, 1, calls)

	_, err := r.Macro("broken", syntax.Plain10)
	var le *macro.LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "no script", errors.Cause(err).Error())
	assert.False(t, errors.Is(err, macro.ErrMacroNotFound))

	assert.Equal(t, []string{"broken", "lazy"}, r.IDs(syntax.Plain10))
	r.Unregister("broken")
	assert.Equal(t, []string{"lazy"}, r.IDs(syntax.Markdown12))
}

func TestToInline(t *testing.T) {
	words := block.Text("a b")
	blocks := macro.ToInline([]block.Block{block.NewParagraph(words, nil)})
	assert.Equal(t, words, blocks)

	two := []block.Block{block.NewParagraph(nil, nil), block.NewParagraph(nil, nil)}
	assert.Equal(t, two, macro.ToInline(two))
}
