package block_test

import (
	"strconv"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSiblings checks that sibling navigation matches the child list of parent.
func assertSiblings(t *testing.T, parent block.Block) {
	t.Helper()
	children := parent.Children()
	for i, c := range children {
		assert.True(t, c.Parent() == parent, "child %d parent", i)
		var prev, next block.Block
		if i > 0 {
			prev = children[i-1]
		}
		if i < len(children)-1 {
			next = children[i+1]
		}
		assert.True(t, c.PreviousSibling() == prev, "child %d previous sibling", i)
		assert.True(t, c.NextSibling() == next, "child %d next sibling", i)
	}
}

func assertDetached(t *testing.T, b block.Block) {
	t.Helper()
	assert.Nil(t, b.Parent())
	assert.Nil(t, b.PreviousSibling())
	assert.Nil(t, b.NextSibling())
}

func TestInsertChild(t *testing.T) {
	w1, w2 := block.NewWord("one"), block.NewWord("two")
	p := block.NewParagraph([]block.Block{w1, w2}, nil)
	assertSiblings(t, p)

	s := block.NewSpace()
	require.NoError(t, p.InsertChildBefore(s, w2))
	assert.Equal(t, []block.Block{w1, s, w2}, p.Children())
	assertSiblings(t, p)

	nl := block.NewNewLine()
	require.NoError(t, p.InsertChildAfter(nl, w2))
	assert.Equal(t, []block.Block{w1, s, w2, nl}, p.Children())
	assertSiblings(t, p)

	first := block.NewWord("zero")
	require.NoError(t, p.InsertChildAfter(first, nil))
	last := block.NewWord("last")
	require.NoError(t, p.InsertChildBefore(last, nil))
	assert.Equal(t, []block.Block{first, w1, s, w2, nl, last}, p.Children())
	assertSiblings(t, p)

	err := p.InsertChildBefore(block.NewSpace(), block.NewWord("one"))
	assert.True(t, errors.Is(err, block.ErrBlockNotFound), "got %v", err)
	assert.Len(t, p.Children(), 6)
}

func TestIndexOf(t *testing.T) {
	wb1, wb2 := block.NewWord("w1"), block.NewWord("w2")
	pb := block.NewParagraph([]block.Block{wb1, wb2}, nil)

	assert.Equal(t, 0, pb.IndexOf(pb))
	assert.Equal(t, 1, pb.IndexOf(wb1))
	assert.Equal(t, 2, pb.IndexOf(wb2))
	assert.Equal(t, -1, pb.IndexOf(block.NewWord("w1")))
}

func TestReplaceChild(t *testing.T) {
	testCases := []struct {
		replacements int
	}{
		{replacements: 0},
		{replacements: 1},
		{replacements: 2},
		{replacements: 3},
	}
	for i, tc := range testCases {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			before, existing, after := block.NewWord("before"), block.NewWord("existing"), block.NewWord("after")
			p := block.NewParagraph([]block.Block{before, existing, after}, nil)

			var replacements []block.Block
			for j := 0; j < tc.replacements; j++ {
				replacements = append(replacements, block.NewWord("r"+strconv.Itoa(j)))
			}
			require.NoError(t, p.ReplaceChild(replacements, existing))

			want := append([]block.Block{before}, replacements...)
			want = append(want, after)
			assert.Equal(t, want, p.Children())
			assertSiblings(t, p)
			assertDetached(t, existing)

			if tc.replacements > 0 {
				assert.True(t, before.NextSibling() == replacements[0])
				assert.True(t, after.PreviousSibling() == replacements[len(replacements)-1])
			} else {
				assert.True(t, before.NextSibling() == after)
			}
		})
	}
}

func TestInsertChild_Self(t *testing.T) {
	w1, w2 := block.NewWord("one"), block.NewWord("two")
	p := block.NewParagraph([]block.Block{w1, w2}, nil)

	err := p.InsertChildBefore(w2, w2)
	assert.Equal(t, block.ErrBlockNotFound, errors.Cause(err))
	err = p.InsertChildAfter(w1, w1)
	assert.Equal(t, block.ErrBlockNotFound, errors.Cause(err))

	assert.Equal(t, []block.Block{w1, w2}, p.Children())
	assertSiblings(t, p)
}

func TestReplaceChild_NotFound(t *testing.T) {
	w := block.NewWord("w")
	p := block.NewParagraph([]block.Block{w}, nil)

	err := p.ReplaceChild(nil, block.NewWord("w"))
	require.Error(t, err)
	assert.Equal(t, block.ErrBlockNotFound, errors.Cause(err))
	assert.Equal(t, []block.Block{w}, p.Children())
}

func TestRemoveBlock(t *testing.T) {
	a, b, c := block.NewWord("a"), block.NewSpace(), block.NewWord("c")
	p := block.NewParagraph([]block.Block{a, b, c}, nil)

	require.NoError(t, p.RemoveBlock(b))
	assert.Equal(t, []block.Block{a, c}, p.Children())
	assertSiblings(t, p)
	assertDetached(t, b)
}

func TestSetChildren(t *testing.T) {
	a, b := block.NewWord("a"), block.NewWord("b")
	p := block.NewParagraph([]block.Block{a}, nil)

	c := block.NewWord("c")
	p.SetChildren([]block.Block{b, c})
	assertDetached(t, a)
	assert.Equal(t, []block.Block{b, c}, p.Children())
	assertSiblings(t, p)
}

func TestAddChild_MovesBetweenParents(t *testing.T) {
	w := block.NewWord("w")
	p1 := block.NewParagraph([]block.Block{w}, nil)
	p2 := block.NewParagraph(nil, nil)

	p2.AddChild(w)
	assert.Empty(t, p1.Children())
	assert.True(t, w.Parent() == p2)
	assert.Equal(t, []block.Block{w}, p2.Children())
}

func TestParameters(t *testing.T) {
	params := listener.NewParameters("a", "1")
	p := block.NewParagraph(nil, params)
	params.Set("a", "changed")
	assert.Equal(t, "1", p.Parameter("a"))

	p.SetParameter("b", "2")
	assert.Equal(t, []string{"a", "b"}, p.Parameters().Keys())

	replacement := listener.NewParameters("c", "3")
	p.SetParameters(replacement)
	replacement.Set("c", "changed")
	assert.Equal(t, "3", p.Parameter("c"))
	assert.Equal(t, "", p.Parameter("a"))
}

func TestClone(t *testing.T) {
	md := listener.NewMetaData()
	md.Add(listener.MetaDataSyntax, "markdown/1.2")
	content := listener.Content("content")
	w := block.NewWord("word")
	p := block.NewParagraph([]block.Block{w, block.NewMacro("m", listener.NewParameters("k", "v"), content, true)}, listener.NewParameters("class", "c"))
	x := block.NewXDOM([]block.Block{p}, md)
	x.IDGenerator().GenerateUniqueID("H", "title")

	c := x.Clone(nil).(*block.XDOM)
	assert.False(t, c == x)
	if !block.Equal(x, c) {
		t.Fatalf("unexpected clone -want/+got:\n%s", block.Diff(x, c))
	}

	cp := c.Children()[0]
	assert.False(t, cp == p)
	assert.False(t, cp.Parameters() == p.Parameters())
	assert.True(t, cp.Parameters().Equal(p.Parameters()))
	assert.True(t, cp.Parent() == c)

	cp.SetParameter("class", "other")
	assert.Equal(t, "c", p.Parameter("class"))

	c.MetaData().Add("title", "clone")
	_, ok := x.MetaData().Get("title")
	assert.False(t, ok)

	cm := cp.Children()[1].(*block.Macro)
	*cm.Content = "changed"
	assert.Equal(t, "content", *content)

	assert.Equal(t, "Htitle-1", c.IDGenerator().GenerateUniqueID("H", "title"))
	assert.Equal(t, "Htitle-1", x.IDGenerator().GenerateUniqueID("H", "title"))
}

func TestClone_Filter(t *testing.T) {
	link := block.NewLink(listener.NewResourceReference("https://example.com"), true, nil, nil)
	p := block.NewParagraph([]block.Block{
		block.NewFormat(listener.FormatBold, block.Text("Hello world"), nil),
		block.NewSpecialSymbol('!'),
		block.NewSpace(),
		link,
		block.NewMacro("toc", nil, nil, true),
	}, nil)

	c := p.Clone(block.PlainTextFilter)

	want := block.NewParagraph(append(block.Text("Hello world! "), block.Text("https://example.com")...), nil)
	if !block.Equal(want, c) {
		t.Errorf("unexpected filtered clone -want/+got:\n%s", block.Diff(want, c))
	}
	assert.Len(t, p.Children(), 5, "original tree must not change")
	assert.Len(t, p.Children()[0].Children(), 3)
}

func tree() (x *block.XDOM, p1, p2 *block.Paragraph, marker *block.MacroMarker, macro *block.Macro) {
	macro = block.NewMacro("inner", nil, nil, true)
	marker = block.NewMacroMarker("outer", nil, nil, false, []block.Block{
		block.NewParagraph([]block.Block{block.NewWord("m"), macro}, nil),
	})
	p1 = block.NewParagraph([]block.Block{block.NewWord("a"), block.NewSpace(), block.NewWord("b")}, nil)
	p2 = block.NewParagraph([]block.Block{block.NewWord("c")}, listener.NewParameters("id", "p2"))
	x = block.NewXDOM([]block.Block{p1, marker, p2}, nil)
	return
}

func words(blocks []block.Block) []string {
	var ws []string
	for _, b := range blocks {
		if w, ok := b.(*block.Word); ok {
			ws = append(ws, w.Text)
		}
	}
	return ws
}

func TestGetBlocks(t *testing.T) {
	x, p1, p2, marker, macro := tree()
	wordMatcher := block.TypeMatcher(&block.Word{})

	assert.Equal(t, []string{"a", "b", "m", "c"}, words(x.GetBlocks(wordMatcher, block.Descendant)))
	assert.Equal(t, []string{"c"}, words(p2.GetBlocks(wordMatcher, block.Child)))
	assert.Equal(t, []string{"m", "c"}, words(p1.GetBlocks(wordMatcher, block.Following)))
	assert.Equal(t, []string{"m", "a", "b"}, words(p2.GetBlocks(wordMatcher, block.Preceding)))

	ancestors := macro.GetBlocks(block.AnyMatcher, block.Ancestor)
	require.Len(t, ancestors, 3)
	assert.True(t, ancestors[1] == marker)
	assert.True(t, ancestors[2] == x)

	assert.True(t, macro.GetFirstBlock(block.MacroMarkerMatcher(""), block.Ancestor) == marker)
	assert.Nil(t, marker.GetFirstBlock(block.MacroMarkerMatcher(""), block.Ancestor))
	assert.True(t, marker.GetFirstBlock(block.MacroMarkerMatcher("outer"), block.AncestorOrSelf) == marker)
	assert.True(t, x.GetFirstBlock(block.MacroMatcher("inner"), block.Descendant) == macro)
	assert.Nil(t, x.GetFirstBlock(block.MacroMatcher("missing"), block.DescendantOrSelf))
	assert.True(t, x.GetFirstBlock(block.ParameterMatcher("id", "p2"), block.Descendant) == p2)

	siblings := p2.GetBlocks(block.AnyMatcher, block.PrecedingSibling)
	assert.Equal(t, []block.Block{marker, p1}, siblings)
	siblings = p1.GetBlocks(block.AnyMatcher, block.FollowingSibling)
	assert.Equal(t, []block.Block{marker, p2}, siblings)

	assert.Equal(t, []block.Block{x}, p1.GetBlocks(block.AnyMatcher, block.Parent))
	assert.Equal(t, []block.Block{p1}, p1.GetBlocks(block.AnyMatcher, block.Self))

	both := block.And(wordMatcher, block.MatcherFunc(func(b block.Block) bool { return b.Parent() == p1 }))
	assert.Equal(t, []string{"a", "b"}, words(x.GetBlocks(both, block.Descendant)))
	either := block.Or(block.MacroMatcher(""), block.MacroMarkerMatcher(""))
	assert.Len(t, x.GetBlocks(either, block.Descendant), 2)
	assert.True(t, p1.Root() == x)
}

func TestBuilder_RoundTrip(t *testing.T) {
	md := listener.NewMetaData()
	md.Add(listener.MetaDataSource, "doc.md")
	x := block.NewXDOM([]block.Block{
		block.NewHeader(listener.Level1, "Htitle", block.Text("Title"), nil),
		block.NewParagraph(block.Text("Some text."), listener.NewParameters("class", "p")),
		block.NewList(listener.ListBulleted, []block.Block{
			block.NewListItem([]block.Block{block.NewWord("one")}, nil),
		}, nil),
		block.NewTable([]block.Block{
			block.NewTableRow([]block.Block{block.NewTableHeadCell(block.Text("h"), nil)}, nil),
			block.NewTableRow([]block.Block{block.NewTableCell(block.Text("c"), nil)}, nil),
		}, nil),
		block.NewMacroMarker("box", listener.NewParameters("title", "t"), listener.Content("x"), false, []block.Block{
			block.NewGroup([]block.Block{block.NewVerbatim("code", false, nil)}, nil),
		}),
		block.NewMetaData(md, []block.Block{block.NewRaw("<hr/>", syntax.HTML50)}),
		block.NewParagraph([]block.Block{
			block.NewLink(listener.NewResourceReference("https://example.com"), false, block.Text("label"), nil),
			block.NewImage(listener.NewResourceReference("img.png"), true, "img", nil),
			block.NewMacro("id", listener.NewParameters("name", "a"), nil, true),
			block.NewID("anchor"),
		}, nil),
		block.NewHorizontalLine(nil),
		block.NewEmptyLines(2),
	}, md)

	built := block.Build(x)
	require.NotNil(t, built)
	if !block.Equal(x, built) {
		t.Fatalf("unexpected round trip -want/+got:\n%s\n%s", block.Diff(x, built), spew.Sdump(block.Events(built)))
	}
}

func TestBuilder_ImplicitDocument(t *testing.T) {
	b := block.NewBuilder()
	b.BeginParagraph(nil)
	b.OnWord("x")
	b.EndParagraph(nil)

	x := b.XDOM()
	require.NotNil(t, x)
	require.Len(t, x.Children(), 1)
	assert.Equal(t, []string{"x"}, words(x.Children()[0].Children()))
}

func TestIDGenerator(t *testing.T) {
	g := block.NewIDGenerator()
	assert.Equal(t, "Hhelloworld", g.GenerateUniqueID("H", "hello world!"))
	assert.Equal(t, "Hhelloworld-1", g.GenerateUniqueID("H", "hello world"))
	assert.Equal(t, "Hhelloworld-2", g.GenerateUniqueID("H", "hello, world"))
	assert.Equal(t, "id", g.GenerateUniqueID("", "!!"))
	assert.Equal(t, "id-1", g.GenerateUniqueID("", ""))
	assert.Equal(t, "Ha-b_c.d:e", g.GenerateUniqueID("H", "a-b_c.d:e"))
}

func TestText(t *testing.T) {
	blocks := block.Text("Hi, you\r\n\tx")
	want := []block.Block{
		block.NewWord("Hi"),
		block.NewSpecialSymbol(','),
		block.NewSpace(),
		block.NewWord("you"),
		block.NewNewLine(),
		block.NewSpace(),
		block.NewWord("x"),
	}
	got := block.NewParagraph(blocks, nil)
	if !block.Equal(block.NewParagraph(want, nil), got) {
		t.Errorf("unexpected text blocks -want/+got:\n%s", block.Diff(block.NewParagraph(want, nil), got))
	}
}
