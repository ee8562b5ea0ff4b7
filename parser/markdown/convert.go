package markdown

import (
	"strings"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/syntax"
	"github.com/russross/blackfriday/v2"
)

// converter maps a blackfriday AST to blocks.
type converter struct {
	ids *block.IDGenerator
}

func (c *converter) children(n *blackfriday.Node) []block.Block {
	var blocks []block.Block
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Type == blackfriday.Text {
			// Adjacent text nodes are joined so that macro tags split by the inline parser are found.
			var sb strings.Builder
			for ; child.Next != nil && child.Next.Type == blackfriday.Text; child = child.Next {
				sb.Write(child.Literal)
			}
			sb.Write(child.Literal)
			blocks = append(blocks, inlineText(sb.String())...)
			continue
		}
		blocks = append(blocks, c.convert(child)...)
	}
	return blocks
}

func (c *converter) convert(n *blackfriday.Node) []block.Block {
	switch n.Type {
	case blackfriday.Paragraph:
		return []block.Block{block.NewParagraph(c.children(n), nil)}
	case blackfriday.Heading:
		children := c.children(n)
		return []block.Block{block.NewHeader(listener.HeaderLevel(n.Level), c.headerID(n, children), children, nil)}
	case blackfriday.BlockQuote:
		return []block.Block{c.quotation(n)}
	case blackfriday.List:
		return []block.Block{c.list(n)}
	case blackfriday.CodeBlock:
		var params *listener.Parameters
		if info := strings.TrimSpace(string(n.Info)); info != "" {
			params = listener.NewParameters("language", info)
		}
		return []block.Block{block.NewVerbatim(strings.TrimSuffix(string(n.Literal), "\n"), false, params)}
	case blackfriday.Code:
		return []block.Block{block.NewVerbatim(string(n.Literal), true, nil)}
	case blackfriday.HorizontalRule:
		return []block.Block{block.NewHorizontalLine(nil)}
	case blackfriday.Emph:
		return []block.Block{block.NewFormat(listener.FormatItalic, c.children(n), nil)}
	case blackfriday.Strong:
		return []block.Block{block.NewFormat(listener.FormatBold, c.children(n), nil)}
	case blackfriday.Del:
		return []block.Block{block.NewFormat(listener.FormatStrikedout, c.children(n), nil)}
	case blackfriday.Link:
		return []block.Block{c.link(n)}
	case blackfriday.Image:
		return []block.Block{c.image(n)}
	case blackfriday.Text:
		return inlineText(string(n.Literal))
	case blackfriday.Softbreak, blackfriday.Hardbreak:
		return []block.Block{block.NewNewLine()}
	case blackfriday.HTMLBlock:
		return []block.Block{block.NewRaw(strings.TrimSuffix(string(n.Literal), "\n"), syntax.HTML50)}
	case blackfriday.HTMLSpan:
		return []block.Block{block.NewRaw(string(n.Literal), syntax.HTML50)}
	case blackfriday.Table:
		return []block.Block{block.NewTable(c.tableRows(n), nil)}
	default:
		return c.children(n)
	}
}

// headerID returns the explicit id of a heading, or one generated from its text.
func (c *converter) headerID(n *blackfriday.Node, children []block.Block) string {
	if n.HeadingID != "" {
		c.ids.Reserve(n.HeadingID)
		return n.HeadingID
	}
	label := block.NewParagraph(nil, nil)
	for _, child := range children {
		label.AddChild(child.Clone(block.PlainTextFilter))
	}
	return c.ids.GenerateUniqueID("", slug(plainText(label)))
}

func slug(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), "-"))
}

func plainText(b block.Block) string {
	var sb strings.Builder
	for _, c := range b.GetBlocks(block.AnyMatcher, block.Descendant) {
		switch c := c.(type) {
		case *block.Word:
			sb.WriteString(c.Text)
		case *block.Space, *block.NewLine:
			sb.WriteByte(' ')
		case *block.SpecialSymbol:
			sb.WriteRune(c.Symbol)
		case *block.Verbatim:
			sb.WriteString(c.Content)
		}
	}
	return sb.String()
}

func (c *converter) quotation(n *blackfriday.Node) block.Block {
	var lines []block.Block
	for child := n.FirstChild; child != nil; child = child.Next {
		var content []block.Block
		if child.Type == blackfriday.Paragraph {
			content = c.children(child)
		} else {
			content = c.convert(child)
		}
		lines = append(lines, block.NewQuotationLine(content))
	}
	return block.NewQuotation(lines, nil)
}

func (c *converter) list(n *blackfriday.Node) block.Block {
	if n.ListFlags&blackfriday.ListTypeDefinition != 0 {
		var items []block.Block
		for item := n.FirstChild; item != nil; item = item.Next {
			if item.ListFlags&blackfriday.ListTypeTerm != 0 {
				items = append(items, block.NewDefinitionTerm(c.itemContent(item, true)))
			} else {
				items = append(items, block.NewDefinitionDescription(c.itemContent(item, n.Tight)))
			}
		}
		return block.NewDefinitionList(items, nil)
	}

	typ := listener.ListBulleted
	if n.ListFlags&blackfriday.ListTypeOrdered != 0 {
		typ = listener.ListNumbered
	}
	var items []block.Block
	for item := n.FirstChild; item != nil; item = item.Next {
		items = append(items, block.NewListItem(c.itemContent(item, n.Tight), nil))
	}
	return block.NewList(typ, items, nil)
}

// itemContent converts the children of a list item; the paragraphs of tight lists are unwrapped.
func (c *converter) itemContent(item *blackfriday.Node, tight bool) []block.Block {
	var blocks []block.Block
	for child := item.FirstChild; child != nil; child = child.Next {
		if tight && child.Type == blackfriday.Paragraph {
			blocks = append(blocks, c.children(child)...)
			continue
		}
		blocks = append(blocks, c.convert(child)...)
	}
	return blocks
}

func (c *converter) link(n *blackfriday.Node) block.Block {
	dest := string(n.Destination)
	ref := listener.NewResourceReference(dest)
	children := c.children(n)

	var params *listener.Parameters
	if title := string(n.Title); title != "" {
		params = listener.NewParameters("title", title)
	}
	freeStanding := false
	if len(children) > 0 {
		label := block.NewParagraph(nil, nil)
		for _, child := range children {
			label.AddChild(child.Clone(nil))
		}
		freeStanding = plainText(label) == dest || "mailto:"+plainText(label) == dest
	}
	if freeStanding {
		children = nil
	}
	return block.NewLink(ref, freeStanding, children, params)
}

func (c *converter) image(n *blackfriday.Node) block.Block {
	ref := listener.NewResourceReference(string(n.Destination))
	params := listener.NewParameters()
	label := block.NewParagraph(c.children(n), nil)
	if alt := plainText(label); alt != "" {
		params.Set("alt", alt)
	}
	if title := string(n.Title); title != "" {
		params.Set("title", title)
	}
	if params.Len() == 0 {
		params = nil
	}
	return block.NewImage(ref, false, "", params)
}

func (c *converter) tableRows(n *blackfriday.Node) []block.Block {
	var rows []block.Block
	for section := n.FirstChild; section != nil; section = section.Next {
		for row := section.FirstChild; row != nil; row = row.Next {
			var cells []block.Block
			for cell := row.FirstChild; cell != nil; cell = cell.Next {
				if cell.IsHeader {
					cells = append(cells, block.NewTableHeadCell(c.children(cell), nil))
				} else {
					cells = append(cells, block.NewTableCell(c.children(cell), nil))
				}
			}
			rows = append(rows, block.NewTableRow(cells, nil))
		}
	}
	return rows
}
