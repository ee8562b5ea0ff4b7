package builtin

import (
	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/macro"
	"github.com/pkg/errors"
)

// TOCPriority makes the toc macro run after the macros generating headers.
const TOCPriority = 2000

type TOCParameters struct {
	Start    int  `param:"start" description:"The level of the shallowest header listed"`
	Depth    int  `param:"depth" description:"The level of the deepest header listed"`
	Numbered bool `param:"numbered" description:"Use numbered lists"`
}

func (p *TOCParameters) Validate() error {
	if p.Start < 1 || p.Start > 6 {
		return errors.Errorf("start must be between 1 and 6, got %d", p.Start)
	}
	if p.Depth < p.Start {
		return errors.Errorf("depth %d is lower than start %d", p.Depth, p.Start)
	}
	return nil
}

// TOCMacro generates a table of contents from the headers of the document.
type TOCMacro struct{}

var tocDescriptor = &macro.Descriptor{
	ID:          "toc",
	Name:        "Table Of Contents",
	Description: "Generates a table of contents listing the document headers.",
	NewParameters: func() interface{} {
		return &TOCParameters{Start: 1, Depth: 6}
	},
}

func (TOCMacro) Descriptor() *macro.Descriptor { return tocDescriptor }
func (TOCMacro) Priority() int                 { return TOCPriority }

func (TOCMacro) Execute(params interface{}, _ *string, ctx *macro.Context) ([]block.Block, error) {
	p := params.(*TOCParameters)
	var root block.Block
	if ctx.XDOM != nil {
		root = ctx.XDOM
	} else {
		root = ctx.CurrentMacroBlock.Root()
	}

	typ := listener.ListBulleted
	if p.Numbered {
		typ = listener.ListNumbered
	}

	var headers []*block.Header
	for _, b := range root.GetBlocks(block.TypeMatcher(&block.Header{}), block.Descendant) {
		h := b.(*block.Header)
		if int(h.Level) >= p.Start && int(h.Level) <= p.Depth {
			headers = append(headers, h)
		}
	}
	if len(headers) == 0 {
		return nil, nil
	}

	top := block.NewList(typ, nil, nil)
	stack := []*block.List{top}
	for _, h := range headers {
		depth := int(h.Level) - p.Start
		for len(stack)-1 > depth {
			stack = stack[:len(stack)-1]
		}
		for len(stack)-1 < depth {
			current := stack[len(stack)-1]
			var item block.Block
			if children := current.Children(); len(children) > 0 {
				item = children[len(children)-1]
			} else {
				item = block.NewListItem(nil, nil)
				current.AddChild(item)
			}
			sub := block.NewList(typ, nil, nil)
			item.AddChild(sub)
			stack = append(stack, sub)
		}
		stack[len(stack)-1].AddChild(block.NewListItem([]block.Block{entry(h)}, nil))
	}
	return []block.Block{top}, nil
}

// entry links to h, labelled with the text of h.
func entry(h *block.Header) block.Block {
	label := h.Clone(block.PlainTextFilter).Children()
	ref := listener.ResourceReference{Type: listener.ResourceDocument, Reference: "#" + h.ID}
	return block.NewLink(ref, false, append([]block.Block(nil), label...), nil)
}
