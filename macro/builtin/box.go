package builtin

import (
	"strings"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/macro"
	"github.com/pkg/errors"
)

type BoxParameters struct {
	Title    string `param:"title" description:"The title of the box"`
	CSSClass string `param:"cssClass" description:"Additional classes of the box"`
	Width    string `param:"width"`
}

// BoxMacro puts its content, parsed in the syntax of the document, in a box.
type BoxMacro struct {
	d     *macro.Descriptor
	class string
}

// NewBoxMacro creates a box macro registered under id whose box has the given class.
func NewBoxMacro(id, class string) *BoxMacro {
	return &BoxMacro{
		d: &macro.Descriptor{
			ID:             id,
			Name:           strings.ToUpper(id[:1]) + id[1:],
			Description:    "Draws a box around the content.",
			SupportsInline: true,
			Content:        &macro.ContentDescriptor{Description: "The content of the box", Mandatory: true},
			NewParameters:  func() interface{} { return new(BoxParameters) },
		},
		class: class,
	}
}

func (m *BoxMacro) Descriptor() *macro.Descriptor { return m.d }
func (m *BoxMacro) Priority() int                 { return macro.DefaultPriority }

func (m *BoxMacro) Execute(params interface{}, content *string, ctx *macro.Context) ([]block.Block, error) {
	p := params.(*BoxParameters)
	text, err := requireContent(m.d, content)
	if err != nil {
		return nil, err
	}
	if ctx.Parser == nil {
		return nil, errors.Errorf("no content parser available for macro %q", m.d.ID)
	}
	children, err := ctx.Parser.Parse(text, ctx, true, ctx.Inline)
	if err != nil {
		return nil, err
	}

	class := m.class
	if p.CSSClass != "" {
		class += " " + p.CSSClass
	}
	boxParams := listener.NewParameters("class", class)
	if p.Width != "" {
		boxParams.Set("style", "width:"+p.Width)
	}

	if ctx.Inline {
		return []block.Block{block.NewFormat(listener.FormatNone, children, boxParams)}, nil
	}
	if p.Title != "" {
		title := block.NewParagraph([]block.Block{block.NewFormat(listener.FormatBold, block.Text(p.Title), nil)}, nil)
		children = append([]block.Block{title}, children...)
	}
	return []block.Block{block.NewGroup(children, boxParams)}, nil
}
