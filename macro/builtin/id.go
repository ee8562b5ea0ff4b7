package builtin

import (
	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/macro"
)

type IDParameters struct {
	Name string `param:"name,mandatory" description:"The anchor name"`
}

// IDMacro places an anchor in the document.
type IDMacro struct{}

var idDescriptor = &macro.Descriptor{
	ID:             "id",
	Name:           "Id",
	Description:    "Allows to insert an anchor which can be linked to.",
	SupportsInline: true,
	NewParameters:  func() interface{} { return new(IDParameters) },
}

func (IDMacro) Descriptor() *macro.Descriptor { return idDescriptor }
func (IDMacro) Priority() int                 { return macro.DefaultPriority }

func (IDMacro) Execute(params interface{}, _ *string, _ *macro.Context) ([]block.Block, error) {
	p := params.(*IDParameters)
	return []block.Block{block.NewID(p.Name)}, nil
}
