package builtin

import (
	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/macro"
)

// CommentMacro hides its content from the output.
type CommentMacro struct{}

var commentDescriptor = &macro.Descriptor{
	ID:             "comment",
	Name:           "Comment",
	Description:    "Allows to write comments that are not rendered.",
	SupportsInline: true,
	Content:        &macro.ContentDescriptor{Description: "The comment"},
}

func (CommentMacro) Descriptor() *macro.Descriptor { return commentDescriptor }
func (CommentMacro) Priority() int                 { return macro.DefaultPriority }

func (CommentMacro) Execute(interface{}, *string, *macro.Context) ([]block.Block, error) {
	return nil, nil
}
