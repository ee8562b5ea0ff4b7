// Package event renders block trees as one line per listener event.
//
// The output is stable and is used as the textual form of trees in tests:
//
//	beginDocument
//	beginParagraph
//	onWord [Hello]
//	onSpace
//	onWord [world]
//	endParagraph
//	endDocument
package event

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
)

type Renderer struct{}

func New() *Renderer {
	return new(Renderer)
}

func (*Renderer) Syntax() syntax.Syntax { return syntax.Event10 }

func (*Renderer) Render(b block.Block, w io.Writer) error {
	bw := bufio.NewWriter(w)
	var err error
	b.Traverse(NewListener(func(line string) {
		if err != nil {
			return
		}
		if _, err = bw.WriteString(line); err == nil {
			err = bw.WriteByte('\n')
		}
	}))
	if err != nil {
		return errors.Wrap(err, "failed to write events")
	}
	return errors.Wrap(bw.Flush(), "failed to write events")
}

// NewListener returns a listener calling write with the line of every event.
func NewListener(write func(line string)) listener.Listener {
	return listener.Func(func(e listener.Event) {
		write(Line(e))
	})
}

// String renders b as event lines.
func String(b block.Block) string {
	var sb strings.Builder
	b.Traverse(NewListener(func(line string) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}))
	return sb.String()
}

// Line formats e.
func Line(e listener.Event) string {
	name := e.Type.String()
	var args []string
	switch e.Type {
	case listener.BeginMacroMarker, listener.EndMacroMarker, listener.OnMacro:
		// id, params, content, inline
		name += inlineSuffix(e.Args[3].(bool))
		args = append(args, bracket(e.Args[0]))
		args = append(args, optional(e.Args[1], e.Args[2])...)
	case listener.OnVerbatim:
		// content, inline, params
		name += inlineSuffix(e.Args[1].(bool))
		args = append(args, bracket(e.Args[0]))
		args = append(args, optional(e.Args[2])...)
	case listener.OnSpecialSymbol:
		args = append(args, fmt.Sprintf("[%c]", e.Args[0].(rune)))
	case listener.BeginHeader, listener.EndHeader:
		args = append(args, fmt.Sprintf("[%d, %s]", int(e.Args[0].(listener.HeaderLevel)), e.Args[1]))
		args = append(args, optional(e.Args[2])...)
	default:
		for _, arg := range e.Args {
			args = append(args, optional(arg)...)
		}
	}
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func inlineSuffix(inline bool) string {
	if inline {
		return "Inline"
	}
	return "Standalone"
}

func bracket(v interface{}) string {
	return fmt.Sprintf("[%v]", v)
}

// optional formats the arguments that are set, skipping empty parameters, metadata and content.
func optional(values ...interface{}) []string {
	var args []string
	for _, v := range values {
		switch v := v.(type) {
		case *listener.Parameters:
			if v.Len() > 0 {
				args = append(args, v.String())
			}
		case *listener.MetaData:
			if v.Len() > 0 {
				args = append(args, v.String())
			}
		case *string:
			if v != nil {
				args = append(args, bracket(*v))
			}
		case nil:
		default:
			args = append(args, bracket(v))
		}
	}
	return args
}
