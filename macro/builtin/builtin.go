// Package builtin contains the macros available in every syntax.
package builtin

import (
	"github.com/influxdata/xdom/macro"
	"github.com/pkg/errors"
)

// ErrMissingContent is returned by macros executed without their mandatory content.
var ErrMissingContent = errors.New("macro content is missing")

// Macros returns a new instance of each built-in macro.
func Macros() []macro.Macro {
	return []macro.Macro{
		new(IDMacro),
		new(TOCMacro),
		NewBoxMacro("box", "box"),
		NewBoxMacro("info", "box infomessage"),
		NewBoxMacro("warning", "box warningmessage"),
		NewBoxMacro("error", "box errormessage"),
		new(CommentMacro),
	}
}

// Register registers the built-in macros for all syntaxes.
func Register(r *macro.MapRegistry) {
	for _, m := range Macros() {
		r.Register(m)
	}
}

func requireContent(d *macro.Descriptor, content *string) (string, error) {
	if content == nil {
		if d.Content != nil && d.Content.Mandatory {
			return "", errors.Wrapf(ErrMissingContent, "macro %q", d.ID)
		}
		return "", nil
	}
	return *content, nil
}
