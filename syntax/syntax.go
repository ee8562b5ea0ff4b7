// Package syntax identifies the markup dialects documents are parsed from and rendered to.
package syntax

import (
	"strings"

	"github.com/pkg/errors"
)

// Type is a family of syntaxes, e.g. Markdown.
type Type struct {
	ID   string
	Name string
}

// Syntax is a versioned syntax type.
type Syntax struct {
	Type    Type
	Version string
}

var (
	MarkdownType = Type{ID: "markdown", Name: "Markdown"}
	PlainType    = Type{ID: "plain", Name: "Plain"}
	EventType    = Type{ID: "event", Name: "Events"}
	XHTMLType    = Type{ID: "xhtml", Name: "XHTML"}
	HTMLType     = Type{ID: "html", Name: "HTML"}
)

var (
	Markdown12 = Syntax{Type: MarkdownType, Version: "1.2"}
	Plain10    = Syntax{Type: PlainType, Version: "1.0"}
	Event10    = Syntax{Type: EventType, Version: "1.0"}
	XHTML10    = Syntax{Type: XHTMLType, Version: "1.0"}
	HTML50     = Syntax{Type: HTMLType, Version: "5.0"}
)

var known = []Syntax{Markdown12, Plain10, Event10, XHTML10, HTML50}

// Zero reports whether s is the zero Syntax, used for "any syntax".
func (s Syntax) Zero() bool {
	return s.Type.ID == "" && s.Version == ""
}

// String returns the syntax id in the form "type/version".
func (s Syntax) String() string {
	if s.Zero() {
		return ""
	}
	return s.Type.ID + "/" + s.Version
}

// Parse resolves a syntax id of the form "type/version".
// Known syntaxes keep their display name.
func Parse(id string) (Syntax, error) {
	i := strings.IndexByte(id, '/')
	if i <= 0 || i == len(id)-1 {
		return Syntax{}, errors.Errorf("invalid syntax id %q, expected <type>/<version>", id)
	}
	typ, version := id[:i], id[i+1:]
	for _, s := range known {
		if s.Type.ID == typ && s.Version == version {
			return s, nil
		}
	}
	return Syntax{Type: Type{ID: typ, Name: typ}, Version: version}, nil
}

// MustParse is like Parse but panics on invalid ids.
func MustParse(id string) Syntax {
	s, err := Parse(id)
	if err != nil {
		panic(errors.Wrap(err, "syntax"))
	}
	return s
}

// UnmarshalText implements encoding.TextUnmarshaler so syntaxes can be used in config files.
func (s *Syntax) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Syntax) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
