package listener

import (
	"fmt"
	"strings"
)

// Format is an inline text style.
type Format int

const (
	FormatNone Format = iota
	FormatBold
	FormatItalic
	FormatUnderlined
	FormatStrikedout
	FormatSuperscript
	FormatSubscript
	FormatMonospace
)

var formatNames = [...]string{
	FormatNone:        "NONE",
	FormatBold:        "BOLD",
	FormatItalic:      "ITALIC",
	FormatUnderlined:  "UNDERLINED",
	FormatStrikedout:  "STRIKEDOUT",
	FormatSuperscript: "SUPERSCRIPT",
	FormatSubscript:   "SUBSCRIPT",
	FormatMonospace:   "MONOSPACE",
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

type ListType int

const (
	ListBulleted ListType = iota
	ListNumbered
)

func (t ListType) String() string {
	switch t {
	case ListBulleted:
		return "BULLETED"
	case ListNumbered:
		return "NUMBERED"
	default:
		return fmt.Sprintf("ListType(%d)", int(t))
	}
}

// HeaderLevel is the level of a section header, from 1 to 6.
type HeaderLevel int

const (
	Level1 HeaderLevel = iota + 1
	Level2
	Level3
	Level4
	Level5
	Level6
)

func (l HeaderLevel) String() string {
	return fmt.Sprintf("LEVEL%d", int(l))
}

// Valid reports whether l is between Level1 and Level6.
func (l HeaderLevel) Valid() bool {
	return l >= Level1 && l <= Level6
}

// ResourceType is the kind of target a ResourceReference points to.
type ResourceType string

const (
	ResourceUnknown    ResourceType = "unknown"
	ResourceURL        ResourceType = "url"
	ResourceDocument   ResourceType = "doc"
	ResourceAttachment ResourceType = "attach"
	ResourceMailto     ResourceType = "mailto"
	ResourcePath       ResourceType = "path"
	ResourceData       ResourceType = "data"
)

// ResourceReference locates the target of a link or an image.
type ResourceReference struct {
	Type      ResourceType
	Reference string
	// Typed records whether the type was explicit in the source.
	Typed      bool
	Parameters *Parameters
}

// NewResourceReference guesses the type of an untyped reference from its scheme.
func NewResourceReference(reference string) ResourceReference {
	typ := ResourceDocument
	switch {
	case strings.HasPrefix(reference, "mailto:"):
		typ = ResourceMailto
	case strings.HasPrefix(reference, "data:"):
		typ = ResourceData
	case strings.Contains(reference, "://"):
		typ = ResourceURL
	case strings.HasPrefix(reference, "/"), strings.HasPrefix(reference, "./"), strings.HasPrefix(reference, "../"):
		typ = ResourcePath
	}
	return ResourceReference{Type: typ, Reference: reference}
}

// Copy returns a reference with its own parameters.
func (r ResourceReference) Copy() ResourceReference {
	c := r
	if r.Parameters != nil {
		c.Parameters = r.Parameters.Copy()
	}
	return c
}

func (r ResourceReference) Equal(o ResourceReference) bool {
	return r.Type == o.Type &&
		r.Reference == o.Reference &&
		r.Typed == o.Typed &&
		r.Parameters.Equal(o.Parameters)
}

func (r ResourceReference) String() string {
	s := fmt.Sprintf("Typed = [%t] Type = [%s] Reference = [%s]", r.Typed, r.Type, r.Reference)
	if r.Parameters.Len() > 0 {
		s += " Parameters = " + r.Parameters.String()
	}
	return s
}
