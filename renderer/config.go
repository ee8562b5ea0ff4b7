package renderer

import (
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
)

type Config struct {
	// DefaultSyntax is used when no output syntax is requested.
	DefaultSyntax syntax.Syntax `toml:"default-syntax"`
	// NormalizeMarkdown reformats Markdown output with markdownfmt.
	NormalizeMarkdown bool `toml:"normalize-markdown"`
}

func NewConfig() Config {
	return Config{
		DefaultSyntax:     syntax.Event10,
		NormalizeMarkdown: true,
	}
}

func (c Config) Validate() error {
	if c.DefaultSyntax.Zero() {
		return errors.New("must specify a default output syntax")
	}
	return nil
}
