package script

import (
	"time"

	"github.com/pkg/errors"
)

const DefaultTimeout = Duration(5 * time.Second)

// Duration is a time.Duration read from strings such as "1s".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config defines a macro implemented by a Lua script.
//
// The script sees the invocation through the globals params (a table of strings),
// content (a string or nil) and inline (a boolean), and returns the text of the result.
type Config struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Inline      bool   `toml:"inline"`
	Priority    int    `toml:"priority"`
	// Markup makes the returned text parsed in the syntax of the document.
	Markup bool `toml:"markup"`
	// Required lists the parameters that must be given.
	Required []string `toml:"required"`
	// Source is the Lua code; File is read instead when Source is empty.
	Source  string   `toml:"source"`
	File    string   `toml:"file"`
	Timeout Duration `toml:"timeout"`
}

func NewConfig() Config {
	return Config{
		Priority: 1000,
		Timeout:  DefaultTimeout,
	}
}

func (c Config) Validate() error {
	if c.ID == "" {
		return errors.New("script macro must have an id")
	}
	if (c.Source == "") == (c.File == "") {
		return errors.Errorf("script macro %q must have exactly one of source or file", c.ID)
	}
	if c.Timeout <= 0 {
		return errors.Errorf("script macro %q must have a positive timeout", c.ID)
	}
	return nil
}
