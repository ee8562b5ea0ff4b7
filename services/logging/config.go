package logging

import (
	"strings"

	"github.com/pkg/errors"
)

type Config struct {
	File     string `toml:"file"`
	Level    string `toml:"level"`
	Encoding string `toml:"encoding"`
}

func NewConfig() Config {
	return Config{
		File:     "STDERR",
		Level:    "INFO",
		Encoding: "console",
	}
}

func (c Config) Validate() error {
	if c.File == "" {
		return errors.New("must specify a log file, STDERR or STDOUT")
	}
	if _, err := parseLevel(c.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Encoding) {
	case "", "console", "json":
	default:
		return errors.Errorf("unknown log encoding %s", c.Encoding)
	}
	return nil
}
