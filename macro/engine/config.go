package engine

import "github.com/pkg/errors"

const DefaultMaxRecursions = 100

type Config struct {
	// MaxRecursions bounds the nested expansions per Transform call, counted across the whole tree.
	// Expanding stops when the count would reach MaxRecursions; top level macros are not counted.
	MaxRecursions int `toml:"max-recursions"`
}

func NewConfig() Config {
	return Config{
		MaxRecursions: DefaultMaxRecursions,
	}
}

func (c Config) Validate() error {
	if c.MaxRecursions < 1 {
		return errors.New("max-recursions must be at least 1")
	}
	return nil
}
