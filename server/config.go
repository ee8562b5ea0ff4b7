package server

import (
	"encoding"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/influxdata/xdom/macro/engine"
	"github.com/influxdata/xdom/macro/script"
	"github.com/influxdata/xdom/renderer"
	"github.com/influxdata/xdom/services/logging"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes the environment variables overriding the configuration.
const EnvPrefix = "XDOM"

// Config represents the configuration format for the xrender binary.
type Config struct {
	Logging  logging.Config  `toml:"logging"`
	Macro    engine.Config   `toml:"macro"`
	Renderer renderer.Config `toml:"renderer"`
	Scripts  []script.Config `toml:"script"`

	// Restricted disables the script macros, for untrusted documents.
	Restricted bool `toml:"restricted"`
}

// NewConfig returns an instance of Config with reasonable defaults.
func NewConfig() *Config {
	c := &Config{}
	c.Logging = logging.NewConfig()
	c.Macro = engine.NewConfig()
	c.Renderer = renderer.NewConfig()
	return c
}

// Validate returns an error if the config is invalid.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return errors.Wrap(err, "invalid logging config")
	}
	if err := c.Macro.Validate(); err != nil {
		return errors.Wrap(err, "invalid macro config")
	}
	if err := c.Renderer.Validate(); err != nil {
		return errors.Wrap(err, "invalid renderer config")
	}
	// All script ids should be unique.
	ids := make(map[string]bool, len(c.Scripts))
	for _, s := range c.Scripts {
		if err := s.Validate(); err != nil {
			return errors.Wrap(err, "invalid script config")
		}
		if ids[s.ID] {
			return fmt.Errorf("duplicate id %q for script configs", s.ID)
		}
		ids[s.ID] = true
	}
	return nil
}

// ApplyEnvOverrides sets the fields named by XDOM_* environment variables.
// The variable names are the upper-cased toml keys joined by underscores,
// slice elements are addressed by their index, e.g. XDOM_SCRIPT_0_TIMEOUT.
func (c *Config) ApplyEnvOverrides() error {
	return c.applyEnvOverrides(EnvPrefix, "", reflect.ValueOf(c))
}

func (c *Config) applyEnvOverrides(prefix string, fieldDesc string, v reflect.Value) error {
	// If we have a pointer, dereference it
	s := v
	if v.Kind() == reflect.Ptr {
		s = v.Elem()
	}

	var value string
	_, isText := textUnmarshaler(s)
	if s.Kind() != reflect.Struct || isText {
		value = os.Getenv(prefix)
		// Skip any fields we don't have a value to set
		if value == "" {
			return nil
		}

		if fieldDesc != "" {
			fieldDesc = " to " + fieldDesc
		}
	}
	failed := func() error {
		return fmt.Errorf("failed to apply %v%v using type %v and value '%v'", prefix, fieldDesc, s.Type().String(), value)
	}

	// Types such as durations and syntaxes parse themselves.
	if u, ok := textUnmarshaler(s); ok {
		if err := u.UnmarshalText([]byte(value)); err != nil {
			return failed()
		}
		return nil
	}

	switch s.Kind() {
	case reflect.String:
		s.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 0, s.Type().Bits())
		if err != nil {
			return failed()
		}
		s.SetInt(intValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return failed()
		}
		s.SetBool(boolValue)
	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, s.Type().Bits())
		if err != nil {
			return failed()
		}
		s.SetFloat(floatValue)
	case reflect.Struct:
		if err := c.applyEnvOverridesToStruct(prefix, s); err != nil {
			return err
		}
	}
	return nil
}

func textUnmarshaler(s reflect.Value) (encoding.TextUnmarshaler, bool) {
	if !s.CanAddr() {
		return nil, false
	}
	u, ok := s.Addr().Interface().(encoding.TextUnmarshaler)
	return u, ok
}

func (c *Config) applyEnvOverridesToStruct(prefix string, s reflect.Value) error {
	typeOfSpec := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		// Get the toml tag to determine what env var name to use
		configName := typeOfSpec.Field(i).Tag.Get("toml")
		if configName == "" || configName == "-" {
			continue
		}
		// Replace hyphens with underscores to avoid issues with shells
		configName = strings.Replace(configName, "-", "_", -1)
		fieldName := typeOfSpec.Field(i).Name

		// Skip any fields that we cannot set
		if f.CanSet() || f.Kind() == reflect.Slice {

			// Use the upper-case prefix and toml name for the env var
			key := strings.ToUpper(configName)
			if prefix != "" {
				key = strings.ToUpper(fmt.Sprintf("%s_%s", prefix, configName))
			}

			// If the type is s slice, apply to each using the index as a suffix
			// e.g. SCRIPT_0
			if f.Kind() == reflect.Slice || f.Kind() == reflect.Array {
				for i := 0; i < f.Len(); i++ {
					if err := c.applyEnvOverrides(fmt.Sprintf("%s_%d", key, i), fieldName, f.Index(i)); err != nil {
						return err
					}
				}
			} else if err := c.applyEnvOverrides(key, fieldName, f); err != nil {
				return err
			}
		}
	}
	return nil
}
