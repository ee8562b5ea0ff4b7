package server_test

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/influxdata/xdom/macro/script"
	"github.com/influxdata/xdom/server"
	"github.com/influxdata/xdom/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure the configuration can be parsed.
func TestConfig_Parse(t *testing.T) {
	c := server.NewConfig()
	_, err := toml.Decode(`
restricted = true

[logging]
level = "DEBUG"

[macro]
max-recursions = 5

[renderer]
default-syntax = "plain/1.0"

[[script]]
id = "hello"
source = "return 'hi'"
inline = true
timeout = "2s"
`, c)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.True(t, c.Restricted)
	assert.Equal(t, "DEBUG", c.Logging.Level)
	assert.Equal(t, 5, c.Macro.MaxRecursions)
	assert.Equal(t, syntax.Plain10, c.Renderer.DefaultSyntax)
	require.Len(t, c.Scripts, 1)
	assert.Equal(t, "hello", c.Scripts[0].ID)
	assert.True(t, c.Scripts[0].Inline)
	assert.Equal(t, script.Duration(2*time.Second), c.Scripts[0].Timeout)
}

func TestConfig_Parse_EnvOverride(t *testing.T) {
	c := server.NewConfig()
	_, err := toml.Decode(`
[[script]]
id = "hello"
source = "return 'hi'"
required = ["name"]
timeout = "1s"
`, c)
	require.NoError(t, err)

	t.Setenv("XDOM_RESTRICTED", "true")
	t.Setenv("XDOM_MACRO_MAX_RECURSIONS", "7")
	t.Setenv("XDOM_RENDERER_DEFAULT_SYNTAX", "markdown/1.2")
	t.Setenv("XDOM_LOGGING_LEVEL", "WARN")
	t.Setenv("XDOM_SCRIPT_0_TIMEOUT", "3s")
	t.Setenv("XDOM_SCRIPT_0_REQUIRED_0", "who")

	require.NoError(t, c.ApplyEnvOverrides())

	assert.True(t, c.Restricted)
	assert.Equal(t, 7, c.Macro.MaxRecursions)
	assert.Equal(t, syntax.Markdown12, c.Renderer.DefaultSyntax)
	assert.Equal(t, "WARN", c.Logging.Level)
	assert.Equal(t, script.Duration(3*time.Second), c.Scripts[0].Timeout)
	assert.Equal(t, []string{"who"}, c.Scripts[0].Required)
}

func TestConfig_Parse_EnvOverride_Invalid(t *testing.T) {
	c := server.NewConfig()
	t.Setenv("XDOM_MACRO_MAX_RECURSIONS", "many")
	err := c.ApplyEnvOverrides()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XDOM_MACRO_MAX_RECURSIONS")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *server.Config)
		err    string
	}{
		{
			name:   "defaults",
			modify: func(*server.Config) {},
		},
		{
			name:   "logging level",
			modify: func(c *server.Config) { c.Logging.Level = "LOUD" },
			err:    "invalid logging config: unknown logging level LOUD",
		},
		{
			name:   "max recursions",
			modify: func(c *server.Config) { c.Macro.MaxRecursions = 0 },
			err:    "invalid macro config: max-recursions must be at least 1",
		},
		{
			name:   "default syntax",
			modify: func(c *server.Config) { c.Renderer.DefaultSyntax = syntax.Syntax{} },
			err:    "invalid renderer config: must specify a default output syntax",
		},
		{
			name: "script",
			modify: func(c *server.Config) {
				c.Scripts = []script.Config{script.NewConfig()}
			},
			err: "invalid script config: script macro must have an id",
		},
		{
			name: "duplicate script",
			modify: func(c *server.Config) {
				s := script.NewConfig()
				s.ID = "a"
				s.Source = "return 1"
				c.Scripts = []script.Config{s, s}
			},
			err: `duplicate id "a" for script configs`,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := server.NewConfig()
			tc.modify(c)
			err := c.Validate()
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.err, err.Error())
		})
	}
}
