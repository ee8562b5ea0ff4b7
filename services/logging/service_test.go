package logging_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/influxdata/xdom/services/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Stdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := logging.NewConfig()
	c.File = "STDOUT"
	s := logging.NewService(c, &stdout, &stderr)
	require.NoError(t, s.Open())
	defer s.Close()

	s.Root().Debug("hidden")
	s.Root().Info("rendered", zap.String("syntax", "markdown/1.2"))
	assert.Contains(t, stdout.String(), "rendered")
	assert.Contains(t, stdout.String(), "markdown/1.2")
	assert.NotContains(t, stdout.String(), "hidden")
	assert.Empty(t, stderr.String())

	require.NoError(t, s.SetLevel("debug"))
	s.Root().Debug("visible")
	assert.Contains(t, stdout.String(), "visible")
}

func TestService_JSONFile(t *testing.T) {
	c := logging.NewConfig()
	c.File = filepath.Join(t.TempDir(), "logs", "xdom.log")
	c.Encoding = "json"
	s := logging.NewService(c, nil, nil)
	require.NoError(t, s.Open())
	s.Root().Error("failed")
	require.NoError(t, s.Close())
	assert.FileExists(t, c.File)
}

func TestConfig_Validate(t *testing.T) {
	c := logging.NewConfig()
	assert.NoError(t, c.Validate())

	c.Level = "LOUD"
	assert.EqualError(t, c.Validate(), "unknown logging level LOUD")

	c = logging.NewConfig()
	c.Encoding = "logfmt"
	assert.EqualError(t, c.Validate(), "unknown log encoding logfmt")

	c = logging.NewConfig()
	c.File = ""
	assert.Error(t, c.Validate())
}
