package logging

import (
	"io"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Interface for creating new loggers
type Interface interface {
	Root() *zap.Logger
	SetLevel(level string) error
}

type Service struct {
	root   *zap.Logger
	c      Config
	stdout zapcore.WriteSyncer
	stderr zapcore.WriteSyncer
	closer io.Closer
	level  zap.AtomicLevel
}

func NewService(c Config, stdout, stderr io.Writer) *Service {
	return &Service{
		c:      c,
		stdout: zapcore.AddSync(stdout),
		stderr: zapcore.AddSync(stderr),
		level:  zap.NewAtomicLevel(),
		root:   zap.NewNop(),
	}
}

func (s *Service) Open() error {
	var output zapcore.WriteSyncer
	switch s.c.File {
	case "STDERR":
		output = s.stderr
	case "STDOUT":
		output = s.stdout
	default:
		dir := path.Dir(s.c.File)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrap(err, "failed to create log directory")
			}
		}

		f, err := os.OpenFile(s.c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
		if err != nil {
			return errors.Wrap(err, "failed to open log file")
		}
		output = f
		s.closer = f
	}

	// Set level from configuration
	if err := s.SetLevel(s.c.Level); err != nil {
		return err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	switch strings.ToLower(s.c.Encoding) {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return errors.Errorf("unknown log encoding %s", s.c.Encoding)
	}

	s.root = zap.New(zapcore.NewCore(encoder, output, s.level))
	return nil
}

func (s *Service) Close() error {
	_ = s.root.Sync()
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func (s *Service) Root() *zap.Logger {
	return s.root
}

func (s *Service) SetLevel(level string) error {
	l, err := parseLevel(level)
	if err != nil {
		return err
	}
	s.level.SetLevel(l)
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zap.DebugLevel, nil
	case "INFO":
		return zap.InfoLevel, nil
	case "WARN":
		return zap.WarnLevel, nil
	case "ERROR":
		return zap.ErrorLevel, nil
	default:
		return 0, errors.Errorf("unknown logging level %s", level)
	}
}
