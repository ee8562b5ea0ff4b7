package run

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
	"github.com/google/renameio"
	"github.com/influxdata/xdom/keyvalue"
	"github.com/influxdata/xdom/server"
	"github.com/influxdata/xdom/services/diagnostic"
	"github.com/influxdata/xdom/services/logging"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
	dto "github.com/prometheus/client_model/go"
)

type Diagnostic interface {
	Starting(version, branch, commit string)
	WroteOutput(path string, size int)
	Info(msg string, ctx ...keyvalue.T)
	Error(msg string, err error, ctx ...keyvalue.T)
}

// Options represents the command line options that can be parsed.
type Options struct {
	ConfigPath string
	InputPath  string
	OutputPath string
	From       string
	To         string
	LogLevel   string
	Restricted bool
	Stats      bool
}

// Command represents the command executed by "xrender render" and "xrender macros".
type Command struct {
	Version string
	Branch  string
	Commit  string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Server     *server.Server
	Diag       Diagnostic
	logService *logging.Service
}

// NewCommand return a new instance of Command.
func NewCommand() *Command {
	return &Command{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run renders the input document of options.
func (cmd *Command) Run(options Options) error {
	from, err := syntax.Parse(options.From)
	if err != nil {
		return errors.Wrap(err, "input syntax")
	}
	var to syntax.Syntax
	if options.To != "" {
		if to, err = syntax.Parse(options.To); err != nil {
			return errors.Wrap(err, "output syntax")
		}
	}

	if err := cmd.open(options); err != nil {
		return err
	}

	in, name, err := cmd.input(options.InputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	var out bytes.Buffer
	if err := cmd.Server.Render(in, from, &out, to); err != nil {
		cmd.Diag.Error("failed to render document", err, keyvalue.KV("input", name))
		return err
	}
	size := out.Len()
	if err := cmd.write(options.OutputPath, out.Bytes()); err != nil {
		return err
	}

	if options.Stats {
		return cmd.printStats(size)
	}
	return nil
}

// ListMacros prints the macros available in the syntax options.From.
func (cmd *Command) ListMacros(options Options) error {
	syn, err := syntax.Parse(options.From)
	if err != nil {
		return err
	}
	if err := cmd.open(options); err != nil {
		return err
	}
	for _, d := range cmd.Server.MacroDescriptors(syn) {
		usage := "standalone"
		if d.SupportsInline {
			usage = "inline"
		}
		fmt.Fprintf(cmd.Stdout, "%-12s %-10s %s\n", d.ID, usage, d.Description)
		for _, p := range d.Parameters() {
			fmt.Fprintf(cmd.Stdout, "    %-12s %s\n", p.ID, p.Description)
		}
	}
	return nil
}

// Close closes the log output.
func (cmd *Command) Close() error {
	if cmd.logService != nil {
		return cmd.logService.Close()
	}
	return nil
}

func (cmd *Command) open(options Options) error {
	config, err := ParseConfig(FindConfigPath(options.ConfigPath))
	if err != nil {
		return fmt.Errorf("parse config: %s", err)
	}

	// Apply any environment variables on top of the parsed config
	if err := config.ApplyEnvOverrides(); err != nil {
		return fmt.Errorf("apply env config: %v", err)
	}

	if options.LogLevel != "" {
		config.Logging.Level = options.LogLevel
	}
	if options.Restricted {
		config.Restricted = true
	}

	cmd.logService = logging.NewService(config.Logging, cmd.Stdout, cmd.Stderr)
	if err := cmd.logService.Open(); err != nil {
		return fmt.Errorf("init logging: %s", err)
	}
	diagService := diagnostic.NewService(cmd.logService.Root())
	cmd.Diag = diagService.NewCmdHandler()

	// Mark start-up in log.
	cmd.Diag.Starting(cmd.Version, cmd.Branch, cmd.Commit)

	buildInfo := server.BuildInfo{Version: cmd.Version, Commit: cmd.Commit, Branch: cmd.Branch}
	s, err := server.New(config, buildInfo, diagService)
	if err != nil {
		return fmt.Errorf("create server: %s", err)
	}
	cmd.Server = s
	return nil
}

func (cmd *Command) input(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.Stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open input")
	}
	return f, path, nil
}

// write replaces the file at path atomically so readers never see a partial document.
func (cmd *Command) write(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.Stdout.Write(data)
		return err
	}
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	cmd.Diag.WroteOutput(path, len(data))
	return nil
}

func (cmd *Command) printStats(size int) error {
	families, err := cmd.Server.Registry.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather statistics")
	}
	fmt.Fprintf(cmd.Stderr, "output: %s\n", humanize.Bytes(uint64(size)))
	for _, f := range families {
		for _, m := range f.GetMetric() {
			name := f.GetName() + labels(m)
			switch f.GetType() {
			case dto.MetricType_COUNTER:
				fmt.Fprintf(cmd.Stderr, "%s: %s\n", name, humanize.Comma(int64(m.GetCounter().GetValue())))
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				fmt.Fprintf(cmd.Stderr, "%s: %s samples, %s\n", name,
					humanize.Comma(int64(h.GetSampleCount())),
					humanize.Ftoa(h.GetSampleSum())+"s")
			}
		}
	}
	return nil
}

func labels(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(m.GetLabel()))
	for _, l := range m.GetLabel() {
		pairs = append(pairs, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ",") + "}"
}

// FindConfigPath returns the config path specified or searches for a valid config path.
// It will return a path by searching in this order:
//   1. The given configPath
//   2. The environment variable XDOM_CONFIG_PATH
//   3. The first non empty xrender.conf file in the path:
//        - ~/.xrender/
//        - /etc/xrender/
func FindConfigPath(configPath string) string {
	if configPath != "" {
		if configPath == os.DevNull {
			return ""
		}
		return configPath
	} else if envVar := os.Getenv("XDOM_CONFIG_PATH"); envVar != "" {
		return envVar
	}

	for _, path := range []string{
		os.ExpandEnv("${HOME}/.xrender/xrender.conf"),
		"/etc/xrender/xrender.conf",
	} {
		if fi, err := os.Stat(path); err == nil && fi.Size() != 0 {
			return path
		}
	}
	return ""
}

// ParseConfig parses the config at path.
// Returns the default configuration if path is blank.
func ParseConfig(path string) (*server.Config, error) {
	config := server.NewConfig()
	if path == "" {
		return config, nil
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}
