package main

import (
	"fmt"
	"io"
	"os"

	"github.com/influxdata/xdom/cmd/xrender/run"
	"github.com/urfave/cli/v2"
)

// These variables are populated via the Go linker.
var (
	version string
	commit  string
	branch  string
)

func init() {
	// If commit or branch are not set, make that clear.
	if commit == "" {
		commit = "unknown"
	}
	if branch == "" {
		branch = "unknown"
	}
}

func main() {
	m := NewMain()
	if err := m.Run(os.Args...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program execution.
type Main struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewMain return a new instance of Main.
func NewMain() *Main {
	return &Main{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run determines and runs the command specified by the CLI args.
// The first arg is the program name.
func (m *Main) Run(args ...string) error {
	return m.app().Run(args)
}

func (m *Main) app() *cli.App {
	return &cli.App{
		Name:      "xrender",
		Usage:     "Render documents between syntaxes, expanding their macros",
		UsageText: "xrender [command]",
		Version:   fmt.Sprintf("%s (git: %s %s)", version, branch, commit),
		Writer:    m.Stdout,
		ErrWriter: m.Stderr,
		Commands: []*cli.Command{
			m.renderCmd(),
			m.macrosCmd(),
			m.configCmd(),
		},
	}
}

func configFlag(dest *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to the configuration file",
		EnvVars:     []string{"XDOM_CONFIG_PATH"},
		TakesFile:   true,
		Destination: dest,
	}
}

func (m *Main) newCommand() *run.Command {
	cmd := run.NewCommand()
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch
	cmd.Stdin = m.Stdin
	cmd.Stdout = m.Stdout
	cmd.Stderr = m.Stderr
	return cmd
}

func (m *Main) renderCmd() *cli.Command {
	var options run.Options
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a document, read from a file or stdin",
		ArgsUsage: "[input file or '-' for stdin]",
		Flags: []cli.Flag{
			configFlag(&options.ConfigPath),
			&cli.StringFlag{
				Name:        "from",
				Aliases:     []string{"f"},
				Usage:       "Syntax of the input document",
				Value:       "markdown/1.2",
				Destination: &options.From,
			},
			&cli.StringFlag{
				Name:        "to",
				Aliases:     []string{"t"},
				Usage:       "Syntax of the output, defaults to the configured renderer syntax",
				Destination: &options.To,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Write the output to a file instead of stdout",
				TakesFile:   true,
				Destination: &options.OutputPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Sets the log level. One of debug,info,warn,error",
				Destination: &options.LogLevel,
			},
			&cli.BoolFlag{
				Name:        "restricted",
				Usage:       "Disable the script macros",
				Destination: &options.Restricted,
			},
			&cli.BoolFlag{
				Name:        "stats",
				Usage:       "Print rendering statistics to stderr",
				Destination: &options.Stats,
			},
		},
		Action: func(ctx *cli.Context) error {
			options.InputPath = ctx.Args().First()
			cmd := m.newCommand()
			defer cmd.Close()
			if err := cmd.Run(options); err != nil {
				return fmt.Errorf("render: %s", err)
			}
			return nil
		},
	}
}

func (m *Main) macrosCmd() *cli.Command {
	var options run.Options
	return &cli.Command{
		Name:  "macros",
		Usage: "List the macros available in a syntax",
		Flags: []cli.Flag{
			configFlag(&options.ConfigPath),
			&cli.StringFlag{
				Name:        "syntax",
				Aliases:     []string{"s"},
				Usage:       "Syntax of the documents using the macros",
				Value:       "markdown/1.2",
				Destination: &options.From,
			},
		},
		Action: func(ctx *cli.Context) error {
			cmd := m.newCommand()
			defer cmd.Close()
			if err := cmd.ListMacros(options); err != nil {
				return fmt.Errorf("macros: %s", err)
			}
			return nil
		},
	}
}

func (m *Main) configCmd() *cli.Command {
	var configPath string
	return &cli.Command{
		Name:  "config",
		Usage: "Display the configuration, merged with the file given and the environment",
		Flags: []cli.Flag{configFlag(&configPath)},
		Action: func(ctx *cli.Context) error {
			cmd := run.NewPrintConfigCommand()
			cmd.Stdout = m.Stdout
			cmd.Stderr = m.Stderr
			if err := cmd.Run(configPath); err != nil {
				return fmt.Errorf("config: %s", err)
			}
			return nil
		},
	}
}
