package run

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// PrintConfigCommand represents the command executed by "xrender config".
type PrintConfigCommand struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewPrintConfigCommand return a new instance of PrintConfigCommand.
func NewPrintConfigCommand() *PrintConfigCommand {
	return &PrintConfigCommand{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run parses and prints the config loaded from configPath.
func (cmd *PrintConfigCommand) Run(configPath string) error {
	config, err := ParseConfig(FindConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("parse config: %s", err)
	}

	// Apply any environment variables on top of the parsed config
	if err := config.ApplyEnvOverrides(); err != nil {
		return fmt.Errorf("apply env config: %v", err)
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("%s. To generate a valid configuration file run `xrender config > xrender.generated.conf`.", err)
	}

	if err := toml.NewEncoder(cmd.Stdout).Encode(config); err != nil {
		return err
	}
	fmt.Fprint(cmd.Stdout, "\n")
	return nil
}
