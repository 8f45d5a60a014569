// Package cli provides the command-line interface for droidctl.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidctl/pkg/adb"
	"github.com/devicelab-dev/droidctl/pkg/config"
	"github.com/devicelab-dev/droidctl/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "serial",
		Aliases: []string{"s"},
		Usage:   "Device serial to target (defaults to the first connected device)",
		EnvVars: []string{"DROIDCTL_SERIAL", "ANDROID_SERIAL"},
	},
	&cli.StringFlag{
		Name:    "adb-path",
		Usage:   "Path to the adb binary (defaults to PATH lookup)",
		EnvVars: []string{"DROIDCTL_ADB"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Workspace config file (config.yaml)",
		EnvVars: []string{"DROIDCTL_CONFIG"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"DROIDCTL_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "droidctl",
		Usage:   "Convenience wrapper around adb for device control and UI inspection",
		Version: Version,
		Description: `droidctl wraps common adb workflows: dumping and querying the on-screen
UI hierarchy, reading the screen resolution, simulating input, and
toggling device settings.

Examples:
  droidctl hierarchy --format json
  droidctl find --where text=Login --where clickable=true
  droidctl tap 540 1200
  droidctl app launch com.example.app`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			devicesCommand,
			hierarchyCommand,
			findCommand,
			resolutionCommand,
			tapCommand,
			swipeCommand,
			textCommand,
			keyCommand,
			appCommand,
			setCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads config, initializes logging, and connects to the target device.
func setup(c *cli.Context) (*adb.Device, error) {
	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		if loaded, err := config.LoadFromDir("."); err == nil {
			cfg = loaded
		}
	}

	logger.InitWriter(os.Stderr)
	logger.SetVerbose(c.Bool("verbose") || cfg.Verbose)

	serial := c.String("serial")
	if serial == "" {
		serial = cfg.Serial
	}
	adbPath := c.String("adb-path")
	if adbPath == "" {
		adbPath = cfg.ADBPath
	}

	return adb.NewWithPath(adbPath, serial)
}
