package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var appCommand = &cli.Command{
	Name:  "app",
	Usage: "Manage applications on the device",
	Subcommands: []*cli.Command{
		{
			Name:      "install",
			Usage:     "Install an APK",
			ArgsUsage: "PATH",
			Action:    appAction(func(d appDevice, arg string) error { return d.Install(arg) }),
		},
		{
			Name:      "uninstall",
			Usage:     "Remove a package",
			ArgsUsage: "PACKAGE",
			Action:    appAction(func(d appDevice, arg string) error { return d.Uninstall(arg) }),
		},
		{
			Name:      "launch",
			Usage:     "Start a package's launcher activity",
			ArgsUsage: "PACKAGE",
			Action:    appAction(func(d appDevice, arg string) error { return d.Launch(arg) }),
		},
		{
			Name:      "stop",
			Usage:     "Force-stop a package",
			ArgsUsage: "PACKAGE",
			Action:    appAction(func(d appDevice, arg string) error { return d.Stop(arg) }),
		},
		{
			Name:      "clear",
			Usage:     "Clear a package's data and cache",
			ArgsUsage: "PACKAGE",
			Action:    appAction(func(d appDevice, arg string) error { return d.ClearState(arg) }),
		},
	},
}

// appDevice is the slice of adb.Device used by app subcommands.
type appDevice interface {
	Install(string) error
	Uninstall(string) error
	Launch(string) error
	Stop(string) error
	ClearState(string) error
}

func appAction(fn func(appDevice, string) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("expected exactly one argument")
		}
		device, err := setup(c)
		if err != nil {
			return err
		}
		return fn(device, c.Args().First())
	}
}
