package cli

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidctl/pkg/adb"
)

var setCommand = &cli.Command{
	Name:  "set",
	Usage: "Toggle device settings",
	Subcommands: []*cli.Command{
		{
			Name:      "airplane",
			Usage:     "Toggle airplane mode",
			ArgsUsage: "on|off",
			Action: toggleAction(func(d *adb.Device, on bool) error {
				return d.SetAirplaneMode(on)
			}),
		},
		{
			Name:      "wifi",
			Usage:     "Toggle wifi",
			ArgsUsage: "on|off",
			Action: toggleAction(func(d *adb.Device, on bool) error {
				return d.SetWifi(on)
			}),
		},
		{
			Name:      "data",
			Usage:     "Toggle mobile data",
			ArgsUsage: "on|off",
			Action: toggleAction(func(d *adb.Device, on bool) error {
				return d.SetMobileData(on)
			}),
		},
		{
			Name:      "volume",
			Usage:     "Set media volume",
			ArgsUsage: "LEVEL",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("expected a volume LEVEL argument")
				}
				level, err := strconv.Atoi(c.Args().First())
				if err != nil {
					return fmt.Errorf("volume level: %w", err)
				}
				device, err := setup(c)
				if err != nil {
					return err
				}
				return device.SetVolume(adb.StreamMedia, level)
			},
		},
		{
			Name:      "animations",
			Usage:     "Set the system animation scales (0 disables)",
			ArgsUsage: "SCALE",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("expected a SCALE argument")
				}
				scale, err := strconv.ParseFloat(c.Args().First(), 64)
				if err != nil {
					return fmt.Errorf("animation scale: %w", err)
				}
				device, err := setup(c)
				if err != nil {
					return err
				}
				return device.SetAnimations(scale)
			},
		},
		{
			Name:      "locale",
			Usage:     "Change the device locale (e.g. de_DE)",
			ArgsUsage: "LOCALE",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("expected a LOCALE argument")
				}
				device, err := setup(c)
				if err != nil {
					return err
				}
				return device.SetLocale(c.Args().First())
			},
		},
	},
}

func toggleAction(fn func(*adb.Device, bool) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		on, err := parseToggle(c.Args().First())
		if err != nil {
			return err
		}
		device, err := setup(c)
		if err != nil {
			return err
		}
		return fn(device, on)
	}
}

func parseToggle(arg string) (bool, error) {
	switch arg {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", arg)
	}
}
