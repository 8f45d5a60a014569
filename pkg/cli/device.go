package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidctl/pkg/adb"
)

var devicesCommand = &cli.Command{
	Name:   "devices",
	Usage:  "List devices known to the local adb server",
	Action: runDevices,
}

var resolutionCommand = &cli.Command{
	Name:  "resolution",
	Usage: "Print the device screen resolution",
	Description: `Read the screen size via wm size.

Example:
  droidctl resolution`,
	Action: runResolution,
}

func runDevices(c *cli.Context) error {
	entries, err := adb.ListDevices()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.App.Writer, "no devices attached")
		return nil
	}
	for _, entry := range entries {
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", entry.Serial, entry.State)
	}
	return nil
}

func runResolution(c *cli.Context) error {
	device, err := setup(c)
	if err != nil {
		return err
	}
	r, err := device.Screen().Resolution()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, r.String())
	return nil
}
