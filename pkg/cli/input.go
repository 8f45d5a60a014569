package cli

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
)

var tapCommand = &cli.Command{
	Name:      "tap",
	Usage:     "Tap at screen coordinates",
	ArgsUsage: "X Y",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "long",
			Usage: "Hold for the given duration in milliseconds",
		},
	},
	Action: runTap,
}

var swipeCommand = &cli.Command{
	Name:      "swipe",
	Usage:     "Swipe between two points",
	ArgsUsage: "X1 Y1 X2 Y2",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "duration",
			Usage: "Swipe duration in milliseconds",
			Value: 300,
		},
	},
	Action: runSwipe,
}

var textCommand = &cli.Command{
	Name:      "text",
	Usage:     "Type text into the focused field",
	ArgsUsage: "TEXT",
	Action:    runText,
}

var keyCommand = &cli.Command{
	Name:      "key",
	Usage:     "Send a raw Android keycode",
	ArgsUsage: "KEYCODE",
	Action:    runKey,
}

func intArgs(c *cli.Context, n int) ([]int, error) {
	if c.NArg() != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, c.NArg())
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(c.Args().Get(i))
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func runTap(c *cli.Context) error {
	args, err := intArgs(c, 2)
	if err != nil {
		return err
	}
	device, err := setup(c)
	if err != nil {
		return err
	}
	if ms := c.Int("long"); ms > 0 {
		return device.LongPress(args[0], args[1], ms)
	}
	return device.Tap(args[0], args[1])
}

func runSwipe(c *cli.Context) error {
	args, err := intArgs(c, 4)
	if err != nil {
		return err
	}
	device, err := setup(c)
	if err != nil {
		return err
	}
	return device.Swipe(args[0], args[1], args[2], args[3], c.Int("duration"))
}

func runText(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one TEXT argument")
	}
	device, err := setup(c)
	if err != nil {
		return err
	}
	return device.InputText(c.Args().First())
}

func runKey(c *cli.Context) error {
	args, err := intArgs(c, 1)
	if err != nil {
		return err
	}
	device, err := setup(c)
	if err != nil {
		return err
	}
	return device.KeyEvent(args[0])
}
