package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidctl/pkg/core"
	"github.com/devicelab-dev/droidctl/pkg/screen"
)

var hierarchyCommand = &cli.Command{
	Name:  "hierarchy",
	Usage: "Dump the view hierarchy of the connected device",
	Description: `Dump the on-screen widget tree, either flattened to JSON element
records or as the raw uiautomator XML.

Examples:
  droidctl hierarchy
  droidctl hierarchy --format xml
  droidctl hierarchy --out dump.json`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "Output format: json (flattened) or xml (raw dump)",
			Value: "json",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "Also write the output to this file",
		},
	},
	Action: runHierarchy,
}

var findCommand = &cli.Command{
	Name:  "find",
	Usage: "Locate UI elements by attribute equality",
	Description: `Filter the current hierarchy with one or more attribute conditions.
Values true and false match the boolean attributes of the dump; anything
else matches as a literal string.

Examples:
  droidctl find --where text=Login
  droidctl find --where clickable=true --attrs text,bounds
  droidctl find --where resource-id=com.app:id/login_btn --tap`,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "where",
			Usage: "Condition key=value (repeatable)",
		},
		&cli.StringFlag{
			Name:  "attrs",
			Usage: "Comma-separated attribute projection",
		},
		&cli.BoolFlag{
			Name:  "tap",
			Usage: "Tap the center of the match (requires exactly one match)",
		},
	},
	Action: runFind,
}

func runHierarchy(c *cli.Context) error {
	device, err := setup(c)
	if err != nil {
		return err
	}
	scr := device.Screen()

	switch c.String("format") {
	case "xml":
		var source string
		if out := c.String("out"); out != "" {
			source, err = scr.WriteSource(out)
		} else {
			source, err = scr.Source()
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, source)
		return nil

	case "json":
		var elements []screen.Element
		if out := c.String("out"); out != "" {
			elements, err = scr.WriteHierarchy(out)
		} else {
			elements, err = scr.Hierarchy()
		}
		if err != nil {
			return err
		}
		return printJSON(c, elements)

	default:
		return fmt.Errorf("unknown format %q (want json or xml)", c.String("format"))
	}
}

func runFind(c *cli.Context) error {
	cond, err := parseCondition(c.StringSlice("where"))
	if err != nil {
		return err
	}

	device, err := setup(c)
	if err != nil {
		return err
	}

	var opts []screen.FindOption
	if attrs := c.String("attrs"); attrs != "" {
		opts = append(opts, screen.WithAttributes(strings.Split(attrs, ",")...))
	}

	matches, err := device.Screen().FindElement(cond, opts...)
	if err != nil {
		return err
	}
	if matches == nil {
		return fmt.Errorf("no element matches %v", cond)
	}

	if c.Bool("tap") {
		if len(matches) != 1 {
			return fmt.Errorf("--tap needs exactly one match, got %d", len(matches))
		}
		boundsAttr, ok := matches[0].Str("bounds")
		if !ok {
			return fmt.Errorf("matched element reports no bounds")
		}
		x, y := core.ParseBounds(boundsAttr).Center()
		return device.Tap(x, y)
	}

	return printJSON(c, matches)
}

// parseCondition turns repeated key=value flags into a match condition,
// applying the same true/false coercion as the hierarchy flattener.
func parseCondition(pairs []string) (screen.Condition, error) {
	cond := screen.Condition{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("condition must be key=value, got %q", pair)
		}
		switch value {
		case "true":
			cond[key] = true
		case "false":
			cond[key] = false
		default:
			cond[key] = value
		}
	}
	return cond, nil
}

func printJSON(c *cli.Context, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}
