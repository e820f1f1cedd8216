package registry

import (
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
	"github.com/catalystcommunity/pdns-cli/v1/internal/rrsync"
)

// ModeFlags are the --add/--replace/--delete switches of the edit actions.
func ModeFlags(subject string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "add", Usage: "add a " + subject + " to the RRset"},
		&cli.BoolFlag{Name: "replace", Usage: "replace all " + subject + "s of the RRset"},
		&cli.BoolFlag{Name: "delete", Usage: "delete a " + subject + " from the RRset"},
	}
}

// ParseMode reads exactly one of the mode switches.
func ParseMode(cmd *cli.Command) (rrsync.Mode, error) {
	var mode rrsync.Mode
	count := 0
	for _, m := range []rrsync.Mode{rrsync.ModeAdd, rrsync.ModeReplace, rrsync.ModeDelete} {
		if cmd.Bool(m.String()) {
			mode = m
			count++
		}
	}
	if count != 1 {
		return 0, &actions.UsageError{Msg: "exactly one of --add, --replace or --delete is required"}
	}
	return mode, nil
}

// OptionalBool reads a pair of opposite switches such as --active and
// --inactive. Neither set yields nil.
func OptionalBool(cmd *cli.Command, on, off string) (*bool, error) {
	setOn, setOff := cmd.Bool(on), cmd.Bool(off)
	switch {
	case setOn && setOff:
		return nil, &actions.UsageError{Msg: "--" + on + " and --" + off + " are mutually exclusive"}
	case setOn:
		v := true
		return &v, nil
	case setOff:
		v := false
		return &v, nil
	}
	return nil, nil
}

// ZoneArg fills req.Zone from the first positional argument.
func ZoneArg(cmd *cli.Command, req *actions.Request) error {
	req.Zone = cmd.Args().First()
	return nil
}
