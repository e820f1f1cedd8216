package registry

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
)

// ParseFunc fills req from the command's arguments and flags.
type ParseFunc func(cmd *cli.Command, req *actions.Request) error

// Spec describes the command line of one action.
type Spec struct {
	Action actions.Action
	// Args names the positional arguments, in order.
	Args        []string
	Flags       []cli.Flag
	Description string
	Parse       ParseFunc
}

// NewCommand builds the subcommand for spec. The positional argument count
// is checked before Parse runs, so a missing argument is a usage error.
func NewCommand(spec Spec) *cli.Command {
	return &cli.Command{
		Name:         spec.Action.String(),
		Usage:        spec.Action.Usage(),
		ArgsUsage:    argsUsage(spec.Args),
		Description:  spec.Description,
		Flags:        spec.Flags,
		OnUsageError: UsageErrorHandler,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < len(spec.Args) {
				return &actions.UsageError{Msg: "missing arguments: " + missing(spec.Args, cmd.Args().Len())}
			}
			req := actions.Request{Action: spec.Action}
			if spec.Parse != nil {
				if err := spec.Parse(cmd, &req); err != nil {
					return err
				}
			}
			return Run(ctx, cmd, req)
		},
	}
}

// NewGroup builds the command for a group of actions.
func NewGroup(name, usage string, specs ...Spec) *cli.Command {
	commands := make([]*cli.Command, 0, len(specs))
	for _, spec := range specs {
		commands = append(commands, NewCommand(spec))
	}
	return &cli.Command{
		Name:         name,
		Usage:        usage,
		Commands:     commands,
		OnUsageError: UsageErrorHandler,
	}
}

// UsageErrorHandler turns flag parsing failures into usage errors so they
// share the usage exit status.
func UsageErrorHandler(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
	return &actions.UsageError{Msg: fmt.Sprintf("%s: %v", cmd.FullName(), err)}
}

func argsUsage(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += " "
		}
		out += "<" + a + ">"
	}
	return out
}

func missing(args []string, have int) string {
	out := ""
	for i := have; i < len(args); i++ {
		if i > have {
			out += ", "
		}
		out += args[i]
	}
	return out
}
