package statistics

import (
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
)

// Command is the top-level statistics command
var Command = registry.NewGroup(actions.GroupStatistics, "Show server statistics",
	registry.Spec{
		Action: actions.Statistics,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "statistic", Usage: "show only this statistic"},
		},
		Parse: func(cmd *cli.Command, req *actions.Request) error {
			req.Statistic = cmd.String("statistic")
			return nil
		},
	},
)
