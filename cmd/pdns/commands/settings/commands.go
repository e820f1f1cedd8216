package settings

import (
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
)

// Command is the top-level settings command. It works on the CLI's own
// configuration file, not on the server.
var Command = registry.NewGroup(actions.GroupSettings, "Manage the pdns configuration file",
	registry.Spec{
		Action: actions.InitConfig,
		Description: `Write a starter configuration file.

The file goes to the given path, --config, or the default location in that
order. Existing files are only replaced with --force.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Usage: "overwrite an existing file"},
		},
		Parse: func(cmd *cli.Command, req *actions.Request) error {
			req.Path = cmd.Args().First()
			req.Force = cmd.Bool("force")
			return nil
		},
	},
	registry.Spec{Action: actions.ValidateConfig},
	registry.Spec{
		Action: actions.ShowSettings,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "show-secret-refs", Usage: "print secret references instead of redacting them"},
		},
		Parse: func(cmd *cli.Command, req *actions.Request) error {
			req.ShowSecretRefs = cmd.Bool("show-secret-refs")
			return nil
		},
	},
)
