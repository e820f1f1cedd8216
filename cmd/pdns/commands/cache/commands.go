package cache

import (
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
)

// Command is the top-level cache command
var Command = registry.NewGroup(actions.GroupCache, "Manage the packet cache",
	registry.Spec{
		Action:      actions.FlushCache,
		Args:        []string{"domain"},
		Description: "Flush the cache entries of a domain and everything below it.",
		Parse: func(cmd *cli.Command, req *actions.Request) error {
			req.Domain = cmd.Args().First()
			return nil
		},
	},
)
