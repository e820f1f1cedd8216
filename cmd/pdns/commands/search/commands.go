package search

import (
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
)

// Command is the top-level search command
var Command = registry.NewGroup(actions.GroupSearch, "Search zones, records and comments",
	registry.Spec{
		Action: actions.Search,
		Args:   []string{"query"},
		Description: `Search zones, records and comments. * matches any string and ? a single
character.

Example:
  pdns search search 'www.*' --object-type record`,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "max", Usage: "maximum number of results", Value: 100},
			&cli.StringFlag{Name: "object-type", Usage: "restrict results to all, zone, record or comment"},
		},
		Parse: func(cmd *cli.Command, req *actions.Request) error {
			req.Query = pdns.SearchQuery{
				Query:      cmd.Args().First(),
				Max:        int(cmd.Int("max")),
				ObjectType: cmd.String("object-type"),
			}
			return nil
		},
	},
)
