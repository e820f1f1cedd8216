package metadata

import (
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
)

// Command is the top-level metadata command
var Command = registry.NewGroup(actions.GroupMetadata, "Manage zone metadata",
	registry.Spec{Action: actions.ListMetadata, Args: []string{"zone"}, Parse: registry.ZoneArg},
	registry.Spec{Action: actions.ShowMetadata, Args: []string{"zone", "kind"}, Parse: parseKind},
	registry.Spec{
		Action: actions.AddMetadata,
		Args:   []string{"zone", "kind"},
		Description: `Add a metadata kind to a zone. Values follow the kind.

Example:
  pdns metadata add-metadata example.com. ALLOW-AXFR-FROM 192.0.2.0/24 2001:db8::/32`,
		Parse: parseKind,
	},
	registry.Spec{
		Action:      actions.EditMetadata,
		Args:        []string{"zone", "kind"},
		Description: "Replace all values of a metadata kind. Values follow the kind.",
		Parse:       parseKind,
	},
	registry.Spec{Action: actions.DeleteMetadata, Args: []string{"zone", "kind"}, Parse: parseKind},
)

func parseKind(cmd *cli.Command, req *actions.Request) error {
	args := cmd.Args().Slice()
	req.Zone = args[0]
	req.Kind = args[1]
	req.Values = args[2:]
	return nil
}
