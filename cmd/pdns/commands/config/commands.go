package config

import (
	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
)

// Command is the top-level config command. It covers the server's
// configuration and the zone level operations that do not edit records.
var Command = registry.NewGroup(actions.GroupConfig, "Server configuration and zone operations",
	registry.Spec{Action: actions.ListConfig},
	registry.Spec{Action: actions.Notify, Args: []string{"zone"}, Parse: registry.ZoneArg},
	registry.Spec{Action: actions.AXFRRetrieve, Args: []string{"zone"}, Parse: registry.ZoneArg},
	registry.Spec{
		Action:      actions.Export,
		Args:        []string{"zone"},
		Description: "Print the zone in AXFR format.",
		Parse:       registry.ZoneArg,
	},
	registry.Spec{Action: actions.Rectify, Args: []string{"zone"}, Parse: registry.ZoneArg},
)
