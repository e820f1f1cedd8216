package server

import (
	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
)

// Command is the top-level server command. The server id comes from
// --server or default-server.
var Command = registry.NewGroup(actions.GroupServer, "Inspect and remove PowerDNS servers",
	registry.Spec{Action: actions.ListServers},
	registry.Spec{Action: actions.ShowServer},
	registry.Spec{
		Action:      actions.DeleteServer,
		Description: "Delete a server. Only supported by pdnscontrol style APIs.",
	},
)
