// Package registry wires parsed command lines to the action handlers.
package registry

import (
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
)

// InitActions verifies that every action has a handler. main calls it
// before parsing arguments.
func InitActions() error {
	return actions.CheckHandlers()
}
