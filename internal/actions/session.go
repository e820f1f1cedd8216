package actions

import (
	"time"

	"github.com/catalystcommunity/pdns-cli/v1/internal/config"
	"github.com/catalystcommunity/pdns-cli/v1/internal/output"
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
	"github.com/catalystcommunity/pdns-cli/v1/internal/rrsync"
	"github.com/catalystcommunity/pdns-cli/v1/internal/secrets"
)

// Session is everything a handler may touch during one invocation. API is
// nil for local actions.
type Session struct {
	API     *pdns.Client
	Out     *output.Printer
	Sync    *rrsync.Synchronizer
	Keyring *secrets.KeyringStore
	// Config is nil when no configuration file was found.
	Config     *config.Config
	ConfigPath string
	// Location is used to render comment timestamps.
	Location *time.Location
}

func (s *Session) server(req Request) *pdns.Server {
	return s.API.Server(req.Server)
}

func (s *Session) zone(req Request) *pdns.Zone {
	return s.server(req).Zone(req.Zone)
}

func (s *Session) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

func (s *Session) synchronizer() *rrsync.Synchronizer {
	if s.Sync == nil {
		s.Sync = rrsync.New()
	}
	return s.Sync
}
