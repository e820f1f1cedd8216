package actions

import (
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
	"github.com/catalystcommunity/pdns-cli/v1/internal/rrsync"
)

// Request carries the parsed arguments of one invocation. Each action reads
// only the fields it needs.
type Request struct {
	Action Action
	Server string
	Zone   string

	// RRset edits
	Name    string
	Type    string
	Content string
	Mode    rrsync.Mode
	TTL     int
	// Disabled and SetPTR apply to record edits.
	Disabled bool
	SetPTR   bool
	// Account applies to comment edits.
	Account string

	// ZoneSpec is used by add-zone and edit-zone.
	ZoneSpec pdns.ZoneSpec

	// Metadata
	Kind   string
	Values []string

	// Cryptokeys
	KeyID     string
	Cryptokey pdns.CryptokeySpec
	// Active and Published are nil when edit-cryptokey should keep the
	// current value.
	Active    *bool
	Published *bool

	// Search and statistics
	Query     pdns.SearchQuery
	Statistic string
	// Domain is the flush-cache target.
	Domain string

	// Credentials
	Section string
	Secret  string

	// Settings
	Path           string
	Force          bool
	ShowSecretRefs bool
}
