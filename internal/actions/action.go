// Package actions maps every CLI action to the handler that performs it.
//
// Actions are an enumerated type resolved when arguments are parsed. The
// handler table is checked for completeness at startup and in tests, so an
// action cannot be added without an implementation.
package actions

import (
	"fmt"
	"sort"
)

// Action is one operation the CLI can perform.
type Action int

const (
	ListServers Action = iota + 1
	ShowServer
	DeleteServer

	ListZones
	ShowZone
	AddZone
	EditZone
	DeleteZone

	ShowRRsets
	EditRRset
	DeleteRRset
	EditRRsetComments

	ListConfig
	Notify
	AXFRRetrieve
	Export
	Rectify

	ListMetadata
	ShowMetadata
	AddMetadata
	EditMetadata
	DeleteMetadata

	ListCryptokeys
	ShowCryptokey
	AddCryptokey
	EditCryptokey
	DeleteCryptokey

	FlushCache
	Search
	Statistics

	StoreKey
	ClearKey

	InitConfig
	ValidateConfig
	ShowSettings
)

// Scope says what an action needs before its handler can run.
type Scope int

const (
	// ScopeAPI needs an API connection but no server id.
	ScopeAPI Scope = iota
	// ScopeServer needs an API connection and a server id.
	ScopeServer
	// ScopeZone needs a server id and a zone; the zone selects credentials.
	ScopeZone
	// ScopeLocal runs without contacting the API.
	ScopeLocal
)

// Group names, used to organize help output.
const (
	GroupServer      = "server"
	GroupZone        = "zone"
	GroupRRset       = "rrset"
	GroupConfig      = "config"
	GroupMetadata    = "metadata"
	GroupCryptokey   = "cryptokey"
	GroupCache       = "cache"
	GroupSearch      = "search"
	GroupStatistics  = "statistics"
	GroupCredentials = "credentials"
	GroupSettings    = "settings"
)

type info struct {
	name  string
	group string
	scope Scope
	usage string
}

var infos = map[Action]info{
	ListServers:  {"list-servers", GroupServer, ScopeAPI, "list servers"},
	ShowServer:   {"show-server", GroupServer, ScopeServer, "show details for a server"},
	DeleteServer: {"delete-server", GroupServer, ScopeServer, "delete a server"},

	ListZones:  {"list-zones", GroupZone, ScopeServer, "list zones"},
	ShowZone:   {"show-zone", GroupZone, ScopeZone, "show details for a zone"},
	AddZone:    {"add-zone", GroupZone, ScopeZone, "add a new zone, print its ID"},
	EditZone:   {"edit-zone", GroupZone, ScopeZone, "edit the settings of a zone"},
	DeleteZone: {"delete-zone", GroupZone, ScopeZone, "delete a zone"},

	ShowRRsets:        {"show-rrsets", GroupRRset, ScopeZone, "show the resource record sets of a zone"},
	EditRRset:         {"edit-rrset", GroupRRset, ScopeZone, "add/replace/delete a record in a resource record set"},
	DeleteRRset:       {"delete-rrset", GroupRRset, ScopeZone, "delete a resource record set"},
	EditRRsetComments: {"edit-rrset-comments", GroupRRset, ScopeZone, "add/replace/delete a comment in a resource record set"},

	ListConfig:   {"list-config", GroupConfig, ScopeServer, "list the server configuration"},
	Notify:       {"notify", GroupConfig, ScopeZone, "send a DNS NOTIFY to all slaves of a zone"},
	AXFRRetrieve: {"axfr-retrieve", GroupConfig, ScopeZone, "retrieve a slave zone from its master"},
	Export:       {"export", GroupConfig, ScopeZone, "export a zone in AXFR format"},
	Rectify:      {"rectify", GroupConfig, ScopeZone, "rectify a DNSSEC zone"},

	ListMetadata:   {"list-metadata", GroupMetadata, ScopeZone, "list all metadata of a zone"},
	ShowMetadata:   {"show-metadata", GroupMetadata, ScopeZone, "show the metadata of one kind"},
	AddMetadata:    {"add-metadata", GroupMetadata, ScopeZone, "add metadata of a new kind"},
	EditMetadata:   {"edit-metadata", GroupMetadata, ScopeZone, "replace the metadata of one kind"},
	DeleteMetadata: {"delete-metadata", GroupMetadata, ScopeZone, "delete all metadata of one kind"},

	ListCryptokeys:  {"list-cryptokeys", GroupCryptokey, ScopeZone, "list the cryptokeys of a zone"},
	ShowCryptokey:   {"show-cryptokey", GroupCryptokey, ScopeZone, "show one cryptokey"},
	AddCryptokey:    {"add-cryptokey", GroupCryptokey, ScopeZone, "generate or import a cryptokey"},
	EditCryptokey:   {"edit-cryptokey", GroupCryptokey, ScopeZone, "activate/deactivate or publish/unpublish a cryptokey"},
	DeleteCryptokey: {"delete-cryptokey", GroupCryptokey, ScopeZone, "delete a cryptokey"},

	FlushCache: {"flush-cache", GroupCache, ScopeServer, "flush the cache for a domain and everything below it"},
	Search:     {"search", GroupSearch, ScopeServer, "search zones, records and comments"},
	Statistics: {"statistics", GroupStatistics, ScopeServer, "show server statistics"},

	StoreKey: {"store-key", GroupCredentials, ScopeLocal, "store the key of a [user*] section in the OS keyring"},
	ClearKey: {"clear-key", GroupCredentials, ScopeLocal, "remove a stored key from the OS keyring"},

	InitConfig:     {"init-config", GroupSettings, ScopeLocal, "write a starter configuration file"},
	ValidateConfig: {"validate-config", GroupSettings, ScopeLocal, "check the configuration file and show the zone map"},
	ShowSettings:   {"show-settings", GroupSettings, ScopeLocal, "print the configuration file with keys redacted"},
}

func (a Action) String() string {
	if i, ok := infos[a]; ok {
		return i.name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Group returns the action's command group.
func (a Action) Group() string {
	return infos[a].group
}

// Scope returns what the action needs to run.
func (a Action) Scope() Scope {
	return infos[a].scope
}

// Usage returns a one-line description for help output.
func (a Action) Usage() string {
	return infos[a].usage
}

// All returns every action in declaration order.
func All() []Action {
	all := make([]Action, 0, len(infos))
	for a := range infos {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// InGroup returns the actions of group in declaration order.
func InGroup(group string) []Action {
	var out []Action
	for _, a := range All() {
		if a.Group() == group {
			out = append(out, a)
		}
	}
	return out
}

// Parse resolves an action name.
func Parse(name string) (Action, error) {
	for a, i := range infos {
		if i.name == name {
			return a, nil
		}
	}
	return 0, &UsageError{Msg: fmt.Sprintf("unknown action %q", name)}
}

// UsageError reports missing or malformed command-line arguments.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usagef(format string, args ...interface{}) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}
