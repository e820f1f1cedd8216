// Package credentials picks the API credential for a request.
//
// Precedence, highest first: credentials given on the command line, the
// [user*] section whose zones list contains the target zone, the section
// named by [api] default-user. Anything else is a configuration error,
// reported before the first HTTP call.
package credentials

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
	log "github.com/sirupsen/logrus"

	"github.com/catalystcommunity/pdns-cli/v1/internal/config"
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
	"github.com/catalystcommunity/pdns-cli/v1/internal/secrets"
)

// Source records which rule produced a credential.
type Source int

const (
	SourceCLI Source = iota + 1
	SourceZoneMap
	SourceDefaultUser
)

func (s Source) String() string {
	switch s {
	case SourceCLI:
		return "command line"
	case SourceZoneMap:
		return "zone map"
	case SourceDefaultUser:
		return "default user"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Overrides are the credentials given on the command line.
type Overrides struct {
	// Auth is USERNAME:PASSWORD for basic auth.
	Auth string
	// APIKey is sent as X-API-Key.
	APIKey string
}

// Empty reports whether no credential was given.
func (o Overrides) Empty() bool {
	return o.Auth == "" && o.APIKey == ""
}

// Credential is a resolved API identity. Either or both of the API key and
// the basic auth pair may be set.
type Credential struct {
	APIKey   string
	Username string
	Password string
	Source   Source
	// Section names the config section used, if any.
	Section string
}

func (c Credential) hasBasic() bool {
	return c.Username != "" || c.Password != ""
}

// Authenticator returns the request decorator for c. An API key wins over
// a basic auth pair when both are set.
func (c Credential) Authenticator() pdns.Authenticator {
	if c.APIKey != "" {
		return pdns.APIKey(c.APIKey)
	}
	if c.hasBasic() {
		return pdns.BasicAuth{Username: c.Username, Password: c.Password}
	}
	return nil
}

// ZoneMap maps a zone name to the [user*] section that manages it.
type ZoneMap map[string]string

// NewZoneMap indexes the zones of every [user*] section in cfg by their
// fully qualified name.
func NewZoneMap(cfg *config.Config) ZoneMap {
	m := ZoneMap{}
	if cfg == nil {
		return m
	}
	for _, name := range cfg.UserSectionNames() {
		for _, zone := range cfg.Sections[name].Zones {
			m[dns.Fqdn(zone)] = name
		}
	}
	return m
}

// Lookup finds the section for zone. Zones match with or without the
// trailing dot.
func (m ZoneMap) Lookup(zone string) (string, bool) {
	if zone == "" {
		return "", false
	}
	section, ok := m[dns.Fqdn(zone)]
	return section, ok
}

// Resolver resolves credentials against one loaded config.
type Resolver struct {
	cfg     *config.Config
	zones   ZoneMap
	secrets secrets.Resolver
}

// NewResolver builds the zone map for cfg once. cfg may be nil when no
// configuration file exists; secretResolver may be nil when keys are never
// secret references.
func NewResolver(cfg *config.Config, secretResolver secrets.Resolver) *Resolver {
	return &Resolver{cfg: cfg, zones: NewZoneMap(cfg), secrets: secretResolver}
}

// Zones returns the zone map.
func (r *Resolver) Zones() ZoneMap {
	return r.zones
}

// Resolve picks the credential for a request touching zone. zone may be empty
// for server-level requests.
func (r *Resolver) Resolve(overrides Overrides, zone string) (Credential, error) {
	if !overrides.Empty() {
		return fromOverrides(overrides)
	}

	if r.cfg == nil || r.cfg.API == nil {
		return Credential{}, &config.Error{Msg: "no credentials given and no [api] section in configuration file"}
	}

	if r.cfg.API.DefaultUser == "" {
		return Credential{}, &config.Error{Msg: "no default-user specified in [api] section of configuration file"}
	}

	if section, ok := r.zones.Lookup(zone); ok {
		log.Debugf("zone %s is mapped to [%s]", zone, section)
		return r.fromSection(section, SourceZoneMap)
	}

	log.Debugf("using default user [%s]", r.cfg.API.DefaultUser)
	return r.fromSection(r.cfg.API.DefaultUser, SourceDefaultUser)
}

func fromOverrides(o Overrides) (Credential, error) {
	cred := Credential{APIKey: o.APIKey, Source: SourceCLI}
	if o.Auth != "" {
		user, pass, ok := strings.Cut(o.Auth, ":")
		if !ok || user == "" {
			return Credential{}, &pdns.ValidationError{Field: "auth", Reason: "must be USERNAME:PASSWORD"}
		}
		cred.Username, cred.Password = user, pass
	}
	return cred, nil
}

func (r *Resolver) fromSection(name string, source Source) (Credential, error) {
	section, ok := r.cfg.Section(name)
	if !ok {
		return Credential{}, &config.Error{Msg: fmt.Sprintf("user %q has no [%s] section in configuration file", name, name)}
	}
	if section.User == "" || section.Key == "" {
		return Credential{}, &config.Error{Msg: fmt.Sprintf("section [%s] must set both user and key", name)}
	}

	key, err := secrets.Expand(r.secrets, section.Key)
	if err != nil {
		return Credential{}, &config.Error{Msg: fmt.Sprintf("section [%s] key: %v", name, err)}
	}

	return Credential{
		Username: section.User,
		Password: key,
		Source:   source,
		Section:  name,
	}, nil
}
