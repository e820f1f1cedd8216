package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/miekg/dns"
)

// APISectionName is the section holding connection defaults.
const APISectionName = "api"

// UserSectionPrefix marks sections whose zones are mapped to credentials.
const UserSectionPrefix = "user"

// Config is a parsed pdns-cli configuration file.
//
//	[api]
//	url = "https://dns.example.com/api/v1"
//	default-server = "localhost"
//	default-user = "user-admin"
//
//	[user-admin]
//	user = "admin"
//	key = "${secret:user-admin:key}"
//
//	[user-customer]
//	user = "customer"
//	key = "hunter2"
//	zones = ["example.com."]
type Config struct {
	API *APIConfig
	// Sections holds every section except [api], by name.
	Sections map[string]*UserConfig
	// Path is the file the config was loaded from, if any.
	Path string
}

// APIConfig is the [api] section.
type APIConfig struct {
	URL           string `toml:"url" yaml:"url"`
	DefaultServer string `toml:"default-server" yaml:"default-server"`
	DefaultUser   string `toml:"default-user" yaml:"default-user"`
	Insecure      bool   `toml:"insecure" yaml:"insecure"`
}

// UserConfig is an API identity and the zones it manages.
type UserConfig struct {
	User  string   `toml:"user" yaml:"user"`
	Key   string   `toml:"key" yaml:"key"`
	Zones []string `toml:"zones" yaml:"zones"`
}

// Error reports a configuration problem found before any API call.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

func errorf(format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Validate checks the structural invariants of the config.
func (c *Config) Validate() error {
	owners := map[string]string{}
	for _, name := range c.UserSectionNames() {
		for _, zone := range c.Sections[name].Zones {
			if zone == "" {
				return errorf("section [%s] lists an empty zone", name)
			}
			// the trailing dot is optional
			fqdn := dns.Fqdn(zone)
			if prev, ok := owners[fqdn]; ok {
				return errorf("zone %q is mapped by both [%s] and [%s]", fqdn, prev, name)
			}
			owners[fqdn] = name
		}
	}
	return ValidateSecretRefs(c)
}

// UserSectionNames returns the names of sections starting with "user",
// sorted.
func (c *Config) UserSectionNames() []string {
	var names []string
	for name := range c.Sections {
		if strings.HasPrefix(name, UserSectionPrefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (c *Config) sectionNames() []string {
	names := make([]string, 0, len(c.Sections))
	for name := range c.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Section returns the named section.
func (c *Config) Section(name string) (*UserConfig, bool) {
	s, ok := c.Sections[name]
	return s, ok
}
