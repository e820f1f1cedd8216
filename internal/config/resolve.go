package config

import (
	"github.com/catalystcommunity/pdns-cli/v1/internal/secrets"
)

// ValidateSecretRefs checks the syntax of every ${secret:...} key. It does
// not resolve anything; only the section chosen for a request is resolved,
// and only at that point.
func ValidateSecretRefs(cfg *Config) error {
	for _, name := range cfg.sectionNames() {
		key := cfg.Sections[name].Key
		if !secrets.IsSecretRef(key) {
			continue
		}
		if _, err := secrets.ParseSecretRef(key); err != nil {
			return errorf("[%s] key: %v", name, err)
		}
	}
	return nil
}

// SecretRefFor is the reference under which the credentials commands store
// the key of section.
func SecretRefFor(section string) secrets.SecretRef {
	return secrets.NewSecretRef("users/"+section, "key")
}
