package secrets

import (
	"fmt"
	"strings"
)

// ChainResolver tries resolvers in order until one succeeds.
type ChainResolver struct {
	resolvers []Resolver
}

func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// DefaultResolver checks the environment first and then the OS keyring.
func DefaultResolver(store *KeyringStore) *ChainResolver {
	return NewChainResolver(NewEnvResolver(), store)
}

// Resolve returns the first successful value. When every resolver fails the
// error lists each attempt.
func (c *ChainResolver) Resolve(ref SecretRef) (string, error) {
	if len(c.resolvers) == 0 {
		return "", fmt.Errorf("no resolvers configured")
	}

	var failures []string
	for i, resolver := range c.resolvers {
		value, err := resolver.Resolve(ref)
		if err == nil {
			return value, nil
		}
		failures = append(failures, fmt.Sprintf("resolver %d: %s", i+1, err))
	}

	return "", fmt.Errorf("failed to resolve secret %s after trying %d resolver(s):\n  %s",
		ref.FullKey(), len(c.resolvers), strings.Join(failures, "\n  "))
}
