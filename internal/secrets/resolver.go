package secrets

import (
	"fmt"
	"os"
	"strings"
)

// EnvPrefix prefixes the environment variables consulted by EnvResolver.
const EnvPrefix = "PDNS_CLI_SECRET_"

// Resolver turns a secret reference into its value.
type Resolver interface {
	Resolve(ref SecretRef) (string, error)
}

// EnvResolver resolves secrets from environment variables.
type EnvResolver struct {
	lookup func(string) (string, bool)
}

func NewEnvResolver() *EnvResolver {
	return &EnvResolver{lookup: os.LookupEnv}
}

// Resolve reads PDNS_CLI_SECRET_<PATH>_<KEY>.
func (e *EnvResolver) Resolve(ref SecretRef) (string, error) {
	name := EnvVarName(ref)
	value, ok := e.lookup(name)
	if !ok || value == "" {
		return "", fmt.Errorf("environment variable %s not set", name)
	}
	return value, nil
}

// EnvVarName maps a reference to its environment variable. Slashes, hyphens
// and colons become underscores and the result is uppercased, so
// ${secret:users/customer:key} reads PDNS_CLI_SECRET_USERS_CUSTOMER_KEY.
func EnvVarName(ref SecretRef) string {
	replacer := strings.NewReplacer("/", "_", "-", "_", ":", "_")
	return EnvPrefix + strings.ToUpper(replacer.Replace(ref.Path+"_"+ref.Key))
}
