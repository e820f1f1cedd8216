package secrets

import (
	"fmt"
	"regexp"
	"strings"
)

// SecretRef is a parsed ${secret:path:key} reference.
type SecretRef struct {
	Path string
	Key  string
	Raw  string
}

// secretRefPattern matches ${secret:users/customer:key}
var secretRefPattern = regexp.MustCompile(`^\$\{secret:([a-zA-Z0-9/_-]+):([a-zA-Z0-9_-]+)\}$`)

// ParseSecretRef parses s into a SecretRef. A string that does not look like
// a reference at all yields (nil, nil); one that looks like a reference but is
// malformed yields an error.
func ParseSecretRef(s string) (*SecretRef, error) {
	s = strings.TrimSpace(s)
	if !IsSecretRef(s) {
		return nil, nil
	}

	matches := secretRefPattern.FindStringSubmatch(s)
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid secret reference %q (expected ${secret:path:key})", s)
	}

	return &SecretRef{Path: matches[1], Key: matches[2], Raw: s}, nil
}

// IsSecretRef reports whether s has the ${secret:...} shape. Use
// ParseSecretRef for full validation.
func IsSecretRef(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "${secret:") && strings.HasSuffix(s, "}")
}

// NewSecretRef builds a reference for path and key.
func NewSecretRef(path, key string) SecretRef {
	return SecretRef{Path: path, Key: key}
}

// FullKey returns "path:key", the identifier used for keyring accounts and
// error messages.
func (sr SecretRef) FullKey() string {
	return sr.Path + ":" + sr.Key
}

func (sr SecretRef) String() string {
	if sr.Raw != "" {
		return sr.Raw
	}
	return fmt.Sprintf("${secret:%s:%s}", sr.Path, sr.Key)
}

// Expand returns value unchanged unless it is a secret reference, in which
// case the reference is resolved through r.
func Expand(r Resolver, value string) (string, error) {
	ref, err := ParseSecretRef(value)
	if err != nil {
		return "", err
	}
	if ref == nil {
		return value, nil
	}
	if r == nil {
		return "", fmt.Errorf("no secret resolver configured for %s", ref)
	}
	return r.Resolve(*ref)
}
