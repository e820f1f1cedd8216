package pdns

import (
	"context"
	"fmt"
	"strings"
)

// Cryptokey is a DNSSEC key of a zone.
type Cryptokey struct {
	*Resource
}

// CryptokeySpec describes a key to create or import. Content imports an
// existing private key; otherwise the server generates one.
type CryptokeySpec struct {
	KeyType   string // ksk, zsk or csk
	Active    bool
	Published bool
	Algorithm string
	Bits      int
	Content   string
}

// Validate checks the key type before any request is made.
func (s CryptokeySpec) Validate() error {
	switch strings.ToLower(s.KeyType) {
	case "ksk", "zsk", "csk":
		return nil
	default:
		return &ValidationError{Field: "keytype", Reason: fmt.Sprintf("unknown key type %q (want ksk, zsk or csk)", s.KeyType)}
	}
}

// Fields renders the spec as a request body.
func (s CryptokeySpec) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"keytype":   strings.ToLower(s.KeyType),
		"active":    s.Active,
		"published": s.Published,
	}
	if s.Algorithm != "" {
		fields["algorithm"] = s.Algorithm
	}
	if s.Bits > 0 {
		fields["bits"] = s.Bits
	}
	if s.Content != "" {
		fields["content"] = s.Content
	}
	return fields
}

// SetState activates/deactivates and publishes/unpublishes the key.
func (k *Cryptokey) SetState(ctx context.Context, active, published bool) error {
	return k.Update(ctx, map[string]interface{}{
		"active":    active,
		"published": published,
	})
}

// Cryptokeys lists the zone's DNSSEC keys.
func (z *Zone) Cryptokeys(ctx context.Context) ([]*Cryptokey, error) {
	resources, err := list(ctx, z.api, cryptokeyKind, z.Resource)
	if err != nil {
		return nil, err
	}
	out := make([]*Cryptokey, 0, len(resources))
	for _, r := range resources {
		out = append(out, &Cryptokey{Resource: r})
	}
	return out, nil
}

// Cryptokey returns an unloaded handle for the key with the given id.
func (z *Zone) Cryptokey(id string) *Cryptokey {
	return &Cryptokey{Resource: newResource(z.api, cryptokeyKind, id, z.Resource)}
}

// AddCryptokey creates or imports a key.
func (z *Zone) AddCryptokey(ctx context.Context, spec CryptokeySpec) (*Cryptokey, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	r, err := create(ctx, z.api, cryptokeyKind, z.Resource, spec.Fields())
	if err != nil {
		return nil, err
	}
	return &Cryptokey{Resource: r}, nil
}
