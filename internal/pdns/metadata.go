package pdns

import (
	"context"
	"fmt"
)

// Metadata is one kind of per-zone domain metadata and its values.
type Metadata struct {
	*Resource
}

// Values returns the metadata values.
func (m *Metadata) Values(ctx context.Context) ([]string, error) {
	data, err := m.Data(ctx)
	if err != nil {
		return nil, err
	}
	switch raw := data["metadata"].(type) {
	case []string:
		return append([]string(nil), raw...), nil
	case []interface{}:
		values := make([]string, 0, len(raw))
		for _, v := range raw {
			values = append(values, fmt.Sprint(v))
		}
		return values, nil
	default:
		return []string{}, nil
	}
}

// Replace overwrites all values of this metadata kind.
func (m *Metadata) Replace(ctx context.Context, values []string) error {
	if values == nil {
		values = []string{}
	}
	return m.Update(ctx, map[string]interface{}{
		"kind":     m.ID(),
		"metadata": values,
	})
}

// Metadata lists all metadata of the zone.
func (z *Zone) Metadata(ctx context.Context) ([]*Metadata, error) {
	resources, err := list(ctx, z.api, metadataKind, z.Resource)
	if err != nil {
		return nil, err
	}
	out := make([]*Metadata, 0, len(resources))
	for _, r := range resources {
		out = append(out, &Metadata{Resource: r})
	}
	return out, nil
}

// MetadataKind returns an unloaded handle for one metadata kind.
func (z *Zone) MetadataKind(kind string) *Metadata {
	return &Metadata{Resource: newResource(z.api, metadataKind, kind, z.Resource)}
}

// AddMetadata creates a metadata kind with the given values.
func (z *Zone) AddMetadata(ctx context.Context, kind string, values []string) (*Metadata, error) {
	if kind == "" {
		return nil, &ValidationError{Field: "kind", Reason: "metadata kind cannot be empty"}
	}
	if values == nil {
		values = []string{}
	}
	r, err := create(ctx, z.api, metadataKind, z.Resource, map[string]interface{}{
		"kind":     kind,
		"metadata": values,
	})
	if err != nil {
		return nil, err
	}
	return &Metadata{Resource: r}, nil
}
