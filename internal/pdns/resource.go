package pdns

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// State tracks whether a resource's cached snapshot can be trusted.
type State int

const (
	// Unloaded resources have never been fetched (or were deleted).
	Unloaded State = iota
	// Loaded resources hold a snapshot from the server or from a create/update.
	Loaded
	// Stale resources were mutated remotely; the next read re-fetches.
	Stale
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	case Stale:
		return "stale"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// kind describes one API collection: its path segment and which attribute
// carries a member's id.
type kind struct {
	segment string
	idAttr  string
}

var (
	serverKind    = kind{segment: "servers", idAttr: "id"}
	zoneKind      = kind{segment: "zones", idAttr: "id"}
	configKind    = kind{segment: "config", idAttr: "name"}
	metadataKind  = kind{segment: "metadata", idAttr: "kind"}
	cryptokeyKind = kind{segment: "cryptokeys", idAttr: "id"}
)

// Resource is a lazily loaded API object addressed by parent path, kind and
// id. The snapshot is a plain JSON object.
type Resource struct {
	api    Gateway
	kind   kind
	id     string
	parent *Resource
	state  State
	data   map[string]interface{}
}

func newResource(api Gateway, k kind, id string, parent *Resource) *Resource {
	return &Resource{api: api, kind: k, id: id, parent: parent}
}

// ID returns the resource identifier.
func (r *Resource) ID() string {
	return r.id
}

// State returns the cache state.
func (r *Resource) State() State {
	return r.state
}

// Path returns the API path of this resource, relative to the base URL.
func (r *Resource) Path() string {
	return joinPath(collectionPath(r.kind, r.parent), r.id)
}

func collectionPath(k kind, parent *Resource) string {
	if parent == nil {
		return k.segment
	}
	return joinPath(parent.Path(), k.segment)
}

func joinPath(elems ...string) string {
	return strings.Join(elems, "/")
}

// Load fetches the resource unconditionally.
func (r *Resource) Load(ctx context.Context) error {
	resp, err := r.api.Do(ctx, http.MethodGet, r.Path(), nil, nil)
	if err != nil {
		return err
	}

	data := map[string]interface{}{}
	if err := resp.Decode(&data); err != nil {
		return fmt.Errorf("failed to decode %s %s: %w", r.kind.segment, r.id, err)
	}

	r.data = data
	r.state = Loaded
	return nil
}

// Data returns the cached snapshot, fetching it first when the resource is
// unloaded or stale.
func (r *Resource) Data(ctx context.Context) (map[string]interface{}, error) {
	if r.state != Loaded {
		if err := r.Load(ctx); err != nil {
			return nil, err
		}
	}
	return r.data, nil
}

// String returns a string attribute of the snapshot.
func (r *Resource) String(ctx context.Context, attr string) (string, error) {
	data, err := r.Data(ctx)
	if err != nil {
		return "", err
	}
	s, _ := data[attr].(string)
	return s, nil
}

// Invalidate marks the snapshot stale so the next read re-fetches.
func (r *Resource) Invalidate() {
	if r.state == Loaded {
		r.state = Stale
	}
}

// Update PUTs the given fields. A 204 leaves a snapshot synthesized from
// fields; any other 2xx replaces the snapshot with the response body.
func (r *Resource) Update(ctx context.Context, fields map[string]interface{}) error {
	resp, err := r.api.Do(ctx, http.MethodPut, r.Path(), nil, fields)
	if err != nil {
		return err
	}
	return r.absorb(resp, fields)
}

// Delete removes the resource and clears the snapshot.
func (r *Resource) Delete(ctx context.Context) error {
	if _, err := r.api.Do(ctx, http.MethodDelete, r.Path(), nil, nil); err != nil {
		return err
	}
	r.data = map[string]interface{}{}
	r.state = Unloaded
	return nil
}

// mutate sends a request that changes server state without returning the
// resource, then marks the snapshot stale.
func (r *Resource) mutate(ctx context.Context, method, sub string, body interface{}) (*Response, error) {
	path := r.Path()
	if sub != "" {
		path = joinPath(path, sub)
	}
	resp, err := r.api.Do(ctx, method, path, nil, body)
	if err != nil {
		return nil, err
	}
	r.Invalidate()
	return resp, nil
}

func (r *Resource) absorb(resp *Response, fields map[string]interface{}) error {
	if resp.NoContent() {
		data := make(map[string]interface{}, len(fields))
		for k, v := range fields {
			data[k] = v
		}
		r.data = data
		r.state = Loaded
		return nil
	}

	data := map[string]interface{}{}
	if err := resp.Decode(&data); err != nil {
		return err
	}
	r.data = data
	r.state = Loaded
	return nil
}

// create POSTs fields to the k collection under parent and returns the
// created resource, loaded from the response (or from fields on 204).
func create(ctx context.Context, api Gateway, k kind, parent *Resource, fields map[string]interface{}) (*Resource, error) {
	resp, err := api.Do(ctx, http.MethodPost, collectionPath(k, parent), nil, fields)
	if err != nil {
		return nil, err
	}

	r := newResource(api, k, "", parent)
	if err := r.absorb(resp, fields); err != nil {
		return nil, err
	}

	id, err := idOf(r.data, k.idAttr)
	if err != nil {
		return nil, err
	}
	r.id = id
	return r, nil
}

// list GETs the k collection under parent. Each member arrives Loaded with
// its summary object.
func list(ctx context.Context, api Gateway, k kind, parent *Resource) ([]*Resource, error) {
	resp, err := api.Do(ctx, http.MethodGet, collectionPath(k, parent), nil, nil)
	if err != nil {
		return nil, err
	}

	var items []map[string]interface{}
	if err := resp.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", k.segment, err)
	}

	resources := make([]*Resource, 0, len(items))
	for _, item := range items {
		id, err := idOf(item, k.idAttr)
		if err != nil {
			return nil, err
		}
		r := newResource(api, k, id, parent)
		r.data = item
		r.state = Loaded
		resources = append(resources, r)
	}
	return resources, nil
}

func idOf(data map[string]interface{}, attr string) (string, error) {
	switch v := data[attr].(type) {
	case string:
		return v, nil
	case float64:
		return fmt.Sprintf("%d", int64(v)), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("response has no %q attribute", attr)
	}
}
