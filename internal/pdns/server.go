package pdns

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Server is a PowerDNS server (daemon) exposed by the API.
type Server struct {
	*Resource
}

// Zones lists the zones on the server.
func (s *Server) Zones(ctx context.Context) ([]*Zone, error) {
	resources, err := list(ctx, s.api, zoneKind, s.Resource)
	if err != nil {
		return nil, err
	}
	zones := make([]*Zone, 0, len(resources))
	for _, r := range resources {
		// list entries are summaries without rrsets
		r.state = Stale
		zones = append(zones, &Zone{Resource: r})
	}
	return zones, nil
}

// Zone returns an unloaded handle for the zone with the given id.
func (s *Server) Zone(id string) *Zone {
	return &Zone{Resource: newResource(s.api, zoneKind, id, s.Resource)}
}

// CreateZone validates spec and creates the zone.
func (s *Server) CreateZone(ctx context.Context, spec ZoneSpec) (*Zone, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	r, err := create(ctx, s.api, zoneKind, s.Resource, spec.Fields())
	if err != nil {
		return nil, err
	}
	return &Zone{Resource: r}, nil
}

// DeleteZone deletes the zone with the given id.
func (s *Server) DeleteZone(ctx context.Context, id string) error {
	return s.Zone(id).Delete(ctx)
}

// ConfigSetting is one server configuration value.
type ConfigSetting struct {
	*Resource
}

// Value returns the setting's value rendered as a string.
func (c *ConfigSetting) Value(ctx context.Context) (string, error) {
	data, err := c.Data(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(data["value"]), nil
}

// Config lists the server's configuration settings.
func (s *Server) Config(ctx context.Context) ([]*ConfigSetting, error) {
	resources, err := list(ctx, s.api, configKind, s.Resource)
	if err != nil {
		return nil, err
	}
	settings := make([]*ConfigSetting, 0, len(resources))
	for _, r := range resources {
		settings = append(settings, &ConfigSetting{Resource: r})
	}
	return settings, nil
}

// ConfigSetting returns an unloaded handle for one setting.
func (s *Server) ConfigSetting(name string) *ConfigSetting {
	return &ConfigSetting{Resource: newResource(s.api, configKind, name, s.Resource)}
}

// Statistic is one entry of the server's statistics endpoint. Value is a
// string for StatisticItem, a list for MapStatisticItem and
// RingStatisticItem.
type Statistic struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Size  int         `json:"size,omitempty"`
	Value interface{} `json:"value"`
}

// Statistics returns the server's internal statistics. An empty statistic
// name returns all of them.
func (s *Server) Statistics(ctx context.Context, statistic string) ([]Statistic, error) {
	query := url.Values{}
	if statistic != "" {
		query.Set("statistic", statistic)
	}
	resp, err := s.api.Do(ctx, http.MethodGet, joinPath(s.Path(), "statistics"), query, nil)
	if err != nil {
		return nil, err
	}
	var stats []Statistic
	if err := resp.Decode(&stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// SearchResult is one hit of a search-data query.
type SearchResult struct {
	Content    string `json:"content,omitempty"`
	Disabled   bool   `json:"disabled,omitempty"`
	Name       string `json:"name"`
	ObjectType string `json:"object_type"`
	ZoneID     string `json:"zone_id,omitempty"`
	Zone       string `json:"zone,omitempty"`
	Type       string `json:"type,omitempty"`
	TTL        int    `json:"ttl,omitempty"`
}

// SearchQuery parameterizes a search across zones, records and comments.
type SearchQuery struct {
	Query      string
	Max        int
	ObjectType string // all, zone, record, comment
}

// Search queries zones, records and comments on the server.
func (s *Server) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	if q.Query == "" {
		return nil, &ValidationError{Field: "query", Reason: "search query cannot be empty"}
	}
	query := url.Values{}
	query.Set("q", q.Query)
	limit := q.Max
	if limit <= 0 {
		limit = 100
	}
	query.Set("max", strconv.Itoa(limit))
	if q.ObjectType != "" {
		query.Set("object_type", q.ObjectType)
	}

	resp, err := s.api.Do(ctx, http.MethodGet, joinPath(s.Path(), "search-data"), query, nil)
	if err != nil {
		return nil, err
	}
	var results []SearchResult
	if err := resp.Decode(&results); err != nil {
		return nil, err
	}
	return results, nil
}

// CacheFlushResult reports what a cache flush removed.
type CacheFlushResult struct {
	Count  int    `json:"count"`
	Result string `json:"result"`
}

// FlushCache flushes cached entries for domain and everything below it.
func (s *Server) FlushCache(ctx context.Context, domain string) (*CacheFlushResult, error) {
	if domain == "" {
		return nil, &ValidationError{Field: "domain", Reason: "domain cannot be empty"}
	}
	query := url.Values{}
	query.Set("domain", domain)
	resp, err := s.api.Do(ctx, http.MethodPut, joinPath(s.Path(), "cache", "flush"), query, nil)
	if err != nil {
		return nil, err
	}
	result := &CacheFlushResult{}
	if resp.NoContent() {
		return result, nil
	}
	if err := resp.Decode(result); err != nil {
		return nil, err
	}
	return result, nil
}
