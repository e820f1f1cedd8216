package pdns

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Authenticator decorates outgoing requests with credentials.
type Authenticator interface {
	Authenticate(req *http.Request)
}

// APIKey authenticates with the X-API-Key header.
type APIKey string

// Authenticate sets the X-API-Key header.
func (k APIKey) Authenticate(req *http.Request) {
	req.Header.Set("X-API-Key", string(k))
}

// BasicAuth authenticates with HTTP basic auth.
type BasicAuth struct {
	Username string
	Password string
}

// Authenticate sets the Authorization header.
func (b BasicAuth) Authenticate(req *http.Request) {
	req.SetBasicAuth(b.Username, b.Password)
}

// Gateway is the set of HTTP verbs the resource model needs.
type Gateway interface {
	Do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error)
}

// Response is a successful (2xx) API response.
type Response struct {
	StatusCode int
	Body       []byte
}

// NoContent reports whether the server answered 204 or sent no body.
func (r *Response) NoContent() bool {
	return r.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(r.Body)) == 0
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Client is an HTTP API client for PowerDNS
type Client struct {
	baseURL    *url.URL
	auth       Authenticator
	httpClient *http.Client
}

// Options tune the HTTP transport used by Client.
type Options struct {
	// Insecure skips TLS certificate verification.
	Insecure bool
	// Timeout bounds each request. Zero leaves requests unbounded.
	Timeout time.Duration
}

// NewClient creates a new PowerDNS API client. baseURL should include the
// API prefix, e.g. "http://localhost:8081/api/v1".
func NewClient(baseURL string, auth Authenticator, opts Options) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("API URL cannot be empty")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", baseURL)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &Client{
		baseURL: u,
		auth:    auth,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
	}, nil
}

// Do performs an HTTP request with proper headers. Non-2xx responses are
// returned as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	u := c.baseURL.JoinPath(strings.TrimPrefix(path, "/"))
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.auth != nil {
		c.auth.Authenticate(req)
	}

	log.Debugf("%s %s", method, u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debugf("%s %s -> %d (%d bytes)", method, u.Path, resp.StatusCode, len(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// Get issues a GET and decodes the JSON body into out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	resp, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.Decode(out)
}

// Servers lists all servers exposed by the API.
func (c *Client) Servers(ctx context.Context) ([]*Server, error) {
	resources, err := list(ctx, c, serverKind, nil)
	if err != nil {
		return nil, err
	}
	servers := make([]*Server, 0, len(resources))
	for _, r := range resources {
		servers = append(servers, &Server{Resource: r})
	}
	return servers, nil
}

// Server returns an unloaded handle for the server with the given id.
func (c *Client) Server(id string) *Server {
	return &Server{Resource: newResource(c, serverKind, id, nil)}
}
