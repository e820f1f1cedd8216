package actions

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/catalystcommunity/pdns-cli/v1/internal/output"
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
	"github.com/catalystcommunity/pdns-cli/v1/internal/rrsync"
)

// apiCall is one request seen by fakeAPI.
type apiCall struct {
	Method string
	Path   string
	Query  string
	Body   json.RawMessage
}

// fakeAPI serves canned bodies keyed by "METHOD /path". An empty body
// answers 204; unknown routes answer 404.
type fakeAPI struct {
	routes map[string]string
	calls  []apiCall
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.calls = append(f.calls, apiCall{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: body})

	resp, ok := f.routes[r.Method+" "+r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not Found"}`))
		return
	}
	if resp == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(resp))
}

func (f *fakeAPI) callsTo(method string) []apiCall {
	var out []apiCall
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestSession(t *testing.T, routes map[string]string, format output.Format) (*Session, *fakeAPI, *bytes.Buffer) {
	t.Helper()
	api := &fakeAPI{routes: routes}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client, err := pdns.NewClient(srv.URL, pdns.APIKey("secret"), pdns.Options{})
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	return &Session{
		API:      client,
		Out:      output.New(&out, &errOut, format),
		Sync:     rrsync.NewWithClock(func() time.Time { return fixedNow }),
		Location: time.UTC,
	}, api, &out
}

const zonePath = "/servers/localhost/zones/example.com."

const exampleZone = `{
  "id": "example.com.",
  "name": "example.com.",
  "kind": "Native",
  "url": "/api/v1/servers/localhost/zones/example.com.",
  "serial": 2024010101,
  "rrsets": [
    {"name": "www.example.com.", "type": "A", "ttl": 300,
     "records": [{"content": "192.0.2.2", "disabled": true}, {"content": "192.0.2.1", "disabled": false}],
     "comments": []},
    {"name": "example.com.", "type": "SOA", "ttl": 3600,
     "records": [{"content": "ns1.example.com. hostmaster.example.com. 1 10800 3600 604800 3600", "disabled": false}],
     "comments": [{"content": "managed", "account": "ops", "modified_at": 1700000000}]},
    {"name": "api.example.com.", "type": "CNAME", "ttl": 300,
     "records": [{"content": "www.example.com.", "disabled": false}],
     "comments": []},
    {"name": "example.com.", "type": "NS", "ttl": 3600,
     "records": [{"content": "ns1.example.com.", "disabled": false}],
     "comments": [{"content": "primary", "account": "", "modified_at": 1600000000}]}
  ]
}`
