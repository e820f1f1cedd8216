package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystcommunity/pdns-cli/v1/internal/output"
)

func TestHandlerTableIsExhaustive(t *testing.T) {
	assert.Empty(t, Missing())
	require.NoError(t, CheckHandlers())

	for _, a := range All() {
		_, ok := handlers[a]
		assert.True(t, ok, "no handler for %s", a)
	}
	assert.Len(t, handlers, len(All()), "handler registered for an undeclared action")
}

func TestActionNames(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range All() {
		name := a.String()
		assert.False(t, seen[name], "duplicate action name %s", name)
		seen[name] = true

		assert.NotEmpty(t, a.Group(), "%s has no group", name)
		assert.NotEmpty(t, a.Usage(), "%s has no usage", name)

		parsed, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	_, err := Parse("check-zone")
	var usageErr *UsageError
	require.True(t, errors.As(err, &usageErr))

	assert.Equal(t, "Action(999)", Action(999).String())
}

func TestInGroup(t *testing.T) {
	assert.Equal(t, []Action{ShowRRsets, EditRRset, DeleteRRset, EditRRsetComments}, InGroup(GroupRRset))
	assert.Equal(t, []Action{StoreKey, ClearKey}, InGroup(GroupCredentials))

	total := 0
	for _, g := range []string{GroupServer, GroupZone, GroupRRset, GroupConfig, GroupMetadata,
		GroupCryptokey, GroupCache, GroupSearch, GroupStatistics, GroupCredentials, GroupSettings} {
		total += len(InGroup(g))
	}
	assert.Equal(t, len(All()), total, "every action belongs to a known group")
}

func TestDispatch_ScopeChecks(t *testing.T) {
	s, api, _ := newTestSession(t, nil, output.FormatText)

	tests := []struct {
		name    string
		session *Session
		req     Request
		usage   bool
		errMsg  string
	}{
		{
			name:    "zone action without zone",
			session: s,
			req:     Request{Action: ShowZone, Server: "localhost"},
			usage:   true,
			errMsg:  "show-zone: zone is required",
		},
		{
			name:    "server action without server",
			session: s,
			req:     Request{Action: ListZones},
			usage:   true,
			errMsg:  "server id is required",
		},
		{
			name:    "zone action without server",
			session: s,
			req:     Request{Action: ShowRRsets, Zone: "example.com."},
			usage:   true,
			errMsg:  "server id is required",
		},
		{
			name:    "api action without connection",
			session: &Session{Out: s.Out},
			req:     Request{Action: ListServers},
			errMsg:  "no API connection",
		},
		{
			name:    "unknown action",
			session: s,
			req:     Request{Action: Action(999)},
			errMsg:  "has no handler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Dispatch(context.Background(), tt.session, tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}

	assert.Empty(t, api.calls, "scope checks must fail before any request")
}
