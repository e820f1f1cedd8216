package rrset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
	"github.com/catalystcommunity/pdns-cli/v1/internal/rrsync"
)

func parse(t *testing.T, flags []cli.Flag, fn registry.ParseFunc, args ...string) (actions.Request, error) {
	t.Helper()
	var req actions.Request
	var parseErr error
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			parseErr = fn(cmd, &req)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return req, parseErr
}

func TestCommandRegistration(t *testing.T) {
	assert.Equal(t, "rrset", Command.Name)

	var names []string
	for _, sub := range Command.Commands {
		names = append(names, sub.Name)
		assert.NotNil(t, sub.Action, sub.Name)
	}
	assert.Equal(t, []string{"show-rrsets", "edit-rrset", "delete-rrset", "edit-rrset-comments"}, names)
	assert.Equal(t, "<zone> <name> <type> <content>", Command.Commands[1].ArgsUsage)
}

func TestParseEditRecord(t *testing.T) {
	t.Run("add with ttl", func(t *testing.T) {
		req, err := parse(t, recordFlags(), parseEditRecord,
			"--add", "--ttl", "300", "--set-ptr", "example.com.", "www", "A", "192.0.2.1")
		require.NoError(t, err)
		assert.Equal(t, rrsync.ModeAdd, req.Mode)
		assert.Equal(t, "example.com.", req.Zone)
		assert.Equal(t, "www", req.Name)
		assert.Equal(t, "A", req.Type)
		assert.Equal(t, "192.0.2.1", req.Content)
		assert.Equal(t, 300, req.TTL)
		assert.True(t, req.SetPTR)
		assert.False(t, req.Disabled)
	})

	t.Run("ttl left unset", func(t *testing.T) {
		req, err := parse(t, recordFlags(), parseEditRecord,
			"--delete", "--disabled", "example.com.", "@", "MX", "10 mail.example.com.")
		require.NoError(t, err)
		assert.Equal(t, rrsync.ModeDelete, req.Mode)
		assert.Equal(t, 0, req.TTL)
		assert.True(t, req.Disabled)
	})

	t.Run("zero ttl rejected", func(t *testing.T) {
		_, err := parse(t, recordFlags(), parseEditRecord,
			"--replace", "--ttl", "0", "example.com.", "www", "A", "192.0.2.1")
		var verr *pdns.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "ttl", verr.Field)
	})

	t.Run("mode required", func(t *testing.T) {
		_, err := parse(t, recordFlags(), parseEditRecord, "example.com.", "www", "A", "192.0.2.1")
		var uerr *actions.UsageError
		require.ErrorAs(t, err, &uerr)
	})

	t.Run("modes are exclusive", func(t *testing.T) {
		_, err := parse(t, recordFlags(), parseEditRecord,
			"--add", "--delete", "example.com.", "www", "A", "192.0.2.1")
		var uerr *actions.UsageError
		require.ErrorAs(t, err, &uerr)
	})
}

func TestParseEditComment(t *testing.T) {
	req, err := parse(t, commentFlags(), parseEditComment,
		"--replace", "--account", "ops", "example.com.", "www", "A", "moved to new host")
	require.NoError(t, err)
	assert.Equal(t, rrsync.ModeReplace, req.Mode)
	assert.Equal(t, "ops", req.Account)
	assert.Equal(t, "moved to new host", req.Content)
}

func TestParseNameType(t *testing.T) {
	req, err := parse(t, nil, parseNameType, "example.com.", "www", "AAAA")
	require.NoError(t, err)
	assert.Equal(t, "example.com.", req.Zone)
	assert.Equal(t, "www", req.Name)
	assert.Equal(t, "AAAA", req.Type)
}
