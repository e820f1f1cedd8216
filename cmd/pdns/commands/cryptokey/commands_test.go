package cryptokey

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
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
	assert.Equal(t, "cryptokey", Command.Name)
	assert.Len(t, Command.Commands, 5)
	assert.Equal(t, "list-cryptokeys", Command.Commands[0].Name)
}

func TestParseAdd(t *testing.T) {
	req, err := parse(t, addFlags(), parseAdd, "--active", "--bits", "2048", "--algorithm", "RSASHA256", "example.com.")
	require.NoError(t, err)
	assert.Equal(t, "example.com.", req.Zone)
	assert.Equal(t, "csk", req.Cryptokey.KeyType)
	assert.True(t, req.Cryptokey.Active)
	assert.False(t, req.Cryptokey.Published)
	assert.Equal(t, 2048, req.Cryptokey.Bits)
	assert.Equal(t, "RSASHA256", req.Cryptokey.Algorithm)
}

func TestParseEdit(t *testing.T) {
	t.Run("only active", func(t *testing.T) {
		req, err := parse(t, editFlags(), parseEdit, "--inactive", "example.com.", "3")
		require.NoError(t, err)
		assert.Equal(t, "3", req.KeyID)
		require.NotNil(t, req.Active)
		assert.False(t, *req.Active)
		assert.Nil(t, req.Published)
	})

	t.Run("both", func(t *testing.T) {
		req, err := parse(t, editFlags(), parseEdit, "--active", "--published", "example.com.", "3")
		require.NoError(t, err)
		require.NotNil(t, req.Active)
		require.NotNil(t, req.Published)
		assert.True(t, *req.Active)
		assert.True(t, *req.Published)
	})

	t.Run("conflicting switches", func(t *testing.T) {
		_, err := parse(t, editFlags(), parseEdit, "--published", "--unpublished", "example.com.", "3")
		var uerr *actions.UsageError
		require.ErrorAs(t, err, &uerr)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})
}
