package zone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
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
	assert.Equal(t, "zone", Command.Name)
	assert.Len(t, Command.Commands, 5)

	found := map[string]bool{}
	for _, sub := range Command.Commands {
		found[sub.Name] = true
	}
	for _, name := range []string{"list-zones", "show-zone", "add-zone", "edit-zone", "delete-zone"} {
		assert.True(t, found[name], "%s should be registered", name)
	}
}

func TestParseAdd(t *testing.T) {
	t.Run("defaults to master", func(t *testing.T) {
		req, err := parse(t, addFlags(), parseAdd,
			"--nameservers", "ns1.example.com.", "--nameservers", "ns2.example.com.", "example.com.")
		require.NoError(t, err)
		assert.Equal(t, "example.com.", req.Zone)
		assert.Equal(t, "example.com.", req.ZoneSpec.Name)
		assert.Equal(t, pdns.ZoneKindMaster, req.ZoneSpec.Kind)
		assert.Equal(t, []string{"ns1.example.com.", "ns2.example.com."}, req.ZoneSpec.Nameservers)
		assert.Nil(t, req.ZoneSpec.Masters)
		assert.Nil(t, req.ZoneSpec.RecursionDesired)
	})

	t.Run("slave with masters", func(t *testing.T) {
		req, err := parse(t, addFlags(), parseAdd,
			"--kind", "slave", "--masters", "192.0.2.1", "--soa-edit-api", "EPOCH", "example.org.")
		require.NoError(t, err)
		assert.Equal(t, pdns.ZoneKindSlave, req.ZoneSpec.Kind)
		assert.Equal(t, []string{"192.0.2.1"}, req.ZoneSpec.Masters)
		assert.Equal(t, "EPOCH", req.ZoneSpec.SOAEditAPI)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := parse(t, addFlags(), parseAdd, "--kind", "primary", "example.com.")
		var uerr *actions.UsageError
		require.ErrorAs(t, err, &uerr)
		assert.Contains(t, err.Error(), "--kind")
	})
}

func TestParseEdit(t *testing.T) {
	t.Run("kind kept", func(t *testing.T) {
		req, err := parse(t, editFlags(), parseEdit, "--account", "customer", "example.com.")
		require.NoError(t, err)
		assert.Equal(t, "example.com.", req.Zone)
		assert.Empty(t, req.ZoneSpec.Kind)
		assert.Equal(t, "customer", req.ZoneSpec.Account)
	})

	t.Run("recursion desired", func(t *testing.T) {
		req, err := parse(t, editFlags(), parseEdit, "--recursion-desired", "example.com.")
		require.NoError(t, err)
		require.NotNil(t, req.ZoneSpec.RecursionDesired)
		assert.True(t, *req.ZoneSpec.RecursionDesired)
	})
}
