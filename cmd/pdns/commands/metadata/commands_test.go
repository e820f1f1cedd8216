package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
)

func TestCommandRegistration(t *testing.T) {
	assert.Equal(t, "metadata", Command.Name)
	assert.Len(t, Command.Commands, 5)
	for _, sub := range Command.Commands[1:] {
		assert.Equal(t, "<zone> <kind>", sub.ArgsUsage, sub.Name)
	}
}

func TestParseKind(t *testing.T) {
	var req actions.Request
	cmd := &cli.Command{
		Name: "test",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return parseKind(cmd, &req)
		},
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"test", "example.com.", "ALLOW-AXFR-FROM", "192.0.2.0/24", "AUTO-NS"}))

	assert.Equal(t, "example.com.", req.Zone)
	assert.Equal(t, "ALLOW-AXFR-FROM", req.Kind)
	assert.Equal(t, []string{"192.0.2.0/24", "AUTO-NS"}, req.Values)
}
