package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesLoad(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		cfg, err := LoadFromReader(strings.NewReader(Template(format)), format)
		require.NoError(t, err)

		require.NotNil(t, cfg.API)
		assert.Equal(t, "user-admin", cfg.API.DefaultUser)
		assert.Equal(t, []string{"user-admin", "user-customer"}, cfg.UserSectionNames())

		admin, ok := cfg.Section("user-admin")
		require.True(t, ok)
		assert.Equal(t, SecretRefFor("user-admin").String(), admin.Key)
	}
}
