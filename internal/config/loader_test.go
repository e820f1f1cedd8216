package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Get the absolute path to test fixtures
	fixturesDir, err := filepath.Abs("../../test/fixtures")
	require.NoError(t, err)

	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid toml config",
			path: filepath.Join(fixturesDir, "valid-config.toml"),
		},
		{
			name: "valid yaml config",
			path: filepath.Join(fixturesDir, "valid-config.yaml"),
		},
		{
			name:    "non-existent file",
			path:    filepath.Join(fixturesDir, "does-not-exist.toml"),
			wantErr: true,
			errMsg:  "config file not found",
		},
		{
			name:    "zone mapped twice",
			path:    filepath.Join(fixturesDir, "invalid-config-duplicate-zone.toml"),
			wantErr: true,
			errMsg:  "config validation failed",
		},
		{
			name:    "syntax error",
			path:    filepath.Join(fixturesDir, "invalid-config-syntax.toml"),
			wantErr: true,
			errMsg:  "failed to parse TOML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Load(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, config)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, config)
			assert.Equal(t, tt.path, config.Path)
			require.NotNil(t, config.API)
			assert.Equal(t, "http://127.0.0.1:8081/api/v1", config.API.URL)
			assert.Equal(t, "localhost", config.API.DefaultServer)
			assert.Equal(t, "user-admin", config.API.DefaultUser)

			customer, ok := config.Section("user-customer")
			require.True(t, ok)
			assert.Equal(t, "customer", customer.User)
			assert.Equal(t, []string{"example.com.", "example.net."}, customer.Zones)
		})
	}
}

func TestLoadFromReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  Format
		errMsg  string
		asError bool
	}{
		{
			name:    "top-level scalar",
			input:   "url = \"http://x\"\n",
			errMsg:  `top-level key "url" must be a section`,
			asError: true,
		},
		{
			name:    "zones not a list",
			input:   "[user1]\nuser = \"u\"\nkey = \"k\"\nzones = \"example.com.\"\n",
			errMsg:  "[user1] zones must be a list",
			asError: true,
		},
		{
			name:    "key not a string",
			input:   "[user1]\nuser = \"u\"\nkey = 42\n",
			errMsg:  "[user1] key must be a string",
			asError: true,
		},
		{
			name:    "insecure not a bool",
			input:   "api:\n  insecure: maybe\n",
			format:  FormatYAML,
			errMsg:  "[api] insecure must be a boolean",
			asError: true,
		},
		{
			name:   "empty document",
			input:  "",
			errMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromReader(strings.NewReader(tt.input), tt.format)
			if tt.errMsg == "" {
				require.NoError(t, err)
				assert.Nil(t, cfg.API)
				assert.Empty(t, cfg.Sections)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			if tt.asError {
				var cfgErr *Error
				assert.True(t, errors.As(err, &cfgErr))
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("/etc/pdns-cli.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("conf.YML"))
	assert.Equal(t, FormatTOML, FormatForPath("conf.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("pdns.conf"))
}

func TestConfig_UserSectionNames(t *testing.T) {
	cfg := &Config{Sections: map[string]*UserConfig{
		"user2":    {},
		"admin":    {},
		"user-ops": {},
	}}
	assert.Equal(t, []string{"user-ops", "user2"}, cfg.UserSectionNames())
}
