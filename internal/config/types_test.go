package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: Config{
				API: &APIConfig{URL: "http://127.0.0.1:8081/api/v1", DefaultUser: "user-admin"},
				Sections: map[string]*UserConfig{
					"user-admin":    {User: "admin", Key: "k"},
					"user-customer": {User: "customer", Key: "k", Zones: []string{"example.com."}},
				},
			},
		},
		{
			name:   "no sections at all",
			config: Config{},
		},
		{
			name: "empty zone",
			config: Config{Sections: map[string]*UserConfig{
				"user1": {Zones: []string{"example.com.", ""}},
			}},
			wantErr: true,
			errMsg:  "[user1] lists an empty zone",
		},
		{
			name: "zone mapped by two sections",
			config: Config{Sections: map[string]*UserConfig{
				"user1": {Zones: []string{"example.com."}},
				"user2": {Zones: []string{"example.com."}},
			}},
			wantErr: true,
			errMsg:  `zone "example.com." is mapped by both [user1] and [user2]`,
		},
		{
			name: "same zone with and without trailing dot",
			config: Config{Sections: map[string]*UserConfig{
				"user1": {Zones: []string{"example.com"}},
				"user2": {Zones: []string{"example.com."}},
			}},
			wantErr: true,
			errMsg:  `zone "example.com." is mapped by both [user1] and [user2]`,
		},
		{
			name: "non-user sections are not mapped",
			config: Config{Sections: map[string]*UserConfig{
				"user1":  {Zones: []string{"example.com."}},
				"legacy": {Zones: []string{"example.com."}},
			}},
		},
		{
			name: "malformed secret reference",
			config: Config{Sections: map[string]*UserConfig{
				"user1": {User: "u", Key: "${secret:nokey}"},
			}},
			wantErr: true,
			errMsg:  "[user1] key: invalid secret reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				var cfgErr *Error
				assert.True(t, errors.As(err, &cfgErr))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_Section(t *testing.T) {
	customer := &UserConfig{User: "customer"}
	cfg := &Config{Sections: map[string]*UserConfig{"user-customer": customer}}

	got, ok := cfg.Section("user-customer")
	require.True(t, ok)
	assert.Same(t, customer, got)

	_, ok = cfg.Section("user-missing")
	assert.False(t, ok)
}
