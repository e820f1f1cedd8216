package secrets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSecretRef(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid secret ref", input: "${secret:users/customer:key}", want: true},
		{name: "surrounding whitespace", input: "  ${secret:path:key}  ", want: true},
		{name: "plain key", input: "changeme", want: false},
		{name: "partial prefix", input: "${secret:incomplete", want: false},
		{name: "env style", input: "${env:PDNS_KEY}", want: false},
		{name: "empty string", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSecretRef(tt.input))
		})
	}
}

func TestParseSecretRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *SecretRef
		wantErr bool
	}{
		{
			name:  "nested path",
			input: "${secret:users/customer:key}",
			want:  &SecretRef{Path: "users/customer", Key: "key", Raw: "${secret:users/customer:key}"},
		},
		{
			name:  "dashes and underscores",
			input: "${secret:user-admin/api_keys:primary-key}",
			want:  &SecretRef{Path: "user-admin/api_keys", Key: "primary-key", Raw: "${secret:user-admin/api_keys:primary-key}"},
		},
		{
			name:  "plain text returns nil",
			input: "just plain text",
		},
		{name: "missing path", input: "${secret::key}", wantErr: true},
		{name: "missing key", input: "${secret:path:}", wantErr: true},
		{name: "only one colon", input: "${secret:pathonly}", wantErr: true},
		{name: "three colons", input: "${secret:path:key:extra}", wantErr: true},
		{name: "invalid characters", input: "${secret:path@host:key}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSecretRef(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid secret reference")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSecretRef_String(t *testing.T) {
	assert.Equal(t, "${secret:users/customer:key}", NewSecretRef("users/customer", "key").String())

	parsed, err := ParseSecretRef(" ${secret:a:b} ")
	require.NoError(t, err)
	assert.Equal(t, "${secret:a:b}", parsed.String())
	assert.Equal(t, "a:b", parsed.FullKey())
}

type mockResolver struct {
	value string
	err   error
	calls int
}

func (m *mockResolver) Resolve(ref SecretRef) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.value, nil
}

func TestExpand(t *testing.T) {
	t.Run("plain value is returned verbatim", func(t *testing.T) {
		r := &mockResolver{value: "unused"}
		got, err := Expand(r, "changeme")
		require.NoError(t, err)
		assert.Equal(t, "changeme", got)
		assert.Zero(t, r.calls)
	})

	t.Run("reference is resolved", func(t *testing.T) {
		r := &mockResolver{value: "s3cret"}
		got, err := Expand(r, "${secret:users/customer:key}")
		require.NoError(t, err)
		assert.Equal(t, "s3cret", got)
		assert.Equal(t, 1, r.calls)
	})

	t.Run("resolver failure propagates", func(t *testing.T) {
		_, err := Expand(&mockResolver{err: fmt.Errorf("boom")}, "${secret:a:b}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("malformed reference", func(t *testing.T) {
		_, err := Expand(&mockResolver{}, "${secret:nokey}")
		require.Error(t, err)
	})

	t.Run("nil resolver", func(t *testing.T) {
		_, err := Expand(nil, "${secret:a:b}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no secret resolver")
	})
}
