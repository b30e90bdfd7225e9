package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDuration_UnmarshalJSON covers the accepted JSON encodings of Duration.
func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected time.Duration
		wantErr  bool
	}{
		{name: "duration string", payload: `"1h30m"`, expected: 90 * time.Minute},
		{name: "seconds string", payload: `"45s"`, expected: 45 * time.Second},
		{name: "number of nanoseconds", payload: `1000000000`, expected: time.Second},
		{name: "garbage string", payload: `"tomorrow"`, wantErr: true},
		{name: "object", payload: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.payload), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

// TestDuration_MarshalJSON verifies the string round-trip.
func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(2 * time.Hour)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2h0m0s"`, string(data))
}

// TestParseJSON_FullFile verifies parsing of a complete JSON config file.
func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{
			"token_sign_key": "secret",
			"token_issuer":   "kinoteka-test",
			"token_duration": "12h",
		},
		"storage": map[string]any{
			"db": map[string]any{
				"dsn":                     "postgres://localhost/kinoteka",
				"search_case_insensitive": true,
			},
		},
		"server": map[string]any{
			"http_address":    ":4000",
			"request_timeout": "30s",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "kinoteka-test", cfg.Auth.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/kinoteka", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.DB.SearchCaseInsensitive)
	assert.Equal(t, ":4000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}
