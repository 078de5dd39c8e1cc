package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"maxLoginAttempts": 5,
			"lockDuration":     "30m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"order": map[string]any{
			"numberPrefix": "ORD",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_MAXLOGINATTEMPTS", want: "auth.maxLoginAttempts"},
		{envKey: "AUTH_LOCKDURATION", want: "auth.lockDuration"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "ORDER_NUMBERPREFIX", want: "order.numberPrefix"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, 30*time.Minute, cfg.Auth.LockDuration)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	require.NotNil(t, cfg.Order)
	assert.Equal(t, "ORD", cfg.Order.NumberPrefix)
	require.NotNil(t, cfg.Metrics)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:  &AuthConfig{MaxLoginAttempts: 3, LockDuration: time.Hour},
		Order: &OrderConfig{NumberPrefix: "SO"},
	}

	applyDefaults(cfg)

	assert.Equal(t, 3, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, time.Hour, cfg.Auth.LockDuration)
	assert.Equal(t, "SO", cfg.Order.NumberPrefix)
}
