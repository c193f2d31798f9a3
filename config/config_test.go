package config

import (
	"os"
	"path/filepath"
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
			"minSecretLength":           6,
			"disableTimingEqualization": false,
		},
		"redis": map[string]any{
			"attemptWindow": "15m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_MINSECRETLENGTH", want: "auth.minSecretLength"},
		{envKey: "AUTH_DISABLETIMINGEQUALIZATION", want: "auth.disableTimingEqualization"},
		{envKey: "REDIS_ATTEMPTWINDOW", want: "redis.attemptWindow"},
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

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	content := `
env:
  serviceName: credcheck
  log:
    level: debug
auth:
  algorithm: argon2id
  minSecretLength: 8
  lookupTimeout: 2s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(content), 0o600))
	t.Chdir(dir)
	t.Setenv("AUTH_LOOKUPTIMEOUT", "500ms")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "credcheck", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, AlgorithmArgon2id, cfg.Auth.Algorithm)
	assert.Equal(t, 8, cfg.Auth.MinSecretLength)
	assert.Equal(t, 500*time.Millisecond, cfg.Auth.LookupTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{URL: "redis://localhost:6379/0"}}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, AlgorithmBcrypt, cfg.Auth.Algorithm)
	assert.Equal(t, DefaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, DefaultArgon2Config(), cfg.Auth.Argon2)
	assert.Equal(t, DefaultMinSecretLength, cfg.Auth.MinSecretLength)
	assert.Equal(t, DefaultLookupTimeout, cfg.Auth.LookupTimeout)
	assert.False(t, cfg.Auth.DisableTimingEqualization)
	assert.Equal(t, DefaultAttemptWindow, cfg.Redis.AttemptWindow)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{Algorithm: " Argon2id ", BcryptCost: 10, MinSecretLength: 12}}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, AlgorithmArgon2id, cfg.Auth.Algorithm)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 12, cfg.Auth.MinSecretLength)
}

func TestApplyDefaults_RejectsUnknownAlgorithm(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{Algorithm: "md5"}}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported auth.algorithm")
}
