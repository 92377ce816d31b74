package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("REDIS_URL", "redis://localhost:6379")
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	setValidEnv(t)
	os.Unsetenv("ENV_SCHEMA_VERSION")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setValidEnv(t)
	os.Unsetenv("JWT_SECRET")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateEnv_PostgresNeedsDBVars(t *testing.T) {
	setValidEnv(t)
	require.NoError(t, ValidateEnv(), "memory driver needs no database settings")

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "user")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.NotContains(t, err.Error(), "DB_USER")
}

func TestValidateEnvWithWarnings(t *testing.T) {
	setValidEnv(t)
	t.Setenv("JWT_SECRET", "generate_with_openssl_rand_hex_32")
	os.Unsetenv("REDIS_URL")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "JWT_SECRET")
	assert.Contains(t, warnings[1], "REDIS_URL")
}
