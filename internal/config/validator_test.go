package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearValidatorEnv(t *testing.T) {
	t.Helper()
	for _, key := range append(append([]string{"API_KEY"}, RequiredEnvVars...), PostgresEnvVars...) {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	clearValidatorEnv(t)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	clearValidatorEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	clearValidatorEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_BACKEND")
}

func TestValidateEnv_PostgresNeedsDatabaseVars(t *testing.T) {
	clearValidatorEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DB_USER", "user")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.NotContains(t, err.Error(), "DB_USER")
}

func TestValidateEnvWithWarnings(t *testing.T) {
	clearValidatorEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORE_BACKEND", "memory")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)

	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "API_KEY")
	assert.Contains(t, warnings[1], "memory")
}
