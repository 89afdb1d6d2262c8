package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvCredentials, "")
	t.Setenv(EnvCredentialsLegacy, "")
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvMetricsAddr, "")
	os.Unsetenv(EnvCredentials)
	os.Unsetenv(EnvCredentialsLegacy)
	os.Unsetenv(EnvOutputDir)
	os.Unsetenv(EnvMetricsAddr)
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	assert.Empty(t, cfg.CredentialsPath)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestFromEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvCredentials, "keys/sa.json")
	t.Setenv(EnvOutputDir, "downloads")
	t.Setenv(EnvMetricsAddr, ":9101")

	cfg := FromEnv()

	assert.Equal(t, "keys/sa.json", cfg.CredentialsPath)
	assert.Equal(t, "downloads", cfg.OutputDir)
	assert.Equal(t, ":9101", cfg.MetricsAddr)
}

func TestFromEnv_LegacyCredentialsKey(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvCredentialsLegacy, "gdrive-token.json")

	cfg := FromEnv()
	assert.Equal(t, "gdrive-token.json", cfg.CredentialsPath)
}

func TestFromEnv_NewKeyWinsOverLegacy(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvCredentials, "new.json")
	t.Setenv(EnvCredentialsLegacy, "old.json")

	cfg := FromEnv()
	assert.Equal(t, "new.json", cfg.CredentialsPath)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	envFile := filepath.Join(dir, "drivepipe.env")
	content := "GTOKEN=keys/gdrive.json\nDRIVEPIPE_OUTPUT_DIR=exports\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "keys/gdrive.json", cfg.CredentialsPath)
	assert.Equal(t, "exports", cfg.OutputDir)

	// godotenv mutates the process environment; clean up for other tests
	os.Unsetenv(EnvCredentialsLegacy)
	os.Unsetenv(EnvOutputDir)
}

func TestLoad_ProcessEnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvCredentials, "from-env.json")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvCredentials+"=from-file.json\n"), 0600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.CredentialsPath)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	clearEnv(t)

	// Run from a directory with no .env
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.CredentialsPath = "keys/sa.json"
	assert.NoError(t, cfg.Validate())
}
