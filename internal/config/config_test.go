package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(contents), 0o600))
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
access_token = "0/secret"
workspace    = 1234567890
log_level    = "debug"
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "0/secret", cfg.AccessToken)
	assert.Equal(t, int64(1234567890), cfg.Workspace)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, dir, cfg.Dir())
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.AccessToken)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `access_token = "from-file"`)

	t.Setenv("ASANA_ACCESS_TOKEN", "from-env")
	t.Setenv("ASANA_WORKSPACE", "42")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.AccessToken)
	assert.Equal(t, int64(42), cfg.Workspace)
}

func TestLoad_InvalidWorkspaceEnv(t *testing.T) {
	t.Setenv("ASANA_WORKSPACE", "not-a-number")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ASANA_WORKSPACE")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Workspace: -1,
		LogLevel:  "loud",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workspace")
	assert.Contains(t, err.Error(), "log_level")
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := &Config{dir: t.TempDir()}
	assert.False(t, cfg.HasToken())

	tok := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "bearer",
	}
	require.NoError(t, cfg.SaveToken(tok))
	assert.True(t, cfg.HasToken())

	loaded, err := cfg.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "access", loaded.AccessToken)
	assert.Equal(t, "refresh", loaded.RefreshToken)

	require.NoError(t, cfg.RemoveToken())
	assert.False(t, cfg.HasToken())
	require.NoError(t, cfg.RemoveToken(), "removing twice must not fail")
}

func TestAPIConfig_RequiresCredentials(t *testing.T) {
	cfg := &Config{dir: t.TempDir()}

	_, err := cfg.APIConfig(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestAPIConfig_AccessToken(t *testing.T) {
	cfg := &Config{dir: t.TempDir(), AccessToken: "0/secret", BaseURL: "http://localhost:1"}

	apiCfg, err := cfg.APIConfig(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "0/secret", apiCfg.AccessToken)
	assert.Equal(t, "http://localhost:1", apiCfg.BaseURL)
	assert.Nil(t, apiCfg.TokenSource)
}
