// Package config loads CLI configuration from an HCL file with environment
// variable overrides, and manages the OAuth token file stored next to it.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"golang.org/x/oauth2"

	"github.com/ArtisanCodesmith/node-asana/pkg/asana"
)

// ConfigFileName is the expected file name inside the config directory.
const ConfigFileName = "config.hcl"

// tokenFileName holds the OAuth token written by `asana auth login`.
const tokenFileName = "token.json"

// Config is the CLI configuration.
//
// Example config.hcl:
//
//	access_token = "0/abcdef0123456789"
//	workspace    = 1234567890
//	log_level    = "info"
type Config struct {
	// AccessToken is a Personal Access Token. Not needed when an OAuth token
	// from `asana auth login` is present.
	AccessToken string `hcl:"access_token,optional"`

	// BaseURL overrides the API endpoint. Empty means production.
	BaseURL string `hcl:"base_url,optional"`

	// Workspace is the default workspace for commands that need one.
	Workspace int64 `hcl:"workspace,optional"`

	// ClientID and ClientSecret identify the OAuth app for `asana auth login`.
	ClientID     string `hcl:"client_id,optional"`
	ClientSecret string `hcl:"client_secret,optional"`

	// LogLevel controls CLI logging (trace, debug, info, warn, error).
	LogLevel string `hcl:"log_level,optional"`

	// dir is the directory the config was loaded from. The token file lives
	// there too.
	dir string
}

// DefaultDir returns the default configuration directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, "asana"), nil
}

// Load reads the configuration from dir (the default directory when empty),
// then applies environment variable overrides. A missing config file is not
// an error: the environment alone may be enough.
func Load(dir string) (*Config, error) {
	var err error
	if dir == "" {
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{dir: dir}

	path := filepath.Join(dir, ConfigFileName)
	if _, statErr := os.Stat(path); statErr == nil {
		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ASANA_ACCESS_TOKEN"); v != "" {
		c.AccessToken = v
	}
	if v := os.Getenv("ASANA_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("ASANA_CLIENT_ID"); v != "" {
		c.ClientID = v
	}
	if v := os.Getenv("ASANA_CLIENT_SECRET"); v != "" {
		c.ClientSecret = v
	}
	if v := os.Getenv("ASANA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ASANA_WORKSPACE"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ASANA_WORKSPACE %q: %w", v, err)
		}
		c.Workspace = id
	}
	return nil
}

// Validate checks the configuration, collecting all problems rather than
// stopping at the first.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Workspace < 0 {
		result = multierror.Append(result, fmt.Errorf("workspace must be a positive id, got %d", c.Workspace))
	}
	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}

	return result.ErrorOrNil()
}

// Dir returns the configuration directory.
func (c *Config) Dir() string { return c.dir }

// TokenPath returns the location of the OAuth token file.
func (c *Config) TokenPath() string { return filepath.Join(c.dir, tokenFileName) }

// HasToken reports whether an OAuth token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// SaveToken writes the OAuth token file, creating the config directory as
// needed. The file is user-readable only.
func (c *Config) SaveToken(tok *oauth2.Token) error {
	if err := os.MkdirAll(c.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	b, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(c.TokenPath(), b, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// LoadToken reads the OAuth token file.
func (c *Config) LoadToken() (*oauth2.Token, error) {
	b, err := os.ReadFile(c.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(b, &tok); err != nil {
		return nil, fmt.Errorf("invalid token file %s: %w", c.TokenPath(), err)
	}
	return &tok, nil
}

// RemoveToken deletes the OAuth token file. Missing files are not an error.
func (c *Config) RemoveToken() error {
	if err := os.Remove(c.TokenPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// OAuthConfig builds the OAuth app configuration for the login flow.
func (c *Config) OAuthConfig(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     asana.Endpoint,
		RedirectURL:  redirectURL,
	}
}

// TokenSource returns an auto-refreshing token source backed by the token
// file, or nil when no OAuth token is stored.
func (c *Config) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if !c.HasToken() {
		return nil, nil
	}

	tok, err := c.LoadToken()
	if err != nil {
		return nil, err
	}
	return c.OAuthConfig("").TokenSource(ctx, tok), nil
}

// APIConfig translates the CLI configuration into a client configuration.
func (c *Config) APIConfig(ctx context.Context, log hclog.Logger) (*asana.Config, error) {
	cfg := &asana.Config{
		BaseURL:     c.BaseURL,
		AccessToken: c.AccessToken,
		Logger:      log,
	}

	ts, err := c.TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	cfg.TokenSource = ts

	if cfg.AccessToken == "" && cfg.TokenSource == nil {
		return nil, fmt.Errorf("not authenticated: set access_token in %s, export ASANA_ACCESS_TOKEN, or run `asana auth login`",
			filepath.Join(c.dir, ConfigFileName))
	}
	return cfg, nil
}
