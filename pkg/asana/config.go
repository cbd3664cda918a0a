package asana

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the production Asana API endpoint.
const DefaultBaseURL = "https://app.asana.com/api/1.0"

// Config contains configuration for the API dispatcher.
//
// Authentication is either a Personal Access Token (AccessToken) or an
// OAuth token source (TokenSource). When both are set, TokenSource wins.
//
// Example configuration (HCL):
//
//	asana {
//	  base_url     = "https://app.asana.com/api/1.0"
//	  access_token = env("ASANA_ACCESS_TOKEN")
//	  timeout      = "30s"
//	}
type Config struct {
	// BaseURL is the base URL of the Asana API.
	// Default: https://app.asana.com/api/1.0
	BaseURL string `hcl:"base_url,optional" json:"base_url"`

	// AccessToken is a Personal Access Token sent as a Bearer token.
	// Should be kept in an environment variable for security.
	AccessToken string `hcl:"access_token,optional" json:"-"`

	// TokenSource supplies OAuth tokens. Optional; takes precedence over
	// AccessToken when set.
	TokenSource oauth2.TokenSource `hcl:"-" json:"-"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `hcl:"tls_verify,optional" json:"tls_verify,omitempty"`

	// Timeout for API requests.
	// Default: 30 seconds
	Timeout time.Duration `hcl:"timeout,optional" json:"timeout,omitempty"`

	// MaxRetries for recoverable failures (429, 5xx, transport errors).
	// Default: 3
	MaxRetries int `hcl:"max_retries,optional" json:"max_retries,omitempty"`

	// RetryDelay is the initial delay between retries; subsequent delays
	// grow exponentially.
	// Default: 1 second
	RetryDelay time.Duration `hcl:"retry_delay,optional" json:"retry_delay,omitempty"`

	// Logger receives debug-level request logging. Optional.
	Logger hclog.Logger `hcl:"-" json:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:    DefaultBaseURL,
		TLSVerify:  &tlsVerify,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&c.MaxRetries, validation.Min(0)),
		validation.Field(&c.RetryDelay, validation.Min(time.Duration(0))),
	); err != nil {
		return err
	}

	if c.AccessToken == "" && c.TokenSource == nil {
		return validation.Errors{
			"access_token": validation.ErrRequired,
		}
	}

	return nil
}

// NewHTTPClient creates a configured HTTP client for the dispatcher.
// When a TokenSource is set, the returned client injects OAuth tokens on
// every request and refreshes them as needed.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	base := &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}

	if c.TokenSource != nil {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		authed := oauth2.NewClient(ctx, c.TokenSource)
		authed.Timeout = c.Timeout
		return authed
	}

	return base
}
