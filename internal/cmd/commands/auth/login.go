package auth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"golang.org/x/oauth2"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
	"github.com/ArtisanCodesmith/node-asana/internal/config"
)

const (
	// callbackTimeout bounds the wait for the browser redirect.
	callbackTimeout = 5 * time.Minute

	// exchangeTimeout bounds the code-for-token exchange.
	exchangeTimeout = 30 * time.Second
)

// LoginCommand runs the OAuth authorization-code flow: it starts a local
// callback server, opens the authorization URL in the browser, and stores the
// resulting token in the config directory.
type LoginCommand struct {
	*base.Command
}

func (c *LoginCommand) Synopsis() string {
	return "Log in via OAuth"
}

func (c *LoginCommand) Help() string {
	return `Usage: asana auth login [options]

  Authenticates against the API with the OAuth authorization-code flow and
  stores the token for later commands. Requires client_id and client_secret
  in the config (or ASANA_CLIENT_ID / ASANA_CLIENT_SECRET).

  A Personal Access Token in the config makes this step unnecessary.

Options:

  -config-dir=<path>  Configuration directory.
  -no-browser         Print the authorization URL instead of opening it.`
}

func (c *LoginCommand) Run(args []string) int {
	fs := c.FlagSet("auth login")
	var (
		configDir = fs.String("config-dir", "", "configuration directory")
		noBrowser = fs.Bool("no-browser", false, "do not open a browser")
	)
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		c.UI.Error("client_id and client_secret are required for OAuth login; " +
			"create an app at https://app.asana.com/0/developer-console and add them to the config")
		return 1
	}

	// Bind the callback server before constructing the redirect URL.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to bind local callback port: %v", err))
		return 1
	}
	defer listener.Close()

	redirectURL := fmt.Sprintf("http://%s/callback", listener.Addr().String())
	oauthCfg := cfg.OAuthConfig(redirectURL)

	state := uuid.New().String()
	verifier := oauth2.GenerateVerifier()
	authURL := oauthCfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/callback" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("state") != state {
			errCh <- fmt.Errorf("authorization response state mismatch")
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			errCh <- fmt.Errorf("authorization was denied: %s", r.URL.Query().Get("error"))
			fmt.Fprintln(w, "Authorization failed. You can close this window.")
			return
		}
		codeCh <- code
		fmt.Fprintln(w, "Login complete. You can close this window.")
	})}
	go server.Serve(listener)
	defer server.Close()

	if *noBrowser {
		c.UI.Output("Open this URL in your browser:\n\n  " + authURL)
	} else if err := browser.OpenURL(authURL); err != nil {
		c.Log.Debug("failed to open browser", "error", err)
		c.UI.Output("Open this URL in your browser:\n\n  " + authURL)
	} else {
		c.UI.Output("Waiting for authorization in your browser...")
	}

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		c.UI.Error(err.Error())
		return 1
	case <-time.After(callbackTimeout):
		c.UI.Error("timed out waiting for authorization")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), exchangeTimeout)
	defer cancel()

	token, err := oauthCfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to exchange authorization code: %v", err))
		return 1
	}

	if err := cfg.SaveToken(token); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output("Logged in. Token stored in " + cfg.TokenPath())
	return 0
}
