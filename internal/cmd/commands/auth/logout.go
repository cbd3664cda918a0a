package auth

import (
	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
	"github.com/ArtisanCodesmith/node-asana/internal/config"
)

// LogoutCommand removes the stored OAuth token.
type LogoutCommand struct {
	*base.Command
}

func (c *LogoutCommand) Synopsis() string {
	return "Remove the stored token"
}

func (c *LogoutCommand) Help() string {
	return `Usage: asana auth logout [options]

  Removes the OAuth token stored by auth login. Personal Access Tokens in the
  config file are left alone.

Options:

  -config-dir=<path>  Configuration directory.`
}

func (c *LogoutCommand) Run(args []string) int {
	fs := c.FlagSet("auth logout")
	configDir := fs.String("config-dir", "", "configuration directory")
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if !cfg.HasToken() {
		c.UI.Output("not logged in")
		return 0
	}
	if err := cfg.RemoveToken(); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output("logged out")
	return 0
}
