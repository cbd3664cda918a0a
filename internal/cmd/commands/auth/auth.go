package auth

import (
	"github.com/mitchellh/cli"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
)

// Command is the `asana auth` subcommand group.
type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage authentication"
}

func (c *Command) Help() string {
	return `Usage: asana auth <subcommand> [options]

  This command groups subcommands for logging in and out of the API.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
