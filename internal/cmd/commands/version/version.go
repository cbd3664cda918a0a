package version

import (
	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
)

// Command prints the CLI version.
type Command struct {
	*base.Command

	Version string
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: asana version

  Prints the CLI version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(c.Version)
	return 0
}
