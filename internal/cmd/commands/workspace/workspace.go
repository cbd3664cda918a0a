package workspace

import (
	"context"
	"os"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
	"github.com/ArtisanCodesmith/node-asana/internal/output"
)

// ListCommand lists the workspaces visible to the authenticated user.
type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "List workspaces"
}

func (c *ListCommand) Help() string {
	return `Usage: asana workspaces [options]

  Lists the workspaces visible to the authenticated user. Useful for finding
  the id to set as the default workspace in the config.

Options:

  -config-dir=<path>        Configuration directory.
  -format=<table|json|yaml> Output format. Defaults to table.`
}

func (c *ListCommand) Run(args []string) int {
	fs := c.FlagSet("workspaces")
	var (
		configDir = fs.String("config-dir", "", "configuration directory")
		format    = fs.String("format", "table", "output format")
	)
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	f, err := output.ParseFormat(*format)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	client, _, err := c.Client(ctx, *configDir)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	workspaces, err := client.Workspaces.FindAll(ctx, nil)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := output.WriteWorkspaces(os.Stdout, f, workspaces); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
