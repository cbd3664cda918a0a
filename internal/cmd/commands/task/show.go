package task

import (
	"context"
	"os"
	"strconv"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
	"github.com/ArtisanCodesmith/node-asana/internal/output"
)

// ShowCommand prints the complete record of one task.
type ShowCommand struct {
	*base.Command
}

func (c *ShowCommand) Synopsis() string {
	return "Show a single task"
}

func (c *ShowCommand) Help() string {
	return `Usage: asana tasks show [options] <task-id>

  Fetches and prints the complete record of a task.

Options:

  -config-dir=<path>        Configuration directory.
  -format=<table|json|yaml> Output format. Defaults to table.`
}

func (c *ShowCommand) Run(args []string) int {
	fs := c.FlagSet("tasks show")
	var (
		configDir = fs.String("config-dir", "", "configuration directory")
		format    = fs.String("format", "table", "output format")
	)
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if fs.NArg() != 1 {
		c.UI.Error("exactly one task id is required")
		return 1
	}

	taskID, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		c.UI.Error("task id must be a decimal integer")
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

	task, err := client.Tasks.FindByID(ctx, taskID, nil)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := output.WriteTask(os.Stdout, f, task); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
