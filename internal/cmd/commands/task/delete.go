package task

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
)

// DeleteCommand deletes a task. The remote system retains deleted tasks for
// 30 days before permanent removal.
type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a task"
}

func (c *DeleteCommand) Help() string {
	return `Usage: asana tasks delete [options] <task-id>

  Deletes a task. Deleted tasks stay recoverable remotely for 30 days.

Options:

  -config-dir=<path>  Configuration directory.`
}

func (c *DeleteCommand) Run(args []string) int {
	fs := c.FlagSet("tasks delete")
	configDir := fs.String("config-dir", "", "configuration directory")
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

	ctx := context.Background()
	client, _, err := c.Client(ctx, *configDir)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := client.Tasks.Delete(ctx, taskID); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output(fmt.Sprintf("deleted task %d", taskID))
	return 0
}
