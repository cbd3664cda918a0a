package task

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
)

// DoneCommand marks a task completed.
type DoneCommand struct {
	*base.Command
}

func (c *DoneCommand) Synopsis() string {
	return "Mark a task completed"
}

func (c *DoneCommand) Help() string {
	return `Usage: asana tasks done [options] <task-id>

  Marks a task completed.

Options:

  -config-dir=<path>  Configuration directory.`
}

func (c *DoneCommand) Run(args []string) int {
	fs := c.FlagSet("tasks done")
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

	if _, err := client.Tasks.Update(ctx, taskID, map[string]interface{}{"completed": true}); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output(fmt.Sprintf("completed task %d", taskID))
	return 0
}
