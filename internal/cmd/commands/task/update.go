package task

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
)

// UpdateCommand applies a partial update to a task. Only flags that were
// explicitly set reach the wire, so unspecified fields stay untouched
// remotely.
type UpdateCommand struct {
	*base.Command
}

func (c *UpdateCommand) Synopsis() string {
	return "Update fields of a task"
}

func (c *UpdateCommand) Help() string {
	return `Usage: asana tasks update [options] <task-id>

  Applies a partial update: only the fields named by options change.

Options:

  -config-dir=<path>  Configuration directory.
  -name=<text>        New task name.
  -notes=<text>       New task notes.
  -due=<date>         New due date. Accepts human-friendly dates.
  -completed=<bool>   Mark the task completed or incomplete.`
}

func (c *UpdateCommand) Run(args []string) int {
	fs := c.FlagSet("tasks update")
	var (
		configDir = fs.String("config-dir", "", "configuration directory")
		name      = fs.String("name", "", "task name")
		notes     = fs.String("notes", "", "task notes")
		due       = fs.String("due", "", "due date")
		completed = fs.Bool("completed", false, "completed state")
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

	// Collect only the flags the user actually set.
	data := map[string]interface{}{}
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			data["name"] = *name
		case "notes":
			data["notes"] = *notes
		case "completed":
			data["completed"] = *completed
		case "due":
			dueOn, err := parseDueDate(*due)
			if err != nil {
				flagErr = err
				return
			}
			data["due_on"] = dueOn
		}
	})
	if flagErr != nil {
		c.UI.Error(flagErr.Error())
		return 1
	}
	if len(data) == 0 {
		c.UI.Error("nothing to update: pass at least one field option")
		return 1
	}

	ctx := context.Background()
	client, _, err := c.Client(ctx, *configDir)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	task, err := client.Tasks.Update(ctx, taskID, data)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output(fmt.Sprintf("updated task %d", task.ID))
	return 0
}
