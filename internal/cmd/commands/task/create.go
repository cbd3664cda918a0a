package task

import (
	"context"
	"fmt"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
	"github.com/ArtisanCodesmith/node-asana/pkg/asana"
)

// CreateCommand creates a task.
type CreateCommand struct {
	*base.Command
}

func (c *CreateCommand) Synopsis() string {
	return "Create a task"
}

func (c *CreateCommand) Help() string {
	return `Usage: asana tasks create [options] <name>

  Creates a task. With -project the task is added to that project and the
  workspace is inferred remotely; otherwise the task is created in the
  configured (or -workspace) workspace.

Options:

  -config-dir=<path>  Configuration directory.
  -workspace=<id>     Workspace to create the task in.
  -project=<id>       Project to add the task to.
  -assignee=<id|me>   Assignee for the task.
  -notes=<text>       Task notes.
  -due=<date>         Due date. Accepts human-friendly dates.`
}

func (c *CreateCommand) Run(args []string) int {
	fs := c.FlagSet("tasks create")
	var (
		configDir = fs.String("config-dir", "", "configuration directory")
		workspace = fs.Int64("workspace", 0, "workspace id")
		project   = fs.Int64("project", 0, "project id")
		assignee  = fs.String("assignee", "", "assignee")
		notes     = fs.String("notes", "", "task notes")
		due       = fs.String("due", "", "due date")
	)
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if fs.NArg() != 1 {
		c.UI.Error("exactly one task name is required")
		return 1
	}

	data := map[string]interface{}{
		"name": fs.Arg(0),
	}
	if *notes != "" {
		data["notes"] = *notes
	}
	if *assignee != "" {
		data["assignee"] = *assignee
	}
	if *due != "" {
		dueOn, err := parseDueDate(*due)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		data["due_on"] = dueOn
	}

	ctx := context.Background()
	client, cfg, err := c.Client(ctx, *configDir)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	var task *asana.Task
	if *project != 0 {
		data["projects"] = []int64{*project}
		task, err = client.Tasks.Create(ctx, data)
	} else {
		ws := *workspace
		if ws == 0 {
			ws = cfg.Workspace
		}
		if ws == 0 {
			c.UI.Error("a workspace is required: pass -workspace or set one in the config")
			return 1
		}
		task, err = client.Tasks.CreateInWorkspace(ctx, ws, data)
	}
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output(fmt.Sprintf("created task %d", task.ID))
	return 0
}
