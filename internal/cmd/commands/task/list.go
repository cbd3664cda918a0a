package task

import (
	"context"
	"os"
	"strconv"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
	"github.com/ArtisanCodesmith/node-asana/internal/output"
	"github.com/ArtisanCodesmith/node-asana/pkg/asana"
)

// ListCommand lists tasks by project, by tag, or by assignee filters.
type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "List tasks"
}

func (c *ListCommand) Help() string {
	return `Usage: asana tasks list [options]

  Lists tasks. With -project or -tag the tasks of that project or tag are
  listed; otherwise tasks are filtered by assignee and workspace.

Options:

  -config-dir=<path>        Configuration directory.
  -format=<table|json|yaml> Output format. Defaults to table.
  -project=<id>             List the tasks in a project.
  -tag=<id>                 List the tasks carrying a tag.
  -workspace=<id>           Workspace to filter by. Defaults to the
                            configured workspace.
  -assignee=<id|me>         Assignee to filter by. Defaults to "me".
  -completed-since=<date>   Only tasks incomplete or completed since the
                            given date. Accepts human-friendly dates.
  -modified-since=<date>    Only tasks modified since the given date.`
}

func (c *ListCommand) Run(args []string) int {
	fs := c.FlagSet("tasks list")
	var (
		configDir      = fs.String("config-dir", "", "configuration directory")
		format         = fs.String("format", "table", "output format")
		project        = fs.Int64("project", 0, "project id")
		tag            = fs.Int64("tag", 0, "tag id")
		workspace      = fs.Int64("workspace", 0, "workspace id")
		assignee       = fs.String("assignee", "me", "assignee filter")
		completedSince = fs.String("completed-since", "", "completed_since filter")
		modifiedSince  = fs.String("modified-since", "", "modified_since filter")
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
	client, cfg, err := c.Client(ctx, *configDir)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	var tasks []asana.Task
	switch {
	case *project != 0:
		tasks, err = client.Tasks.FindByProject(ctx, *project, nil)
	case *tag != 0:
		tasks, err = client.Tasks.FindByTag(ctx, *tag, nil)
	default:
		params := map[string]string{"assignee": *assignee}

		ws := *workspace
		if ws == 0 {
			ws = cfg.Workspace
		}
		if ws != 0 {
			params["workspace"] = strconv.FormatInt(ws, 10)
		}
		if *completedSince != "" {
			ts, perr := parseTimestamp(*completedSince)
			if perr != nil {
				c.UI.Error(perr.Error())
				return 1
			}
			params["completed_since"] = ts
		}
		if *modifiedSince != "" {
			ts, perr := parseTimestamp(*modifiedSince)
			if perr != nil {
				c.UI.Error(perr.Error())
				return 1
			}
			params["modified_since"] = ts
		}

		tasks, err = client.Tasks.FindAll(ctx, params)
	}
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := output.WriteTasks(os.Stdout, f, tasks); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
