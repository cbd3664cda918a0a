package task

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/cli"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
)

// Command is the `asana tasks` subcommand group.
type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Work with tasks"
}

func (c *Command) Help() string {
	return `Usage: asana tasks <subcommand> [options] [args]

  This command groups subcommands for listing, inspecting, and mutating tasks.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// parseTimestamp turns a human-friendly date ("2024-06-01", "last tuesday",
// RFC3339, ...) into the RFC3339 form the API filters expect. The literal
// "now" passes through; the API accepts it directly.
func parseTimestamp(s string) (string, error) {
	if s == "now" {
		return s, nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC().Format(time.RFC3339), nil
}

// parseDueDate turns a human-friendly date into the YYYY-MM-DD form the
// due_on field expects.
func parseDueDate(s string) (string, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", fmt.Errorf("invalid due date %q: %w", s, err)
	}
	return t.Format("2006-01-02"), nil
}
