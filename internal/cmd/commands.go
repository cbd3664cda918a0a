package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/ArtisanCodesmith/node-asana/internal/cmd/base"
	"github.com/ArtisanCodesmith/node-asana/internal/cmd/commands/auth"
	"github.com/ArtisanCodesmith/node-asana/internal/cmd/commands/task"
	versioncmd "github.com/ArtisanCodesmith/node-asana/internal/cmd/commands/version"
	"github.com/ArtisanCodesmith/node-asana/internal/cmd/commands/workspace"
	"github.com/ArtisanCodesmith/node-asana/internal/version"
)

// Commands is the command registry for the CLI.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b, Version: version.Version}, nil
		},
		"auth": func() (cli.Command, error) {
			return &auth.Command{Command: b}, nil
		},
		"auth login": func() (cli.Command, error) {
			return &auth.LoginCommand{Command: b}, nil
		},
		"auth logout": func() (cli.Command, error) {
			return &auth.LogoutCommand{Command: b}, nil
		},
		"tasks": func() (cli.Command, error) {
			return &task.Command{Command: b}, nil
		},
		"tasks list": func() (cli.Command, error) {
			return &task.ListCommand{Command: b}, nil
		},
		"tasks show": func() (cli.Command, error) {
			return &task.ShowCommand{Command: b}, nil
		},
		"tasks create": func() (cli.Command, error) {
			return &task.CreateCommand{Command: b}, nil
		},
		"tasks update": func() (cli.Command, error) {
			return &task.UpdateCommand{Command: b}, nil
		},
		"tasks done": func() (cli.Command, error) {
			return &task.DoneCommand{Command: b}, nil
		},
		"tasks delete": func() (cli.Command, error) {
			return &task.DeleteCommand{Command: b}, nil
		},
		"workspaces": func() (cli.Command, error) {
			return &workspace.ListCommand{Command: b}, nil
		},
	}
}
