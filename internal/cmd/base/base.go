// Package base carries the dependencies shared by all CLI commands.
package base

import (
	"context"
	"flag"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/ArtisanCodesmith/node-asana/internal/config"
	"github.com/ArtisanCodesmith/node-asana/pkg/asana"
)

// Command is embedded by every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// NewCommand creates the shared command base.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{Log: log, UI: ui}
}

// FlagSet returns a flag set that reports usage errors through the UI instead
// of the process-wide stderr.
func (c *Command) FlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Client loads the CLI configuration from dir and builds an authenticated API
// client from it.
func (c *Command) Client(ctx context.Context, dir string) (*asana.Client, *config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, nil, err
	}

	apiCfg, err := cfg.APIConfig(ctx, c.Log)
	if err != nil {
		return nil, nil, err
	}

	client, err := asana.NewClient(apiCfg)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
