// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/builddiff/internal/config"
	"github.com/tfctl/builddiff/internal/log"
	"github.com/tfctl/builddiff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary is the subcommand and also
	// the namespace key used when retrieving config values. It could be
	// -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A config file is optional; without one every flag keeps its default.
	cfg, err := config.Load(ns)
	if err != nil {
		log.Debugf("no config loaded: err=%v", err)
	}

	meta := meta.Meta{
		Args:       args,
		ConfigPath: cfg.Source,
	}

	app := &cli.Command{
		Name:  "builddiff",
		Usage: "report builds that are new between two CI build-list snapshots",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "builddiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		compareCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
