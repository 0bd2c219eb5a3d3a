// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/builddiff/internal/builds"
	"github.com/tfctl/builddiff/internal/config"
	"github.com/tfctl/builddiff/internal/differ"
	"github.com/tfctl/builddiff/internal/document"
	"github.com/tfctl/builddiff/internal/filters"
	"github.com/tfctl/builddiff/internal/log"
	"github.com/tfctl/builddiff/internal/meta"
	"github.com/tfctl/builddiff/internal/output"
)

// compareCommandAction is the action handler for the "compare" subcommand. It
// loads the previous and latest snapshots, selects the builds whose id is new,
// and presents them sorted by queue time.
func compareCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", meta.Args[1:])

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("usage: %s (got %d argument(s))", cmd.UsageText, cmd.Args().Len())
	}
	prevPath, latestPath := cmd.Args().Get(0), cmd.Args().Get(1)

	// Both paths are checked before either is parsed.
	for _, p := range []string{prevPath, latestPath} {
		if err := requireFile(p); err != nil {
			return err
		}
	}

	prev, err := document.Load(prevPath)
	if err != nil {
		return err
	}
	latest, err := document.Load(latestPath)
	if err != nil {
		return err
	}

	opts := builds.Options{}
	if cmd.Bool("local") {
		opts.Location = time.Local
	}

	infos, err := builds.Compare(prev, latest, opts)
	if err != nil {
		return err
	}

	w, errW := writers(cmd)
	infos = filters.Apply(infos, cmd.String("filter"), errW)
	output.SortInfos(infos, cmd.String("sort"))

	presenter := output.Presenter{
		W:           w,
		Format:      cmd.String("output"),
		RequestedBy: cmd.Bool("requested-by"),
		Ago:         cmd.Bool("ago"),
	}
	if cmd.Bool("color") && isTerminal(w) {
		presenter.Palette = output.Colors()
	}

	if err := presenter.Emit(infos); err != nil {
		return err
	}
	log.Infof("reported new builds: prev=%d latest=%d shown=%d", len(prev), len(latest), len(infos))

	if cmd.Bool("changed") {
		if presenter.Format != "text" {
			log.Warnf("--changed only applies to text output: output=%s", presenter.Format)
			return nil
		}
		changes, err := differ.Changed(prev, latest)
		if err != nil {
			return err
		}
		return differ.Write(w, changes, cmd.String("diff_filter"), presenter.Palette.Enabled())
	}

	return nil
}

// requireFile fails when path does not exist or is a directory.
func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("snapshot does not exist: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("snapshot cannot be a directory: %s", path)
	}
	return nil
}

// writers returns the root command's output and error writers.
func writers(cmd *cli.Command) (io.Writer, io.Writer) {
	w, errW := cmd.Root().Writer, cmd.Root().ErrWriter
	if w == nil {
		w = os.Stdout
	}
	if errW == nil {
		errW = os.Stderr
	}
	return w, errW
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// configBool returns the config file default for a command-local bool flag,
// "compare.<key>" first and then "<key>". Anything but a YAML bool is ignored.
func configBool(key string) bool {
	b, err := config.GetBool(key, false)
	if err != nil {
		log.Warnf("ignoring non-bool config value: key=%s err=%v", key, err)
		return false
	}
	return b
}

// compareCommandBuilder constructs the "compare" subcommand.
func compareCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "report builds that are new in the latest snapshot",
		UsageText: "builddiff compare <prev-file> <latest-file>",
		Metadata:  map[string]any{"meta": meta},
		Flags: append(NewGlobalFlags("compare", meta.ConfigPath), []cli.Flag{
			&cli.BoolFlag{
				Name:  "ago",
				Usage: "append how long ago each build was queued",
				Value: configBool("ago"),
			},
			&cli.BoolFlag{
				Name:  "changed",
				Usage: "also report existing builds whose record changed",
				Value: configBool("changed"),
			},
			&cli.StringFlag{
				Name:  "diff_filter",
				Usage: "comma-separated top-level keys to drop from the changed report",
			},
			&cli.BoolFlag{
				Name:  "requested-by",
				Usage: "include who requested each build",
				Value: configBool("requested-by"),
			},
		}...),
		Action: compareCommandAction,
	}
}
