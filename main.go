// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/builddiff/internal/command"
	"github.com/tfctl/builddiff/internal/config"
	"github.com/tfctl/builddiff/internal/log"
	"github.com/tfctl/builddiff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.WithError(err).Debug("app init failed")
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.WithError(err).Debug("app run failed")
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = deduplicateFlags(processSetOnly(args))
		log.Debugf("args after set processing: args=%v", args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands an @set argument into the "<command>.<set>" string
// slice from the config file, at the position the @set appeared.
func processSetOnly(args []string) []string {
	if len(args) < 3 {
		return args
	}

	for i, a := range args[2:] {
		if !strings.HasPrefix(a, "@") {
			continue
		}
		idx := i + 2
		rest := append(append([]string{}, args[:idx]...), args[idx+1:]...)
		entries, err := config.GetStringSlice(args[1] + "." + a[1:])
		if err != nil {
			log.Warnf("set not found in config: set=%s err=%v", a, err)
			return rest
		}
		return injectEntries(rest, entries, idx)
	}

	return args
}

// injectEntries splits each entry on whitespace and inserts the resulting
// arguments at insertIdx.
func injectEntries(args []string, entries []string, insertIdx int) []string {
	var injected []string
	for _, entry := range entries {
		injected = append(injected, strings.Fields(entry)...)
	}
	if len(injected) == 0 {
		return args
	}

	out := make([]string, 0, len(args)+len(injected))
	out = append(out, args[:insertIdx]...)
	out = append(out, injected...)
	return append(out, args[insertIdx:]...)
}

// deduplicateFlags keeps only the last occurrence of each flag after the
// command, so explicit flags override those injected from a config set. A
// flag without "=" consumes the following argument as its value unless that
// argument is itself a flag.
func deduplicateFlags(args []string) []string {
	out := make([]string, 0, len(args))
	if len(args) <= 2 {
		return append(out, args...)
	}

	type group struct {
		name  string
		parts []string
	}

	var groups []group
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if !strings.HasPrefix(a, "-") {
			groups = append(groups, group{parts: []string{a}})
			continue
		}

		name, _, hasValue := strings.Cut(a, "=")
		g := group{name: name, parts: []string{a}}
		if !hasValue && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			g.parts = append(g.parts, rest[i+1])
			i++
		}
		groups = append(groups, g)
	}

	last := make(map[string]int)
	for i, g := range groups {
		if g.name != "" {
			last[g.name] = i
		}
	}

	out = append(out, args[:2]...)
	for i, g := range groups {
		if g.name != "" && last[g.name] != i {
			continue
		}
		out = append(out, g.parts...)
	}
	return out
}
