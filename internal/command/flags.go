// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/builddiff/internal/output"
)

// NewGlobalFlags returns the presentation flags shared by report commands.
// When cfgPath names a config file, each flag also reads its value from
// "<ns>.<flag>" and then "<flag>" in that file.
func NewGlobalFlags(ns string, cfgPath string) (flags []cli.Flag) {
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml)",
		Value:   "text",
		Sources: cli.NewValueSourceChain(cli.EnvVar("BUILDDIFF_OUTPUT")),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
	filterFlag := &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "comma-separated list of filters to apply to new builds",
	}
	sortFlag := &cli.StringFlag{
		Name:    "sort",
		Aliases: []string{"s"},
		Usage:   "comma-separated list of fields to sort new builds by",
		Value:   output.DefaultSort,
		Validator: func(value string) error {
			return FlagValidators(value, SortValidator)
		},
	}
	colorFlag := &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
	}
	localFlag := &cli.BoolFlag{
		Name:    "local",
		Aliases: []string{"l"},
		Usage:   "show queue times in the local time zone",
	}

	if cfgPath != "" {
		NameSpacedValueChainFromConfigFile(ns, cfgPath, outputFlag.Name, &outputFlag.Sources)
		NameSpacedValueChainFromConfigFile(ns, cfgPath, filterFlag.Name, &filterFlag.Sources)
		NameSpacedValueChainFromConfigFile(ns, cfgPath, sortFlag.Name, &sortFlag.Sources)
		NameSpacedValueChainFromConfigFile(ns, cfgPath, colorFlag.Name, &colorFlag.Sources)
		NameSpacedValueChainFromConfigFile(ns, cfgPath, localFlag.Name, &localFlag.Sources)
	}

	return []cli.Flag{outputFlag, filterFlag, sortFlag, colorFlag, localFlag}
}

// NameSpacedValueChainFromConfigFile adds namespaced and global config file
// sources for name to the given chain.
func NameSpacedValueChainFromConfigFile(ns string, path string, name string, chain *cli.ValueSourceChain) {
	chain.Chain = append(chain.Chain,
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)),
		yaml.YAML(name, altsrc.StringSourcer(path)),
	)
}
