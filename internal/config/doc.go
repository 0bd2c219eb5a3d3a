// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for builddiff's optional
// user configuration. The configuration is a YAML document named
// builddiff.yaml in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/builddiff.yaml or $HOME/.config/builddiff.yaml
//   - macOS: $HOME/Library/Application Support/builddiff.yaml
//   - Windows: %APPDATA%/builddiff.yaml
//
// BUILDDIFF_CFG_FILE overrides the location. A missing file is not an error;
// every getter then returns its default.
package config
