// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

// Meta contains runtime metadata shared by commands: the raw CLI arguments and
// the path of the loaded config file (empty when none exists).
type Meta struct {
	Args       []string
	ConfigPath string
}
