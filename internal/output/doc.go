// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output sorts new-build metadata and presents it as text blocks,
// JSON or YAML.
package output
