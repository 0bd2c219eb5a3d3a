// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package builds computes which build records are new between two snapshots
// and extracts the display metadata (Info) for each of them.
//
// A record is new when its id is absent from the previous snapshot. No other
// field takes part in that decision. Records lacking an id, and new records
// lacking definition.name, are malformed input and abort the comparison.
package builds
