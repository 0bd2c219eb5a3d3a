// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ reports builds that exist in both snapshots but whose
// records changed between them, rendering each change as a JSON delta.
package differ
