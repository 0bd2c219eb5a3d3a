// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package document loads build-list snapshots exported from a CI system and
// normalizes them into a flat list of build records. Both the wrapped form
// ({"count": n, "value": [...]}) and a bare JSON array are accepted.
package document
