// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller resolves dotted paths inside loosely structured JSON build
// records and provides the optional/required accessors used to read them with
// explicit defaults.
package driller
