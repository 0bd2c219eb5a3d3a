// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tfctl/builddiff/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"builddiff", "compare"},
			expected: []string{"builddiff", "compare"},
		},
		{
			name:     "no duplicates",
			args:     []string{"builddiff", "compare", "--output", "json", "--ago", "a.json", "b.json"},
			expected: []string{"builddiff", "compare", "--output", "json", "--ago", "a.json", "b.json"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"builddiff", "compare", "--output", "json", "--ago", "--output", "text", "a.json", "b.json"},
			expected: []string{"builddiff", "compare", "--ago", "--output", "text", "a.json", "b.json"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"builddiff", "compare", "--ago", "--changed", "--ago"},
			expected: []string{"builddiff", "compare", "--changed", "--ago"},
		},
		{
			name:     "mixed equals and space syntax",
			args:     []string{"builddiff", "compare", "--output=json", "--output", "yaml", "a.json", "b.json"},
			expected: []string{"builddiff", "compare", "--output", "yaml", "a.json", "b.json"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"builddiff", "compare", "-o", "json", "-o", "text"},
			expected: []string{"builddiff", "compare", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"builddiff", "compare", "--color", "--local"},
			expected: []string{"builddiff", "compare", "--color", "--local"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"builddiff", "compare", "a.json", "b.json", "--sort", "definition", "--sort", "queueTime"},
			expected: []string{"builddiff", "compare", "a.json", "b.json", "--sort", "queueTime"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestInjectEntries(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		entries   []string
		insertIdx int
		expected  []string
	}{
		{
			name:      "no entries returns args unchanged",
			args:      []string{"builddiff", "compare", "a.json"},
			insertIdx: 2,
			expected:  []string{"builddiff", "compare", "a.json"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"builddiff", "compare", "a.json"},
			entries:   []string{"--output json", "--ago"},
			insertIdx: 2,
			expected:  []string{"builddiff", "compare", "--output", "json", "--ago", "a.json"},
		},
		{
			name:      "insert at end",
			args:      []string{"builddiff", "compare"},
			entries:   []string{"--changed"},
			insertIdx: 2,
			expected:  []string{"builddiff", "compare", "--changed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := injectEntries(tt.args, tt.entries, tt.insertIdx)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("injectEntries() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestProcessSetOnly(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "builddiff.yaml")
	if err := os.WriteFile(cfg, []byte("compare:\n  ci:\n    - --output json\n    - --requested-by\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BUILDDIFF_CFG_FILE", cfg)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	got := processSetOnly([]string{"builddiff", "compare", "@ci", "a.json", "b.json"})
	want := []string{"builddiff", "compare", "--output", "json", "--requested-by", "a.json", "b.json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("processSetOnly() = %v, want %v", got, want)
	}

	got = processSetOnly([]string{"builddiff", "compare", "@missing", "a.json"})
	want = []string{"builddiff", "compare", "a.json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("processSetOnly() = %v, want %v", got, want)
	}
}

func TestHandleNakedCommand(t *testing.T) {
	got := handleNakedCommand([]string{"builddiff"})
	if !reflect.DeepEqual(got, []string{"builddiff", "--help"}) {
		t.Errorf("handleNakedCommand() = %v", got)
	}
}
