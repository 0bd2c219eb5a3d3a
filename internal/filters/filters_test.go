// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"bytes"
	"testing"

	apexlog "github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"

	"github.com/tfctl/builddiff/internal/builds"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Filter
	}{
		{"empty", "", nil},
		{"equals", "definition=Rollout", []Filter{{Key: "definition", Operand: "=", Value: "Rollout"}}},
		{"negated prefix", "buildNumber!^20", []Filter{{Key: "buildNumber", Negate: true, Operand: "^", Value: "20"}}},
		{"empty value", "select=", []Filter{{Key: "select", Operand: "=", Value: ""}}},
		{
			name: "multiple with spaces",
			spec: " rolloutType~safe , queueTime>2024-01-01 ",
			want: []Filter{
				{Key: "rolloutType", Operand: "~", Value: "safe"},
				{Key: "queueTime", Operand: ">", Value: "2024-01-01"},
			},
		},
		{"key only is invalid", "definition", nil},
		{"empty key is invalid", "=x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilters(tt.spec))
		})
	}
}

func TestBuildFiltersDelimiter(t *testing.T) {
	t.Setenv("BUILDDIFF_FILTER_DELIM", ";")
	got := BuildFilters("select=eu,us;definition=Rollout")
	assert.Equal(t, []Filter{
		{Key: "select", Operand: "=", Value: "eu,us"},
		{Key: "definition", Operand: "=", Value: "Rollout"},
	}, got)
}

func TestApply(t *testing.T) {
	infos := []builds.Info{
		{ID: "1", Definition: "Rollout", RolloutType: "Safe", RawQueueTime: "2024-01-01T10:00:00Z"},
		{ID: "2", Definition: "Rollout", RolloutType: "Emergency", RawQueueTime: "2024-01-02T10:00:00Z"},
		{ID: "3", Definition: "Nightly", RolloutType: "n/a", RawQueueTime: "2024-01-03T10:00:00Z"},
	}

	ids := func(in []builds.Info) []string {
		var out []string
		for _, i := range in {
			out = append(out, i.ID)
		}
		return out
	}

	tests := []struct {
		name string
		spec string
		want []string
	}{
		{"no filter", "", []string{"1", "2", "3"}},
		{"equals", "definition=Rollout", []string{"1", "2"}},
		{"not equals", "definition!=Rollout", []string{"3"}},
		{"contains ignores case", "rolloutType~SAFE", []string{"1"}},
		{"prefix", "definition^Night", []string{"3"}},
		{"after", "queueTime>2024-01-02", []string{"2", "3"}},
		{"before", "queueTime<2024-01-02", []string{"1"}},
		{"combined", "definition=Rollout,rolloutType!=Safe", []string{"2"}},
		{"no match", "definition=Other", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(infos, tt.spec, nil)))
		})
	}
}

func TestApplyUnknownKey(t *testing.T) {
	var warn bytes.Buffer
	infos := []builds.Info{{ID: "1", Definition: "Rollout"}}

	handler := memory.New()
	prev := apexlog.Log
	apexlog.Log = &apexlog.Logger{Handler: handler, Level: apexlog.ErrorLevel}
	t.Cleanup(func() { apexlog.Log = prev })

	got := Apply(infos, "colour=red,definition=Rollout", &warn)
	assert.Len(t, got, 1)
	assert.Equal(t, "warning: filter key not found: colour\n", warn.String())
	assert.Empty(t, handler.Entries, "only the warning line reaches stderr at the default level")
}
