// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.ErrorLevel},
		{"trace", log.DebugLevel},
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFor(tt.in))
		})
	}
}

func TestCompactHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &CompactHandler{Writer: &buf}

	err := h.HandleLog(&log.Entry{
		Level:   log.WarnLevel,
		Message: "queue time not parseable",
		Fields:  log.Fields{"raw": "not-a-date"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), " W queue time not parseable raw=not-a-date\n")

	buf.Reset()
	err = h.HandleLog(&log.Entry{Level: log.DebugLevel, Message: "TRACE: drilled"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), " T drilled\n")
}
