// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tfctl/builddiff/internal/builds"
)

func TestChanged(t *testing.T) {
	prev := gjson.Parse(`[
		{"id": 1, "status": "inProgress", "definition": {"name": "Rollout"}, "buildNumber": "1.0"},
		{"id": 2, "status": "completed", "definition": {"name": "Nightly"}}
	]`).Array()
	latest := gjson.Parse(`[
		{"id": 3, "status": "notStarted", "definition": {"name": "Rollout"}},
		{"definition": {"name": "Nightly"}, "status": "completed", "id": 2},
		{"id": 1, "status": "completed", "definition": {"name": "Rollout"}, "buildNumber": "1.0"}
	]`).Array()

	changes, err := Changed(prev, latest)
	require.NoError(t, err)
	require.Len(t, changes, 1, "reordered keys are not a change and new ids are ignored")
	assert.Equal(t, "1", changes[0].ID)
	assert.Equal(t, "Rollout", changes[0].Definition)
	assert.Equal(t, "1.0", changes[0].BuildNumber)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, changes, "", false))
	out := buf.String()
	assert.Contains(t, out, "'Rollout' build '1.0' (id 1) changed:")
	assert.Contains(t, out, `-  "status": "inProgress"`)
	assert.Contains(t, out, `+  "status": "completed"`)
}

func TestChangedNone(t *testing.T) {
	docs := gjson.Parse(`[{"id": 1, "definition": {"name": "Rollout"}}]`).Array()
	changes, err := Changed(docs, docs)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestChangedMissingID(t *testing.T) {
	_, err := Changed(gjson.Parse(`[{"status": "x"}]`).Array(), nil)
	require.ErrorIs(t, err, builds.ErrMissingID)
}
