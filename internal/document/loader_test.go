// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantIDs []int64
		wantErr bool
	}{
		{
			name:    "wrapped",
			raw:     `{"count": 2, "value": [{"id": 1}, {"id": 2}]}`,
			wantIDs: []int64{1, 2},
		},
		{
			name:    "bare list",
			raw:     `[{"id": 3}, {"id": 4}, {"id": 5}]`,
			wantIDs: []int64{3, 4, 5},
		},
		{
			name:    "empty list",
			raw:     `[]`,
			wantIDs: []int64{},
		},
		{
			name:    "object without value",
			raw:     `{"count": 0}`,
			wantIDs: []int64{},
		},
		{
			name:    "value not a list",
			raw:     `{"value": {"id": 1}}`,
			wantIDs: []int64{},
		},
		{
			name:    "scalar",
			raw:     `42`,
			wantIDs: []int64{},
		},
		{
			name:    "invalid",
			raw:     `{"value": [`,
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Normalize([]byte(tt.raw))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidJSON)
				return
			}
			require.NoError(t, err)

			ids := make([]int64, 0, len(records))
			for _, r := range records {
				ids = append(ids, r.Get("id").Int())
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "builds.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"value": [{"id": 9}]}`), 0o600))

	records, err := Load(good)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(9), records[0].Get("id").Int())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`not json`), 0o600))
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrInvalidJSON)
	assert.Contains(t, err.Error(), bad)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	_, err = Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}
