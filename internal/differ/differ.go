// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/builddiff/internal/builds"
	"github.com/tfctl/builddiff/internal/driller"
	"github.com/tfctl/builddiff/internal/log"
)

// Change is one build whose record differs between snapshots.
type Change struct {
	ID          string
	Definition  string
	BuildNumber string
	Delta       gojsondiff.Diff
	// Left is the previous record, used as the formatter's base document.
	Left map[string]interface{}
}

// Changed returns the builds present in both prev and latest whose records
// differ, in latest's order. Records must carry ids; callers validate that
// through builds.IDs first.
func Changed(prev, latest []gjson.Result) ([]Change, error) {
	byID := make(map[string]gjson.Result, len(prev))
	for i, record := range prev {
		id, err := builds.RecordID(record, i)
		if err != nil {
			return nil, err
		}
		byID[builds.Key(id)] = record
	}

	differ := gojsondiff.New()

	var changes []Change
	for i, record := range latest {
		id, err := builds.RecordID(record, i)
		if err != nil {
			return nil, err
		}

		before, ok := byID[builds.Key(id)]
		if !ok || !before.IsObject() || !record.IsObject() {
			continue
		}

		delta, err := differ.Compare([]byte(before.Raw), []byte(record.Raw))
		if err != nil {
			return nil, fmt.Errorf("failed to compare build %s: %w", id.String(), err)
		}
		if !delta.Modified() {
			continue
		}

		var left map[string]interface{}
		if err := json.Unmarshal([]byte(before.Raw), &left); err != nil {
			return nil, fmt.Errorf("failed to unmarshal build %s: %w", id.String(), err)
		}

		changes = append(changes, Change{
			ID:          id.String(),
			Definition:  driller.Optional(record, "definition.name", builds.NotAvailable),
			BuildNumber: driller.Optional(record, "buildNumber", builds.NotAvailable),
			Delta:       delta,
			Left:        left,
		})
	}

	log.Debugf("changed builds: %d", len(changes))
	return changes, nil
}

// Write renders changes as ASCII deltas. Top-level keys named in filter
// (comma separated) are dropped from the rendered base document.
func Write(w io.Writer, changes []Change, filter string, coloring bool) error {
	for _, c := range changes {
		for key := range strings.SplitSeq(filter, ",") {
			if key = strings.TrimSpace(key); key != "" {
				delete(c.Left, key)
			}
		}

		f := formatter.NewAsciiFormatter(c.Left, formatter.AsciiFormatterConfig{
			ShowArrayIndex: false,
			Coloring:       coloring,
		})
		diffString, err := f.Format(c.Delta)
		if err != nil {
			return fmt.Errorf("failed to format build %s: %w", c.ID, err)
		}

		if _, err := fmt.Fprintf(w, "'%s' build '%s' (id %s) changed:\n%s", c.Definition, c.BuildNumber, c.ID, diffString); err != nil {
			return err
		}
		if !strings.HasSuffix(diffString, "\n") {
			fmt.Fprintln(w)
		}
	}
	return nil
}
