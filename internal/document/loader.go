// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/tfctl/builddiff/internal/log"
)

// ErrInvalidJSON is wrapped by Load when a snapshot is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Load reads the snapshot at path and returns its build records. A missing or
// unreadable file and invalid JSON are errors. Unrecognized document shapes
// yield an empty list.
func Load(path string) ([]gjson.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot does not exist: %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("snapshot cannot be a directory: %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	records, err := Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debugf("loaded snapshot: path=%s records=%d", path, len(records))
	return records, nil
}

// Normalize parses raw and applies the shape policy: an object's "value"
// array, or the document itself when it is an array. Anything else is an
// empty record list.
func Normalize(raw []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(raw)

	switch {
	case doc.IsArray():
		return doc.Array(), nil
	case doc.IsObject():
		value := doc.Get("value")
		if value.IsArray() {
			return value.Array(), nil
		}
		log.Debugf("object snapshot without a value list: value.type=%s", value.Type)
	default:
		log.Debugf("unrecognized snapshot shape: type=%s", doc.Type)
	}

	return []gjson.Result{}, nil
}
