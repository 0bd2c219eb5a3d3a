// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package builds

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tfctl/builddiff/internal/driller"
)

// ErrMissingID is wrapped when a record has no id.
var ErrMissingID = errors.New("build record has no id")

// intLiteral matches a JSON number with neither fraction nor exponent.
var intLiteral = regexp.MustCompile(`^-?[0-9]+$`)

// IDSet holds the identifier keys of one snapshot.
type IDSet map[string]struct{}

// Has reports whether id is in the set.
func (s IDSet) Has(id gjson.Result) bool {
	_, ok := s[Key(id)]
	return ok
}

// Key returns the set key for an id value. Numbers compare by value so 1 and
// 1.0 collide, strings by content, and a number never equals a string.
// Integer literals are keyed on their digits so ids beyond 2^53 stay distinct.
func Key(id gjson.Result) string {
	switch id.Type {
	case gjson.Number:
		return "n:" + numberKey(id)
	case gjson.String:
		return "s:" + id.Str
	default:
		return "j:" + id.Raw
	}
}

// numberKey is the canonical decimal form of a JSON number. An integral
// float renders as its exact integer digits so 2 and 2.0 share a key.
func numberKey(id gjson.Result) string {
	raw := strings.TrimSpace(id.Raw)
	if intLiteral.MatchString(raw) {
		neg := strings.HasPrefix(raw, "-")
		digits := strings.TrimLeft(strings.TrimPrefix(raw, "-"), "0")
		if digits == "" {
			return "0"
		}
		if neg {
			return "-" + digits
		}
		return digits
	}

	f := id.Num
	if f == 0 {
		return "0"
	}
	if !math.IsInf(f, 0) && f == math.Trunc(f) {
		return new(big.Float).SetFloat64(f).Text('f', 0)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// RecordID returns the id of the record at index i.
func RecordID(record gjson.Result, i int) (gjson.Result, error) {
	id, err := driller.Required(record, "id")
	if err != nil {
		return gjson.Result{}, fmt.Errorf("record %d: %w", i, ErrMissingID)
	}
	return id, nil
}

// IDs projects records onto the set of their ids.
func IDs(records []gjson.Result) (IDSet, error) {
	set := make(IDSet, len(records))
	for i, record := range records {
		id, err := RecordID(record, i)
		if err != nil {
			return nil, err
		}
		set[Key(id)] = struct{}{}
	}
	return set, nil
}

// SelectNew returns, in encountered order, the latest records whose id is not
// in prev.
func SelectNew(latest []gjson.Result, prev IDSet) ([]gjson.Result, error) {
	var fresh []gjson.Result
	for i, record := range latest {
		id, err := RecordID(record, i)
		if err != nil {
			return nil, err
		}
		if !prev.Has(id) {
			fresh = append(fresh, record)
		}
	}
	return fresh, nil
}
