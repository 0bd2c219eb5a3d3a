// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMissing is wrapped by Required when a path does not resolve.
var ErrMissing = errors.New("required field missing")

// segmentRegex matches one path segment: a key with an optional [n] index.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+)\])?$`)

// intLiteral matches a JSON number with neither fraction nor exponent.
var intLiteral = regexp.MustCompile(`^-?[0-9]+$`)

// Drill navigates a record using a dot path such as "definition.name" or
// "tags[0]". Keys are matched literally, so gjson wildcard and modifier
// characters in field names never change the lookup. When a key repeats, the
// last occurrence wins. An invalid segment or an out-of-range index yields a
// non-existent result.
func Drill(record gjson.Result, path string) gjson.Result {
	current := record

	for _, p := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(p)
		if len(matches) == 0 || !current.IsObject() {
			return gjson.Result{}
		}

		var val gjson.Result
		current.ForEach(func(key, value gjson.Result) bool {
			if key.Str == matches[1] {
				val = value
			}
			return true
		})

		if matches[3] != "" {
			index, err := strconv.Atoi(matches[3])
			if err != nil || !val.IsArray() {
				return gjson.Result{}
			}
			arr := val.Array()
			if index >= len(arr) {
				return gjson.Result{}
			}
			val = arr[index]
		}

		current = val
	}

	return current
}

// Present reports whether path resolves to a value other than JSON null.
func Present(record gjson.Result, path string) bool {
	v := Drill(record, path)
	return v.Exists() && v.Type != gjson.Null
}

// Optional returns the string form of the value at path, or def when the path
// is absent or null.
func Optional(record gjson.Result, path string, def string) string {
	v := Drill(record, path)
	if !v.Exists() || v.Type == gjson.Null {
		return def
	}
	return Text(v)
}

// Text renders a scalar for display. Integers keep their digits, other numbers
// always show a fraction or an exponent (4.0, 1e+16) and booleans print as
// True and False.
func Text(v gjson.Result) string {
	switch v.Type {
	case gjson.True:
		return "True"
	case gjson.False:
		return "False"
	case gjson.Number:
		if intLiteral.MatchString(v.Raw) {
			return v.Raw
		}
		return floatText(v.Num)
	default:
		return v.String()
	}
}

func floatText(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Required returns the value at path or an error wrapping ErrMissing.
func Required(record gjson.Result, path string) (gjson.Result, error) {
	v := Drill(record, path)
	if !v.Exists() || v.Type == gjson.Null {
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrMissing, path)
	}
	return v, nil
}
