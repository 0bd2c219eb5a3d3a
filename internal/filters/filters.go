// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/tfctl/builddiff/internal/builds"
	"github.com/tfctl/builddiff/internal/log"
)

// filterRegex splits a filter expression into key, operator and target. The
// operator is one of = ^ ~ < >, optionally prefixed with '!'. Examples:
// "definition=Rollout", "rolloutType!=Safe", "queueTime>2024-01-01".
var filterRegex = regexp.MustCompile(`^([^!=^~<>]*)(!?[=^~<>])(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Malformed expressions are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override for values containing commas.
	delim := ","
	if d, ok := os.LookupEnv("BUILDDIFF_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			log.Errorf("invalid filter: %s", filterSpec)
			continue
		}

		key := strings.TrimSpace(parts[1])
		if key == "" {
			log.Errorf("invalid filter: empty key in %s", filterSpec)
			continue
		}

		operand := parts[2]
		negate := strings.HasPrefix(operand, "!")

		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: strings.TrimPrefix(operand, "!"),
			Value:   parts[3],
		})
	}

	return filters
}

// Apply returns the infos matching every filter in spec, preserving order.
// Unknown keys are reported on warn and skipped.
func Apply(infos []builds.Info, spec string, warn io.Writer) []builds.Info {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return infos
	}
	if warn == nil {
		warn = os.Stderr
	}

	known := builds.Info{}.Fields()
	active := filters[:0:0]
	for _, f := range filters {
		if _, ok := known[f.Key]; !ok {
			log.Debugf("unknown filter key skipped: key=%s", f.Key)
			fmt.Fprintf(warn, "warning: filter key not found: %s\n", f.Key)
			continue
		}
		active = append(active, f)
	}

	//nolint:prealloc
	var result []builds.Info
	for _, info := range infos {
		fields := info.Fields()
		matched := true
		for _, f := range active {
			if !f.Match(fields[f.Key]) {
				matched = false
				break
			}
		}
		if matched {
			result = append(result, info)
		}
	}

	log.Debugf("filtered: spec=%s in=%d out=%d", spec, len(infos), len(result))
	return result
}

// Match checks value against the filter, honoring negation.
func (f Filter) Match(value string) bool {
	var ok bool
	switch f.Operand {
	case "=":
		ok = value == f.Value
	case "^":
		ok = strings.HasPrefix(value, f.Value)
	case "~":
		ok = strings.Contains(strings.ToLower(value), strings.ToLower(f.Value))
	case "<":
		ok = value < f.Value
	case ">":
		ok = value > f.Value
	}
	return ok != f.Negate
}
