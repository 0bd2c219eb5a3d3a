// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"

	"github.com/tfctl/builddiff/internal/builds"
)

// DefaultSort orders builds by their raw queue time. ISO-8601 UTC strings of a
// single format sort chronologically under plain byte comparison.
const DefaultSort = "queueTime"

// SortInfos stable-sorts infos by a comma-separated list of Info field names.
// A leading "-" sorts that field descending. Comparison is byte-wise and
// case-sensitive. Unknown fields compare equal.
func SortInfos(infos []builds.Info, spec string) {
	if strings.TrimSpace(spec) == "" {
		return
	}
	fields := strings.Split(spec, ",")

	sort.SliceStable(infos, func(one, two int) bool {
		oneFields := infos[one].Fields()
		twoFields := infos[two].Fields()

		for _, field := range fields {
			field = strings.TrimSpace(field)
			ascending := true
			if strings.HasPrefix(field, "-") {
				field = strings.TrimPrefix(field, "-")
				ascending = false
			}

			oneValue := oneFields[field]
			twoValue := twoFields[field]
			if oneValue != twoValue {
				if ascending {
					return oneValue < twoValue
				}
				return oneValue > twoValue
			}
		}
		return false
	})
}
