// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tfctl/builddiff/internal/builds"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

var validOutputFlagValues = []string{"text", "json", "yaml"}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(validOutputFlagValues, s) {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

// SortValidator rejects sort fields that are not Info field names.
func SortValidator(value any) error {
	s, _ := value.(string)
	known := builds.Info{}.Fields()
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimPrefix(strings.TrimSpace(field), "-")
		if field == "" {
			continue
		}
		if _, ok := known[field]; !ok {
			return fmt.Errorf("unknown sort field %q", field)
		}
	}
	return nil
}
