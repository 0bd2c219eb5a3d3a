// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package builds

import (
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/tfctl/builddiff/internal/driller"
	"github.com/tfctl/builddiff/internal/log"
)

// ErrMissingDefinition is wrapped when a new record has no definition.name.
var ErrMissingDefinition = errors.New("build record has no definition.name")

// Defaults applied to absent fields.
const (
	NotAvailable   = "N/A"
	RolloutDefault = "n/a"
	SelectDefault  = "*"
)

// queueTimeLayouts are tried in order. They cover the extended and basic
// ISO-8601 forms: date alone, or date and a time of hour, minute or second
// precision, each optionally followed by a UTC offset. Fractional seconds are
// accepted after the seconds field. Layouts without a zone are read as UTC.
var queueTimeLayouts = func() []string {
	var layouts []string
	for _, date := range []string{"2006-01-02", "20060102"} {
		layouts = append(layouts, date)
		for _, sep := range []string{"T", " "} {
			for _, clock := range []string{"15:04:05", "15:04", "15", "150405", "1504"} {
				for _, zone := range []string{"Z07:00", "", "Z0700", "Z07", "Z07:00:00"} {
					layouts = append(layouts, date+sep+clock+zone)
				}
			}
		}
	}
	return layouts
}()

// Info is the display metadata of one new build.
type Info struct {
	ID           string `json:"id" yaml:"id"`
	Definition   string `json:"definition" yaml:"definition"`
	BuildNumber  string `json:"buildNumber" yaml:"buildNumber"`
	QueueTime    string `json:"queueTime" yaml:"queueTime"`
	RawQueueTime string `json:"rawQueueTime" yaml:"rawQueueTime"`
	RequestedBy  string `json:"requestedBy,omitempty" yaml:"requestedBy,omitempty"`
	RequestedFor string `json:"requestedFor,omitempty" yaml:"requestedFor,omitempty"`
	RolloutType  string `json:"rolloutType" yaml:"rolloutType"`
	Select       string `json:"select" yaml:"select"`
	Override     string `json:"overrideManagedValidationDuration" yaml:"overrideManagedValidationDuration"`
	Hours        string `json:"managedValidationDurationInHours" yaml:"managedValidationDurationInHours"`

	// Queued is the parsed queue time, zero when QueueTime could not be parsed.
	Queued time.Time `json:"-" yaml:"-"`
}

// Options tune Extract.
type Options struct {
	// Location formats queue times in this zone instead of UTC.
	Location *time.Location
}

// ByClause is " by <name>" when the build has a requester, else "".
func (i Info) ByClause() string {
	if i.RequestedBy == "" {
		return ""
	}
	return " by " + i.RequestedBy
}

// ForClause is " for <name>" when the build was requested for someone, else "".
func (i Info) ForClause() string {
	if i.RequestedFor == "" {
		return ""
	}
	return " for " + i.RequestedFor
}

// OverridesValidation reports whether the managed validation duration is
// overridden. Only the literal "True" counts.
func (i Info) OverridesValidation() bool {
	return i.Override == "True"
}

// Fields exposes Info by name for filtering and sorting. queueTime is the raw
// value so that lexical order is chronological; time is the formatted one.
func (i Info) Fields() map[string]string {
	return map[string]string{
		"id":            i.ID,
		"definition":    i.Definition,
		"buildNumber":   i.BuildNumber,
		"queueTime":     i.RawQueueTime,
		"time":          i.QueueTime,
		"requestedBy":   i.RequestedBy,
		"requestedFor":  i.RequestedFor,
		"rolloutType":   i.RolloutType,
		"select":        i.Select,
		"override":      i.Override,
		"durationHours": i.Hours,
	}
}

// Extract derives the Info of one record. definition.name is required.
func Extract(record gjson.Result, opts Options) (Info, error) {
	def, err := driller.Required(record, "definition.name")
	if err != nil {
		return Info{}, fmt.Errorf("build %s: %w", record.Get("id").String(), ErrMissingDefinition)
	}

	info := Info{
		ID:          driller.Optional(record, "id", ""),
		Definition:  driller.Text(def),
		BuildNumber: driller.Optional(record, "buildNumber", NotAvailable),
		RolloutType: driller.Optional(record, "templateParameters.rolloutType", RolloutDefault),
		Select:      driller.Optional(record, "templateParameters.select", SelectDefault),
		Override:    driller.Optional(record, "templateParameters.overrideManagedValidationDuration", RolloutDefault),
		Hours:       driller.Optional(record, "templateParameters.managedValidationDurationInHours", RolloutDefault),
	}

	if driller.Present(record, "requestedBy.displayName") {
		info.RequestedBy = driller.Optional(record, "requestedBy.displayName", "")
	}
	if driller.Present(record, "requestedFor.displayName") {
		info.RequestedFor = driller.Optional(record, "requestedFor.displayName", "")
	}

	info.RawQueueTime = driller.Optional(record, "queueTime", "")
	info.QueueTime, info.Queued = FormatQueueTime(info.RawQueueTime, opts.Location)

	log.Tracef("extracted: id=%s definition=%s queueTime=%s", info.ID, info.Definition, info.RawQueueTime)
	return info, nil
}

// FormatQueueTime renders raw as "YYYY-MM-DD HH:MM UTC" (or in loc with its
// zone abbreviation). The wall clock of the timestamp is kept as written, so an
// offset other than Z is not applied before the UTC label. Unparseable input is
// returned unchanged and empty input becomes "N/A". The parsed time is zero
// unless parsing succeeded.
func FormatQueueTime(raw string, loc *time.Location) (string, time.Time) {
	if raw == "" {
		return NotAvailable, time.Time{}
	}

	t, ok := ParseQueueTime(raw)
	if !ok {
		log.Debugf("queue time not parseable, showing raw: raw=%s", raw)
		return raw, time.Time{}
	}

	if loc == nil {
		return t.Format("2006-01-02 15:04") + " UTC", t
	}
	return t.In(loc).Format("2006-01-02 15:04 MST"), t
}

// ParseQueueTime parses an ISO-8601 timestamp in extended or basic form. A
// trailing Z is UTC and zoneless values are taken as UTC.
func ParseQueueTime(raw string) (time.Time, bool) {
	for _, layout := range queueTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Compare returns the Info of every record in latest whose id is absent from
// prev, in latest's order.
func Compare(prev, latest []gjson.Result, opts Options) ([]Info, error) {
	prevIDs, err := IDs(prev)
	if err != nil {
		return nil, fmt.Errorf("previous snapshot: %w", err)
	}

	fresh, err := SelectNew(latest, prevIDs)
	if err != nil {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}
	log.Debugf("new builds: prev=%d latest=%d new=%d", len(prev), len(latest), len(fresh))

	infos := make([]Info, 0, len(fresh))
	for _, record := range fresh {
		info, err := Extract(record, opts)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
