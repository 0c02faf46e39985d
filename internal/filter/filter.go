// Package filter narrows an event batch before grouping.
//
// Criteria can combine category and owner matching (case-insensitive
// substring) with an inclusive date range. An empty filter matches every
// event.
package filter

import (
	"strings"
	"time"

	"github.com/campus-events/agenda/internal/event"
)

// Filter represents event filtering criteria.
type Filter struct {
	// Categories to match against Event.Category (case-insensitive
	// substring match; any one suffices).
	Categories []string

	// Owners to match against Event.Owner (case-insensitive substring
	// match; any one suffices).
	Owners []string

	// Date range, inclusive on both ends.
	DateFrom *time.Time
	DateTo   *time.Time
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return len(f.Categories) == 0 &&
		len(f.Owners) == 0 &&
		f.DateFrom == nil &&
		f.DateTo == nil
}

// Matches reports whether an event passes every active criterion. Events
// whose date does not parse are never excluded by the date range; the
// normalizer already guarantees the field is present, and dropping records
// over an odd date value is the caller's call, not the filter's.
func (f *Filter) Matches(evt *event.Event) bool {
	if f.IsEmpty() {
		return true
	}

	if len(f.Categories) > 0 && !matchAny(evt.Category, f.Categories) {
		return false
	}
	if len(f.Owners) > 0 && !matchAny(evt.Owner, f.Owners) {
		return false
	}

	if f.DateFrom != nil || f.DateTo != nil {
		day, err := event.ParseDate(evt.Date)
		if err != nil {
			return true
		}
		if f.DateFrom != nil && day.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && day.After(*f.DateTo) {
			return false
		}
	}

	return true
}

// Apply returns the events that match, preserving input order.
func (f *Filter) Apply(events []*event.Event) []*event.Event {
	if f.IsEmpty() {
		return events
	}

	matched := make([]*event.Event, 0, len(events))
	for _, evt := range events {
		if f.Matches(evt) {
			matched = append(matched, evt)
		}
	}
	return matched
}

func matchAny(value string, needles []string) bool {
	value = strings.ToLower(value)
	for _, n := range needles {
		if strings.Contains(value, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
