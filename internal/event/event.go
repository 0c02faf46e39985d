package event

import "fmt"

// Event is the normalized representation of a calendar event. Every Event
// exposes the same field set regardless of which raw source shape produced
// it, so downstream rendering never branches on origin.
type Event struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // calendar date, source format preserved
	StartTime   string `json:"starttime"`
	EndTime     string `json:"endtime"`
	Title       string `json:"title"` // may carry inline markup; rendering concern
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Room        string `json:"room,omitempty"`
	Category    string `json:"category,omitempty"`
	School      string `json:"school,omitempty"`
	Owner       string `json:"owner,omitempty"`
}

// HasDescription reports whether the event carries a description. An empty
// string signals "no description" to the expandable panel downstream.
func (e *Event) HasDescription() bool {
	return e.Description != ""
}

// MissingFieldError reports a required field that is absent, empty, or not
// a string in a raw event record. Required fields are never silently
// defaulted; the caller decides whether to skip the record or abort the
// batch.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("event: missing required field %q", e.Field)
}

// InvalidDateError reports a date or time string that does not parse under
// any of the source formats.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("event: cannot parse date/time %q", e.Input)
}
