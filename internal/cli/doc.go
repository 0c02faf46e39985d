// Package cli implements the command-line interface for agenda.
//
// The cli package provides the Cobra-based CLI that reads a pre-fetched
// event payload (calendar-export XML or query-result JSON), normalizes and
// filters the records, groups them by date, and writes the result as text,
// JSON, or an iCalendar document. It is the caller that decides what to do
// with malformed records: skipped with a warning by default, fatal with
// --strict.
package cli
