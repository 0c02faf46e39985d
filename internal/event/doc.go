// Package event implements the normalization and grouping core of the
// campus agenda: converting loosely typed feed records into flat Event
// values, grouping them into per-date buckets for day-by-day rendering,
// and formatting the date and time labels those views display.
//
// All operations are pure functions over their inputs. The package holds
// no state and is safe to call concurrently.
package event
