package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/campus-events/agenda/internal/event"
	"github.com/campus-events/agenda/internal/palette"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Buckets     []*event.DateBucket `json:"buckets"`
	EventCount  int                 `json:"event_count"`
	Skipped     int                 `json:"skipped,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, pal *palette.Palette) error {
	if result.GeneratedAt.IsZero() {
		result.GeneratedAt = time.Now().UTC()
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, pal)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text, one section per date
// bucket in the order the grouping produced them.
func writeText(w io.Writer, result *OutputResult, pal *palette.Palette) error {
	if result.EventCount == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	for _, bucket := range result.Buckets {
		header := bucket.DateLabel
		if label, err := event.FormatDayMonthDate(bucket.DateLabel); err == nil {
			header = label
		}

		fmt.Fprintf(w, "\n%s (%d event%s):\n", header, len(bucket.Events), pluralize(len(bucket.Events)))

		for _, evt := range bucket.Events {
			fmt.Fprintf(w, "  %s  %s", timeRange(evt), evt.Title)
			if evt.Location != "" {
				fmt.Fprintf(w, " — %s", evt.Location)
			}
			if evt.Category != "" && pal != nil {
				fmt.Fprintf(w, " [%s]", pal.CategoryColor(evt.Category))
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d event%s across %d day%s\n",
		result.EventCount, pluralize(result.EventCount),
		len(result.Buckets), pluralize(len(result.Buckets)))
	if result.Skipped > 0 {
		fmt.Fprintf(w, "Skipped %d malformed record%s\n", result.Skipped, pluralize(result.Skipped))
	}

	return nil
}

// timeRange renders the "03:00 PM – 04:00 PM" column, falling back to the
// raw strings when a time does not parse.
func timeRange(evt *event.Event) string {
	start := evt.StartTime
	if s, err := event.FormatClockTime(evt.StartTime); err == nil {
		start = s
	}
	end := evt.EndTime
	if e, err := event.FormatClockTime(evt.EndTime); err == nil {
		end = e
	}
	if end == "" {
		return start
	}
	return fmt.Sprintf("%s – %s", start, end)
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
