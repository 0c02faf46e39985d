package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campus-events/agenda/internal/calendar"
	"github.com/campus-events/agenda/internal/event"
	"github.com/campus-events/agenda/internal/feed"
	"github.com/campus-events/agenda/internal/filter"
	"github.com/campus-events/agenda/internal/logger"
	"github.com/campus-events/agenda/internal/palette"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagFeed       string
	flagQuery      string
	flagFormat     string
	flagOrder      string
	flagPalette    string
	flagCalName    string
	flagCategories []string
	flagOwners     []string
	flagFrom       string
	flagTo         string
	flagStrict     bool
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Normalize and group campus calendar events",
		Long: `Reads a pre-fetched event payload (calendar-export XML or query-result
JSON), normalizes the records, groups them by calendar date, and renders
the result as text, JSON, or an iCalendar document.`,
		RunE: runAgenda,
	}

	cmd.Flags().StringVar(&flagFeed, "feed", "", "Path to a calendar-export XML payload")
	cmd.Flags().StringVar(&flagQuery, "query", "", "Path to a query-result JSON payload")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json, or ics")
	cmd.Flags().StringVar(&flagOrder, "order", string(event.OrderFirstSeen), "Bucket order: first-seen or date")
	cmd.Flags().StringVar(&flagPalette, "palette", "", "Path to a YAML palette file")
	cmd.Flags().StringVar(&flagCalName, "calendar-name", "Campus Agenda", "Calendar name for ICS output")
	cmd.Flags().StringSliceVar(&flagCategories, "category", nil, "Only include events matching these categories")
	cmd.Flags().StringSliceVar(&flagOwners, "owner", nil, "Only include events matching these owners")
	cmd.Flags().StringVar(&flagFrom, "from", "", "Only include events on or after this date (2006-01-02)")
	cmd.Flags().StringVar(&flagTo, "to", "", "Only include events on or before this date (2006-01-02)")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "Abort the batch on the first malformed record")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runAgenda is the main command logic
func runAgenda(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatICS {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json', or 'ics')", flagFormat)
	}

	order := event.Order(flagOrder)
	if order != event.OrderFirstSeen && order != event.OrderChronological {
		return fmt.Errorf("invalid order: %s (must be 'first-seen' or 'date')", flagOrder)
	}

	nodes, err := loadNodes()
	if err != nil {
		return err
	}
	logger.Debug("parsed payload", logger.Fields{"records": len(nodes)})

	events, skipped, err := normalizeBatch(nodes, flagStrict)
	if err != nil {
		return err
	}

	f, err := buildFilter()
	if err != nil {
		return err
	}
	events = f.Apply(events)

	pal := palette.DefaultPalette()
	if flagPalette != "" {
		pal, err = palette.Load(flagPalette)
		if err != nil {
			return err
		}
	}

	if format == FormatICS {
		out, err := calendar.Export(events, flagCalName)
		if err != nil {
			return fmt.Errorf("exporting calendar: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	result := &OutputResult{
		Buckets:    event.GroupByDateOrdered(events, order),
		EventCount: len(events),
		Skipped:    skipped,
	}
	return WriteOutput(cmd.OutOrStdout(), result, format, pal)
}

// loadNodes reads and decodes the input payload. Exactly one of --feed and
// --query must be given.
func loadNodes() ([]event.RawNode, error) {
	if (flagFeed == "") == (flagQuery == "") {
		return nil, fmt.Errorf("exactly one of --feed or --query is required")
	}

	path, parse := flagFeed, feed.ParseCalendarExport
	if flagQuery != "" {
		path, parse = flagQuery, feed.ParseQueryRows
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening payload: %w", err)
	}
	defer f.Close()

	return parse(f)
}

// normalizeBatch normalizes every record. In strict mode the first
// malformed record aborts the batch; otherwise malformed records are
// skipped with a warning and counted.
func normalizeBatch(nodes []event.RawNode, strict bool) ([]*event.Event, int, error) {
	events := make([]*event.Event, 0, len(nodes))
	skipped := 0

	for i, raw := range nodes {
		evt, err := event.Normalize(raw)
		if err != nil {
			if strict {
				return nil, 0, fmt.Errorf("record %d: %w", i, err)
			}
			logger.Warn("skipping malformed record", logger.Fields{"index": i}, err)
			skipped++
			continue
		}
		events = append(events, evt)
	}

	return events, skipped, nil
}

// buildFilter assembles the filter criteria from flags.
func buildFilter() (*filter.Filter, error) {
	f := &filter.Filter{
		Categories: flagCategories,
		Owners:     flagOwners,
	}

	if flagFrom != "" {
		from, err := event.ParseDate(flagFrom)
		if err != nil {
			return nil, fmt.Errorf("invalid --from: %w", err)
		}
		f.DateFrom = &from
	}
	if flagTo != "" {
		to, err := event.ParseDate(flagTo)
		if err != nil {
			return nil, fmt.Errorf("invalid --to: %w", err)
		}
		f.DateTo = &to
	}

	return f, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
