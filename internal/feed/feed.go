package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/campus-events/agenda/internal/event"
)

// ParseCalendarExport parses an already-fetched calendar-export XML payload
// into wrapped-shape raw records, one per <event> element. Field values are
// wrapped as {"_text": ...} with element attributes under "_attributes".
// Description bodies are stripped of markup here, at the ingest boundary,
// so the normalizer stays a pure field extractor. Records with a duplicate
// identifier are dropped; first occurrence wins.
func ParseCalendarExport(r io.Reader) ([]event.RawNode, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar export: %w", err)
	}

	nodes := make([]event.RawNode, 0)
	seen := make(map[string]bool)

	doc.Find("event").Each(func(i int, sel *goquery.Selection) {
		raw := event.RawNode{}

		sel.Children().Each(func(j int, child *goquery.Selection) {
			name := goquery.NodeName(child)
			value := strings.TrimSpace(child.Text())
			if name == "description" {
				value = StripMarkup(value)
			}

			wrapped := map[string]any{"_text": value}
			if attrs := child.Get(0).Attr; len(attrs) > 0 {
				m := make(map[string]any, len(attrs))
				for _, a := range attrs {
					m[a.Key] = a.Val
				}
				wrapped["_attributes"] = m
			}
			raw[name] = wrapped
		})

		if len(raw) == 0 {
			return
		}
		if id := event.ExtractID(raw); id != "" {
			if seen[id] {
				return
			}
			seen[id] = true
		}
		nodes = append(nodes, raw)
	})

	return nodes, nil
}

// ParseQueryRows decodes a JSON array of flat query-result rows.
func ParseQueryRows(r io.Reader) ([]event.RawNode, error) {
	var rows []map[string]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding query rows: %w", err)
	}

	nodes := make([]event.RawNode, 0, len(rows))
	for _, row := range rows {
		nodes = append(nodes, event.RawNode(row))
	}
	return nodes, nil
}

// StripMarkup returns the plain text of an HTML fragment. Feed descriptions
// arrive entity-escaped, so after decoding they still carry inline tags.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
