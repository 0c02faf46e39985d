package event

import "testing"

func TestGroupByDate(t *testing.T) {
	a := &Event{Date: "2020-05-01", Title: "A"}
	b := &Event{Date: "2020-05-02", Title: "B"}
	c := &Event{Date: "2020-05-01", Title: "C"}

	buckets := GroupByDate([]*Event{a, b, c})

	if len(buckets) != 2 {
		t.Fatalf("len(buckets) = %d, want 2", len(buckets))
	}

	// First-seen order: 2020-05-01 appeared first in the input.
	if buckets[0].DateLabel != "2020-05-01" {
		t.Errorf("buckets[0].DateLabel = %q, want %q", buckets[0].DateLabel, "2020-05-01")
	}
	if buckets[1].DateLabel != "2020-05-02" {
		t.Errorf("buckets[1].DateLabel = %q, want %q", buckets[1].DateLabel, "2020-05-02")
	}

	// Relative input order within a bucket is preserved.
	if len(buckets[0].Events) != 2 || buckets[0].Events[0] != a || buckets[0].Events[1] != c {
		t.Errorf("buckets[0].Events = %v, want [A C]", titles(buckets[0].Events))
	}
	if len(buckets[1].Events) != 1 || buckets[1].Events[0] != b {
		t.Errorf("buckets[1].Events = %v, want [B]", titles(buckets[1].Events))
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	buckets := GroupByDate(nil)
	if buckets == nil {
		t.Fatal("GroupByDate(nil) = nil, want empty slice")
	}
	if len(buckets) != 0 {
		t.Errorf("len(buckets) = %d, want 0", len(buckets))
	}
}

func TestGroupByDate_Partition(t *testing.T) {
	events := []*Event{
		{Date: "2020-05-03", Title: "A"},
		{Date: "2020-05-01", Title: "B"},
		{Date: "2020-05-03", Title: "C"},
		{Date: "2020-05-02", Title: "D"},
		{Date: "2020-05-01", Title: "E"},
	}

	buckets := GroupByDate(events)

	distinct := map[string]bool{}
	for _, evt := range events {
		distinct[evt.Date] = true
	}
	if len(buckets) != len(distinct) {
		t.Errorf("len(buckets) = %d, want %d distinct dates", len(buckets), len(distinct))
	}

	// The union of all buckets is exactly the input.
	total := 0
	for _, b := range buckets {
		total += len(b.Events)
		for _, evt := range b.Events {
			if evt.Date != b.DateLabel {
				t.Errorf("event %q in bucket %q has date %q", evt.Title, b.DateLabel, evt.Date)
			}
		}
	}
	if total != len(events) {
		t.Errorf("total bucketed events = %d, want %d", total, len(events))
	}
}

func TestGroupByDateOrdered(t *testing.T) {
	events := []*Event{
		{Date: "2020-05-03", Title: "A"},
		{Date: "not-a-date", Title: "B"},
		{Date: "2020-05-01", Title: "C"},
	}

	tests := []struct {
		name  string
		order Order
		want  []string
	}{
		{
			name:  "First seen keeps input order",
			order: OrderFirstSeen,
			want:  []string{"2020-05-03", "not-a-date", "2020-05-01"},
		},
		{
			name:  "Chronological sorts parseable dates, unparseable last",
			order: OrderChronological,
			want:  []string{"2020-05-01", "2020-05-03", "not-a-date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := GroupByDateOrdered(events, tt.order)
			if len(buckets) != len(tt.want) {
				t.Fatalf("len(buckets) = %d, want %d", len(buckets), len(tt.want))
			}
			for i, label := range tt.want {
				if buckets[i].DateLabel != label {
					t.Errorf("buckets[%d].DateLabel = %q, want %q", i, buckets[i].DateLabel, label)
				}
			}
		})
	}
}

func titles(events []*Event) []string {
	out := make([]string, 0, len(events))
	for _, evt := range events {
		out = append(out, evt.Title)
	}
	return out
}
