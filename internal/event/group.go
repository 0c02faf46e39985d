package event

import "sort"

// DateBucket collects the events sharing one calendar date. DateLabel is
// the distinct date value as it appears in the input; turning it into a
// display header is the formatter's job.
type DateBucket struct {
	DateLabel string   `json:"date"`
	Events    []*Event `json:"events"`
}

// Order selects how GroupByDateOrdered arranges buckets.
type Order string

const (
	// OrderFirstSeen keeps buckets in order of first appearance in the
	// input. The upstream UI renders groups in list order as received, so
	// this is the default.
	OrderFirstSeen Order = "first-seen"

	// OrderChronological sorts buckets by parsed calendar date, buckets
	// with unparseable dates last.
	OrderChronological Order = "date"
)

// GroupByDate groups events by their date value in a single pass. Buckets
// appear in order of first appearance and each bucket preserves the
// relative input order of its events. Empty input yields an empty, non-nil
// slice.
func GroupByDate(events []*Event) []*DateBucket {
	buckets := make([]*DateBucket, 0, len(events))
	index := make(map[string]*DateBucket, len(events))

	for _, evt := range events {
		b, ok := index[evt.Date]
		if !ok {
			b = &DateBucket{DateLabel: evt.Date}
			index[evt.Date] = b
			buckets = append(buckets, b)
		}
		b.Events = append(b.Events, evt)
	}

	return buckets
}

// GroupByDateOrdered groups like GroupByDate, then arranges the buckets
// according to order.
func GroupByDateOrdered(events []*Event, order Order) []*DateBucket {
	buckets := GroupByDate(events)
	if order != OrderChronological {
		return buckets
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		di, erri := ParseDate(buckets[i].DateLabel)
		dj, errj := ParseDate(buckets[j].DateLabel)
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return di.Before(dj)
	})

	return buckets
}
