// Package feed decodes pre-fetched event payloads into raw records for the
// normalizer. It understands the calendar-export XML document (producing
// wrapped-shape records, the same attribute tree an xml-to-JSON converter
// yields) and query-result JSON rows (producing flat records). Fetching the
// payload is the caller's concern; this package never touches the network.
package feed
