package event

import "strings"

// Shape identifies which raw source produced a record.
type Shape string

const (
	// ShapeWrapped is the XML-derived attribute tree where each field value
	// is wrapped as {"_text": ...} and element attributes live under
	// "_attributes".
	ShapeWrapped Shape = "wrapped"

	// ShapeFlat is the query-result row shape with plain string values.
	ShapeFlat Shape = "flat"
)

// RawNode is a loosely typed event record as received from an upstream
// feed or query collaborator. It is read-only input; normalization never
// mutates it.
type RawNode map[string]any

// requiredFields must be present and non-empty in every raw record.
var requiredFields = []string{"date", "starttime", "endtime", "title"}

// optionalFields default to "" when absent.
var optionalFields = []string{"description", "location", "room", "category", "school", "owner"}

// DetectShape classifies a raw record. A record is wrapped when any field
// value is a map carrying "_text" or "_attributes"; everything else is
// treated as flat. Shape detection happens once at this boundary so the
// per-field readers never duck-type.
func DetectShape(raw RawNode) Shape {
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := m["_text"]; ok {
			return ShapeWrapped
		}
		if _, ok := m["_attributes"]; ok {
			return ShapeWrapped
		}
	}
	return ShapeFlat
}

// Normalize converts a raw record from either supported shape into an
// Event. It is total for well-formed input and returns a MissingFieldError
// when a required field is absent, empty, or not a string.
func Normalize(raw RawNode) (*Event, error) {
	field := flatField
	if DetectShape(raw) == ShapeWrapped {
		field = wrappedField
	}

	evt := &Event{ID: ExtractID(raw)}
	for _, name := range requiredFields {
		value, ok := field(raw, name)
		if !ok || value == "" {
			return nil, &MissingFieldError{Field: name}
		}
		setField(evt, name, value)
	}
	for _, name := range optionalFields {
		value, _ := field(raw, name)
		setField(evt, name, value)
	}

	return evt, nil
}

// ExtractID pulls the unique identifier out of a raw record. Flat records
// carry it directly under "event_id". Wrapped records derive it from the
// url field: the href attribute when present, the wrapped text otherwise,
// keeping only the trailing path segment. Returns "" when the record has
// no usable identifier, matching the upstream feed behavior.
func ExtractID(raw RawNode) string {
	if DetectShape(raw) == ShapeFlat {
		id, _ := raw["event_id"].(string)
		return id
	}

	link := ""
	switch u := raw["url"].(type) {
	case string:
		link = u
	case map[string]any:
		if attrs, ok := u["_attributes"].(map[string]any); ok {
			link, _ = attrs["href"].(string)
		}
		if link == "" {
			link, _ = u["_text"].(string)
		}
	}

	link = strings.TrimRight(strings.TrimSpace(link), "/")
	if link == "" {
		return ""
	}
	if i := strings.LastIndex(link, "/"); i >= 0 {
		return link[i+1:]
	}
	return link
}

// flatField reads a plain string field from a flat record. The second
// return is false when the field is absent or not a string.
func flatField(raw RawNode, name string) (string, bool) {
	v, ok := raw[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// wrappedField unwraps a {"_text": ...} field from an XML-derived record.
// Mixed feeds occasionally leave simple fields unwrapped, so a plain
// string value is accepted too.
func wrappedField(raw RawNode, name string) (string, bool) {
	v, ok := raw[name]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case map[string]any:
		s, ok := t["_text"].(string)
		return s, ok
	}
	return "", false
}

func setField(evt *Event, name, value string) {
	switch name {
	case "date":
		evt.Date = value
	case "starttime":
		evt.StartTime = value
	case "endtime":
		evt.EndTime = value
	case "title":
		evt.Title = value
	case "description":
		evt.Description = value
	case "location":
		evt.Location = value
	case "room":
		evt.Room = value
	case "category":
		evt.Category = value
	case "school":
		evt.School = value
	case "owner":
		evt.Owner = value
	}
}
