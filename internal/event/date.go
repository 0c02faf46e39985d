package event

import "time"

// SourceDateLayout is the calendar date format the feed emits.
const SourceDateLayout = "2006-01-02"

// clockLayouts are the clock-time formats seen in the wild: 24-hour feed
// values, with and without seconds, and the 12-hour labels the query layer
// already carries.
var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"03:04 PM",
	"3:04 PM",
}

// ParseDate parses a source-format calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(SourceDateLayout, date)
	if err != nil {
		return time.Time{}, &InvalidDateError{Input: date}
	}
	return t, nil
}

// ParseClock parses a clock-time string, trying each supported layout in
// turn.
func ParseClock(clock string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, clock); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &InvalidDateError{Input: clock}
}

// FormatMonthDay renders a date as "MM.DD", the compact badge label shown
// next to each list item.
func FormatMonthDay(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format("01.02"), nil
}

// FormatClockTime renders a clock time as a zero-padded 12-hour label,
// e.g. "03:30 PM".
func FormatClockTime(clock string) (string, error) {
	t, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return t.Format("03:04 PM"), nil
}

// FormatDayMonthDate renders a date as the day-level group header,
// e.g. "Fri, May 01".
func FormatDayMonthDate(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format("Mon, Jan 02"), nil
}
