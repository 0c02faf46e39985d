package event

import (
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		clock    string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{
			name:     "24-hour with seconds",
			clock:    "15:30:00",
			wantHour: 15,
			wantMin:  30,
		},
		{
			name:     "24-hour without seconds",
			clock:    "09:05",
			wantHour: 9,
			wantMin:  5,
		},
		{
			name:     "12-hour zero padded",
			clock:    "03:30 PM",
			wantHour: 15,
			wantMin:  30,
		},
		{
			name:     "12-hour single digit hour",
			clock:    "3:30 PM",
			wantHour: 15,
			wantMin:  30,
		},
		{
			name:     "Midnight",
			clock:    "12:00 AM",
			wantHour: 0,
			wantMin:  0,
		},
		{
			name:    "Invalid",
			clock:   "not-a-time",
			wantErr: true,
		},
		{
			name:    "Empty",
			clock:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.clock)
			if tt.wantErr {
				var invalid *InvalidDateError
				if !errors.As(err, &invalid) {
					t.Fatalf("ParseClock(%q) error = %v, want *InvalidDateError", tt.clock, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) error = %v", tt.clock, err)
			}
			if got.Hour() != tt.wantHour || got.Minute() != tt.wantMin {
				t.Errorf("ParseClock(%q) = %02d:%02d, want %02d:%02d",
					tt.clock, got.Hour(), got.Minute(), tt.wantHour, tt.wantMin)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2020-05-01")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Year() != 2020 || got.Month() != time.May || got.Day() != 1 {
		t.Errorf("ParseDate() = %v, want 2020-05-01", got)
	}

	if _, err := ParseDate("05/01/2020"); err == nil {
		t.Error("ParseDate(\"05/01/2020\") error = nil, want *InvalidDateError")
	}
}

func TestFormatMonthDay(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    string
		wantErr bool
	}{
		{name: "May first", date: "2020-05-01", want: "05.01"},
		{name: "December thirty-first", date: "2020-12-31", want: "12.31"},
		{name: "Invalid", date: "garbage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatMonthDay(tt.date)
			if tt.wantErr {
				var invalid *InvalidDateError
				if !errors.As(err, &invalid) {
					t.Fatalf("FormatMonthDay(%q) error = %v, want *InvalidDateError", tt.date, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatMonthDay(%q) error = %v", tt.date, err)
			}
			if got != tt.want {
				t.Errorf("FormatMonthDay(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		name    string
		clock   string
		want    string
		wantErr bool
	}{
		{name: "Afternoon feed time", clock: "15:30:00", want: "03:30 PM"},
		{name: "Morning feed time", clock: "09:00:00", want: "09:00 AM"},
		{name: "Already 12-hour", clock: "3:30 PM", want: "03:30 PM"},
		{name: "Invalid", clock: "not-a-time", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatClockTime(tt.clock)
			if tt.wantErr {
				var invalid *InvalidDateError
				if !errors.As(err, &invalid) {
					t.Fatalf("FormatClockTime(%q) error = %v, want *InvalidDateError", tt.clock, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatClockTime(%q) error = %v", tt.clock, err)
			}
			if got != tt.want {
				t.Errorf("FormatClockTime(%q) = %q, want %q", tt.clock, got, tt.want)
			}
		})
	}
}

func TestFormatDayMonthDate(t *testing.T) {
	got, err := FormatDayMonthDate("2020-05-01")
	if err != nil {
		t.Fatalf("FormatDayMonthDate() error = %v", err)
	}
	if got != "Fri, May 01" {
		t.Errorf("FormatDayMonthDate() = %q, want %q", got, "Fri, May 01")
	}
}
