// Package calendar exports normalized events as an iCalendar document so
// a listing can be subscribed to from any calendar client.
package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/campus-events/agenda/internal/event"
	"github.com/campus-events/agenda/internal/feed"
)

const prodID = "-//campus-agenda//agenda//EN"

// Export renders events as an iCalendar document. Events keep their feed
// identity through the UID, so re-exports update rather than duplicate
// entries in a subscribing client. Returns an InvalidDateError when an
// event's date or start time does not parse.
func Export(events []*event.Event, calName string) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)
	if calName != "" {
		cal.SetName(calName)
		cal.SetXWRCalName(calName)
	}

	now := time.Now().UTC()
	for _, evt := range events {
		start, end, err := eventWindow(evt)
		if err != nil {
			return "", err
		}

		ve := cal.AddEvent(uid(evt))
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		ve.SetEndAt(end)
		ve.SetSummary(feed.StripMarkup(evt.Title))
		if evt.Location != "" {
			ve.SetLocation(location(evt))
		}
		if evt.Description != "" {
			ve.SetDescription(evt.Description)
		}
		if evt.Category != "" {
			ve.SetProperty(ics.ComponentPropertyCategories, evt.Category)
		}
	}

	return cal.Serialize(), nil
}

// eventWindow resolves the concrete start/end instants for an event. An
// event without a parseable end time runs one hour, the same fallback the
// feed applies upstream.
func eventWindow(evt *event.Event) (time.Time, time.Time, error) {
	day, err := event.ParseDate(evt.Date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	startClock, err := event.ParseClock(evt.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, time.UTC)

	end := start.Add(time.Hour)
	if endClock, err := event.ParseClock(evt.EndTime); err == nil {
		candidate := time.Date(day.Year(), day.Month(), day.Day(),
			endClock.Hour(), endClock.Minute(), 0, 0, time.UTC)
		if candidate.After(start) {
			end = candidate
		}
	}

	return start, end, nil
}

func uid(evt *event.Event) string {
	if evt.ID != "" {
		return fmt.Sprintf("%s@campus-agenda", evt.ID)
	}
	return fmt.Sprintf("%s-%s@campus-agenda", evt.Date, evt.StartTime)
}

func location(evt *event.Event) string {
	if evt.Room != "" {
		return fmt.Sprintf("%s, Room %s", evt.Location, evt.Room)
	}
	return evt.Location
}
