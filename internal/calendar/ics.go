package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/paulsmith/wildkit-sync/internal/event"
)

const (
	ProdID       = "-//paulsmith.github.io//ETHS Girls Swimming//EN"
	CalendarName = "ETHS Girls Swimming"
	uidDomain    = "paulsmith.github.io"

	// Meets block out two hours on the calendar.
	eventDuration = 2 * time.Hour

	// Meets without a parseable time start at the default 5:00 PM.
	fallbackHour = 17
)

// central is the pool's timezone. Event times on the schedule are wall-clock
// Central; output datetimes are UTC-normalized.
var central = func() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// Generate serializes the season schedule as an iCalendar document.
// stamp is the generation timestamp recorded on every component, so two
// calls with the same arguments produce byte-identical output.
func Generate(events []*event.Event, stamp time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", ProdID))
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", CalendarName))

	for i, evt := range events {
		writeEvent(&ics, evt, i, stamp)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// writeEvent serializes one VEVENT component. The UID is a synthetic per-run
// identifier derived from the event's position in the list.
func writeEvent(ics *strings.Builder, evt *event.Event, index int, stamp time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	ics.WriteString(fmt.Sprintf("UID:eths-girls-swim-%d@%s\r\n", index, uidDomain))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))

	start := startTime(evt, stamp)
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(start.Add(eventDuration))))

	ics.WriteString(fmt.Sprintf("CREATED:%s\r\n", formatICSTime(stamp)))
	ics.WriteString(fmt.Sprintf("LAST-MODIFIED:%s\r\n", formatICSTime(stamp)))
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(CalendarName+" - "+evt.Name)))
	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(evt.Location)))
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(CalendarName+" "+evt.Type)))

	ics.WriteString("END:VEVENT\r\n")
}

// startTime resolves an event's start instant in Central time. Events whose
// date never parsed fall back to the generation day; times that never parsed
// fall back to 5:00 PM.
func startTime(evt *event.Event, stamp time.Time) time.Time {
	day := evt.Date
	if day.IsZero() {
		day = stamp.In(central)
	}

	hour, minute, ok := event.ParseClock(evt.Time)
	if !ok {
		hour, minute = fallbackHour, 0
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, central)
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters per RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
