package event

import (
	"regexp"
	"strings"
	"time"
)

// weekdayPrefix matches a leading weekday such as "Friday, " or "Wed, ".
// The site is sloppy about weekday correctness, so the prefix is stripped
// rather than validated.
var weekdayPrefix = regexp.MustCompile(`(?i)^(mon|tue(s)?|wed(nes)?|thu(rs)?|fri|sat(ur)?|sun)(day)?\.?,?\s+`)

// dated layouts carry their own year; yearless layouts resolve against the
// season year.
var datedLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"1/2/2006",
	"1/2/06",
}

var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
	"1/2",
}

// ParseDate parses scraped date text into a calendar date. Layouts without a
// year resolve against seasonYear. Returns the zero time if nothing matches.
func ParseDate(dateText string, seasonYear int) time.Time {
	dateText = weekdayPrefix.ReplaceAllString(strings.TrimSpace(dateText), "")
	if dateText == "" {
		return time.Time{}
	}

	for _, layout := range datedLayouts {
		if t, err := time.Parse(layout, dateText); err == nil {
			return t
		}
	}

	for _, layout := range yearlessLayouts {
		if t, err := time.Parse(layout, dateText); err == nil {
			return time.Date(seasonYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	return time.Time{}
}

// ParseClock parses a time-of-day string such as "5:00 PM". Reports ok=false
// when the text is not a clock time.
func ParseClock(timeText string) (hour, minute int, ok bool) {
	timeText = strings.ToUpper(strings.TrimSpace(timeText))
	for _, layout := range []string{"3:04 PM", "3:04PM", "15:04"} {
		if t, err := time.Parse(layout, timeText); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}

// SeasonYear returns the year that schedule dates without a year belong to.
// The girls swim season runs entirely inside one calendar year.
func SeasonYear(now time.Time) int {
	return now.Year()
}
