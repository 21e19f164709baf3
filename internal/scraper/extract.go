package scraper

import (
	"regexp"
	"strings"
)

// Selector and label heuristics for the schedule markup. The site's layout
// is undocumented, so these are deliberately loose.
var (
	eventClassPattern       = regexp.MustCompile(`(?i)(event|competition|game|match)`)
	infoLinkPattern         = regexp.MustCompile(`(?i)^(info|details?)$`)
	competitionsTextPattern = regexp.MustCompile(`(?i)competitions?`)
	competitionsHrefPattern = regexp.MustCompile(`(?i)compet`)
)

// Date patterns in descending order of specificity:
// "Friday, August 29, 2025", "August 29, 2025", "8/29/2025", "Wed, Aug 13".
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\w+day,?\s+\w+\s+\d{1,2},?\s+\d{4}\b`),
	regexp.MustCompile(`\b\w+\s+\d{1,2},?\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(?:(?:mon|tue(?:s)?|wed(?:nes)?|thu(?:rs)?|fri|sat(?:ur)?|sun)(?:day)?,?\s+)?(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}\b`),
}

var (
	timePattern     = regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(AM|PM)?\b`)
	notANamePattern = regexp.MustCompile(`(?i)\d{1,2}:\d{2}|\d{1,2}/\d{1,2}/\d{4}|\w+day`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Location patterns: "at Niles West", "@ New Trier", "Location: ETHS".
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bat\s+([^,\n]+)`),
	regexp.MustCompile(`@\s*([^,\n]+)`),
	regexp.MustCompile(`(?i)location:\s*([^,\n]+)`),
}

// extractDate finds the first date-looking substring in row text.
// Returns "" when the text holds no date.
func extractDate(text string) string {
	for _, pattern := range datePatterns {
		if match := pattern.FindString(text); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

// extractEventName picks the opponent/event name out of row text: the first
// short free-text line that is not a date, time, or weekday.
func extractEventName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || notANamePattern.MatchString(line) {
			continue
		}
		if len(line) > 3 && len(line) < 50 {
			return line
		}
	}
	return "Unknown Event"
}

// extractTime finds the first clock time in detail page text.
func extractTime(text string) string {
	return strings.TrimSpace(timePattern.FindString(text))
}

// extractLocation finds a venue in detail page text.
func extractLocation(text string) string {
	for _, pattern := range locationPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// collapseWhitespace flattens row text for the raw field.
func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}
