package event

import (
	"strings"
	"time"
)

// Category labels for scheduled competitions.
const (
	TypeDualMeet     = "Dual Meet"
	TypeInvitational = "Invitational"
	TypeRelayMeet    = "Relay Meet"
	TypeConference   = "Conference"
	TypeChampionship = "Championship"
	TypeMeeting      = "Meeting"
	TypeSpecial      = "Special Event"
)

// Defaults applied when the schedule page omits a field.
const (
	DefaultTime     = "5:00 PM"
	DefaultLocation = "TBD"
)

// HomeMarker identifies the home pool in a location string.
const HomeMarker = "ETHS"

// Event represents one scheduled competition on the season calendar.
type Event struct {
	Name      string    `json:"name"`
	DateText  string    `json:"date"`
	Date      time.Time `json:"-"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Type      string    `json:"type"`
	Home      bool      `json:"home"`
	Raw       string    `json:"raw,omitempty"`
	SourceURL string    `json:"source_url,omitempty"`
}

// NewEvent creates an Event draft from the fields a schedule row yields.
// Missing fields stay empty until Normalize fills them in.
func NewEvent(name, dateText, raw, sourceURL string) *Event {
	if name == "" {
		name = "Unknown Event"
	}
	return &Event{
		Name:      name,
		DateText:  dateText,
		Raw:       raw,
		SourceURL: sourceURL,
	}
}

// Normalize fills defaulted fields, resolves the scraped date text against
// the season year, and derives the home flag from the location.
func (e *Event) Normalize(seasonYear int) {
	if strings.TrimSpace(e.Time) == "" {
		e.Time = DefaultTime
	}
	if strings.TrimSpace(e.Location) == "" {
		e.Location = DefaultLocation
	}
	if strings.TrimSpace(e.Type) == "" {
		e.Type = InferType(e.Name)
	}
	e.Date = ParseDate(e.DateText, seasonYear)
	e.Home = strings.Contains(e.Location, HomeMarker)
}

// InferType determines the competition category from free text.
func InferType(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "invitational"), strings.Contains(lower, "invite"):
		return TypeInvitational
	case strings.Contains(lower, "relay"):
		return TypeRelayMeet
	case strings.Contains(lower, "conference"):
		return TypeConference
	case strings.Contains(lower, "sectional"), strings.Contains(lower, "state"):
		return TypeChampionship
	case strings.Contains(lower, "meeting"):
		return TypeMeeting
	default:
		return TypeDualMeet
	}
}
