package render

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/paulsmith/wildkit-sync/internal/event"
)

// ContainerID is the id of the div the event cards live in.
const ContainerID = "competitions-list"

var (
	containerOpenPattern = regexp.MustCompile(`(?i)<div\b[^>]*\bid="` + ContainerID + `"[^>]*>`)
	divTokenPattern      = regexp.MustCompile(`(?i)<div\b|</div>`)
	totalPattern         = regexp.MustCompile(`totalCompetitions\s*=\s*\d+`)
)

// displayDateLayout is how parsed dates render on the page.
const displayDateLayout = "Monday, January 2, 2006"

// typeClasses maps category labels to the page's CSS classes. Dual meets
// use the unadorned card style.
var typeClasses = map[string]string{
	event.TypeInvitational: "invitational",
	event.TypeRelayMeet:    "relay",
	event.TypeConference:   "conference",
	event.TypeChampionship: "championship",
	event.TypeMeeting:      "meeting",
	event.TypeSpecial:      "special",
}

var cardTemplate = template.Must(template.New("card").Parse(`
        <div class="competition-card">
            <div class="comp-date">{{.Date}}</div>
            <div class="comp-time">
                <svg width="16" height="16" fill="currentColor" viewBox="0 0 20 20">
                    <path fill-rule="evenodd" d="M10 18a8 8 0 100-16 8 8 0 000 16zm1-12a1 1 0 10-2 0v4a1 1 0 00.293.707l2.828 2.829a1 1 0 101.415-1.415L11 9.586V6z" clip-rule="evenodd"></path>
                </svg>
                {{.Time}}
            </div>
            <h3 class="comp-name">{{.Name}}</h3>
            <div class="comp-location">
                <svg width="16" height="16" fill="currentColor" viewBox="0 0 20 20">
                    <path fill-rule="evenodd" d="M5.05 4.05a7 7 0 119.9 9.9L10 18.9l-4.95-4.95a7 7 0 010-9.9zM10 11a2 2 0 100-4 2 2 0 000 4z" clip-rule="evenodd"></path>
                </svg>
                <span title="{{.Location}}">{{.Location}}</span>{{if .Home}}
                <span class="home-indicator">(Home)</span>{{end}}
            </div>
            <span class="comp-type{{if .TypeClass}} {{.TypeClass}}{{end}}">{{.Type}}</span>
        </div>
`))

// cardData is the template context for one competition card.
type cardData struct {
	Date      string
	Time      string
	Name      string
	Location  string
	Home      bool
	Type      string
	TypeClass string
}

// Page rebuilds the schedule page: the competitions container's contents are
// replaced with one card per event and the inline script's event count is
// updated. The input document is returned unmodified inside the result
// everywhere else. A missing container is an error so the caller can leave
// the existing file untouched.
func Page(events []*event.Event, current string) (string, error) {
	openLoc := containerOpenPattern.FindStringIndex(current)
	if openLoc == nil {
		return "", fmt.Errorf("no %q container in page", ContainerID)
	}

	closeStart, err := findContainerEnd(current, openLoc[1])
	if err != nil {
		return "", err
	}

	cards, err := renderCards(events)
	if err != nil {
		return "", err
	}

	var page strings.Builder
	page.WriteString(current[:openLoc[1]])
	page.WriteString(cards)
	page.WriteString("    ")
	page.WriteString(current[closeStart:])

	return totalPattern.ReplaceAllString(page.String(),
		fmt.Sprintf("totalCompetitions = %d", len(events))), nil
}

// findContainerEnd locates the container's closing tag by tracking div
// nesting from just past the opening tag.
func findContainerEnd(doc string, from int) (int, error) {
	depth := 1
	for _, loc := range divTokenPattern.FindAllStringIndex(doc[from:], -1) {
		if strings.HasPrefix(doc[from+loc[0]:], "</") {
			depth--
			if depth == 0 {
				return from + loc[0], nil
			}
		} else {
			depth++
		}
	}
	return 0, fmt.Errorf("unterminated %q container", ContainerID)
}

// renderCards renders one competition card per event.
func renderCards(events []*event.Event) (string, error) {
	var out strings.Builder
	for _, evt := range events {
		data := cardData{
			Date:      displayDate(evt),
			Time:      evt.Time,
			Name:      evt.Name,
			Location:  evt.Location,
			Home:      evt.Home,
			Type:      evt.Type,
			TypeClass: typeClasses[evt.Type],
		}
		if err := cardTemplate.Execute(&out, data); err != nil {
			return "", fmt.Errorf("rendering card for %q: %w", evt.Name, err)
		}
	}
	return out.String(), nil
}

// displayDate formats the event date for the card, falling back to the raw
// scraped text when the date never parsed.
func displayDate(evt *event.Event) string {
	if evt.Date.IsZero() {
		return evt.DateText
	}
	return evt.Date.Format(displayDateLayout)
}
