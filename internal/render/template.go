package render

import (
	"fmt"
	"regexp"
)

// Placeholder inserted where the sync run will write event cards.
const cardsPlaceholder = "\n        <!-- Events will be inserted here by sync script -->\n        "

var (
	cardOpenPattern     = regexp.MustCompile(`(?i)<div\b[^>]*\bclass="[^"]*competition-card[^"]*"[^>]*>`)
	compDatePattern     = regexp.MustCompile(`<div class="comp-date">[^<]*</div>`)
	compTimePattern     = regexp.MustCompile(`(?s)(<div class="comp-time">.*?</svg>\s*)[^<]+`)
	compNamePattern     = regexp.MustCompile(`<h3 class="comp-name">[^<]*</h3>`)
	compLocationPattern = regexp.MustCompile(`<span title="[^"]*">[^<]*</span>`)
	homeSpanPattern     = regexp.MustCompile(`\s*<span class="home-indicator">\(Home\)</span>`)
	compTypePattern     = regexp.MustCompile(`<span class="comp-type[^"]*">[^<]*</span>`)
)

// ExtractTemplates turns a populated schedule page into reusable templates:
// the page shell with the competitions container emptied and the script's
// event count swapped for a placeholder, plus the first event card with its
// fields swapped for placeholders. This is the inverse of Page, run once
// whenever the page's hand-maintained structure changes.
func ExtractTemplates(current string) (page string, card string, err error) {
	openLoc := containerOpenPattern.FindStringIndex(current)
	if openLoc == nil {
		return "", "", fmt.Errorf("no %q container in page", ContainerID)
	}

	closeStart, err := findContainerEnd(current, openLoc[1])
	if err != nil {
		return "", "", err
	}

	contents := current[openLoc[1]:closeStart]

	cardLoc := cardOpenPattern.FindStringIndex(contents)
	if cardLoc == nil {
		return "", "", fmt.Errorf("no competition cards in %q container", ContainerID)
	}
	cardEnd, err := findContainerEnd(contents, cardLoc[1])
	if err != nil {
		return "", "", fmt.Errorf("first competition card: %w", err)
	}
	card = templatizeCard(contents[cardLoc[0] : cardEnd+len("</div>")])

	page = current[:openLoc[1]] + cardsPlaceholder + current[closeStart:]
	page = totalPattern.ReplaceAllString(page, "totalCompetitions = {{TOTAL_COMPETITIONS}}")

	return page, card, nil
}

// templatizeCard swaps a rendered card's field values for placeholder tokens.
func templatizeCard(card string) string {
	card = compDatePattern.ReplaceAllString(card, `<div class="comp-date">{{EVENT_DATE}}</div>`)
	card = compTimePattern.ReplaceAllString(card, "${1}{{EVENT_TIME}}\n            ")
	card = compNamePattern.ReplaceAllString(card, `<h3 class="comp-name">{{EVENT_NAME}}</h3>`)
	card = compLocationPattern.ReplaceAllString(card, `<span title="{{EVENT_LOCATION}}">{{EVENT_LOCATION_DISPLAY}}</span>`)
	card = homeSpanPattern.ReplaceAllString(card, `{{HOME_INDICATOR}}`)
	card = compTypePattern.ReplaceAllString(card, `<span class="comp-type {{TYPE_CLASS}}">{{EVENT_TYPE}}</span>`)
	return card
}
