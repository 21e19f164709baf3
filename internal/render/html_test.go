package render

import (
	"os"
	"strings"
	"testing"

	"github.com/paulsmith/wildkit-sync/internal/event"
)

func loadPage(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/index.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func normalizedEvents(t *testing.T) []*event.Event {
	t.Helper()
	evts := []*event.Event{
		event.NewEvent("vs Niles West", "Wed, Aug 13", "", ""),
		event.NewEvent("New Trier Invitational", "Saturday, September 20, 2025", "", ""),
	}
	evts[0].Location = "ETHS"
	evts[1].Location = "New Trier"
	evts[1].Time = "9:00 AM"
	evts[1].Type = event.TypeInvitational
	for _, evt := range evts {
		evt.Normalize(2025)
	}
	return evts
}

func TestPage(t *testing.T) {
	evts := normalizedEvents(t)

	page, err := Page(evts, loadPage(t))
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}

	if got := strings.Count(page, `class="competition-card"`); got != len(evts) {
		t.Errorf("page has %d cards, want %d", got, len(evts))
	}
	if !strings.Contains(page, "totalCompetitions = 2") {
		t.Error("page should declare totalCompetitions = 2")
	}

	// Home event renders the indicator; away event does not.
	if !strings.Contains(page, `<span class="home-indicator">(Home)</span>`) {
		t.Error("home event should render the home indicator")
	}
	if got := strings.Count(page, "home-indicator"); got != 1 {
		t.Errorf("page has %d home indicators, want 1", got)
	}

	// Default time substitution for the event scraped without a time.
	if !strings.Contains(page, "5:00 PM") {
		t.Error("event without a time should render the default 5:00 PM")
	}

	// Yearless date resolved against the season year and reformatted.
	if !strings.Contains(page, "Wednesday, August 13, 2025") {
		t.Error("page should render the resolved date for 'Wed, Aug 13'")
	}

	// Category CSS class mapping.
	if !strings.Contains(page, `class="comp-type invitational"`) {
		t.Error("invitational should carry its CSS class")
	}
	if !strings.Contains(page, `<span class="comp-type">Dual Meet</span>`) {
		t.Error("dual meets use the unadorned type style")
	}

	// The rest of the document survives untouched.
	if !strings.Contains(page, "function toggleView()") {
		t.Error("page script should survive rendering")
	}
	if !strings.Contains(page, "<title>ETHS Girls Swimming Schedule</title>") {
		t.Error("page head should survive rendering")
	}
}

func TestPage_Idempotent(t *testing.T) {
	evts := normalizedEvents(t)
	current := loadPage(t)

	first, err := Page(evts, current)
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	second, err := Page(evts, first)
	if err != nil {
		t.Fatalf("Page failed on its own output: %v", err)
	}

	if first != second {
		t.Error("rendering an unchanged event list should be byte-identical")
	}
}

func TestPage_EmptyList(t *testing.T) {
	page, err := Page(nil, loadPage(t))
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}

	if strings.Contains(page, "competition-card") {
		t.Error("empty list should render zero cards")
	}
	if !strings.Contains(page, "totalCompetitions = 0") {
		t.Error("empty list should declare totalCompetitions = 0")
	}
	if !strings.Contains(page, `id="competitions-list"`) {
		t.Error("the container should survive an empty render")
	}
	if !strings.Contains(page, "</html>") {
		t.Error("the document structure should survive an empty render")
	}
}

func TestPage_MissingContainer(t *testing.T) {
	_, err := Page(normalizedEvents(t), "<html><body><p>wrong page</p></body></html>")
	if err == nil {
		t.Error("Page should fail when the container is missing")
	}
}

func TestPage_UnparseableDateRendersRawText(t *testing.T) {
	evt := event.NewEvent("Mystery Meet", "sometime soon", "", "")
	evt.Normalize(2025)

	page, err := Page([]*event.Event{evt}, loadPage(t))
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}

	if !strings.Contains(page, `<div class="comp-date">sometime soon</div>`) {
		t.Error("unparseable date should fall back to the raw scraped text")
	}
}

func TestPage_EscapesMarkup(t *testing.T) {
	evt := event.NewEvent(`vs <b>Niles "West"</b>`, "Friday, August 29, 2025", "", "")
	evt.Normalize(2025)

	page, err := Page([]*event.Event{evt}, loadPage(t))
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}

	if strings.Contains(page, "<b>Niles") {
		t.Error("scraped markup should be escaped in the card")
	}
}
