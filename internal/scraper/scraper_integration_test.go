package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newScheduleSite stands in for wildkitaquatics.com: team page, competitions
// listing, and per-event detail pages reachable by link and by form POST.
func newScheduleSite(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/main/EvanstonGirlsSwimming", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123"})
		fmt.Fprint(w, `
			<html><body>
				<nav>
					<a href="/main/Roster">Roster</a>
					<a href="/main/Competitions">Competitions</a>
				</nav>
			</body></html>
		`)
	})

	mux.HandleFunc("/main/Competitions", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err != nil || c.Value != "abc123" {
			http.Error(w, "no session", http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `
			<html><body><table>
				<tr class="event-row">
					<td>Friday, August 29, 2025</td>
					<td>vs Niles West</td>
					<td><a href="/main/EventInfo?id=1">Info</a></td>
				</tr>
				<tr class="event-row">
					<td>Saturday, September 6, 2025</td>
					<td>Wildkit Relays</td>
					<td>
						<form action="/main/EventInfo" method="post">
							<input type="hidden" name="id" value="2" />
							<input type="submit" value="Go" />
						</form>
					</td>
				</tr>
			</table></body></html>
		`)
	})

	mux.HandleFunc("/main/EventInfo", func(w http.ResponseWriter, r *http.Request) {
		var id string
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "bad form", http.StatusBadRequest)
				return
			}
			id = r.PostFormValue("id")
		} else {
			id = r.URL.Query().Get("id")
		}

		switch id {
		case "1":
			fmt.Fprint(w, `<html><body>
				<p>Dual meet at Niles West</p>
				<p>Start: 4:30 PM</p>
			</body></html>`)
		case "2":
			fmt.Fprint(w, `<html><body>
				<p>Relay meet</p>
				<p>Location: ETHS</p>
				<p>9:00 AM</p>
			</body></html>`)
		default:
			http.NotFound(w, r)
		}
	})

	return httptest.NewServer(mux)
}

func TestFetchSchedule(t *testing.T) {
	server := newScheduleSite(t)
	defer server.Close()

	s := New()
	s.baseURL = server.URL
	s.delay = 0

	events, err := s.FetchSchedule()
	if err != nil {
		t.Fatalf("FetchSchedule failed: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("FetchSchedule returned %d events, want 2", len(events))
	}

	first := events[0]
	if first.Name != "vs Niles West" {
		t.Errorf("Name = %q, want 'vs Niles West'", first.Name)
	}
	if first.Time != "4:30 PM" {
		t.Errorf("Time = %q, want '4:30 PM' from detail page", first.Time)
	}
	if first.Location != "Niles West" {
		t.Errorf("Location = %q, want 'Niles West' from detail page", first.Location)
	}

	second := events[1]
	if second.Time != "9:00 AM" {
		t.Errorf("Time = %q, want '9:00 AM' from form POST detail", second.Time)
	}
	if second.Location != "ETHS" {
		t.Errorf("Location = %q, want 'ETHS' from form POST detail", second.Location)
	}
	if second.Type != "Relay Meet" {
		t.Errorf("Type = %q, want 'Relay Meet' inferred from detail text", second.Type)
	}
}

func TestFetchSchedule_NoCompetitionsLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><a href="/main/Roster">Roster</a></body></html>`)
	}))
	defer server.Close()

	s := New()
	s.baseURL = server.URL
	s.delay = 0

	if _, err := s.FetchSchedule(); err == nil {
		t.Error("FetchSchedule should fail when the competitions link is missing")
	}
}

func TestFetchSchedule_SiteDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := New()
	s.baseURL = server.URL
	s.delay = 0

	if _, err := s.FetchSchedule(); err == nil {
		t.Error("FetchSchedule should fail on a non-200 team page")
	}
}

func TestFetchSchedule_DetailFailureFallsBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/main/EvanstonGirlsSwimming", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><a href="/main/Competitions">Competitions</a></body></html>`)
	})
	mux.HandleFunc("/main/Competitions", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `
			<table><tr class="event-row">
				<td>Friday, August 29, 2025</td>
				<td>vs Niles West</td>
				<td><a href="/gone">Info</a></td>
			</tr></table>
		`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := New()
	s.baseURL = server.URL
	s.delay = 0

	events, err := s.FetchSchedule()
	if err != nil {
		t.Fatalf("a broken detail page must not be fatal: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("FetchSchedule returned %d events, want 1", len(events))
	}
	if events[0].Time != "" || events[0].Location != "" {
		t.Error("detail fields should stay empty when the detail fetch fails")
	}
	if events[0].Name != "vs Niles West" {
		t.Errorf("Name = %q, want the row name to survive", events[0].Name)
	}
}

func TestFetchSchedule_UserAgent(t *testing.T) {
	sawAgent := ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, `<html><body><a href="/main/Competitions">Competitions</a><table></table></body></html>`)
	}))
	defer server.Close()

	s := New()
	s.baseURL = server.URL
	s.delay = 0

	if _, err := s.FetchSchedule(); err != nil {
		t.Fatalf("FetchSchedule failed: %v", err)
	}
	if !strings.Contains(sawAgent, "Mozilla") {
		t.Errorf("User-Agent = %q, want a browser User-Agent", sawAgent)
	}
}
