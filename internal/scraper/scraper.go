package scraper

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/paulsmith/wildkit-sync/internal/event"
	"github.com/paulsmith/wildkit-sync/internal/logger"
)

const (
	BaseURL  = "https://wildkitaquatics.com"
	TeamPath = "/main/EvanstonGirlsSwimming"
	// The site serves an empty shell to unknown agents, so present a
	// plain browser User-Agent.
	UserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	Timeout      = 30 * time.Second
	RequestDelay = 500 * time.Millisecond
)

// Scraper fetches and parses the team schedule from wildkitaquatics.com.
// A cookie jar carries the site's session across the navigation flow.
type Scraper struct {
	client  *http.Client
	baseURL string
	delay   time.Duration
}

// New creates a new Scraper instance
func New() *Scraper {
	jar, _ := cookiejar.New(nil) // never fails with nil options
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
			Jar:     jar,
		},
		baseURL: BaseURL,
		delay:   RequestDelay,
	}
}

// FetchSchedule runs the full navigation flow and returns one event draft
// per schedule row:
//  1. Visit the team page to establish a session.
//  2. Discover the competitions link.
//  3. Fetch the competitions page and parse its rows.
//  4. Follow each row's info link or form for detail fields.
//
// Navigation failures are fatal; a row or detail page that cannot be parsed
// only costs that row its detail fields.
func (s *Scraper) FetchSchedule() ([]*event.Event, error) {
	teamURL := s.baseURL + TeamPath

	logger.Debug("Visiting team page to establish session", logger.Fields{"url": teamURL})
	mainDoc, err := s.getDocument(teamURL)
	if err != nil {
		return nil, fmt.Errorf("fetching team page: %w", err)
	}

	link, ok := findCompetitionsLink(mainDoc)
	if !ok {
		return nil, fmt.Errorf("no competitions link found on %s", teamURL)
	}

	competitionsURL, err := resolveURL(teamURL, link)
	if err != nil {
		return nil, fmt.Errorf("resolving competitions link %q: %w", link, err)
	}
	logger.Debug("Found competitions page", logger.Fields{"url": competitionsURL})

	resp, err := s.get(competitionsURL)
	if err != nil {
		return nil, fmt.Errorf("fetching competitions page: %w", err)
	}
	defer resp.Body.Close()

	rows, err := s.parseSchedule(resp.Body, competitionsURL)
	if err != nil {
		return nil, fmt.Errorf("parsing competitions page: %w", err)
	}
	logger.Info("Parsed schedule rows", logger.Fields{"rows": len(rows), "url": competitionsURL})

	events := make([]*event.Event, 0, len(rows))
	for i, row := range rows {
		if i > 0 {
			time.Sleep(s.delay)
		}
		logger.Debug("Fetching event details", logger.Fields{
			"event": row.name,
			"index": i + 1,
			"total": len(rows),
		})
		events = append(events, s.fetchDetails(row, competitionsURL))
	}

	return events, nil
}

// scheduleRow is one row of the competitions table before detail fetching.
type scheduleRow struct {
	name     string
	dateText string
	raw      string
	infoHref string          // detail link, if the row has one
	infoForm *formSubmission // detail form, if there is no link
}

// formSubmission captures the fields needed to replay an info form.
type formSubmission struct {
	action string
	method string
	fields url.Values
}

// parseSchedule extracts schedule rows from the competitions page markup.
func (s *Scraper) parseSchedule(r io.Reader, pageURL string) ([]*scheduleRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	// Rows are usually tagged with an event-ish class; fall back to plain
	// table rows when they are not.
	candidates := doc.Find("tr, div").FilterFunction(func(i int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		return eventClassPattern.MatchString(class)
	})
	if candidates.Length() == 0 {
		candidates = doc.Find("tr")
	}

	rows := make([]*scheduleRow, 0, candidates.Length())
	candidates.Each(func(i int, sel *goquery.Selection) {
		if row := parseScheduleRow(sel); row != nil {
			rows = append(rows, row)
		}
	})

	return rows, nil
}

// parseScheduleRow extracts one schedule row. Rows without a recognizable
// date are not events and are skipped.
func parseScheduleRow(sel *goquery.Selection) *scheduleRow {
	text := sel.Text()

	dateText := extractDate(text)
	if dateText == "" {
		return nil
	}

	row := &scheduleRow{
		name:     extractEventName(text),
		dateText: dateText,
		raw:      collapseWhitespace(text),
	}

	// Prefer an explicit Info/Details link; fall back to the row's form.
	sel.Find("a").EachWithBreak(func(i int, a *goquery.Selection) bool {
		if !infoLinkPattern.MatchString(strings.TrimSpace(a.Text())) {
			return true
		}
		if href, ok := a.Attr("href"); ok {
			row.infoHref = href
			return false
		}
		return true
	})
	if row.infoHref == "" {
		if form := sel.Find("form").First(); form.Length() > 0 {
			row.infoForm = parseForm(form)
		}
	}

	return row
}

// parseForm collects a form's action, method, and named field values.
func parseForm(form *goquery.Selection) *formSubmission {
	action, _ := form.Attr("action")
	method, _ := form.Attr("method")
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = http.MethodGet
	}

	fields := url.Values{}
	form.Find("input, select, textarea").Each(func(i int, input *goquery.Selection) {
		name, ok := input.Attr("name")
		if !ok || name == "" {
			return
		}
		value, _ := input.Attr("value")
		fields.Set(name, value)
	})

	return &formSubmission{action: action, method: method, fields: fields}
}

// fetchDetails follows a row's info link or form and fills in time, location,
// and category from the detail page. Any failure falls back to the
// defaults-only event.
func (s *Scraper) fetchDetails(row *scheduleRow, pageURL string) *event.Event {
	evt := event.NewEvent(row.name, row.dateText, row.raw, pageURL)

	detail, err := s.loadDetailPage(row, pageURL)
	if err != nil {
		if err != errNoDetail {
			logger.Warn("Falling back to schedule row fields", logger.Fields{"event": evt.Name, "reason": err.Error()})
		}
		return evt
	}

	if timeText := extractTime(detail); timeText != "" {
		evt.Time = timeText
	}
	if location := extractLocation(detail); location != "" {
		evt.Location = location
	}
	evt.Type = event.InferType(detail)

	return evt
}

// errNoDetail marks rows that carry neither an info link nor a form.
var errNoDetail = fmt.Errorf("no detail link or form")

// loadDetailPage fetches a row's detail page and returns its visible text.
func (s *Scraper) loadDetailPage(row *scheduleRow, pageURL string) (string, error) {
	var resp *http.Response
	var err error

	switch {
	case row.infoHref != "":
		detailURL, rerr := resolveURL(pageURL, row.infoHref)
		if rerr != nil {
			return "", fmt.Errorf("resolving detail link: %w", rerr)
		}
		resp, err = s.get(detailURL)
	case row.infoForm != nil:
		resp, err = s.submitForm(row.infoForm, pageURL)
	default:
		return "", errNoDetail
	}
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing detail page: %w", err)
	}
	return doc.Text(), nil
}

// submitForm replays an info form against the site, honoring its method.
func (s *Scraper) submitForm(form *formSubmission, pageURL string) (*http.Response, error) {
	actionURL, err := resolveURL(pageURL, form.action)
	if err != nil {
		return nil, fmt.Errorf("resolving form action: %w", err)
	}

	if form.method == http.MethodPost {
		req, err := http.NewRequest(http.MethodPost, actionURL, strings.NewReader(form.fields.Encode()))
		if err != nil {
			return nil, fmt.Errorf("creating form request: %w", err)
		}
		req.Header.Set("User-Agent", UserAgent)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return s.do(req)
	}

	if encoded := form.fields.Encode(); encoded != "" {
		if strings.Contains(actionURL, "?") {
			actionURL += "&" + encoded
		} else {
			actionURL += "?" + encoded
		}
	}
	return s.get(actionURL)
}

// findCompetitionsLink locates the competitions page link on the team page.
func findCompetitionsLink(doc *goquery.Document) (string, bool) {
	var href string
	var found bool

	// Anchors labelled "Competitions" first, then anything whose href
	// mentions competitions.
	doc.Find("a").EachWithBreak(func(i int, a *goquery.Selection) bool {
		if competitionsTextPattern.MatchString(strings.TrimSpace(a.Text())) {
			if h, ok := a.Attr("href"); ok {
				href, found = h, true
				return false
			}
		}
		return true
	})
	if found {
		return href, true
	}

	doc.Find("a[href]").EachWithBreak(func(i int, a *goquery.Selection) bool {
		h, _ := a.Attr("href")
		if competitionsHrefPattern.MatchString(h) {
			href, found = h, true
			return false
		}
		return true
	})

	return href, found
}

// get issues a GET with the scraper's headers and checks the status code.
func (s *Scraper) get(rawURL string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	return s.do(req)
}

func (s *Scraper) do(req *http.Request) (*http.Response, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", req.URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, req.URL)
	}
	return resp, nil
}

// getDocument fetches a URL and parses the response body.
func (s *Scraper) getDocument(rawURL string) (*goquery.Document, error) {
	resp, err := s.get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// resolveURL resolves a possibly-relative href against the page it came from.
func resolveURL(pageURL, href string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
