// Package scraper fetches and parses the team schedule from
// wildkitaquatics.com.
//
// The scraper walks a fixed navigation flow: team page (to establish a
// session), competitions page (one table row per event), then one detail
// request per row via the row's info link or form. Field extraction relies
// on heuristic regular expressions because the site's markup is
// undocumented; parsing is split from fetching so the heuristics can be
// tested against captured fixtures.
package scraper
