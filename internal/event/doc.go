// Package event provides the normalized representation of one scheduled
// swim competition.
//
// Events are created as loosely-typed drafts by the scraper and completed by
// Normalize, which applies the fixed defaults (5:00 PM, TBD, Dual Meet),
// resolves scraped date text against the season year, and derives the
// home/away flag from the location string. Category inference and the
// heuristic date parsing live here so they can be unit-tested without any
// network access.
package event
