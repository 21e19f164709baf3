// Package cli implements the command-line interface for wildkit-sync.
//
// The cli package provides the Cobra-based CLI that drives the batch
// pipeline: scrape the schedule, normalize events, render the page and
// calendar artifacts, then publish them (or preview them with --dry-run).
// The template subcommand extracts reusable placeholder templates from the
// current page.
package cli
