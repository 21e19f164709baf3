package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/paulsmith/wildkit-sync/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains the normalized schedule reported by a run
type OutputResult struct {
	GeneratedAt time.Time      `json:"generated_at"`
	SeasonYear  int            `json:"season_year"`
	EventCount  int            `json:"event_count"`
	Events      []*event.Event `json:"events"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	fmt.Fprintf(w, "Found %d events\n", result.EventCount)

	for _, evt := range result.Events {
		fmt.Fprintf(w, "  - %s on %s\n", evt.Name, evt.DateText)
		if verbose {
			fmt.Fprintf(w, "      Time: %s\n", evt.Time)
			fmt.Fprintf(w, "      Location: %s", evt.Location)
			if evt.Home {
				fmt.Fprint(w, " (Home)")
			}
			fmt.Fprintln(w)
			fmt.Fprintf(w, "      Type: %s\n", evt.Type)
		}
	}

	return nil
}
