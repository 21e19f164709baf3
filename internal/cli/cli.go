package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/paulsmith/wildkit-sync/internal/calendar"
	"github.com/paulsmith/wildkit-sync/internal/event"
	"github.com/paulsmith/wildkit-sync/internal/logger"
	"github.com/paulsmith/wildkit-sync/internal/publish"
	"github.com/paulsmith/wildkit-sync/internal/render"
	"github.com/paulsmith/wildkit-sync/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDryRun  bool
	flagVerbose bool
	flagIndex   string
	flagICS     string
	flagFormat  string
	flagSeason  int
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wildkit-sync",
		Short: "Regenerate the ETHS Girls Swimming schedule page and calendar",
		Long: `Scrapes the official schedule from wildkitaquatics.com and regenerates
the static index.html and calendar.ics files. Existing files are left
untouched when the scrape or render fails.`,
		RunE: runSync,
	}

	cmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "Print changes without writing files")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flagIndex, "index", "index.html", "Path to the schedule page")

	cmd.Flags().StringVar(&flagICS, "ics", "calendar.ics", "Path to the calendar file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().IntVar(&flagSeason, "season", 0, "Season year for dates without one (default: current year)")

	cmd.AddCommand(newTemplateCmd())

	return cmd
}

// runSync is the main command logic: scrape, normalize, render, publish.
func runSync(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	seasonYear := flagSeason
	if seasonYear == 0 {
		seasonYear = event.SeasonYear(time.Now())
	}

	sc := scraper.New()
	events, err := sc.FetchSchedule()
	if err != nil {
		return fmt.Errorf("scraping schedule: %w", err)
	}
	if len(events) == 0 {
		return fmt.Errorf("no events found on %s", scraper.BaseURL)
	}

	for _, evt := range events {
		evt.Normalize(seasonYear)
	}

	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		SeasonYear:  seasonYear,
		EventCount:  len(events),
		Events:      events,
	}
	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	current, err := os.ReadFile(flagIndex)
	if err != nil {
		return fmt.Errorf("reading %s: %w", flagIndex, err)
	}

	page, err := render.Page(events, string(current))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", flagIndex, err)
	}

	ics := calendar.Generate(events, time.Now())

	artifacts := []publish.Artifact{
		{Path: flagIndex, Content: page},
		{Path: flagICS, Content: ics},
	}
	if err := newPublisher().Publish(artifacts); err != nil {
		return fmt.Errorf("publishing: %w", err)
	}

	if !flagDryRun && format == FormatText {
		fmt.Println("Calendar files updated successfully!")
	}

	return nil
}

// newPublisher picks the publishing collaborator for the run mode.
func newPublisher() publish.Publisher {
	if flagDryRun {
		return publish.NewDryRunPublisher(os.Stdout)
	}
	return publish.NewFilePublisher()
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
