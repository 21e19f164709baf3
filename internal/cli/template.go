package cli

import (
	"fmt"
	"os"

	"github.com/paulsmith/wildkit-sync/internal/publish"
	"github.com/paulsmith/wildkit-sync/internal/render"
	"github.com/spf13/cobra"
)

const (
	pageTemplatePath = "template.html"
	cardTemplatePath = "event_card_template.html"
)

// newTemplateCmd creates the template extraction subcommand.
func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Extract reusable templates from the schedule page",
		Long: `Extracts the page structure and one event card from the current schedule
page, replacing their populated values with {{PLACEHOLDER}} tokens. Run this
after hand-editing the page's structure or styling.`,
		RunE: runTemplate,
	}
}

func runTemplate(cmd *cobra.Command, args []string) error {
	current, err := os.ReadFile(flagIndex)
	if err != nil {
		return fmt.Errorf("reading %s: %w", flagIndex, err)
	}

	page, card, err := render.ExtractTemplates(string(current))
	if err != nil {
		return fmt.Errorf("extracting templates from %s: %w", flagIndex, err)
	}

	artifacts := []publish.Artifact{
		{Path: pageTemplatePath, Content: page},
		{Path: cardTemplatePath, Content: card},
	}
	if err := newPublisher().Publish(artifacts); err != nil {
		return fmt.Errorf("publishing templates: %w", err)
	}

	if !flagDryRun {
		fmt.Println("Templates saved:")
		fmt.Printf("- %s (main page structure)\n", pageTemplatePath)
		fmt.Printf("- %s (individual event card)\n", cardTemplatePath)
	}

	return nil
}
