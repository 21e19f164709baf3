package publish

import (
	"fmt"
	"io"
)

// previewLen bounds how much of each artifact a dry run prints.
const previewLen = 500

// DryRunPublisher prints what would be written without touching disk.
type DryRunPublisher struct {
	out io.Writer
}

// NewDryRunPublisher creates a publisher that writes previews to out.
func NewDryRunPublisher(out io.Writer) *DryRunPublisher {
	return &DryRunPublisher{out: out}
}

// Publish prints the file list and a truncated preview of each artifact.
func (p *DryRunPublisher) Publish(artifacts []Artifact) error {
	fmt.Fprintln(p.out, "DRY RUN - Would update the following files:")
	for _, a := range artifacts {
		fmt.Fprintf(p.out, "- %s\n", a.Path)
	}
	for _, a := range artifacts {
		preview := a.Content
		suffix := ""
		if len(preview) > previewLen {
			preview = preview[:previewLen]
			suffix = "..."
		}
		fmt.Fprintf(p.out, "\n%s preview (first %d chars):\n%s%s\n", a.Path, previewLen, preview, suffix)
	}
	return nil
}
