package publish

import (
	"fmt"
	"os"
)

// Artifact is one generated output file.
type Artifact struct {
	Path    string
	Content string
}

// Publisher defines the interface for committing generated artifacts.
type Publisher interface {
	// Publish writes or reports the given artifacts.
	Publish(artifacts []Artifact) error
}

// FilePublisher overwrites each artifact on disk.
type FilePublisher struct{}

// NewFilePublisher creates a publisher that writes artifacts to disk.
func NewFilePublisher() *FilePublisher {
	return &FilePublisher{}
}

// Publish fully overwrites every artifact's file.
func (p *FilePublisher) Publish(artifacts []Artifact) error {
	for _, a := range artifacts {
		if err := os.WriteFile(a.Path, []byte(a.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", a.Path, err)
		}
	}
	return nil
}
