// Package publish commits generated artifacts to their destinations.
//
// The Publisher interface separates the pipeline from file I/O so a dry run
// is a swap of collaborator: FilePublisher overwrites the output files,
// DryRunPublisher prints previews and leaves disk untouched.
package publish
