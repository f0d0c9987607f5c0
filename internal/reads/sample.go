package reads

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sample is one sequenced sample: an identifier plus its read files.
// Read paths are stored absolute; relative rendering is anchored to the
// working directory captured at construction, not the caller's directory
// at render time. Immutable after NewSample.
type Sample struct {
	ID   string
	Type ReadType

	reads   []string
	workDir string
}

// NewSample builds a validated sample. The read count must match the
// declared type: one file for single-end, two for paired-end. An empty
// workDir captures the current working directory.
func NewSample(id string, readType ReadType, readPaths []string, workDir string) (Sample, error) {
	if got, want := len(readPaths), readType.ReadCount(); got != want {
		return Sample{}, fmt.Errorf("%s sample %q must have %d read file(s), got %d", readType, id, want, got)
	}
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Sample{}, fmt.Errorf("determine working directory: %w", err)
		}
		workDir = wd
	}
	abs := make([]string, len(readPaths))
	for i, p := range readPaths {
		resolved, err := filepath.Abs(p)
		if err != nil {
			return Sample{}, fmt.Errorf("resolve read path %q: %w", p, err)
		}
		abs[i] = resolved
	}
	return Sample{ID: id, Type: readType, reads: abs, workDir: workDir}, nil
}

// Reads returns the sample's read paths: absolute when requested,
// otherwise relative to the working directory captured at construction.
// Paths that cannot be expressed relative to it stay absolute.
func (s Sample) Reads(absolute bool) []string {
	out := make([]string, len(s.reads))
	for i, p := range s.reads {
		if absolute {
			out[i] = p
			continue
		}
		rel, err := filepath.Rel(s.workDir, p)
		if err != nil {
			out[i] = p
			continue
		}
		out[i] = rel
	}
	return out
}
