package reads

import (
	"fmt"
	"sort"
	"strings"
)

// Run is an insertion-ordered collection of samples with unique
// identifiers. Populate it with Add, then check ValidateConsistency once
// all samples are in; a validated run never mixes read types.
type Run struct {
	samples []Sample
	seen    map[string]struct{}
}

// NewRun returns an empty run. Empty is a valid terminal state: a scan
// that matches no files produces one.
func NewRun() *Run {
	return &Run{seen: make(map[string]struct{})}
}

// Add appends a sample, rejecting duplicate identifiers.
func (r *Run) Add(sample Sample) error {
	if _, ok := r.seen[sample.ID]; ok {
		return fmt.Errorf("%w %q", ErrDuplicateSampleID, sample.ID)
	}
	r.samples = append(r.samples, sample)
	r.seen[sample.ID] = struct{}{}
	return nil
}

// Len returns the number of samples.
func (r *Run) Len() int {
	return len(r.samples)
}

// Samples returns the samples in insertion order.
func (r *Run) Samples() []Sample {
	out := make([]Sample, len(r.samples))
	copy(out, r.samples)
	return out
}

// PairedEnd reports whether any sample carries paired reads.
func (r *Run) PairedEnd() bool {
	for _, s := range r.samples {
		if s.Type == PairedEnd {
			return true
		}
	}
	return false
}

// ValidateConsistency rejects runs mixing single-end and paired-end
// samples.
func (r *Run) ValidateConsistency() error {
	var single, paired bool
	for _, s := range r.samples {
		switch s.Type {
		case SingleEnd:
			single = true
		case PairedEnd:
			paired = true
		}
	}
	if single && paired {
		return fmt.Errorf("%w: all samples must share one read type", ErrMixedReadTypes)
	}
	return nil
}

// TableOptions controls manifest rendering.
type TableOptions struct {
	Separator     string
	IDColumn      string
	ForwardColumn string
	ReverseColumn string
	AbsolutePaths bool
}

// DefaultTableOptions returns the stock tab-separated layout.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		Separator:     "\t",
		IDColumn:      "SampleId",
		ForwardColumn: "reads_R1",
		ReverseColumn: "reads_R2",
	}
}

// Table renders the run as one header line followed by one line per
// sample, sorted lexicographically by identifier. Paired runs emit three
// columns; single-end runs omit the reverse column entirely. An empty run
// renders the empty string.
func (r *Run) Table(opts TableOptions) string {
	if len(r.samples) == 0 {
		return ""
	}

	paired := r.PairedEnd()
	header := []string{opts.IDColumn, opts.ForwardColumn}
	if paired {
		header = append(header, opts.ReverseColumn)
	}
	lines := []string{strings.Join(header, opts.Separator)}

	ordered := r.Samples()
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	for _, s := range ordered {
		row := append([]string{s.ID}, s.Reads(opts.AbsolutePaths)...)
		lines = append(lines, strings.Join(row, opts.Separator))
	}
	return strings.Join(lines, "\n")
}
