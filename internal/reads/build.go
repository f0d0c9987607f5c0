package reads

import (
	"fmt"
	"os"
	"path/filepath"
)

// BuildOptions carries every knob the run builder needs.
type BuildOptions struct {
	Extensions     []string
	ForwardTags    []string
	ReverseTags    []string
	Separators     []string
	StripStrings   []string
	ForceSingleEnd bool

	// WorkDir anchors relative path rendering. Empty means the caller's
	// working directory at build time.
	WorkDir string
}

// BuildRun scans the given directories and assembles a validated run:
// scan, pair, derive candidate names, resolve unique identifiers, and
// construct one sample per candidate. It is a pure function of its inputs
// and the filesystem snapshot at scan time. A scan matching no files
// yields an empty run and no error; duplicate identifiers and mixed read
// types abort with an error before any output can be produced.
func BuildRun(dirs []string, opts BuildOptions) (*Run, error) {
	run := NewRun()

	files, err := ScanDirectories(dirs, opts.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return run, nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		workDir = wd
	}

	pairing := PairReads(files, opts.ForwardTags, opts.ReverseTags, opts.ForceSingleEnd)

	// When pairing is forced off the direction tags stay in the name:
	// stripping them would collapse a forward file and its reverse
	// counterpart onto one candidate key and silently drop one of them.
	nameForwardTags, nameReverseTags := opts.ForwardTags, opts.ReverseTags
	if opts.ForceSingleEnd {
		nameForwardTags, nameReverseTags = nil, nil
	}

	// Candidate read sets keyed by normalized name. Paired entries take
	// their name from the forward file; an unpaired entry that normalizes
	// to the same name overwrites it, as the unpaired classification is
	// the more literal reading of the filename.
	candidates := make(map[string][]string, len(pairing.Paired)+len(pairing.Unpaired))
	for _, pair := range pairing.Paired {
		name := ExtractSampleName(filepath.Base(pair.Forward), opts.Separators, nameForwardTags, nameReverseTags, opts.StripStrings)
		if pair.Reverse != "" {
			candidates[name] = []string{pair.Forward, pair.Reverse}
		} else {
			candidates[name] = []string{pair.Forward}
		}
	}
	for _, filename := range pairing.Unpaired {
		name := ExtractSampleName(filename, opts.Separators, nameForwardTags, nameReverseTags, opts.StripStrings)
		candidates[name] = []string{files[filename]}
	}

	separator := "_"
	if len(opts.Separators) > 0 {
		separator = opts.Separators[0]
	}
	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	resolved := ResolveUniqueIDs(names, separator)

	for name, readPaths := range candidates {
		readType := SingleEnd
		if len(readPaths) == 2 {
			readType = PairedEnd
		}
		sample, err := NewSample(resolved[name], readType, readPaths, workDir)
		if err != nil {
			return nil, err
		}
		if err := run.Add(sample); err != nil {
			return nil, err
		}
	}

	if err := run.ValidateConsistency(); err != nil {
		return nil, err
	}
	return run, nil
}
