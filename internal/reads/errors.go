package reads

import "errors"

// Sentinel errors for the failure modes callers are expected to
// distinguish. All abort the run; none is retryable.
var (
	ErrNotDirectory      = errors.New("not a directory")
	ErrDuplicateSampleID = errors.New("duplicate sample ID")
	ErrMixedReadTypes    = errors.New("mixed single-end and paired-end samples")
	ErrUnknownPreset     = errors.New("unknown format preset")
)
