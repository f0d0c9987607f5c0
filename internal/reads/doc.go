// Package reads discovers sequencing read files and assembles them into
// samples.
//
// Directories are scanned non-recursively for files matching an extension
// allow-list, classified as forward or reverse reads by configurable
// filename tags, and paired through tag-normalized base keys. Sample names
// are derived from filenames by stripping extensions, tags, and arbitrary
// substrings, then shortened to the first positionally unique token so the
// resulting identifiers stay both readable and unambiguous.
//
// BuildRun is the entry point: it turns a set of directories into a
// validated Run, which renders as a separator-delimited sample manifest.
// Read files are treated as opaque paths; no sequence data is ever parsed.
package reads
