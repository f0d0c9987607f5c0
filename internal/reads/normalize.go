package reads

import "strings"

// readExtensions are the recognized read-file suffixes, most specific
// first. Only the first match is stripped.
var readExtensions = []string{".fastq.gz", ".fq.gz", ".fastq", ".fq"}

// ExtractSampleName derives a candidate sample name from a read filename:
// strip the extension, remove every forward/reverse tag and strip-string,
// split on each separator in turn, rejoin on the first separator, and trim
// non-alphanumeric characters from both ends. An empty result is legal; if
// two names collapse to the same string the collision surfaces later as a
// duplicate sample ID.
func ExtractSampleName(filename string, separators, forwardTags, reverseTags, stripStrings []string) string {
	name := filename
	for _, ext := range readExtensions {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}

	for _, tag := range forwardTags {
		name = strings.ReplaceAll(name, tag, "")
	}
	for _, tag := range reverseTags {
		name = strings.ReplaceAll(name, tag, "")
	}
	for _, s := range stripStrings {
		name = strings.ReplaceAll(name, s, "")
	}

	// Cascading split: split on separator 1, split each piece on
	// separator 2, and so on; rejoin everything on the first separator.
	parts := []string{name}
	for _, sep := range separators {
		var next []string
		for _, part := range parts {
			next = append(next, strings.Split(part, sep)...)
		}
		parts = next
	}
	sep := "_"
	if len(separators) > 0 {
		sep = separators[0]
	}

	return trimNonAlphanumeric(strings.Join(parts, sep))
}

func trimNonAlphanumeric(s string) string {
	start := 0
	for start < len(s) && !isAlphanumeric(s[start]) {
		start++
	}
	end := len(s)
	for end > start && !isAlphanumeric(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
