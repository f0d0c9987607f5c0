package reads

import "strings"

// ResolveUniqueIDs maps each candidate name to its shortest positionally
// unique token. Names are split on the separator; scanning tokens left to
// right, a token at position i wins if no other name carries an equal
// token at the same position (positions past a shorter name's end never
// match). A name with no unique token keeps its full form.
//
// The pairwise comparison is O(n²·k) over n names of k tokens. Sequencing
// runs hold tens to low hundreds of samples, so this stays well under a
// millisecond; a per-position frequency table would be the drop-in
// replacement if that ever changes.
func ResolveUniqueIDs(names []string, separator string) map[string]string {
	tokens := make(map[string][]string, len(names))
	for _, name := range names {
		tokens[name] = strings.Split(name, separator)
	}

	resolved := make(map[string]string, len(names))
	for name, parts := range tokens {
		resolved[name] = name
		for i, part := range parts {
			if uniqueAt(tokens, name, i, part) {
				resolved[name] = part
				break
			}
		}
	}
	return resolved
}

func uniqueAt(tokens map[string][]string, name string, pos int, part string) bool {
	for other, otherParts := range tokens {
		if other == name {
			continue
		}
		if pos < len(otherParts) && otherParts[pos] == part {
			return false
		}
	}
	return true
}
