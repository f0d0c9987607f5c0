package reads

import "strings"

// pairSentinel replaces read-direction tags when deriving a base key, so a
// forward file and its reverse counterpart normalize to the same string
// even when their tags sit at different offsets in the filename.
const pairSentinel = "___PAIR___"

// ReadPair couples a forward read path with its optional reverse path.
// An empty Reverse marks a forward file without a counterpart.
type ReadPair struct {
	Forward string
	Reverse string
}

// Pairing is the outcome of classifying scanned files by read direction.
type Pairing struct {
	// Paired maps a tag-normalized base key to its forward/reverse paths.
	Paired map[string]ReadPair
	// Unpaired lists filenames that carry no direction tag, were forced
	// single-end, or are reverse files without a forward counterpart.
	Unpaired []string
}

// PairReads classifies each filename as forward, reverse, or unpaired and
// matches forward/reverse counterparts through sentinel-substituted base
// keys. Tags match by plain substring containment with no anchoring: a
// tag that happens to occur as unrelated text is substituted too. A file
// matching both tag sets counts as forward.
func PairReads(files map[string]string, forwardTags, reverseTags []string, forceSingleEnd bool) Pairing {
	forward := make(map[string]string)
	reverse := make(map[string]string)
	reverseNames := make(map[string]string)
	var unpaired []string

	for filename, path := range files {
		isForward := containsAny(filename, forwardTags)
		isReverse := containsAny(filename, reverseTags)
		switch {
		case forceSingleEnd || (!isForward && !isReverse):
			unpaired = append(unpaired, filename)
		case isForward:
			forward[substituteTags(filename, forwardTags)] = path
		default:
			key := substituteTags(filename, reverseTags)
			reverse[key] = path
			reverseNames[key] = filename
		}
	}

	paired := make(map[string]ReadPair, len(forward))
	for key, forwardPath := range forward {
		paired[key] = ReadPair{Forward: forwardPath, Reverse: reverse[key]}
	}

	// Orphan reverse files fall back to the unpaired pool.
	for key, name := range reverseNames {
		if _, ok := forward[key]; !ok {
			unpaired = append(unpaired, name)
		}
	}

	return Pairing{Paired: paired, Unpaired: unpaired}
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func substituteTags(name string, tags []string) string {
	for _, tag := range tags {
		name = strings.ReplaceAll(name, tag, pairSentinel)
	}
	return name
}
