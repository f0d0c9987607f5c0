package reads

// ReadType distinguishes single-end from paired-end samples.
type ReadType int

const (
	SingleEnd ReadType = iota
	PairedEnd
)

// ReadCount returns the number of read files a sample of this type carries.
func (t ReadType) ReadCount() int {
	if t == PairedEnd {
		return 2
	}
	return 1
}

func (t ReadType) String() string {
	switch t {
	case SingleEnd:
		return "single-end"
	case PairedEnd:
		return "paired-end"
	default:
		return "unknown"
	}
}
