package reads

import (
	"fmt"
	"strings"
)

// Preset names accepted by the reads-table --format flag.
const (
	PresetManifest = "manifest"
	PresetAmpliseq = "ampliseq"
	PresetMag      = "mag"
)

// PresetTableOptions returns the fixed rendering options for a named
// preset. Every preset forces absolute paths: the manifests they feed are
// consumed from arbitrary working directories.
func PresetTableOptions(name string) (TableOptions, error) {
	switch strings.ToLower(name) {
	case PresetManifest:
		return TableOptions{
			Separator:     ",",
			IDColumn:      "sample-id",
			ForwardColumn: "forward-absolute-filepath",
			ReverseColumn: "reverse-absolute-filepath",
			AbsolutePaths: true,
		}, nil
	case PresetAmpliseq:
		return TableOptions{
			Separator:     "\t",
			IDColumn:      "sample-id",
			ForwardColumn: "forward-absolute-filepath",
			ReverseColumn: "reverse-absolute-filepath",
			AbsolutePaths: true,
		}, nil
	case PresetMag:
		return TableOptions{
			Separator:     ",",
			IDColumn:      "sample",
			ForwardColumn: "R1",
			ReverseColumn: "R2",
			AbsolutePaths: true,
		}, nil
	default:
		return TableOptions{}, fmt.Errorf("%w %q (available: %s, %s, %s)",
			ErrUnknownPreset, name, PresetManifest, PresetAmpliseq, PresetMag)
	}
}
