package config

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Extensions:  []string{".fastq", ".fastq.gz"},
			ForwardTags: []string{"_R1_", "_1."},
			ReverseTags: []string{"_R2_", "_2."},
			Separators:  []string{"_"},
		},
		Output: Output{
			Separator:     "\t",
			IDColumn:      "SampleId",
			ForwardColumn: "reads_R1",
			ReverseColumn: "reads_R2",
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
