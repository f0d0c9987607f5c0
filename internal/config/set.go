package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Set assigns a single configuration field addressed as "section.key".
// Bare keys default to the [scan] section. List-valued fields take
// comma-separated values; absolute_paths takes a boolean. The updated
// config is re-normalized and re-validated before returning.
func (c *Config) Set(param, value string) error {
	section, key, ok := strings.Cut(param, ".")
	if !ok {
		section, key = "scan", param
	}

	switch section {
	case "scan":
		switch key {
		case "extensions":
			c.Scan.Extensions = splitList(value)
		case "forward_tags":
			c.Scan.ForwardTags = splitList(value)
		case "reverse_tags":
			c.Scan.ReverseTags = splitList(value)
		case "separators":
			c.Scan.Separators = splitList(value)
		case "strip_strings":
			c.Scan.StripStrings = splitList(value)
		default:
			return fmt.Errorf("unknown key %q in section [scan]", key)
		}
	case "output":
		switch key {
		case "separator":
			c.Output.Separator = value
		case "id_column":
			c.Output.IDColumn = value
		case "forward_column":
			c.Output.ForwardColumn = value
		case "reverse_column":
			c.Output.ReverseColumn = value
		case "absolute_paths":
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("output.absolute_paths: %q is not a boolean", value)
			}
			c.Output.AbsolutePaths = parsed
		default:
			return fmt.Errorf("unknown key %q in section [output]", key)
		}
	case "logging":
		switch key {
		case "level":
			c.Logging.Level = value
		case "format":
			c.Logging.Format = value
		default:
			return fmt.Errorf("unknown key %q in section [logging]", key)
		}
	default:
		return fmt.Errorf("unknown config section %q", section)
	}

	c.normalize()
	return c.Validate()
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Entry is one configuration field flattened for display.
type Entry struct {
	Section string
	Key     string
	Value   string
}

// Entries flattens the configuration into display rows, section by
// section, in declaration order.
func (c *Config) Entries() []Entry {
	return []Entry{
		{"scan", "extensions", strings.Join(c.Scan.Extensions, ",")},
		{"scan", "forward_tags", strings.Join(c.Scan.ForwardTags, ",")},
		{"scan", "reverse_tags", strings.Join(c.Scan.ReverseTags, ",")},
		{"scan", "separators", strings.Join(c.Scan.Separators, ",")},
		{"scan", "strip_strings", strings.Join(c.Scan.StripStrings, ",")},
		{"output", "separator", strconv.Quote(c.Output.Separator)},
		{"output", "id_column", c.Output.IDColumn},
		{"output", "forward_column", c.Output.ForwardColumn},
		{"output", "reverse_column", c.Output.ReverseColumn},
		{"output", "absolute_paths", strconv.FormatBool(c.Output.AbsolutePaths)},
		{"logging", "level", c.Logging.Level},
		{"logging", "format", c.Logging.Format},
	}
}
