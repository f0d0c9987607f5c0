package config

import (
	"errors"
	"fmt"
	"strings"
)

// normalize drops empty list entries and refills emptied required fields
// from defaults. Separator and strip-string values are kept verbatim;
// whitespace can be a deliberate choice there.
func (c *Config) normalize() {
	defaults := Default()

	c.Scan.Extensions = compactList(c.Scan.Extensions)
	c.Scan.ForwardTags = compactList(c.Scan.ForwardTags)
	c.Scan.ReverseTags = compactList(c.Scan.ReverseTags)
	c.Scan.Separators = compactList(c.Scan.Separators)
	c.Scan.StripStrings = compactList(c.Scan.StripStrings)

	if len(c.Scan.Extensions) == 0 {
		c.Scan.Extensions = defaults.Scan.Extensions
	}
	if len(c.Scan.Separators) == 0 {
		c.Scan.Separators = defaults.Scan.Separators
	}
	if c.Output.Separator == "" {
		c.Output.Separator = defaults.Output.Separator
	}
	if c.Output.IDColumn == "" {
		c.Output.IDColumn = defaults.Output.IDColumn
	}
	if c.Output.ForwardColumn == "" {
		c.Output.ForwardColumn = defaults.Output.ForwardColumn
	}
	if c.Output.ReverseColumn == "" {
		c.Output.ReverseColumn = defaults.Output.ReverseColumn
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

// Validate rejects configurations the rest of the program cannot honor.
func (c *Config) Validate() error {
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must not be empty")
	}
	if len(c.Scan.Separators) == 0 {
		return errors.New("scan.separators must not be empty")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func compactList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
