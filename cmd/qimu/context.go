package main

import (
	"log/slog"
	"strings"
	"sync"

	"qimu/internal/config"
	"qimu/internal/logging"
)

// commandContext resolves configuration and logging lazily so commands
// that never need them (version, help) pay nothing.
type commandContext struct {
	configFlag  *string
	verboseFlag *bool
	debugFlag   *bool
	logFileFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, verboseFlag, debugFlag *bool, logFileFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
		debugFlag:   debugFlag,
		logFileFlag: logFileFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// configPathValue returns the resolved config path; valid after
// ensureConfig succeeded.
func (c *commandContext) configPathValue() string {
	return c.configPath
}

// ensureLogger builds the logger once. The --debug and --verbose flags
// override the configured level; a config load failure falls back to
// defaults so errors can still be reported.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		settings := config.Default().Logging
		if cfg, err := c.ensureConfig(); err == nil {
			settings = cfg.Logging
		}

		level := settings.Level
		switch {
		case c.debugFlag != nil && *c.debugFlag:
			level = "debug"
		case c.verboseFlag != nil && *c.verboseFlag:
			level = "info"
		}

		var logFile string
		if c.logFileFlag != nil {
			logFile = strings.TrimSpace(*c.logFileFlag)
		}

		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:    level,
			Format:   settings.Format,
			FilePath: logFile,
		})
	})
	return c.logger, c.loggerErr
}
