package config

import (
	"os"
	"strings"
	"time"
)

// Default values for configuration. They mirror the behavior the export
// analyzer shipped with before configuration existed.
const (
	DefaultReactionCutoff = 6 * time.Hour
	DefaultTopWords       = 100
	DefaultTopSenders     = 10
	DefaultHourBarWidth   = 40
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	// EnvSelfNames overrides self_names with a comma-separated list.
	EnvSelfNames = "CHATMINE_SELF_NAMES"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ReactionCutoff: DefaultReactionCutoff,
		TopWords:       DefaultTopWords,
		TopSenders:     DefaultTopSenders,
		HourBarWidth:   DefaultHourBarWidth,
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if names := os.Getenv(EnvSelfNames); names != "" {
		c.SelfNames = c.SelfNames[:0]
		for _, name := range strings.Split(names, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.SelfNames = append(c.SelfNames, name)
			}
		}
	}
}
