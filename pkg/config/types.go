// Package config provides configuration loading and validation for chatmine.
package config

import "time"

// Config is the root configuration structure loaded from YAML. All values
// are static for the duration of a run; there is no runtime mutation.
type Config struct {
	// SelfNames are the display names, exactly as they appear in exports,
	// whose messages count as "sent". Empty means infer from the data.
	SelfNames []string `yaml:"self_names,omitempty"`

	// ReactionCutoff is the maximum sender-switch gap counted as a
	// reaction. Zero disables the cutoff.
	ReactionCutoff time.Duration `yaml:"reaction_cutoff"`

	// TopWords and TopSenders truncate the ranked report tables.
	TopWords   int `yaml:"top_words"`
	TopSenders int `yaml:"top_senders"`

	// HourBarWidth is the width, in cells, of the tallest hourly
	// histogram bar in the text report.
	HourBarWidth int `yaml:"hour_bar_width"`

	// Webhooks optionally receive the JSON report after analysis.
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerAlways fires after every analysis (default).
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending analysis reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication. Supports
	// ${VAR} and $VAR environment expansion.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires. Defaults to "always".
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout. Defaults to 10s.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
