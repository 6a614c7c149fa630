package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the internship watcher.
type Config struct {
	PollingInterval time.Duration
	State           StateConfig
	Listing         ListingConfig
	Static          StaticConfig
	Notification    NotificationConfig
}

// StateConfig selects where the tracker snapshot lives.
type StateConfig struct {
	Path    string `yaml:"path"`    // state file (or db) path
	Backend string `yaml:"backend"` // "json" or "sqlite"
}

// ListingConfig configures the listing-page adapter.
type ListingConfig struct {
	Enabled       bool
	URL           string
	UserAgent     string
	Timeout       time.Duration
	MaxResults    int
	ClosedMarkers []string
}

// StaticConfig configures the fixed big-tech source.
type StaticConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Companies []string `yaml:"companies"`
	Title     string   `yaml:"title"`
	Location  string   `yaml:"location"`
	URL       string   `yaml:"url"`
}

// NotificationConfig controls which primary notifier is used and whether the
// desktop side channel is attempted.
type NotificationConfig struct {
	Type       string `yaml:"type"`        // "console" or "slack"
	WebhookURL string `yaml:"webhook_url"` // required if type is "slack"
	Desktop    bool   `yaml:"desktop"`     // best-effort native notifications
}

// rawConfig is used for YAML unmarshaling (snake_case fields and durations
// as strings).
type rawConfig struct {
	PollingInterval string                `yaml:"polling_interval"`
	State           StateConfig           `yaml:"state"`
	Listing         rawListingConfig      `yaml:"listing"`
	Static          rawStaticConfig       `yaml:"static"`
	Notification    rawNotificationConfig `yaml:"notification"`
}

type rawNotificationConfig struct {
	Type       string `yaml:"type"`
	WebhookURL string `yaml:"webhook_url"`
	Desktop    *bool  `yaml:"desktop"`
}

type rawListingConfig struct {
	Enabled       *bool    `yaml:"enabled"`
	URL           string   `yaml:"url"`
	UserAgent     string   `yaml:"user_agent"`
	Timeout       string   `yaml:"timeout"`
	MaxResults    int      `yaml:"max_results"`
	ClosedMarkers []string `yaml:"closed_markers"`
}

type rawStaticConfig struct {
	Enabled   *bool    `yaml:"enabled"`
	Companies []string `yaml:"companies"`
	Title     string   `yaml:"title"`
	Location  string   `yaml:"location"`
	URL       string   `yaml:"url"`
}

// Default returns the configuration used when no config file exists. The
// tool is a personal utility and should run usefully with zero setup.
func Default() *Config {
	return &Config{
		PollingInterval: 30 * time.Minute,
		State: StateConfig{
			Path:    "internships.json",
			Backend: "json",
		},
		Listing: ListingConfig{
			Enabled:       true,
			URL:           "https://www.intern-list.com/",
			UserAgent:     "Mozilla/5.0 (compatible; internwatch/1.0)",
			Timeout:       30 * time.Second,
			MaxResults:    15,
			ClosedMarkers: []string{"🔒", "closed"},
		},
		Static: StaticConfig{
			Enabled:  true,
			Title:    "Software Engineering Intern",
			Location: "United States",
			URL:      "https://careers.example.com",
		},
		Notification: NotificationConfig{
			Type:    "console",
			Desktop: true,
		},
	}
}

// Load reads and parses the YAML config file at path, applies defaults for
// anything unset, validates, and returns Config. A missing file yields the
// defaults rather than an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables (webhook URLs, paths).
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.PollingInterval != "" {
		interval, err := time.ParseDuration(raw.PollingInterval)
		if err != nil {
			return nil, fmt.Errorf("parse polling_interval %q: %w", raw.PollingInterval, err)
		}
		cfg.PollingInterval = interval
	}

	if raw.State.Path != "" {
		cfg.State.Path = raw.State.Path
	}
	if raw.State.Backend != "" {
		cfg.State.Backend = raw.State.Backend
	}

	if raw.Listing.Enabled != nil {
		cfg.Listing.Enabled = *raw.Listing.Enabled
	}
	if raw.Listing.URL != "" {
		cfg.Listing.URL = raw.Listing.URL
	}
	if raw.Listing.UserAgent != "" {
		cfg.Listing.UserAgent = raw.Listing.UserAgent
	}
	if raw.Listing.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Listing.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse listing.timeout %q: %w", raw.Listing.Timeout, err)
		}
		cfg.Listing.Timeout = timeout
	}
	if raw.Listing.MaxResults > 0 {
		cfg.Listing.MaxResults = raw.Listing.MaxResults
	}
	if len(raw.Listing.ClosedMarkers) > 0 {
		cfg.Listing.ClosedMarkers = raw.Listing.ClosedMarkers
	}

	if raw.Static.Enabled != nil {
		cfg.Static.Enabled = *raw.Static.Enabled
	}
	if len(raw.Static.Companies) > 0 {
		cfg.Static.Companies = raw.Static.Companies
	}
	if raw.Static.Title != "" {
		cfg.Static.Title = raw.Static.Title
	}
	if raw.Static.Location != "" {
		cfg.Static.Location = raw.Static.Location
	}
	if raw.Static.URL != "" {
		cfg.Static.URL = raw.Static.URL
	}

	if raw.Notification.Type != "" {
		cfg.Notification.Type = raw.Notification.Type
		cfg.Notification.WebhookURL = raw.Notification.WebhookURL
	}
	if raw.Notification.Desktop != nil {
		cfg.Notification.Desktop = *raw.Notification.Desktop
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.PollingInterval <= 0 {
		return fmt.Errorf("polling_interval must be positive, got %v", cfg.PollingInterval)
	}
	if !cfg.Listing.Enabled && !cfg.Static.Enabled {
		return fmt.Errorf("at least one source must be enabled")
	}
	switch cfg.State.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("state.backend must be \"json\" or \"sqlite\", got %q", cfg.State.Backend)
	}
	switch cfg.Notification.Type {
	case "console":
	case "slack":
		if cfg.Notification.WebhookURL == "" {
			return fmt.Errorf("notification.webhook_url is required when type is \"slack\"")
		}
	default:
		return fmt.Errorf("notification.type must be \"console\" or \"slack\", got %q", cfg.Notification.Type)
	}
	return nil
}
