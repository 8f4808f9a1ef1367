package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// APIURLEnv overrides api.base_url when set.
const APIURLEnv = "JOBDESK_API_URL"

// Config is the root configuration for jobdesk.
type Config struct {
	API          APIConfig
	Site         SiteConfig
	Watch        WatchConfig
	Notification NotificationConfig
	Store        StoreConfig
}

// APIConfig points at the remote job API.
type APIConfig struct {
	BaseURL string        // every API path is relative to this
	Timeout time.Duration // per-request timeout
}

// SiteConfig controls the web front-end.
type SiteConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	PublicURL  string `yaml:"public_url"` // used for links in notifications
	ApplyURL   string `yaml:"apply_url"`  // jobs are applied for at {apply_url}/job/{id}#apply
}

// WatchConfig controls the pending-queue watcher.
type WatchConfig struct {
	Interval       time.Duration
	NotifyExisting bool // alert about jobs already pending on the first run
}

// NotificationConfig controls which notifier is used and its settings.
type NotificationConfig struct {
	Type       string `yaml:"type"`        // "log" or "slack"
	WebhookURL string `yaml:"webhook_url"` // required if type is "slack"
}

// StoreConfig locates the SQLite database. An empty path disables persistence.
type StoreConfig struct {
	Path string `yaml:"path"`
}

const (
	defaultListenAddr = ":3000"
	defaultStorePath  = "jobdesk.db"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	API          rawAPIConfig       `yaml:"api"`
	Site         SiteConfig         `yaml:"site"`
	Watch        rawWatchConfig     `yaml:"watch"`
	Notification NotificationConfig `yaml:"notification"`
	Store        *StoreConfig       `yaml:"store"`
}

type rawAPIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type rawWatchConfig struct {
	Interval       string `yaml:"interval"`
	NotifyExisting bool   `yaml:"notify_existing"`
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse builds a Config from YAML. Empty input yields the defaults, so a
// deployment can be configured from the environment alone.
func Parse(data []byte) (*Config, error) {
	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var err error
	timeout := 30 * time.Second // default
	if raw.API.Timeout != "" {
		timeout, err = time.ParseDuration(raw.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse api.timeout %q: %w", raw.API.Timeout, err)
		}
	}

	interval := 5 * time.Minute // default
	if raw.Watch.Interval != "" {
		interval, err = time.ParseDuration(raw.Watch.Interval)
		if err != nil {
			return nil, fmt.Errorf("parse watch.interval %q: %w", raw.Watch.Interval, err)
		}
	}

	baseURL := raw.API.BaseURL
	if env := os.Getenv(APIURLEnv); env != "" {
		baseURL = env
	}

	site := raw.Site
	if site.ListenAddr == "" {
		site.ListenAddr = defaultListenAddr
	}

	// A store section that is present but has no path turns persistence off.
	store := StoreConfig{Path: defaultStorePath}
	if raw.Store != nil {
		store = *raw.Store
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(baseURL, "/"),
			Timeout: timeout,
		},
		Site: site,
		Watch: WatchConfig{
			Interval:       interval,
			NotifyExisting: raw.Watch.NotifyExisting,
		},
		Notification: raw.Notification,
		Store:        store,
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SetAPIURL overrides the API base URL (e.g. from a flag) and revalidates it.
func (c *Config) SetAPIURL(raw string) error {
	c.API.BaseURL = strings.TrimRight(raw, "/")
	return validateAPIURL(c.API.BaseURL)
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL != "" {
		if err := validateAPIURL(cfg.API.BaseURL); err != nil {
			return err
		}
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %v", cfg.API.Timeout)
	}
	if cfg.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval must be positive, got %v", cfg.Watch.Interval)
	}

	switch cfg.Notification.Type {
	case "", "log":
	case "slack":
		if cfg.Notification.WebhookURL == "" {
			return fmt.Errorf("notification.webhook_url is required when type is \"slack\"")
		}
		if !strings.HasPrefix(cfg.Notification.WebhookURL, "https://hooks.slack.com/") {
			return fmt.Errorf("notification.webhook_url must start with https://hooks.slack.com/")
		}
	default:
		return fmt.Errorf("notification.type must be \"log\" or \"slack\", got %q", cfg.Notification.Type)
	}

	return nil
}

func validateAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse api.base_url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got %q", raw)
	}
	return nil
}

// RequireAPI reports an error when no API base URL was configured anywhere.
func (c *Config) RequireAPI() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is not set (config file, %s or --api-url)", APIURLEnv)
	}
	return nil
}
