package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobdesk/internal/api"
	"github.com/amishk599/jobdesk/internal/config"
	"github.com/amishk599/jobdesk/internal/model"
	"github.com/amishk599/jobdesk/internal/notifier"
	"github.com/amishk599/jobdesk/internal/store"
)

const configEnv = "JOBDESK_CONFIG"

var (
	cfgPath string
	debug   bool
	apiURL  string
)

var rootCmd = &cobra.Command{
	Use:   "jobdesk",
	Short: "Job board front-end and moderation desk",
	Long:  "jobdesk serves the public job listing, the moderation pages and a terminal moderation UI on top of the job API.",
	// Default to `serve` so that `jobdesk` with no args runs the site.
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: "+configEnv+" env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "job API base URL (overrides api.base_url and "+config.APIURLEnv+")")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBDESK_CONFIG env var > "./config.yaml".
// A missing default file is not an error: defaults and environment apply.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv(configEnv); env != "" {
			path = env
			explicit = true
		} else {
			path = "config.yaml"
		}
	}

	cfg, err := config.Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Parse(nil)
	}
	if err != nil {
		return nil, err
	}

	if apiURL != "" {
		if err := cfg.SetAPIURL(apiURL); err != nil {
			return nil, fmt.Errorf("--api-url: %w", err)
		}
	}
	return cfg, nil
}

// mustLoadAPIConfig loads the config and exits if it is invalid or has no
// API base URL.
func mustLoadAPIConfig(logger *slog.Logger) *config.Config {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.RequireAPI(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}
	return cfg
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func setupNotifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.Notifier {
	switch cfg.Notification.Type {
	case "slack":
		logger.Info("using slack notifier")
		return notifier.NewSlackNotifier(cfg.Notification.WebhookURL, cfg.Site.PublicURL, httpClient, logger)
	default:
		return notifier.NewLogNotifier(logger)
	}
}

func newAPIClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout})
}

// jobStore is the persistence used by the commands.
type jobStore interface {
	model.JobStore
	model.ModerationLog
	Close() error
}

// openStore opens the SQLite store, or a NopStore when store.path is empty.
func openStore(cfg *config.Config, logger *slog.Logger) (jobStore, error) {
	if cfg.Store.Path == "" {
		logger.Debug("store disabled, nothing will be persisted")
		return store.NewNopStore(), nil
	}
	s, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
