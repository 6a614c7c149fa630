package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jesterkori/Internship-scraper/internal/adapter"
	"github.com/Jesterkori/Internship-scraper/internal/config"
	"github.com/Jesterkori/Internship-scraper/internal/model"
	"github.com/Jesterkori/Internship-scraper/internal/notifier"
	"github.com/Jesterkori/Internship-scraper/internal/state"
	"github.com/Jesterkori/Internship-scraper/internal/tracker"
)

var (
	cfgPath   string
	statePath string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "internwatch",
	Short: "Internship radar — alerts on newly posted internships",
	Long:  "internwatch polls internship listing sources, dedups against what it has already seen, and alerts on new postings.",
	// An absent or unrecognized subcommand prints usage and exits cleanly.
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: INTERNWATCH_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "override the state file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path flag > INTERNWATCH_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("INTERNWATCH_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if statePath != "" {
		cfg.State.Path = statePath
	}
	return cfg, nil
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// openStore returns the configured state backend and a close func.
func openStore(cfg *config.Config, logger *slog.Logger) (state.Store, func(), error) {
	if cfg.State.Backend == "sqlite" {
		s, err := state.NewSQLiteStore(cfg.State.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	}
	return state.NewFileStore(cfg.State.Path, logger), func() {}, nil
}

func buildRegistry(cfg *config.Config, logger *slog.Logger) *adapter.Registry {
	var adapters []model.SourceAdapter

	if cfg.Listing.Enabled {
		client := &http.Client{Timeout: cfg.Listing.Timeout}
		adapters = append(adapters, adapter.NewListingAdapter(
			"listing",
			cfg.Listing.URL,
			cfg.Listing.UserAgent,
			cfg.Listing.ClosedMarkers,
			cfg.Listing.MaxResults,
			client,
		))
		logger.Info("registered source", "name", "listing", "url", cfg.Listing.URL)
	}

	if cfg.Static.Enabled {
		adapters = append(adapters, adapter.NewStaticAdapter(
			"bigtech",
			cfg.Static.Companies,
			cfg.Static.Title,
			cfg.Static.Location,
			cfg.Static.URL,
			nil,
		))
		logger.Info("registered source", "name", "bigtech")
	}

	return adapter.NewRegistry(adapters, logger, nil)
}

func setupNotifier(cfg *config.Config, logger *slog.Logger) model.Notifier {
	var primary model.Notifier
	switch cfg.Notification.Type {
	case "slack":
		logger.Info("using slack notifier")
		client := &http.Client{Timeout: cfg.Listing.Timeout}
		primary = notifier.NewSlackNotifier(cfg.Notification.WebhookURL, client, logger)
	default:
		primary = notifier.NewConsoleNotifier(logger)
	}

	if cfg.Notification.Desktop {
		return notifier.NewMultiNotifier(primary, notifier.NewPlatformNotifier())
	}
	return primary
}

func buildTracker(cfg *config.Config, store state.Store, logger *slog.Logger) *tracker.Tracker {
	return tracker.New(buildRegistry(cfg, logger), store, setupNotifier(cfg, logger), logger, nil)
}
