package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jesterkori/Internship-scraper/internal/scheduler"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor [intervalMinutes]",
	Short: "Poll continuously until interrupted",
	Long:  "Runs an immediate check, then repeats on a fixed period. The optional argument overrides the configured interval in minutes; anything unparsable falls back to the config default.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

// parseIntervalArg returns the override interval, or fallback when the
// argument is absent, unparsable, or not a positive integer.
func parseIntervalArg(args []string, fallback time.Duration) time.Duration {
	if len(args) == 0 {
		return fallback
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil || minutes <= 0 {
		return fallback
	}
	return time.Duration(minutes) * time.Minute
}

func runMonitor(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	interval := parseIntervalArg(args, cfg.PollingInterval)

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	tr := buildTracker(cfg, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(func(ctx context.Context) error {
		_, err := tr.RunCycle(ctx)
		return err
	}, interval, logger)

	if err := sched.Run(ctx); err != nil {
		logger.Error("monitor error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
