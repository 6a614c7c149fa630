package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Jesterkori/Internship-scraper/internal/browse"
)

var listPlain bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all tracked postings without fetching",
	Long:  "Loads the state file and displays every retained posting. Never fetches and never mutates the store.",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "plain text output instead of the interactive browser")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	st, err := store.Load()
	if err != nil {
		logger.Error("failed to load state", "error", err)
		os.Exit(1)
	}

	if listPlain || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(browse.Plain(st))
		return nil
	}
	return browse.Run(st)
}
