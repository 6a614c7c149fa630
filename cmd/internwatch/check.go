package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Jesterkori/Internship-scraper/internal/state"
)

var (
	checkDryRun bool

	newBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("28")). // green
			Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch once, alert on new postings, persist, exit",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkDryRun, "dry-run", false, "do not persist anything; every posting appears new")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	if checkDryRun {
		logger.Info("dry-run mode: nothing will be persisted")
		store = state.NewNopStore()
	}

	tr := buildTracker(cfg, store, logger)
	res, err := tr.RunCycle(cmd.Context())
	if err != nil {
		logger.Error("check failed", "error", err)
		os.Exit(1)
	}

	for _, p := range res.New {
		fmt.Printf("%s %s — %s (%s)\n", newBadgeStyle.Render("NEW"), p.Company, p.Title, p.Location)
	}
	fmt.Println(summaryStyle.Render(fmt.Sprintf(
		"fetched %d, new %d, tracking %d total", res.Fetched, len(res.New), res.TotalStored)))
	return nil
}
