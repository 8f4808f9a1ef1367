package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent moderation actions",
	Long:  "Prints moderation actions taken through jobdesk, newest first.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Store.Path == "" {
		fmt.Println("Store is disabled (store.path is empty); no history is kept.")
		return nil
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	events, err := st.History(historyLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	fmt.Printf("%-20s %-8s %-14s %s\n", "When", "Job", "Action", "Source")
	fmt.Println(strings.Repeat("─", 50))
	for _, e := range events {
		fmt.Printf("%-20s %-8d %-14s %s\n", e.At.Local().Format(time.DateTime), e.JobID, e.Action, e.Source)
	}
	fmt.Printf("\nShowing %d entries\n", len(events))
	return nil
}
