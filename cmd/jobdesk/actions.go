package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobdesk/internal/model"
	"github.com/amishk599/jobdesk/internal/moderation"
)

var approveCmd = &cobra.Command{
	Use:   "approve <job-id>",
	Short: "Approve a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd.Context(), model.ActionApprove, args[0])
	},
}

var spamCmd = &cobra.Command{
	Use:   "spam <job-id>",
	Short: "Mark a job as spam",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd.Context(), model.ActionMarkAsSpam, args[0])
	},
}

func init() {
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(spamCmd)
}

func runAction(ctx context.Context, action model.Action, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid job id %q", arg)
	}

	logger := setupLogger(debug)
	cfg := mustLoadAPIConfig(logger)

	st, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	svc := moderation.NewService(newAPIClient(cfg), st, moderation.SourceCLI, logger)
	return svc.Do(ctx, action, id)
}
