package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobdesk/internal/moderation"
	"github.com/amishk599/jobdesk/internal/tui"
)

var moderateCmd = &cobra.Command{
	Use:   "moderate",
	Short: "Moderate jobs interactively (TUI)",
	Long:  "Shows the queue picker, then a job board where jobs can be approved or marked as spam.",
	RunE:  runModerate,
}

func init() {
	rootCmd.AddCommand(moderateCmd)
}

func runModerate(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	cfg := mustLoadAPIConfig(logger)

	st, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// The TUI owns the terminal; any log output would corrupt the display.
	silentLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := newAPIClient(cfg)
	svc := moderation.NewService(client, st, moderation.SourceTUI, silentLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queues := tui.DefaultQueues()
	for {
		choice, err := tui.RunQueuePicker(queues)
		if err != nil {
			fmt.Printf("Picker error: %v\n", err)
			return nil
		}
		if choice < 0 {
			return nil
		}
		queue := queues[choice]

		jobs, err := tui.RunLoader(ctx, queue.Label, client.ListAllJobs)
		if errors.Is(err, tui.ErrCancelled) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			fmt.Printf("Error loading jobs: %v\n", err)
			continue
		}

		wantQuit, err := tui.RunBoard(ctx, queue, jobs, client.ListAllJobs, svc)
		if err != nil {
			fmt.Printf("TUI error: %v\n", err)
		}
		if wantQuit || ctx.Err() != nil {
			return nil
		}
		// else: loop → back to picker
	}
}
