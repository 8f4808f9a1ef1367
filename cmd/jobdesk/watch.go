package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobdesk/internal/poller"
	"github.com/amishk599/jobdesk/internal/scheduler"
	"github.com/amishk599/jobdesk/internal/store"
)

var watchOnce bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the moderation queue and notify about new pending jobs",
	Long:  "Polls the job API on watch.interval; blocks until SIGINT/SIGTERM. With --once it polls once without recording anything and exits.",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "poll once, notify, do not mark jobs as seen, then exit")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	cfg := mustLoadAPIConfig(logger)

	logger.Info("config loaded",
		"api", cfg.API.BaseURL,
		"interval", cfg.Watch.Interval.String(),
		"notify_existing", cfg.Watch.NotifyExisting,
	)

	client := newAPIClient(cfg)
	n := setupNotifier(cfg, &http.Client{Timeout: cfg.API.Timeout}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if watchOnce {
		logger.Info("once mode: no jobs will be marked as seen")
		qp := poller.NewQueuePoller(client, store.NewNopStore(), n, true, logger)
		if err := qp.Poll(ctx); err != nil {
			logger.Error("poll failed", "error", err)
			os.Exit(1)
		}
		return nil
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	qp := poller.NewQueuePoller(client, st, n, cfg.Watch.NotifyExisting, logger)
	sched := scheduler.NewScheduler(qp, cfg.Watch.Interval, logger)
	if err := sched.Run(ctx); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	logger.Info("goodbye")
	return nil
}
