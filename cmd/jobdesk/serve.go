package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/amishk599/jobdesk/internal/moderation"
	"github.com/amishk599/jobdesk/internal/poller"
	"github.com/amishk599/jobdesk/internal/scheduler"
	"github.com/amishk599/jobdesk/internal/web"
)

var serveWatch bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the job listing and moderation pages",
	Long:  "Starts the web front-end; blocks until SIGINT/SIGTERM. With --watch the pending-queue watcher runs alongside it.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "also watch the moderation queue and notify about new pending jobs")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	cfg := mustLoadAPIConfig(logger)

	logger.Info("config loaded",
		"api", cfg.API.BaseURL,
		"listen_addr", cfg.Site.ListenAddr,
		"apply_url", cfg.Site.ApplyURL,
		"watch", serveWatch,
	)

	st, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	client := newAPIClient(cfg)
	svc := moderation.NewService(client, st, moderation.SourceWeb, logger)

	srv, err := web.NewServer(client, svc, cfg.Site.ApplyURL, logger)
	if err != nil {
		return fmt.Errorf("building web server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, cfg.Site.ListenAddr)
	})

	if serveWatch {
		httpClient := &http.Client{Timeout: cfg.API.Timeout}
		n := setupNotifier(cfg, httpClient, logger)
		qp := poller.NewQueuePoller(client, st, n, cfg.Watch.NotifyExisting, logger)
		sched := scheduler.NewScheduler(qp, cfg.Watch.Interval, logger)
		g.Go(func() error {
			return sched.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serving: %w", err)
	}

	logger.Info("goodbye")
	return nil
}
