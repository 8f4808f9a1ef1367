package poller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amishk599/jobdesk/internal/filter"
	"github.com/amishk599/jobdesk/internal/model"
)

// AllJobsLister is the part of the job API the poller needs.
type AllJobsLister interface {
	ListAllJobs(ctx context.Context) ([]model.Job, error)
}

// QueuePoller owns the poll pipeline for the moderation queue:
// fetch → keep pending → dedup → notify → mark seen.
type QueuePoller struct {
	lister         AllJobsLister
	filter         model.JobFilter
	store          model.JobStore
	notifier       model.Notifier
	notifyExisting bool
	baselineDone   bool // set after the first successful poll
	logger         *slog.Logger
}

// NewQueuePoller creates a poller wired with all its dependencies. When
// notifyExisting is false, the first poll against an empty store records the
// current queue without alerting. Later polls always alert, even if that
// first queue was empty.
func NewQueuePoller(
	lister AllJobsLister,
	store model.JobStore,
	notifier model.Notifier,
	notifyExisting bool,
	logger *slog.Logger,
) *QueuePoller {
	return &QueuePoller{
		lister:         lister,
		filter:         filter.NewStatusFilter(model.StatusPending),
		store:          store,
		notifier:       notifier,
		notifyExisting: notifyExisting,
		logger:         logger,
	}
}

// Poll runs one poll cycle.
func (p *QueuePoller) Poll(ctx context.Context) error {
	jobs, err := p.lister.ListAllJobs(ctx)
	if err != nil {
		return fmt.Errorf("polling queue: %w", err)
	}

	pending := filter.Apply(p.filter, jobs)

	baseline := false
	if !p.notifyExisting && !p.baselineDone {
		empty, err := p.store.IsEmpty()
		if err != nil {
			return fmt.Errorf("polling queue: checking store: %w", err)
		}
		baseline = empty
	}

	var newJobs []model.Job
	for _, job := range pending {
		seen, err := p.store.HasSeen(job.ID)
		if err != nil {
			return fmt.Errorf("polling queue: checking seen status: %w", err)
		}
		if !seen {
			newJobs = append(newJobs, job)
		}
	}

	if len(newJobs) > 0 && !baseline {
		if err := p.notifier.Notify(newJobs); err != nil {
			return fmt.Errorf("polling queue: notifying: %w", err)
		}
	}

	for _, job := range newJobs {
		if err := p.store.MarkSeen(job.ID); err != nil {
			return fmt.Errorf("polling queue: marking seen: %w", err)
		}
	}

	p.baselineDone = true

	p.logger.Info("polled moderation queue",
		"fetched", len(jobs),
		"pending", len(pending),
		"new", len(newJobs),
		"baseline", baseline,
	)

	return nil
}
