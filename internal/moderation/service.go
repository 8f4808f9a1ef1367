// Package moderation applies moderation actions to jobs and keeps an
// operator-side record of what was done.
package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amishk599/jobdesk/internal/model"
)

// Sources identify which front-end took an action.
const (
	SourceWeb = "web"
	SourceTUI = "tui"
	SourceCLI = "cli"
)

// Service approves jobs or marks them as spam through the job API and
// records each successful action.
type Service struct {
	moderator model.JobModerator
	log       model.ModerationLog
	source    string
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(moderator model.JobModerator, log model.ModerationLog, source string, logger *slog.Logger) *Service {
	return &Service{
		moderator: moderator,
		log:       log,
		source:    source,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) Approve(ctx context.Context, jobID int) error {
	return s.apply(ctx, jobID, model.ActionApprove, s.moderator.Approve)
}

func (s *Service) MarkAsSpam(ctx context.Context, jobID int) error {
	return s.apply(ctx, jobID, model.ActionMarkAsSpam, s.moderator.MarkAsSpam)
}

// Do dispatches on action.
func (s *Service) Do(ctx context.Context, action model.Action, jobID int) error {
	switch action {
	case model.ActionApprove:
		return s.Approve(ctx, jobID)
	case model.ActionMarkAsSpam:
		return s.MarkAsSpam(ctx, jobID)
	default:
		return fmt.Errorf("unknown moderation action %q", action)
	}
}

func (s *Service) apply(ctx context.Context, jobID int, action model.Action, call func(context.Context, int) error) error {
	if err := call(ctx, jobID); err != nil {
		return fmt.Errorf("%s job %d: %w", action, jobID, err)
	}

	event := model.ModerationEvent{
		JobID:  jobID,
		Action: action,
		Source: s.source,
		At:     s.now().UTC(),
	}
	// The API call already succeeded, so a failed write is only logged.
	if err := s.log.Record(event); err != nil {
		s.logger.Warn("failed to record moderation event",
			"job_id", jobID,
			"action", string(action),
			"error", err,
		)
	}

	s.logger.Info("job moderated",
		"job_id", jobID,
		"action", string(action),
		"source", s.source,
	)
	return nil
}
