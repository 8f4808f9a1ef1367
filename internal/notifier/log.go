package notifier

import (
	"log/slog"

	"github.com/amishk599/jobdesk/internal/jobview"
	"github.com/amishk599/jobdesk/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes jobs awaiting review to the given logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs each job via slog.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs each job. Returns nil (stdout logging does not fail).
func (n *LogNotifier) Notify(jobs []model.Job) error {
	for _, j := range jobs {
		n.logger.Info("job pending review",
			"job_id", j.ID,
			"name", j.Name,
			"company", j.Subcompany,
			"employment_type", jobview.FormatEnumLabel(j.EmploymentType),
			"office", j.Office,
			"created_at", j.CreatedAt,
		)
	}
	return nil
}
