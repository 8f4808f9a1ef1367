package jobview

import (
	"errors"
	"fmt"

	"github.com/amishk599/jobdesk/internal/model"
)

// ErrMissingCollection means a job collection was absent from an API payload.
var ErrMissingCollection = errors.New("missing job collection")

// Aggregate returns primary followed by secondary, each in its own order.
// Both must be present: a nil slice is an error, an empty one is not.
// Jobs are neither deduplicated nor reordered.
func Aggregate(primary, secondary []model.Job) ([]model.Job, error) {
	if primary == nil {
		return nil, fmt.Errorf("aggregate: %w: primary", ErrMissingCollection)
	}
	if secondary == nil {
		return nil, fmt.Errorf("aggregate: %w: secondary", ErrMissingCollection)
	}
	jobs := make([]model.Job, 0, len(primary)+len(secondary))
	jobs = append(jobs, primary...)
	jobs = append(jobs, secondary...)
	return jobs, nil
}

// Listing merges the first-party and cached external jobs of a listing page.
func Listing(page model.JobsPage) ([]model.Job, error) {
	if page.Jobs == nil {
		return nil, fmt.Errorf("listing: %w: jobs", ErrMissingCollection)
	}
	if page.CachedExternalJobs == nil {
		return nil, fmt.Errorf("listing: %w: cachedExternalJobs", ErrMissingCollection)
	}
	return Aggregate(page.Jobs, page.CachedExternalJobs)
}
