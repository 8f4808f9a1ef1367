package filter

import (
	"strings"

	"github.com/amishk599/jobdesk/internal/model"
)

var _ model.JobFilter = (*KeywordFilter)(nil)

// KeywordFilter matches jobs whose name, company, office or department
// contain every term of a query. Matching is case-insensitive and an empty
// query matches every job.
type KeywordFilter struct {
	terms []string
}

// NewKeywordFilter splits query on whitespace into terms.
func NewKeywordFilter(query string) *KeywordFilter {
	var terms []string
	for _, t := range strings.Fields(query) {
		terms = append(terms, strings.ToLower(t))
	}
	return &KeywordFilter{terms: terms}
}

// Match returns true if every term occurs in at least one searchable field.
func (f *KeywordFilter) Match(job model.Job) bool {
	if len(f.terms) == 0 {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{
		job.Name, job.Subcompany, job.Office, job.Department,
	}, "\n"))

	for _, t := range f.terms {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}

// StatusFilter matches jobs with the given moderation status.
type StatusFilter struct {
	status model.Status
}

func NewStatusFilter(status model.Status) *StatusFilter {
	return &StatusFilter{status: status}
}

func (f *StatusFilter) Match(job model.Job) bool {
	return job.Status == f.status
}

// Apply returns the jobs matched by f, keeping order. A nil filter keeps all.
func Apply(f model.JobFilter, jobs []model.Job) []model.Job {
	if f == nil {
		return jobs
	}
	matched := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Match(j) {
			matched = append(matched, j)
		}
	}
	return matched
}
