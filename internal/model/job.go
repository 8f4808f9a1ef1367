package model

import (
	"context"
	"encoding/json"
	"time"
)

// Markup is pre-sanitized HTML received from the job API. It is rendered as-is.
type Markup string

// Job is a job posting as returned by the job API. Status is derived from the
// three moderation flags when the job is decoded and is never sent back.
type Job struct {
	ID                 int              `json:"id"`
	Name               string           `json:"name"`
	Subcompany         string           `json:"subcompany"`
	Department         string           `json:"department"`
	Office             string           `json:"office"`
	EmploymentType     string           `json:"employmentType"`
	Schedule           string           `json:"schedule"`
	Occupation         string           `json:"occupation"`
	OccupationCategory string           `json:"occupationCategory"`
	RecruitingCategory string           `json:"recruitingCategory"`
	Seniority          string           `json:"seniority"`
	YearsOfExperience  string           `json:"yearsOfExperience"`
	JobDescriptions    []JobDescription `json:"jobDescriptions"`
	CreatedAt          string           `json:"createdAt"`
	IsPending          bool             `json:"isPending"`
	IsSpam             bool             `json:"isSpam"`
	IsApproved         bool             `json:"isApproved"`
	User               *JobUser         `json:"user,omitempty"`

	Status Status `json:"-"`
}

// JobDescription is one named rich-text section of a job posting.
type JobDescription struct {
	Name  string `json:"name"`
	Value Markup `json:"value"`
}

// JobUser is the account that posted a job.
type JobUser struct {
	FullName string `json:"fullName"`
}

// UnmarshalJSON decodes a job and classifies its status flags once.
func (j *Job) UnmarshalJSON(data []byte) error {
	type rawJob Job
	var raw rawJob
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*j = Job(raw)
	j.Status = Classify(j.IsPending, j.IsApproved, j.IsSpam)
	return nil
}

// PostedBy returns the poster's full name, or "" when the API omitted it.
func (j Job) PostedBy() string {
	if j.User == nil {
		return ""
	}
	return j.User.FullName
}

// JobsPage is the payload of the public listing endpoint. A nil slice means
// the field was absent or null in the response.
type JobsPage struct {
	Jobs               []Job `json:"jobs"`
	CachedExternalJobs []Job `json:"cachedExternalJobs"`
}

// Action is a moderation decision.
type Action string

const (
	ActionApprove    Action = "approve"
	ActionMarkAsSpam Action = "mark-as-spam"
)

// ModerationEvent records a moderation action taken through jobdesk.
type ModerationEvent struct {
	JobID  int
	Action Action
	Source string // "web", "tui" or "cli"
	At     time.Time
}

// JobBoard reads jobs from the job API.
type JobBoard interface {
	ListJobs(ctx context.Context) (JobsPage, error)
	GetJob(ctx context.Context, id int) (Job, error)
	ListAllJobs(ctx context.Context) ([]Job, error)
}

// JobModerator applies moderation decisions to a job.
type JobModerator interface {
	Approve(ctx context.Context, id int) error
	MarkAsSpam(ctx context.Context, id int) error
}

// JobStore tracks which pending job IDs moderators were already alerted about.
type JobStore interface {
	HasSeen(jobID int) (bool, error)
	MarkSeen(jobID int) error
	IsEmpty() (bool, error)
}

// ModerationLog persists moderation events.
type ModerationLog interface {
	Record(e ModerationEvent) error
	History(limit int) ([]ModerationEvent, error)
}

// Notifier alerts moderators about jobs waiting for review.
type Notifier interface {
	Notify(jobs []Job) error
}

// JobFilter decides whether a job matches a listing query.
type JobFilter interface {
	Match(job Job) bool
}
