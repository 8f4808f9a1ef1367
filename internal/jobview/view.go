package jobview

import (
	"fmt"
	"strings"

	"github.com/amishk599/jobdesk/internal/model"
)

// Card is a job as shown in the public listing grid.
type Card struct {
	ID      int
	Name    string
	Company string
	Summary model.Markup
	Badges  []string
	Href    string
}

func NewCard(job model.Job) Card {
	return Card{
		ID:      job.ID,
		Name:    job.Name,
		Company: job.Subcompany,
		Summary: SummaryMarkup(job.JobDescriptions),
		Badges: []string{
			FormatEnumLabel(job.EmploymentType),
			FormatEnumLabel(job.Schedule),
			job.Office,
			job.Department,
		},
		Href: ListingHref(job.ID),
	}
}

// NewCards builds one card per job, keeping order.
func NewCards(jobs []model.Job) []Card {
	cards := make([]Card, 0, len(jobs))
	for _, j := range jobs {
		cards = append(cards, NewCard(j))
	}
	return cards
}

// Detail is a job as shown on its own page.
type Detail struct {
	ID        int
	Name      string
	Status    model.Status
	SubHeader SubHeader
	Sections  []Section
	ApplyURL  string
}

// NewDetail builds the detail view. applyBase is the public site jobs are
// applied on; when empty the detail has no apply link.
func NewDetail(job model.Job, applyBase string) Detail {
	return Detail{
		ID:        job.ID,
		Name:      job.Name,
		Status:    job.Status,
		SubHeader: NewSubHeader(job),
		Sections:  DetailSections(job.JobDescriptions),
		ApplyURL:  ApplyURL(applyBase, job.ID),
	}
}

// Row is a job as shown in the moderation table.
type Row struct {
	ID       int
	Name     string
	Company  string
	PostedBy string
	Status   model.Status
	Href     string
}

func NewRow(job model.Job) Row {
	return Row{
		ID:       job.ID,
		Name:     job.Name,
		Company:  job.Subcompany,
		PostedBy: job.PostedBy(),
		Status:   job.Status,
		Href:     ManageHref(job.ID),
	}
}

func NewRows(jobs []model.Job) []Row {
	rows := make([]Row, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, NewRow(j))
	}
	return rows
}

func ListingHref(id int) string { return fmt.Sprintf("/job-listings/%d", id) }
func ManageHref(id int) string  { return fmt.Sprintf("/manage-jobs/%d", id) }

// ApplyURL returns the external application link for a job.
func ApplyURL(base string, id int) string {
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s/job/%d#apply", strings.TrimRight(base, "/"), id)
}
