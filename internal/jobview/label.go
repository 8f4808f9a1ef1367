// Package jobview turns jobs from the API into what the listing, detail and
// moderation views display.
package jobview

import (
	"strings"

	"github.com/amishk599/jobdesk/internal/model"
)

// Fallback is shown in place of a missing coded field or summary.
const Fallback = "N/A"

// SubHeaderSeparator follows each formatted item of a sub-header.
const SubHeaderSeparator = "|"

// FormatEnumLabel turns a coded value such as FULL_TIME into FULL TIME.
// Case is preserved. An empty value (including a JSON null) yields Fallback.
func FormatEnumLabel(raw string) string {
	if raw == "" {
		return Fallback
	}
	return strings.ReplaceAll(raw, "_", " ")
}

// SubHeader is the line under a job title: employment type, schedule and
// office, each followed by a separator, then the company.
type SubHeader struct {
	Items   []string
	Company string
}

func NewSubHeader(job model.Job) SubHeader {
	return SubHeader{
		Items: []string{
			FormatEnumLabel(job.EmploymentType),
			FormatEnumLabel(job.Schedule),
			FormatEnumLabel(job.Office),
		},
		Company: job.Subcompany,
	}
}

func (h SubHeader) String() string {
	var b strings.Builder
	for _, item := range h.Items {
		b.WriteString(item)
		b.WriteString(" " + SubHeaderSeparator + " ")
	}
	b.WriteString(h.Company)
	return strings.TrimRight(b.String(), " ")
}
