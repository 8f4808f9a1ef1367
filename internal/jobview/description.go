package jobview

import "github.com/amishk599/jobdesk/internal/model"

// Section is one rendered description of the detail view.
type Section struct {
	Name  string
	Value model.Markup
}

// SummaryMarkup returns the first description's markup for card views.
// A missing list, an empty list or an empty first value all yield Fallback.
func SummaryMarkup(descs []model.JobDescription) model.Markup {
	if len(descs) == 0 || descs[0].Value == "" {
		return Fallback
	}
	return descs[0].Value
}

// DetailSections returns every description in order. Unlike SummaryMarkup
// there is no fallback: an empty value keeps its heading with an empty body,
// and no descriptions means no sections.
func DetailSections(descs []model.JobDescription) []Section {
	sections := make([]Section, 0, len(descs))
	for _, d := range descs {
		sections = append(sections, Section{Name: d.Name, Value: d.Value})
	}
	return sections
}
