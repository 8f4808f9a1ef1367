package jobview

import (
	"testing"

	"github.com/amishk599/jobdesk/internal/model"
)

func TestSummaryMarkup(t *testing.T) {
	tests := []struct {
		name  string
		descs []model.JobDescription
		want  model.Markup
	}{
		{"nil", nil, "N/A"},
		{"empty list", []model.JobDescription{}, "N/A"},
		{"empty first value", []model.JobDescription{{Name: "d", Value: ""}}, "N/A"},
		{"first value", []model.JobDescription{{Name: "d", Value: "<p>x</p>"}}, "<p>x</p>"},
		{
			"only first is used",
			[]model.JobDescription{{Name: "a", Value: "<p>first</p>"}, {Name: "b", Value: "<p>second</p>"}},
			"<p>first</p>",
		},
		{
			"empty first does not fall through to second",
			[]model.JobDescription{{Name: "a", Value: ""}, {Name: "b", Value: "<p>second</p>"}},
			"N/A",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummaryMarkup(tt.descs); got != tt.want {
				t.Errorf("SummaryMarkup() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetailSections_Nil(t *testing.T) {
	if got := DetailSections(nil); len(got) != 0 {
		t.Errorf("DetailSections(nil) = %v, want no sections", got)
	}
}

func TestDetailSections_EmptyValueHasNoFallback(t *testing.T) {
	got := DetailSections([]model.JobDescription{{Name: "A", Value: ""}})
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].Name != "A" {
		t.Errorf("Name = %q, want A", got[0].Name)
	}
	if got[0].Value != "" {
		t.Errorf("Value = %q, want empty (no N/A in detail view)", got[0].Value)
	}
}

func TestDetailSections_KeepsOrder(t *testing.T) {
	descs := []model.JobDescription{
		{Name: "Description 1", Value: "<p>First description</p>"},
		{Name: "Description 2", Value: "<p>Second description</p>"},
		{Name: "", Value: "<p>Third description</p>"},
	}
	got := DetailSections(descs)
	if len(got) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(got))
	}
	for i := range descs {
		if got[i].Name != descs[i].Name || got[i].Value != descs[i].Value {
			t.Errorf("section %d = %+v, want %+v", i, got[i], descs[i])
		}
	}
}
