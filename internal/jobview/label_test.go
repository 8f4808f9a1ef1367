package jobview

import (
	"testing"

	"github.com/amishk599/jobdesk/internal/model"
)

func TestFormatEnumLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty falls back", "", "N/A"},
		{"single underscore", "FULL_TIME", "FULL TIME"},
		{"multiple underscores", "CONTRACT_TO_HIRE", "CONTRACT TO HIRE"},
		{"mixed case preserved", "Contract_to_Hire", "Contract to Hire"},
		{"no underscores unchanged", "Remote", "Remote"},
		{"hyphen untouched", "Full-time", "Full-time"},
		{"leading and trailing underscores", "_PART_TIME_", " PART TIME "},
		{"only underscores", "__", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEnumLabel(tt.input); got != tt.want {
				t.Errorf("FormatEnumLabel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatEnumLabel_Idempotent(t *testing.T) {
	for _, in := range []string{"", "FULL_TIME", "A__B", "_x_", "plain"} {
		once := FormatEnumLabel(in)
		if twice := FormatEnumLabel(once); twice != once {
			t.Errorf("FormatEnumLabel not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNewSubHeader(t *testing.T) {
	job := model.Job{EmploymentType: "FULL_TIME", Schedule: "Full-time", Office: "San Francisco", Subcompany: "Tech Corp"}
	h := NewSubHeader(job)

	want := []string{"FULL TIME", "Full-time", "San Francisco"}
	if len(h.Items) != len(want) {
		t.Fatalf("Items = %v, want %v", h.Items, want)
	}
	for i := range want {
		if h.Items[i] != want[i] {
			t.Errorf("Items[%d] = %q, want %q", i, h.Items[i], want[i])
		}
	}
	if h.Company != "Tech Corp" {
		t.Errorf("Company = %q, want Tech Corp", h.Company)
	}
	if got := h.String(); got != "FULL TIME | Full-time | San Francisco | Tech Corp" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewSubHeader_AllMissingKeepsLayout(t *testing.T) {
	h := NewSubHeader(model.Job{})
	if got := h.String(); got != "N/A | N/A | N/A |" {
		t.Errorf("String() = %q, want three N/A tokens with separators", got)
	}
}
