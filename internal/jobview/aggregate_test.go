package jobview

import (
	"errors"
	"testing"

	"github.com/amishk599/jobdesk/internal/model"
)

func ids(jobs []model.Job) []int {
	out := make([]int, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAggregate_PreservesOrder(t *testing.T) {
	primary := []model.Job{{ID: 1}}
	secondary := []model.Job{{ID: 2}, {ID: 3}}

	got, err := Aggregate(primary, secondary)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if !equalInts(ids(got), []int{1, 2, 3}) {
		t.Errorf("ids = %v, want [1 2 3]", ids(got))
	}
}

func TestAggregate_NoDedup(t *testing.T) {
	got, err := Aggregate([]model.Job{{ID: 5}, {ID: 4}}, []model.Job{{ID: 5}})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if !equalInts(ids(got), []int{5, 4, 5}) {
		t.Errorf("ids = %v, want [5 4 5]", ids(got))
	}
}

func TestAggregate_EmptyCollections(t *testing.T) {
	got, err := Aggregate([]model.Job{}, []model.Job{})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no jobs, got %v", ids(got))
	}
}

func TestAggregate_MissingCollection(t *testing.T) {
	tests := []struct {
		name               string
		primary, secondary []model.Job
	}{
		{"missing primary", nil, []model.Job{}},
		{"missing secondary", []model.Job{}, nil},
		{"both missing", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate(tt.primary, tt.secondary)
			if !errors.Is(err, ErrMissingCollection) {
				t.Errorf("Aggregate() error = %v, want ErrMissingCollection", err)
			}
		})
	}
}

func TestAggregate_DoesNotAliasInputs(t *testing.T) {
	primary := make([]model.Job, 1, 4)
	primary[0] = model.Job{ID: 1}
	got, err := Aggregate(primary, []model.Job{{ID: 2}})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	got[0].ID = 99
	if primary[0].ID != 1 {
		t.Error("Aggregate result shares storage with primary")
	}
}

func TestListing(t *testing.T) {
	page := model.JobsPage{
		Jobs:               []model.Job{{ID: 1}, {ID: 2}},
		CachedExternalJobs: []model.Job{{ID: 10}},
	}
	got, err := Listing(page)
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}
	if !equalInts(ids(got), []int{1, 2, 10}) {
		t.Errorf("ids = %v, want [1 2 10]", ids(got))
	}

	if _, err := Listing(model.JobsPage{Jobs: []model.Job{}}); !errors.Is(err, ErrMissingCollection) {
		t.Errorf("Listing without cachedExternalJobs: error = %v, want ErrMissingCollection", err)
	}
}
