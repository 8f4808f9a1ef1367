package store

import (
	"testing"
	"time"

	"github.com/amishk599/jobdesk/internal/model"
)

var (
	_ model.JobStore      = (*NopStore)(nil)
	_ model.ModerationLog = (*NopStore)(nil)
)

func TestNopStore(t *testing.T) {
	s := NewNopStore()

	if err := s.MarkSeen(1); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	if seen, err := s.HasSeen(1); err != nil || seen {
		t.Errorf("HasSeen = %v, %v; want false, nil", seen, err)
	}
	if empty, err := s.IsEmpty(); err != nil || empty {
		t.Errorf("IsEmpty = %v, %v; want false, nil", empty, err)
	}

	if err := s.Record(model.ModerationEvent{JobID: 1, Action: model.ActionApprove, At: time.Now()}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if events, err := s.History(10); err != nil || len(events) != 0 {
		t.Errorf("History = %v, %v; want none", events, err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
