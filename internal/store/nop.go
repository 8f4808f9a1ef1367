package store

import "github.com/amishk599/jobdesk/internal/model"

// NopStore is used when persistence is disabled. It never marks jobs as seen
// and drops moderation events.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) HasSeen(jobID int) (bool, error) {
	return false, nil
}

func (s *NopStore) MarkSeen(jobID int) error {
	return nil
}

func (s *NopStore) IsEmpty() (bool, error) {
	return false, nil
}

func (s *NopStore) Record(e model.ModerationEvent) error {
	return nil
}

func (s *NopStore) History(limit int) ([]model.ModerationEvent, error) {
	return nil, nil
}

func (s *NopStore) Close() error {
	return nil
}
