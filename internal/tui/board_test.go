package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/jobdesk/internal/filter"
	"github.com/amishk599/jobdesk/internal/model"
)

// --- Fakes ---

type RecordingModerator struct {
	Approved []int
	Spammed  []int
	Err      error
}

func (m *RecordingModerator) Approve(_ context.Context, id int) error {
	m.Approved = append(m.Approved, id)
	return m.Err
}

func (m *RecordingModerator) MarkAsSpam(_ context.Context, id int) error {
	m.Spammed = append(m.Spammed, id)
	return m.Err
}

// --- Helpers ---

func testJobs() []model.Job {
	return []model.Job{
		{ID: 1, Name: "Pending One", Subcompany: "Acme", IsPending: true, Status: model.StatusPending},
		{ID: 2, Name: "Approved", Subcompany: "Acme", IsApproved: true, Status: model.StatusApproved},
		{ID: 3, Name: "Pending Two", Subcompany: "Beta", IsPending: true, Status: model.StatusPending,
			JobDescriptions: []model.JobDescription{{Name: "About", Value: "<p>Ship it</p>"}},
			User:            &model.JobUser{FullName: "Grace Hopper"}},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pendingBoard(mod *RecordingModerator, fetch FetchFunc) boardModel {
	q := Queue{Label: "Pending", Filter: filter.NewStatusFilter(model.StatusPending)}
	m := newBoardModel(context.Background(), q, testJobs(), fetch, mod)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(boardModel)
}

func staticFetch(jobs []model.Job) FetchFunc {
	return func(context.Context) ([]model.Job, error) { return jobs, nil }
}

// --- Tests ---

func TestBoard_FiltersByQueue(t *testing.T) {
	m := pendingBoard(&RecordingModerator{}, staticFetch(nil))
	if len(m.jobs) != 2 {
		t.Fatalf("jobs = %d, want 2", len(m.jobs))
	}
	if m.jobs[0].ID != 1 || m.jobs[1].ID != 3 {
		t.Errorf("jobs = %v", m.jobs)
	}
	if !strings.Contains(m.View(), "2 jobs | 2 pending | 0 approved | 0 spam") {
		t.Error("status bar should show queue counts")
	}
}

func TestBoard_ApproveThenReload(t *testing.T) {
	mod := &RecordingModerator{}
	after := testJobs()
	after[0].IsPending, after[0].IsApproved, after[0].Status = false, true, model.StatusApproved
	m := pendingBoard(mod, staticFetch(after))

	next, cmd := m.Update(key("a"))
	m = next.(boardModel)
	if cmd == nil || !m.busy {
		t.Fatal("expected approve to start")
	}
	done, ok := cmd().(actionDoneMsg)
	if !ok {
		t.Fatal("expected actionDoneMsg")
	}
	if len(mod.Approved) != 1 || mod.Approved[0] != 1 {
		t.Errorf("approved = %v, want [1]", mod.Approved)
	}

	next, cmd = m.Update(done)
	m = next.(boardModel)
	if cmd == nil {
		t.Fatal("expected reload after a successful action")
	}
	next, _ = m.Update(cmd())
	m = next.(boardModel)

	if m.busy {
		t.Error("board should be idle after reload")
	}
	if len(m.jobs) != 1 || m.jobs[0].ID != 3 {
		t.Errorf("jobs after reload = %v, want only job 3", m.jobs)
	}
}

func TestBoard_SpamSelectedRow(t *testing.T) {
	mod := &RecordingModerator{}
	m := pendingBoard(mod, staticFetch(testJobs()))

	next, _ := m.Update(key("down"))
	m = next.(boardModel)
	_, cmd := m.Update(key("x"))
	if cmd == nil {
		t.Fatal("expected spam action")
	}
	cmd()
	if len(mod.Spammed) != 1 || mod.Spammed[0] != 3 {
		t.Errorf("spammed = %v, want [3]", mod.Spammed)
	}
}

func TestBoard_ActionErrorShown(t *testing.T) {
	mod := &RecordingModerator{Err: errors.New("forbidden")}
	m := pendingBoard(mod, staticFetch(testJobs()))

	next, cmd := m.Update(key("a"))
	m = next.(boardModel)
	next, cmd = m.Update(cmd())
	m = next.(boardModel)

	if cmd != nil {
		t.Error("failed action should not reload")
	}
	if !m.failed || !strings.Contains(m.notice, "forbidden") {
		t.Errorf("notice = %q failed=%v", m.notice, m.failed)
	}
	if m.busy {
		t.Error("board should be idle after a failed action")
	}
}

func TestBoard_DetailView(t *testing.T) {
	mod := &RecordingModerator{}
	m := pendingBoard(mod, staticFetch(testJobs()))

	next, _ := m.Update(key("down"))
	m = next.(boardModel)
	next, _ = m.Update(key("enter"))
	m = next.(boardModel)

	if m.view != viewDetail || m.shown.ID != 3 {
		t.Fatalf("view = %v shown = %d", m.view, m.shown.ID)
	}
	detail := m.renderDetail()
	for _, want := range []string{"Pending Two", "Pending", "Posted by Grace Hopper", "About", "Ship it"} {
		if !strings.Contains(detail, want) {
			t.Errorf("detail missing %q", want)
		}
	}

	_, cmd := m.Update(key("a"))
	if cmd == nil {
		t.Fatal("expected approve from detail view")
	}
	cmd()
	if len(mod.Approved) != 1 || mod.Approved[0] != 3 {
		t.Errorf("approved = %v, want [3]", mod.Approved)
	}

	next, _ = m.Update(key("esc"))
	if next.(boardModel).view != viewList {
		t.Error("esc should return to the list")
	}
}

func TestBoard_QuitAndBack(t *testing.T) {
	m := pendingBoard(&RecordingModerator{}, staticFetch(nil))

	next, cmd := m.Update(key("q"))
	if cmd == nil || !next.(boardModel).wantQuit {
		t.Error("q should quit")
	}
	next, cmd = m.Update(key("esc"))
	if cmd == nil || next.(boardModel).wantQuit {
		t.Error("esc should return to the picker")
	}
}

func TestBoard_EmptyQueueIgnoresActions(t *testing.T) {
	mod := &RecordingModerator{}
	q := Queue{Label: "Spam", Filter: filter.NewStatusFilter(model.StatusSpam)}
	m := newBoardModel(context.Background(), q, testJobs(), staticFetch(nil), mod)

	if _, cmd := m.Update(key("a")); cmd != nil {
		t.Error("approve on an empty queue should do nothing")
	}
	if _, cmd := m.Update(key("enter")); cmd != nil {
		t.Error("enter on an empty queue should do nothing")
	}
}

func TestPicker(t *testing.T) {
	m := pickerModel{queues: DefaultQueues(), chosen: -1}

	next, _ := m.Update(key("down"))
	next, _ = next.Update(key("enter"))
	if got := next.(pickerModel).chosen; got != 1 {
		t.Errorf("chosen = %d, want 1", got)
	}

	next, _ = m.Update(key("q"))
	if got := next.(pickerModel).chosen; got != -2 {
		t.Errorf("chosen after q = %d, want -2", got)
	}
}

func TestDefaultQueues(t *testing.T) {
	qs := DefaultQueues()
	want := []string{"All jobs", "Pending", "Approved", "Spam", "Unknown"}
	if len(qs) != len(want) {
		t.Fatalf("queues = %d, want %d", len(qs), len(want))
	}
	for i, q := range qs {
		if q.Label != want[i] {
			t.Errorf("queue %d = %q, want %q", i, q.Label, want[i])
		}
	}
	if qs[0].Filter != nil {
		t.Error("All jobs should not filter")
	}
}
