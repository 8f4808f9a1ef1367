// Package tui is the terminal moderation UI: a queue picker, a loading
// spinner and a job board with approve/spam actions.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobdesk/internal/filter"
	"github.com/amishk599/jobdesk/internal/model"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Padding(1, 0, 1, 2)

	pickerItemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 0, 0, 2)

	pickerHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)
)

// Queue is a named view over all jobs. A nil Filter shows every job.
type Queue struct {
	Label  string
	Filter model.JobFilter
}

// DefaultQueues lists every job, then one queue per status.
func DefaultQueues() []Queue {
	return []Queue{
		{Label: "All jobs"},
		{Label: "Pending", Filter: filter.NewStatusFilter(model.StatusPending)},
		{Label: "Approved", Filter: filter.NewStatusFilter(model.StatusApproved)},
		{Label: "Spam", Filter: filter.NewStatusFilter(model.StatusSpam)},
		{Label: "Unknown", Filter: filter.NewStatusFilter(model.StatusUnknown)},
	}
}

type pickerModel struct {
	queues []Queue
	cursor int
	chosen int // -1 = no choice yet, -2 = quit
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.chosen = -2
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.queues)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = m.cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := pickerTitleStyle.Render("Moderation - Select a queue")
	s += "\n"

	for i, q := range m.queues {
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+q.Label) + "\n"
		} else {
			s += pickerItemStyle.Render(q.Label) + "\n"
		}
	}

	s += pickerHintStyle.Render("↑/↓/j/k navigate  enter select  q quit")
	return s
}

// RunQueuePicker shows an interactive queue selector.
// Returns the index of the chosen queue, or -1 if the user quit.
func RunQueuePicker(queues []Queue) (int, error) {
	m := pickerModel{
		queues: queues,
		chosen: -1,
	}

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return -1, err
	}

	final := result.(pickerModel)
	if final.chosen < 0 {
		return -1, nil
	}
	return final.chosen, nil
}
