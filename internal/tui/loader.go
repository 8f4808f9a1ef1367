package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobdesk/internal/model"
)

// ErrCancelled is returned by RunLoader when the user interrupts it.
var ErrCancelled = errors.New("cancelled")

const loadTimeout = 2 * time.Minute

// FetchFunc loads every job from the API.
type FetchFunc func(ctx context.Context) ([]model.Job, error)

type fetchDoneMsg struct {
	jobs []model.Job
	err  error
}

type loaderModel struct {
	ctx     context.Context
	label   string
	fetchFn FetchFunc
	spinner spinner.Model
	result  []model.Job
	err     error
	done    bool
}

func newLoaderModel(ctx context.Context, label string, fetchFn FetchFunc) loaderModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("33"))),
	)
	return loaderModel{ctx: ctx, label: label, fetchFn: fetchFn, spinner: s}
}

func (m loaderModel) Init() tea.Cmd {
	return tea.Batch(fetchCmd(m.ctx, m.fetchFn), m.spinner.Tick)
}

func fetchCmd(ctx context.Context, fetchFn FetchFunc) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, loadTimeout)
		defer cancel()
		jobs, err := fetchFn(ctx)
		return fetchDoneMsg{jobs: jobs, err: err}
	}
}

func (m loaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		m.result = msg.jobs
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.err = ErrCancelled
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m loaderModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s Loading %s...\n", m.spinner.View(), m.label)
}

// RunLoader shows a spinner while fetching jobs. It renders inline (no alt
// screen). Cancelling ctx aborts the fetch.
func RunLoader(ctx context.Context, label string, fetchFn FetchFunc) ([]model.Job, error) {
	p := tea.NewProgram(newLoaderModel(ctx, label, fetchFn))
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	final := result.(loaderModel)
	return final.result, final.err
}
