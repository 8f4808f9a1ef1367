package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobdesk/internal/filter"
	"github.com/amishk599/jobdesk/internal/jobview"
	"github.com/amishk599/jobdesk/internal/model"
)

const actionTimeout = 30 * time.Second

type viewState int

const (
	viewList viewState = iota
	viewDetail
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15"))

	subHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	descBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// accentColors maps status accents to terminal colours.
var accentColors = map[model.Accent]lipgloss.Color{
	model.AccentGreen:  lipgloss.Color("42"),
	model.AccentRed:    lipgloss.Color("196"),
	model.AccentYellow: lipgloss.Color("220"),
}

func statusStyle(st model.Status) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if c, ok := accentColors[st.Accent()]; ok {
		s = s.Foreground(c)
	}
	return s
}

// actionDoneMsg is sent when an approve or spam call returns.
type actionDoneMsg struct {
	jobID  int
	action model.Action
	err    error
}

// reloadedMsg is sent when the job list has been fetched again.
type reloadedMsg struct {
	jobs []model.Job
	err  error
}

type boardModel struct {
	ctx       context.Context
	queue     Queue
	jobs      []model.Job
	fetch     FetchFunc
	moderator model.JobModerator

	table  table.Model
	detail viewport.Model
	view   viewState
	shown  model.Job

	busy     bool
	notice   string
	failed   bool
	width    int
	height   int
	ready    bool
	wantQuit bool
}

func newBoardModel(ctx context.Context, queue Queue, all []model.Job, fetch FetchFunc, moderator model.JobModerator) boardModel {
	t := table.New(
		table.WithColumns(boardColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m := boardModel{
		ctx:       ctx,
		queue:     queue,
		fetch:     fetch,
		moderator: moderator,
		table:     t,
	}
	m.setJobs(all)
	return m
}

func boardColumns(width int) []table.Column {
	// Name gets what is left after the fixed columns and cell padding.
	name := max(width-20-18-10-8, 16)
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Company", Width: 20},
		{Title: "Posted By", Width: 18},
		{Title: "Status", Width: 10},
	}
}

func (m *boardModel) setJobs(all []model.Job) {
	m.jobs = filter.Apply(m.queue.Filter, all)
	rows := make([]table.Row, 0, len(m.jobs))
	for _, r := range jobview.NewRows(m.jobs) {
		rows = append(rows, table.Row{r.Name, r.Company, r.PostedBy, r.Status.Label()})
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m boardModel) selected() (model.Job, bool) {
	if len(m.jobs) == 0 {
		return model.Job{}, false
	}
	c := m.table.Cursor()
	if c < 0 || c >= len(m.jobs) {
		return model.Job{}, false
	}
	return m.jobs[c], true
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.busy = false
			m.failed = true
			m.notice = fmt.Sprintf("%s job %d failed: %v", msg.action, msg.jobID, msg.err)
			return m, nil
		}
		m.failed = false
		m.notice = fmt.Sprintf("%s job %d done", msg.action, msg.jobID)
		m.view = viewList
		return m, m.reloadCmd()

	case reloadedMsg:
		m.busy = false
		if msg.err != nil {
			m.failed = true
			m.notice = fmt.Sprintf("reload failed: %v", msg.err)
			return m, nil
		}
		m.setJobs(msg.jobs)
		return m, nil

	case tea.KeyMsg:
		if m.view == viewDetail {
			return m.updateDetailView(msg)
		}
		return m.updateListView(msg)
	}

	return m, nil
}

func (m boardModel) updateListView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.wantQuit = true
		return m, tea.Quit
	case "esc", "b":
		m.wantQuit = false
		return m, tea.Quit
	case "enter":
		job, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.view = viewDetail
		m.shown = job
		m.detail = viewport.New(max(m.width-4, 20), max(m.height-4, 5))
		m.detail.SetContent(m.renderDetail())
		return m, nil
	case "a":
		if job, ok := m.selected(); ok {
			return m.startAction(job.ID, model.ActionApprove)
		}
		return m, nil
	case "x":
		if job, ok := m.selected(); ok {
			return m.startAction(job.ID, model.ActionMarkAsSpam)
		}
		return m, nil
	case "r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.notice = ""
		return m, m.reloadCmd()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m boardModel) updateDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.wantQuit = true
		return m, tea.Quit
	case "esc", "backspace":
		m.view = viewList
		return m, nil
	case "a":
		return m.startAction(m.shown.ID, model.ActionApprove)
	case "x":
		return m.startAction(m.shown.ID, model.ActionMarkAsSpam)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m boardModel) startAction(jobID int, action model.Action) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.failed = false
	m.notice = fmt.Sprintf("%s job %d...", action, jobID)
	return m, m.actionCmd(jobID, action)
}

func (m boardModel) actionCmd(jobID int, action model.Action) tea.Cmd {
	ctx, moderator := m.ctx, m.moderator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, actionTimeout)
		defer cancel()

		var err error
		if action == model.ActionApprove {
			err = moderator.Approve(ctx, jobID)
		} else {
			err = moderator.MarkAsSpam(ctx, jobID)
		}
		return actionDoneMsg{jobID: jobID, action: action, err: err}
	}
}

func (m boardModel) reloadCmd() tea.Cmd {
	ctx, fetch := m.ctx, m.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, loadTimeout)
		defer cancel()
		jobs, err := fetch(ctx)
		return reloadedMsg{jobs: jobs, err: err}
	}
}

func (m *boardModel) recalcLayout() {
	// Header (1) + border (2) + table header (2) + status bar (1).
	m.table.SetColumns(boardColumns(m.width - 4))
	m.table.SetWidth(max(m.width-2, 20))
	m.table.SetHeight(max(m.height-6, 3))
	if m.view == viewDetail {
		m.detail.Width = max(m.width-4, 20)
		m.detail.Height = max(m.height-4, 5)
		m.detail.SetContent(m.renderDetail())
	}
	m.ready = true
}

func (m boardModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.view == viewDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m boardModel) viewList() string {
	header := headerStyle.Render(fmt.Sprintf("%s (%d)", m.queue.Label, len(m.jobs)))
	body := borderStyle.Render(m.table.View())

	hints := "↑/↓ move  enter open  a approve  x spam  r reload  esc queues  q quit"
	return header + "\n" + body + "\n" + m.statusBar(countsText(m.jobs)+"    "+hints)
}

func (m boardModel) viewDetail() string {
	content := borderStyle.Width(max(m.width-2, 20)).Render(m.detail.View())
	hints := "a approve  x spam  ↑/↓ scroll  esc back  q quit"
	return headerStyle.Render("Job Details") + "\n" + content + "\n" + m.statusBar(hints)
}

func (m boardModel) statusBar(text string) string {
	bar := statusBarStyle.Width(m.width).Render(" " + text)
	if m.notice == "" {
		return bar
	}
	style := noticeStyle
	if m.failed {
		style = errorStyle
	}
	return style.Render(" "+m.notice) + "\n" + bar
}

func countsText(jobs []model.Job) string {
	counts := make(map[model.Status]int)
	for _, j := range jobs {
		counts[j.Status]++
	}
	return fmt.Sprintf("%d jobs | %d pending | %d approved | %d spam",
		len(jobs), counts[model.StatusPending], counts[model.StatusApproved], counts[model.StatusSpam])
}

func (m boardModel) renderDetail() string {
	d := jobview.NewDetail(m.shown, "")
	wrapWidth := max(m.width-8, 20)

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(d.Name))
	b.WriteString(" | ")
	b.WriteString(statusStyle(d.Status).Render(d.Status.Label()))
	b.WriteString("\n")
	b.WriteString(subHeaderStyle.Render(d.SubHeader.String()))
	b.WriteString("\n")
	if by := m.shown.PostedBy(); by != "" {
		b.WriteString(subHeaderStyle.Render("Posted by " + by))
		b.WriteString("\n")
	}

	for _, s := range d.Sections {
		b.WriteString("\n")
		b.WriteString(sectionTitleStyle.Render(s.Name))
		b.WriteString("\n")
		b.WriteString(descBodyStyle.Render(wordWrap(MarkupText(s.Value), wrapWidth)))
		b.WriteString("\n")
	}
	return b.String()
}

// RunBoard launches the full-screen job board for queue. It returns
// wantQuit=true if the user pressed q/ctrl+c, false if they pressed esc to
// return to the queue picker.
func RunBoard(ctx context.Context, queue Queue, jobs []model.Job, fetch FetchFunc, moderator model.JobModerator) (bool, error) {
	m := newBoardModel(ctx, queue, jobs, fetch, moderator)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	final := result.(boardModel)
	return final.wantQuit, nil
}
