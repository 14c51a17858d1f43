package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/pkg/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Backend is the subset of the API client used by the view.
type Backend interface {
	Overview(ctx context.Context, loc *time.Location) (*client.Overview, error)
	CreateTask(ctx context.Context, title string, dueDate *model.Date) (model.Task, error)
	UpdateTask(ctx context.Context, taskID model.TaskID, patch model.TaskPatch) (model.Task, error)
	DeleteTask(ctx context.Context, taskID model.TaskID) error
}

type Pane int

const (
	PaneMustDo Pane = iota
	PaneAll
)

type mode int

const (
	modeBrowse mode = iota
	modeConfirmDelete
	modeAddTitle
	modeAddDueDate
)

type overviewMsg struct {
	overview *client.Overview
	status   string
}

type errMsg struct {
	err error
}

type Model struct {
	ctx      context.Context
	backend  Backend
	loc      *time.Location
	username string

	overview *client.Overview
	pane     Pane
	cursor   int

	mode       mode
	input      string
	draftTitle string
	pending    *client.OverviewTask

	loading bool
	status  string
	err     error
}

func NewModel(ctx context.Context, backend Backend, loc *time.Location, username string) *Model {
	return &Model{
		ctx:      ctx,
		backend:  backend,
		loc:      loc,
		username: username,
		loading:  true,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.refresh("")
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		m.loading = false
		m.err = nil
		m.overview = msg.overview
		m.status = msg.status
		m.clampCursor()
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.mode {
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeAddTitle, modeAddDueDate:
			return m.updateInput(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "tab", "left", "right", "h", "l":
		if m.pane == PaneMustDo {
			m.pane = PaneAll
		} else {
			m.pane = PaneMustDo
		}
		m.cursor = 0
		m.clampCursor()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}

	case " ", "space", "enter", "x":
		task := m.Selected()
		if task == nil {
			return m, nil
		}
		return m, m.toggle(*task)

	case "d", "delete", "backspace":
		task := m.Selected()
		if task == nil {
			return m, nil
		}
		m.pending = task
		m.mode = modeConfirmDelete

	case "a", "n":
		m.mode = modeAddTitle
		m.input = ""
		m.draftTitle = ""
		m.err = nil

	case "r", "f5":
		m.loading = true
		return m, m.refresh("")
	}

	return m, nil
}

func (m *Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task := m.pending

	switch msg.String() {
	case "y", "Y":
		m.mode = modeBrowse
		m.pending = nil
		return m, m.delete(*task)
	case "n", "N", "esc", "q":
		m.mode = modeBrowse
		m.pending = nil
	}

	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input = ""
		m.draftTitle = ""
		return m, nil

	case tea.KeyBackspace:
		if runes := []rune(m.input); len(runes) > 0 {
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil

	case tea.KeySpace:
		m.input += " "
		return m, nil

	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil

	case tea.KeyEnter:
		if m.mode == modeAddTitle {
			m.draftTitle = strings.TrimSpace(m.input)
			m.input = ""
			m.mode = modeAddDueDate
			return m, nil
		}

		var dueDate *model.Date

		if raw := strings.TrimSpace(m.input); raw != "" {
			parsed, err := model.ParseDate(raw)
			if err != nil {
				m.err = port.NewValidationError("Due date must be a valid date (YYYY-MM-DD)")
				return m, nil
			}
			dueDate = &parsed
		}

		title := m.draftTitle

		m.mode = modeBrowse
		m.input = ""
		m.draftTitle = ""

		return m, m.create(title, dueDate)
	}

	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	header := "mustdo"
	if m.username != "" {
		header += " - " + m.username
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	switch {
	case m.overview == nil && m.loading:
		b.WriteString("Loading...\n")
	case m.overview != nil:
		opts := NewRenderOptions()

		mustDoCursor, allCursor := -1, -1
		if m.pane == PaneMustDo {
			mustDoCursor = m.cursor
		} else {
			allCursor = m.cursor
		}

		b.WriteString(lipgloss.JoinVertical(lipgloss.Left,
			renderList(TitleMustDo, m.overview.MustDo, m.pane == PaneMustDo, mustDoCursor, opts),
			"",
			renderList(TitleAll, m.overview.All, m.pane == PaneAll, allCursor, opts),
		))
		b.WriteString("\n")

		if task := m.Selected(); task != nil {
			b.WriteString("\n")
			b.WriteString(hintStyle.Render(fmt.Sprintf("Created %s", humanize.RelTime(task.CreatedAt(), m.overview.Now, "ago", "from now"))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	switch m.mode {
	case modeConfirmDelete:
		b.WriteString(fmt.Sprintf("Are you sure you want to delete \"%s\"? (y/n)\n", m.pending.Title()))
	case modeAddTitle:
		b.WriteString("Title: " + m.input + "_\n")
	case modeAddDueDate:
		b.WriteString("Due date (YYYY-MM-DD, optional): " + m.input + "_\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(client.UserMessage(m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("tab: switch list  j/k: move  space: toggle  a: add  d: delete  r: refresh  q: quit"))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the task under the cursor, if any.
func (m *Model) Selected() *client.OverviewTask {
	tasks := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}

	task := tasks[m.cursor]
	return &task
}

func (m *Model) Pane() Pane {
	return m.pane
}

func (m *Model) Err() error {
	return m.err
}

func (m *Model) Status() string {
	return m.status
}

func (m *Model) Overview() *client.Overview {
	return m.overview
}

func (m *Model) visibleTasks() []client.OverviewTask {
	if m.overview == nil {
		return nil
	}

	if m.pane == PaneMustDo {
		return m.overview.MustDo
	}

	return m.overview.All
}

func (m *Model) clampCursor() {
	if last := len(m.visibleTasks()) - 1; m.cursor > last {
		m.cursor = last
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) refresh(status string) tea.Cmd {
	return func() tea.Msg {
		overview, err := m.backend.Overview(m.ctx, m.loc)
		if err != nil {
			return errMsg{errors.WithStack(err)}
		}

		return overviewMsg{overview: overview, status: status}
	}
}

// mutate runs the operation then reloads the overview so that the
// displayed lists only ever reflect the server state.
func (m *Model) mutate(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		status, err := fn(m.ctx)
		if err != nil {
			return errMsg{errors.WithStack(err)}
		}

		return m.refresh(status)()
	}
}

func (m *Model) toggle(task client.OverviewTask) tea.Cmd {
	return m.mutate(func(ctx context.Context) (string, error) {
		updated, err := m.backend.UpdateTask(ctx, task.ID(), model.PatchCompleted(!task.Completed()))
		if err != nil {
			return "", errors.WithStack(err)
		}

		if updated.Completed() {
			return fmt.Sprintf("Completed \"%s\"", updated.Title()), nil
		}

		return fmt.Sprintf("Reopened \"%s\"", updated.Title()), nil
	})
}

func (m *Model) delete(task client.OverviewTask) tea.Cmd {
	return m.mutate(func(ctx context.Context) (string, error) {
		if err := m.backend.DeleteTask(ctx, task.ID()); err != nil {
			return "", errors.WithStack(err)
		}

		return fmt.Sprintf("Deleted \"%s\"", task.Title()), nil
	})
}

func (m *Model) create(title string, dueDate *model.Date) tea.Cmd {
	return m.mutate(func(ctx context.Context) (string, error) {
		created, err := m.backend.CreateTask(ctx, title, dueDate)
		if err != nil {
			return "", errors.WithStack(err)
		}

		return fmt.Sprintf("Added \"%s\"", created.Title()), nil
	})
}

// Run starts the interactive view until the user quits.
func Run(ctx context.Context, backend Backend, loc *time.Location, username string) error {
	program := tea.NewProgram(NewModel(ctx, backend, loc, username), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
