// Package ui renders the task overview in the terminal.
package ui

import (
	"strings"
	"time"

	"github.com/bornholm/mustdo/internal/core/agenda"
	"github.com/bornholm/mustdo/pkg/client"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	TitleMustDo = "Must Do (Today, Tomorrow & Overdue)"
	TitleAll    = "All Tasks"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	activeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	hintStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	dueStyles = map[string]lipgloss.Style{
		"Overdue":  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		"Today":    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"Tomorrow": lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
)

type RenderOptions struct {
	ShowIDs       bool
	ShowCreatedAt bool
	Now           time.Time
}

type RenderOptionFunc func(opts *RenderOptions)

// WithTaskIDs prefixes each task with its short identifier.
func WithTaskIDs(enabled bool) RenderOptionFunc {
	return func(opts *RenderOptions) {
		opts.ShowIDs = enabled
	}
}

// WithCreatedAt appends the task age, relative to now.
func WithCreatedAt(now time.Time) RenderOptionFunc {
	return func(opts *RenderOptions) {
		opts.ShowCreatedAt = true
		opts.Now = now
	}
}

func NewRenderOptions(funcs ...RenderOptionFunc) *RenderOptions {
	opts := &RenderOptions{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// RenderOverview renders both task lists without selection.
func RenderOverview(overview *client.Overview, funcs ...RenderOptionFunc) string {
	opts := NewRenderOptions(funcs...)

	return lipgloss.JoinVertical(lipgloss.Left,
		renderList(TitleMustDo, overview.MustDo, false, -1, opts),
		"",
		renderList(TitleAll, overview.All, false, -1, opts),
	)
}

// ShortID truncates identifiers for display. Commands accept any unique prefix.
func ShortID(task client.OverviewTask) string {
	id := string(task.ID())
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}
	return id
}

const shortIDLength = 8

func renderList(title string, tasks []client.OverviewTask, active bool, cursor int, opts *RenderOptions) string {
	var b strings.Builder

	if active {
		b.WriteString(activeStyle.Render(title))
	} else {
		b.WriteString(titleStyle.Render(title))
	}
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(hintStyle.Render("  No tasks"))
		return b.String()
	}

	for i, task := range tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderTask(task, i == cursor, opts))
	}

	return b.String()
}

func renderTask(task client.OverviewTask, selected bool, opts *RenderOptions) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}

	indent := "      "
	if opts.ShowIDs {
		id := ShortID(task)
		prefix += hintStyle.Render(id) + " "
		indent += strings.Repeat(" ", len(id)+1)
	}

	checkbox := "[ ]"
	title := task.Title()
	if task.Completed() {
		checkbox = "[x]"
		title = completedStyle.Render(title)
	}

	details := DueLine(task)
	if opts.ShowCreatedAt {
		details += hintStyle.Render(", added " + humanize.RelTime(task.CreatedAt(), opts.Now, "ago", "from now"))
	}

	return prefix + checkbox + " " + title + "\n" + indent + details
}

// DueLine describes when a task is due, e.g. "Due: Today (Jun 10, 2024)".
func DueLine(task client.OverviewTask) string {
	dueDate := task.DueDate()
	if dueDate == nil {
		return hintStyle.Render("No due date")
	}

	formatted := agenda.FormatDate(*dueDate)

	label := task.Label
	if label == "" {
		label = formatted
	}

	line := "Due: " + label
	if label != formatted {
		line += " (" + formatted + ")"
	}

	if style, exists := dueStyles[label]; exists && !task.Completed() {
		return style.Render(line)
	}

	return line
}
