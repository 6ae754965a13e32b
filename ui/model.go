// Package ui is the clock window: one row per region and a toggle control,
// driven by a bubbletea event loop. The event loop goroutine is the only
// one that touches the model; other goroutines reach it through
// [dispatch.Task] messages.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/noodlebox/worldclock/dispatch"
	"github.com/noodlebox/worldclock/logger"
	"github.com/noodlebox/worldclock/visibility"
)

const (
	// Title is shown at the top of the window and set as the terminal title.
	Title = "Time Zones Around The World"
	// Placeholder fills a cell until its first update.
	Placeholder = "Loading..."
	// LabelHide is the toggle text while clocks are shown.
	LabelHide = "Turn Off Clocks"
	// LabelShow is the toggle text while clocks are hidden.
	LabelShow = "Turn On Clocks"
)

// Cell is the readout for one region.
type Cell struct {
	Text    string
	Visible bool
}

// Model is the bubbletea model for the clock window. Its methods must only
// be called from the event loop goroutine.
type Model struct {
	title  string
	labels []string
	cells  []Cell
	flag   *visibility.Flag
	onShow func()

	keys   keyMap
	help   help.Model
	logger *log.Logger
}

// New returns a model with one placeholder row per label. flag is shared
// with the formatters.
func New(labels []string, flag *visibility.Flag, l *log.Logger) *Model {
	if l == nil {
		l = logger.Nop()
	}
	cells := make([]Cell, len(labels))
	for i := range cells {
		cells[i] = Cell{Text: Placeholder, Visible: flag.Visible()}
	}
	return &Model{
		title:  Title,
		labels: labels,
		cells:  cells,
		flag:   flag,
		keys:   keys,
		help:   help.New(),
		logger: l,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatch.Task:
		msg()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.Info("window closed")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.Toggle()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.onToggle(msg.Y) {
			m.Toggle()
		}
	}
	return m, nil
}

// Len returns the number of rows.
func (m *Model) Len() int { return len(m.cells) }

// SetCellText replaces the text of row i. Out of range rows are ignored.
func (m *Model) SetCellText(i int, s string) {
	if i < 0 || i >= len(m.cells) {
		m.logger.Warn("cell index out of range", "index", i)
		return
	}
	m.cells[i].Text = s
}

// SetCellVisible hides or shows the time text of row i.
func (m *Model) SetCellVisible(i int, visible bool) {
	if i < 0 || i >= len(m.cells) {
		m.logger.Warn("cell index out of range", "index", i)
		return
	}
	m.cells[i].Visible = visible
}

// Cell returns row i, or a zero Cell for out of range rows.
func (m *Model) Cell(i int) Cell {
	if i < 0 || i >= len(m.cells) {
		m.logger.Warn("cell index out of range", "index", i)
		return Cell{}
	}
	return m.cells[i]
}

// Shown returns what the user sees in row i: its text, or nothing while
// hidden.
func (m *Model) Shown(i int) string {
	if c := m.Cell(i); c.Visible {
		return c.Text
	}
	return ""
}

// OnShow registers f to run on the event loop each time the clocks are
// shown again, before the rows become visible. It lets the owner replace
// text that went stale while hidden.
func (m *Model) OnShow(f func()) {
	m.onShow = f
}

// Toggle flips the visibility flag, applies it to every row and relabels
// the control.
func (m *Model) Toggle() {
	visible := m.flag.Toggle()
	if visible && m.onShow != nil {
		m.onShow()
	}
	for i := range m.cells {
		m.SetCellVisible(i, visible)
	}
	m.logger.Info("clocks toggled", "visible", visible)
}

// ToggleLabel names the action the control performs next.
func (m *Model) ToggleLabel() string {
	if m.flag.Visible() {
		return LabelHide
	}
	return LabelShow
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.bodyView(),
		m.buttonView(),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m *Model) bodyView() string {
	rows := make([]string, 0, len(m.cells)+1)
	rows = append(rows, titleStyle.Render(m.title))
	for i, label := range m.labels {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label+": "),
			timeStyle.Render(m.Shown(i)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) buttonView() string {
	return buttonStyle.Render(m.ToggleLabel())
}

// onToggle reports whether screen line y falls on the toggle control.
func (m *Model) onToggle(y int) bool {
	top := lipgloss.Height(m.bodyView()) + buttonStyle.GetMarginTop()
	return y >= top && y < top+lipgloss.Height(m.buttonView())-buttonStyle.GetMarginTop()
}
