// Package ui hosts a presentation inside a Bubble Tea program. The model
// translates terminal key messages into the presentation's window event
// stream and renders the window above a one-line status bar.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slidedeck/internal/events"
	"slidedeck/internal/present"
)

// gotoFirstMsg jumps to the first slide (g).
type gotoFirstMsg struct{}

// gotoLastMsg jumps to the last slide (G).
type gotoLastMsg struct{}

// toggleHelpMsg shows or hides the key hints in the status bar (?).
type toggleHelpMsg struct{}

// statusBarRows is the vertical space reserved below the window.
const statusBarRows = 1

// Model is the Bubble Tea root model for a presentation.
type Model struct {
	pres     *present.Presentation
	reg      *Registry
	help     help.Model
	showHelp bool
	width    int
	height   int
	ready    bool
}

var _ tea.Model = (*Model)(nil)

// NewModel wraps a presentation with the default chrome bindings. Keys not
// bound here are published into the presentation's event stream as release
// edges: a terminal reports a keystroke once, when it completes.
func NewModel(p *present.Presentation) *Model {
	reg := NewRegistry()
	reg.Bind("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit, "quit")
	reg.Bind("g", func() tea.Msg { return gotoFirstMsg{} }, "first")
	reg.Bind("G", func() tea.Msg { return gotoLastMsg{} }, "last")
	reg.Bind("?", func() tea.Msg { return toggleHelpMsg{} }, "help")
	return &Model{
		pres:     p,
		reg:      reg,
		help:     help.New(),
		showHelp: true,
	}
}

// Registry exposes the chrome bindings so hosts can add their own.
func (m *Model) Registry() *Registry {
	return m.reg
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.pres.SetSize(msg.Width, msg.Height-statusBarRows)
		m.ready = true
		return m, nil
	case gotoFirstMsg:
		m.pres.Reset()
		return m, nil
	case gotoLastMsg:
		m.pres.SetSlideIndex(m.pres.SlideCount() - 1)
		return m, nil
	case toggleHelpMsg:
		m.showHelp = !m.showHelp
		return m, nil
	case tea.KeyMsg:
		if cmd := m.reg.Lookup(msg.String()); cmd != nil {
			return m, cmd
		}
		m.pres.Events().Publish(events.KeyEvent{
			Key:    msg.String(),
			Action: events.KeyRelease,
		})
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	return m.pres.View() + "\n" + m.statusBar()
}

// statusBar renders "title  hints ........ i/n" within one row.
func (m *Model) statusBar() string {
	title := Styles.Title.Render(m.pres.Title())
	pos := Styles.Position.Render(m.position())

	var hints string
	if m.showHelp {
		hints = Styles.Hint.Render(m.help.View(keyMap{reg: m.reg}))
	}

	bar := title
	if hints != "" {
		bar += "  " + hints
	}
	gap := m.width - lipgloss.Width(bar) - lipgloss.Width(pos) - Styles.Bar.GetHorizontalPadding()
	if gap < 1 {
		gap = 1
	}
	return Styles.Bar.Render(bar + strings.Repeat(" ", gap) + pos)
}

func (m *Model) position() string {
	if m.pres.SlideCount() == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", m.pres.CurrentIndex()+1, m.pres.SlideCount())
}
