// Package ui renders the interactive summary browser: a spinner while
// the engine chews the snapshot, then a scrollable report view.
package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/graphgauge/graphgauge/pkg/engine"
	"github.com/graphgauge/graphgauge/pkg/report"
)

type Model struct {
	// core components
	spinner  spinner.Model
	viewport viewport.Model
	engine   *engine.Engine

	// state
	loading  bool
	ready    bool
	quitting bool
	dirty    bool
	err      error
	width    int
	height   int

	// data
	summary *engine.Summary
	topRows int
}

// resultMsg carries the finished run back into the update loop.
type resultMsg struct {
	summary *engine.Summary
	err     error
}

func NewModel(e *engine.Engine, topRows int) Model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = special

	return Model{
		spinner: s,
		engine:  e,
		loading: true,
		topRows: topRows,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runAnalysis())
}

func (m Model) runAnalysis() tea.Cmd {
	return func() tea.Msg {
		s, err := m.engine.Run(context.Background())
		return resultMsg{summary: s, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutViewport()
		return m, nil

	case resultMsg:
		m.loading = false
		if msg.err != nil && !errors.Is(msg.err, engine.ErrDirtyInput) {
			m.err = msg.err
			return m, tea.Quit
		}
		m.dirty = msg.err != nil
		m.summary = msg.summary
		m.layoutViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// layoutViewport (re)builds the scroll area once both the summary and
// the terminal size are known.
func (m *Model) layoutViewport() {
	if m.summary == nil || m.width == 0 {
		return
	}
	headerHeight := 3
	footerHeight := 2
	height := m.height - headerHeight - footerHeight
	if height < 1 {
		height = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.viewport.SetContent(report.Render(m.summary, m.topRows))
}
