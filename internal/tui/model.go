// Package tui is the terminal front end. It owns the event loop and all
// rendering; every state change goes through the app core, which the views
// read back through accessors only.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"rtnt-cli/internal/app"
	"rtnt-cli/internal/key"
)

// clockTick drives the status clock; entry content only changes on key
// events, so this is purely a redraw cadence.
const clockTick = 250 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(clockTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type uiModel struct {
	app *app.App
	vp  viewport.Model

	width  int
	height int
}

func newUIModel(a *app.App) uiModel {
	m := uiModel{app: a, vp: viewport.New(0, 0)}
	m.syncEntries()
	return m
}

func (m uiModel) Init() tea.Cmd { return tick() }

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeEntriesPane()
		m.syncEntries()
		return m, nil

	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		debugLogf("key type=%v alt=%v runes=%q mode=%s", msg.Type, msg.Alt, string(msg.Runes), m.app.Mode())

		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// Bracketed paste arrives as one multi-rune event; feed it through
		// the buffer editor a rune at a time.
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 && m.app.Mode() != app.ModeNormal {
			for _, r := range msg.Runes {
				m.app.HandleKey(key.Char(r))
			}
			m.syncEntries()
			return m, nil
		}

		k, ok := translateKey(msg)
		if !ok {
			return m, nil
		}

		// Quit terminates the program, not the app state; it is the one
		// binding the event loop intercepts instead of dispatching.
		if m.app.Mode() == app.ModeNormal {
			if act, bound := m.app.Keybindings().ActionForKey(k); bound && act == app.ActionQuit {
				return m, tea.Quit
			}
		}

		m.app.HandleKey(k)
		m.syncEntries()
		return m, nil
	}
	return m, nil
}

// resizeEntriesPane recomputes the viewport dimensions from the window size,
// leaving room for the pane border and title, the input box and the footer.
func (m *uiModel) resizeEntriesPane() {
	w := m.width - 2*outerMargin - 2 // pane border
	if w < 1 {
		w = 1
	}
	h := m.height - 2*outerMargin - inputBoxHeight - footerHeight - 2 - 1 // border + title line
	if h < 1 {
		h = 1
	}
	m.vp.Width = w
	m.vp.Height = h
}

// syncEntries rebuilds the viewport content after any state change and keeps
// the interesting row visible: the selection when there is one, otherwise the
// newest entry at the bottom.
func (m *uiModel) syncEntries() {
	m.vp.SetContent(m.renderEntryLines())
	sel, ok := m.app.Selected()
	if !ok {
		m.vp.GotoBottom()
		return
	}
	if sel < m.vp.YOffset {
		m.vp.SetYOffset(sel)
	} else if m.vp.Height > 0 && sel >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(sel - m.vp.Height + 1)
	}
}

// Run starts the interactive session over a, blocking until the user quits.
func Run(a *app.App) error {
	applyColorProfilePreference()
	_, err := tea.NewProgram(newUIModel(a), tea.WithAltScreen()).Run()
	return err
}
