package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"rtnt-cli/internal/app"
	"rtnt-cli/internal/model"
	"rtnt-cli/internal/theme"
)

const (
	outerMargin = 1
	// Border, title line, input line, border.
	inputBoxHeight = 4
	footerHeight   = 1
)

func (m uiModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	pal := m.app.Theme().Palette()

	switch m.app.Mode() {
	case app.ModeLoading:
		return m.modal(pal, "Select File", m.loadMenuBody(pal))
	case app.ModeKeyBindings:
		return m.modal(pal, "Key Bindings", m.keyMenuBody(pal))
	case app.ModeThemeSelect:
		return m.modal(pal, "Select Theme", m.themeMenuBody(pal))
	case app.ModeKeyCapture:
		return m.modal(pal, "Set Key", m.captureBody(pal))
	case app.ModeConfirmReplace:
		return m.modal(pal, "Confirm", m.confirmBody(pal))
	case app.ModeBindWarning:
		body := lipgloss.NewStyle().Foreground(pal.OverlayText).
			Render("Please choose a different key bind or rebind the Keys menu first.")
		return m.modal(pal, "Warning", body)
	}

	frame := lipgloss.JoinVertical(lipgloss.Left,
		m.notesPane(pal),
		m.inputBox(pal),
		m.footer(pal),
	)
	return lipgloss.NewStyle().Margin(outerMargin).Render(frame)
}

func (m uiModel) notesPane(pal theme.Palette) string {
	title := lipgloss.NewStyle().Foreground(pal.NotesTitle).Render("Notes")
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(pal.NotesBorder).
		Width(m.vp.Width).
		Render(title + "\n" + m.vp.View())
}

func (m uiModel) renderEntryLines() string {
	pal := m.app.Theme().Palette()
	entries := m.app.Entries()
	sel, hasSel := m.app.Selected()
	w := m.vp.Width

	tsStyle := lipgloss.NewStyle().Foreground(pal.TimestampFg).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(pal.NoteFg)
	sectionStyle := lipgloss.NewStyle().Foreground(pal.SectionFg).Bold(true)
	hiStyle := lipgloss.NewStyle().
		Background(pal.NotesHighlightBg).
		Foreground(pal.NotesHighlightFg).
		Bold(true)

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		var ln string
		if hasSel && i == sel {
			// Selected rows trade span colors for the highlight so the
			// background covers the whole row.
			ln = hiStyle.Render(padLine(entryText(e), w))
		} else {
			switch e.Kind {
			case model.EntryKindNote:
				ln = tsStyle.Render(clockStamp(e)) + " - " + noteStyle.Render(e.Note.Text)
			case model.EntryKindSection:
				ln = sectionStyle.Render(e.Section.Title)
			}
			ln = truncateLine(ln, w)
		}
		lines = append(lines, ln)
	}
	return strings.Join(lines, "\n")
}

func entryText(e model.Entry) string {
	if e.Kind == model.EntryKindNote {
		return clockStamp(e) + " - " + e.Note.Text
	}
	return e.Section.Title
}

func clockStamp(e model.Entry) string {
	return e.Note.Timestamp.Format("15:04:05.000")
}

func (m uiModel) inputBox(pal theme.Palette) string {
	editing := false
	switch m.app.Mode() {
	case app.ModeEditingNote, app.ModeEditingSection,
		app.ModeEditingExistingNote, app.ModeEditingExistingSection,
		app.ModeSaving, app.ModeTimeHack:
		editing = true
	}

	borderFg := pal.InputFg
	titleFg := pal.InputTitle
	if editing {
		borderFg = pal.EditingFg
		titleFg = pal.EditingTitle
	}

	title := lipgloss.NewStyle().Foreground(titleFg).Render(m.inputTitle())

	line := m.app.Input()
	if editing {
		line = withCaret(line, m.app.Cursor())
	}
	line = lipgloss.NewStyle().Foreground(pal.InputFg).Render(truncateLine(line, m.vp.Width))

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(borderFg).
		Width(m.vp.Width).
		Render(title + "\n" + line)
}

// withCaret marks the caret position with a reversed cell.
func withCaret(s string, cursor int) string {
	caret := lipgloss.NewStyle().Reverse(true)
	in := []rune(s)
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(in) {
		return string(in) + caret.Render(" ")
	}
	return string(in[:cursor]) + caret.Render(string(in[cursor])) + string(in[cursor+1:])
}

func (m uiModel) inputTitle() string {
	switch m.app.Mode() {
	case app.ModeEditingNote, app.ModeEditingExistingNote:
		if t, ok := m.app.NoteTime(); ok {
			return "Note - " + t.Format("15:04:05.000")
		}
		return "Note"
	case app.ModeEditingSection, app.ModeEditingExistingSection:
		return "Section"
	case app.ModeSaving:
		return "Save File - " + m.app.Paths().SaveDir
	case app.ModeTimeHack:
		return "Time Hack"
	default:
		return "Input"
	}
}

func (m uiModel) footer(pal theme.Palette) string {
	ks := lipgloss.NewStyle().Foreground(pal.HelpKey)
	ds := lipgloss.NewStyle().Foreground(pal.HelpDesc)
	b := m.app.Keybindings()

	var sb strings.Builder
	span := func(action app.Action, label string) {
		sb.WriteString(ks.Render(b.Get(action).String()))
		sb.WriteString(ds.Render(label))
	}
	span(app.ActionNewNote, ":New ")
	span(app.ActionNewSection, ":Section ")
	span(app.ActionEdit, ":Edit ")
	span(app.ActionUp, ":")
	span(app.ActionDown, " ")
	span(app.ActionSave, ":Save ")
	span(app.ActionLoad, ":Load ")
	span(app.ActionBindings, ":Keys ")
	span(app.ActionTheme, ":Theme ")
	span(app.ActionQuit, ":Quit")
	help := sb.String()

	status := ks.Render(m.app.Now().Format("15:04:05")) + ds.Render(" "+m.app.TimeSource())

	// The clock outranks the tail of the help line on narrow windows.
	width := m.vp.Width + 2
	gap := width - xansi.StringWidth(help) - xansi.StringWidth(status)
	if gap < 1 {
		help = truncateLine(help, width-xansi.StringWidth(status)-1)
		gap = 1
	}
	return help + strings.Repeat(" ", gap) + status
}

func (m uiModel) loadMenuBody(pal theme.Palette) string {
	files := m.app.LoadFiles()
	if len(files) == 0 {
		return lipgloss.NewStyle().Foreground(pal.OverlayText).Render("No files found")
	}
	rows := make([]string, 0, len(files))
	for i, f := range files {
		rows = append(rows, m.menuRow(pal, filepath.Base(f), i == m.app.LoadSelected()))
	}
	return strings.Join(rows, "\n")
}

func (m uiModel) keyMenuBody(pal theme.Palette) string {
	b := m.app.Keybindings()
	rows := make([]string, 0, len(app.Actions))
	for i, action := range app.Actions {
		label := fmt.Sprintf("%s: %s", action, b.Get(action))
		rows = append(rows, m.menuRow(pal, label, i == m.app.KeybindSelected()))
	}
	return strings.Join(rows, "\n")
}

func (m uiModel) themeMenuBody(pal theme.Palette) string {
	rows := make([]string, 0, len(theme.All))
	for i, t := range theme.All {
		rows = append(rows, m.menuRow(pal, t.DisplayName(), i == m.app.ThemeSelected()))
	}
	return strings.Join(rows, "\n")
}

func (m uiModel) captureBody(pal theme.Palette) string {
	action, ok := m.app.CaptureAction()
	if !ok {
		return ""
	}
	msg := fmt.Sprintf("Press new key for %s (current: %s)", action, m.app.Keybindings().Get(action))
	return lipgloss.NewStyle().Foreground(pal.OverlayText).Render(msg)
}

func (m uiModel) confirmBody(pal theme.Palette) string {
	k, action, conflict, ok := m.app.PendingRebind()
	if !ok {
		return ""
	}
	msg := fmt.Sprintf("Bind %s to %s and unbind from %s?", k, action, conflict)
	return lipgloss.NewStyle().Foreground(pal.OverlayText).Render(msg)
}

func (m uiModel) menuRow(pal theme.Palette, label string, selected bool) string {
	w := m.modalBodyWidth()
	if selected {
		return lipgloss.NewStyle().
			Background(pal.OverlayHighBg).
			Foreground(pal.OverlayHighFg).
			Bold(true).
			Render(padLine(label, w))
	}
	return lipgloss.NewStyle().Foreground(pal.OverlayText).Render(truncateLine(label, w))
}

func (m uiModel) modalBodyWidth() int {
	w := m.width*3/5 - 4
	if w < 20 {
		w = 20
	}
	return w
}

// modal renders a centered overlay box; the screen behind it is left blank,
// which keeps rendering simple and avoids background-bleed artifacts.
func (m uiModel) modal(pal theme.Palette, title, body string) string {
	heading := lipgloss.NewStyle().Foreground(pal.OverlayTitle).Render(title)
	box := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(pal.OverlayBorder).
		Background(pal.OverlayBg).
		Padding(0, 1).
		Width(m.modalBodyWidth() + 2).
		Render(heading + "\n\n" + body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
