package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rtnt-cli/internal/key"
)

func TestTranslateKeySymbolic(t *testing.T) {
	t.Parallel()
	cases := []struct {
		msg  tea.KeyMsg
		want key.Key
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, key.Enter},
		{tea.KeyMsg{Type: tea.KeyEsc}, key.Esc},
		{tea.KeyMsg{Type: tea.KeyUp}, key.Up},
		{tea.KeyMsg{Type: tea.KeyDown}, key.Down},
		{tea.KeyMsg{Type: tea.KeyLeft}, key.Left},
		{tea.KeyMsg{Type: tea.KeyRight}, key.Right},
		{tea.KeyMsg{Type: tea.KeyBackspace}, key.Backspace},
		{tea.KeyMsg{Type: tea.KeySpace}, key.Char(' ')},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, key.Char('x')},
	}
	for _, tc := range cases {
		got, ok := translateKey(tc.msg)
		if !ok {
			t.Fatalf("translateKey(%v): not translated", tc.msg)
		}
		if got != tc.want {
			t.Fatalf("translateKey(%v) = %v, want %v", tc.msg, got, tc.want)
		}
	}
}

func TestTranslateKeyRejectsUnrepresentable(t *testing.T) {
	t.Parallel()
	cases := []tea.KeyMsg{
		{Type: tea.KeyTab},
		{Type: tea.KeyF1},
		{Type: tea.KeyRunes, Runes: []rune("ab")},
		{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
	}
	for _, msg := range cases {
		if _, ok := translateKey(msg); ok {
			t.Fatalf("translateKey(%v): expected no translation", msg)
		}
	}
}
