package app

import (
	"os"
	"path/filepath"
	"testing"

	"rtnt-cli/internal/key"
	"rtnt-cli/internal/theme"
)

func TestHandleKeyNoteFlow(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.HandleKey(key.Enter)
	if a.Mode() != ModeEditingNote {
		t.Fatalf("mode = %s; want editing-note", a.Mode())
	}
	a.HandleKey(key.Char('a'))
	a.HandleKey(key.Char('b'))
	a.HandleKey(key.Enter)

	notes := a.Notes()
	if len(notes) != 1 || notes[0].Text != "ab" {
		t.Fatalf("unexpected notes: %+v", notes)
	}
	if a.Mode() != ModeNormal {
		t.Fatalf("mode = %s; want normal", a.Mode())
	}
}

func TestHandleKeyCaretEditing(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.HandleKey(key.Enter)
	typeString(a, "abc")
	a.HandleKey(key.Left)
	a.HandleKey(key.Left)
	a.HandleKey(key.Char('X'))
	a.HandleKey(key.Right)
	a.HandleKey(key.Enter)

	if got := a.Notes()[0].Text; got != "aXbc" {
		t.Fatalf("text = %q; want aXbc", got)
	}
}

func TestHandleKeyBackspace(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.HandleKey(key.Enter)
	typeString(a, "abc")
	a.HandleKey(key.Backspace)
	a.HandleKey(key.Left)
	a.HandleKey(key.Backspace)
	a.HandleKey(key.Enter)

	if got := a.Notes()[0].Text; got != "b" {
		t.Fatalf("text = %q; want b", got)
	}
}

func TestHandleKeyUnboundInNormalIsNoOp(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.HandleKey(key.Char('x'))
	a.HandleKey(key.Backspace)
	if a.Mode() != ModeNormal || len(a.Entries()) != 0 {
		t.Fatalf("unbound keys must do nothing in normal mode")
	}
}

func TestRebindWithoutConflict(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.HandleKey(key.Char('b'))
	if a.Mode() != ModeKeyBindings {
		t.Fatalf("mode = %s; want key-bindings", a.Mode())
	}

	// Move the highlight to Save and capture a fresh key.
	for i := 0; i < 5; i++ {
		a.HandleKey(key.Down)
	}
	if a.KeybindSelected() != 5 || Actions[5] != ActionSave {
		t.Fatalf("expected highlight on Save; got %d", a.KeybindSelected())
	}
	a.HandleKey(key.Enter)
	if a.Mode() != ModeKeyCapture {
		t.Fatalf("mode = %s; want key-capture", a.Mode())
	}
	a.HandleKey(key.Char('z'))

	if a.Mode() != ModeKeyBindings {
		t.Fatalf("mode = %s; want key-bindings after a clean rebind", a.Mode())
	}
	if got := a.Keybindings().Get(ActionSave); got != key.Char('z') {
		t.Fatalf("Save bound to %s; want z", got)
	}
	// Persisted as well.
	loaded := LoadBindings(a.Paths().BindingsPath())
	if got := loaded.Get(ActionSave); got != key.Char('z') {
		t.Fatalf("persisted Save binding = %s; want z", got)
	}
}

func TestRebindConflictConfirm(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.StartKeybindings()
	a.captureAction = ActionLoad
	a.captureActive = true
	a.mode = ModeKeyCapture

	// Press the key already bound to Save.
	a.HandleKey(key.Char('w'))
	if a.Mode() != ModeConfirmReplace {
		t.Fatalf("mode = %s; want confirm-replace", a.Mode())
	}
	k, action, conflict, ok := a.PendingRebind()
	if !ok || k != key.Char('w') || action != ActionLoad || conflict != ActionSave {
		t.Fatalf("pending = %v %v %v %v", k, action, conflict, ok)
	}

	a.HandleKey(key.Enter)
	if got := a.Keybindings().Get(ActionLoad); got != key.Char('w') {
		t.Fatalf("Load bound to %s; want w", got)
	}
	if got := a.Keybindings().Get(ActionSave); got != key.Null {
		t.Fatalf("Save bound to %s; want the Null sentinel", got)
	}
	if a.Mode() != ModeKeyBindings {
		t.Fatalf("mode = %s; want key-bindings", a.Mode())
	}
}

func TestRebindConflictCancel(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.StartKeybindings()
	a.captureAction = ActionLoad
	a.captureActive = true
	a.mode = ModeKeyCapture

	a.HandleKey(key.Char('w'))
	a.HandleKey(key.Esc)

	if got := a.Keybindings().Get(ActionLoad); got != key.Char('l') {
		t.Fatalf("cancel must leave Load at %s; got %s", key.Char('l'), got)
	}
	if got := a.Keybindings().Get(ActionSave); got != key.Char('w') {
		t.Fatalf("cancel must leave Save at w; got %s", got)
	}
	if _, _, _, ok := a.PendingRebind(); ok {
		t.Fatalf("cancel must discard the stashed rebind")
	}
	if a.Mode() != ModeKeyBindings {
		t.Fatalf("mode = %s; want key-bindings", a.Mode())
	}
}

func TestRebindSameActionKeepsKey(t *testing.T) {
	t.Parallel()

	// Re-pressing the action's own current key is not a conflict.
	a := testApp(t)
	a.StartKeybindings()
	a.captureAction = ActionSave
	a.captureActive = true
	a.mode = ModeKeyCapture

	a.HandleKey(key.Char('w'))
	if a.Mode() != ModeKeyBindings {
		t.Fatalf("mode = %s; want key-bindings", a.Mode())
	}
	if got := a.Keybindings().Get(ActionSave); got != key.Char('w') {
		t.Fatalf("Save bound to %s; want w", got)
	}
}

func TestRebindBindingsKeyWarns(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.StartKeybindings()
	a.captureAction = ActionSave
	a.captureActive = true
	a.mode = ModeKeyCapture

	a.HandleKey(a.Keybindings().Get(ActionBindings))
	if a.Mode() != ModeBindWarning {
		t.Fatalf("mode = %s; want bind-warning", a.Mode())
	}
	if action, ok := a.CaptureAction(); !ok || action != ActionSave {
		t.Fatalf("capture target must survive the warning")
	}

	// Any non-cancel key returns to capture for a retry.
	a.HandleKey(key.Char('x'))
	if a.Mode() != ModeKeyCapture {
		t.Fatalf("mode = %s; want key-capture", a.Mode())
	}
	if action, ok := a.CaptureAction(); !ok || action != ActionSave {
		t.Fatalf("capture target must survive the retry")
	}

	// Cancel from the warning aborts the capture entirely.
	a.HandleKey(a.Keybindings().Get(ActionBindings))
	a.HandleKey(key.Esc)
	if a.Mode() != ModeKeyBindings {
		t.Fatalf("mode = %s; want key-bindings", a.Mode())
	}
	if _, ok := a.CaptureAction(); ok {
		t.Fatalf("cancel must clear the capture target")
	}
}

func TestRebindBindingsActionItselfAllowed(t *testing.T) {
	t.Parallel()

	// Rebinding the bindings-menu action to its own key is not a lockout.
	a := testApp(t)
	a.StartKeybindings()
	a.captureAction = ActionBindings
	a.captureActive = true
	a.mode = ModeKeyCapture

	a.HandleKey(key.Char('b'))
	if a.Mode() != ModeKeyBindings {
		t.Fatalf("mode = %s; want key-bindings", a.Mode())
	}
	if got := a.Keybindings().Get(ActionBindings); got != key.Char('b') {
		t.Fatalf("Bindings bound to %s; want b", got)
	}
}

func TestLoadingMenuFlow(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.StartNote()
	typeString(a, "persisted")
	a.FinalizeNote()
	path := filepath.Join(a.Paths().SaveDir, "one.csv")
	if err := a.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	b := New(a.Paths())
	b.HandleKey(key.Char('l'))
	if b.Mode() != ModeLoading {
		t.Fatalf("mode = %s; want loading", b.Mode())
	}
	if len(b.LoadFiles()) != 1 {
		t.Fatalf("expected the saved file listed; got %v", b.LoadFiles())
	}

	// Bounded index movement.
	b.HandleKey(key.Down)
	b.HandleKey(key.Up)
	b.HandleKey(key.Up)
	if b.LoadSelected() != 0 {
		t.Fatalf("load index must clamp at 0")
	}

	b.HandleKey(key.Enter)
	if b.Mode() != ModeNormal {
		t.Fatalf("mode = %s; want normal after load", b.Mode())
	}
	if len(b.Entries()) != 1 || b.Entries()[0].Note.Text != "persisted" {
		t.Fatalf("unexpected entries after load: %+v", b.Entries())
	}
}

func TestLoadingMenuCancel(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.HandleKey(key.Char('l'))
	a.HandleKey(key.Esc)
	if a.Mode() != ModeNormal || len(a.Entries()) != 0 {
		t.Fatalf("cancel must leave the app unchanged")
	}
}

func TestSavingFlow(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.StartNote()
	typeString(a, "note")
	a.FinalizeNote()

	a.HandleKey(key.Char('w'))
	if a.Mode() != ModeSaving {
		t.Fatalf("mode = %s; want saving", a.Mode())
	}
	wantPath := filepath.Join(a.Paths().SaveDir, "notes.csv")
	if a.Input() != wantPath {
		t.Fatalf("save prompt = %q; want %q", a.Input(), wantPath)
	}
	a.HandleKey(key.Enter)
	if a.Mode() != ModeNormal {
		t.Fatalf("mode = %s; want normal", a.Mode())
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Fatalf("expected the file written: %v", err)
	}
}

func TestThemeMenuFlow(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.HandleKey(key.Char('t'))
	if a.Mode() != ModeThemeSelect {
		t.Fatalf("mode = %s; want theme-select", a.Mode())
	}
	if a.ThemeSelected() != 0 {
		t.Fatalf("highlight should start on the active theme")
	}

	a.HandleKey(key.Down)
	a.HandleKey(key.Enter)
	if a.Theme() != theme.Matrix {
		t.Fatalf("theme = %s; want Matrix", a.Theme())
	}
	if a.Mode() != ModeNormal {
		t.Fatalf("mode = %s; want normal", a.Mode())
	}
	if got := theme.Load(a.Paths().ThemePath()); got != theme.Matrix {
		t.Fatalf("persisted theme = %s; want Matrix", got)
	}

	// Reopening highlights the new active theme; cancel keeps it.
	a.HandleKey(key.Char('t'))
	if a.ThemeSelected() != 1 {
		t.Fatalf("highlight = %d; want 1", a.ThemeSelected())
	}
	a.HandleKey(key.Down)
	a.HandleKey(key.Esc)
	if a.Theme() != theme.Matrix {
		t.Fatalf("cancel must not change the theme")
	}
}
