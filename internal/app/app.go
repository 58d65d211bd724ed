// Package app holds the application state machine: the App aggregate, its
// input-mode state, the entry list, key bindings, theme selection and the
// time-hack clock. The renderer and terminal plumbing live elsewhere and only
// read App state through accessors.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rtnt-cli/internal/key"
	"rtnt-cli/internal/model"
	"rtnt-cli/internal/store"
	"rtnt-cli/internal/theme"
)

// InputMode is the authoritative state-machine state; every key event is
// dispatched on its current value.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeEditingNote
	ModeEditingSection
	ModeEditingExistingNote
	ModeEditingExistingSection
	ModeSaving
	ModeLoading
	ModeTimeHack
	ModeKeyBindings
	ModeKeyCapture
	ModeConfirmReplace
	ModeBindWarning
	ModeThemeSelect
)

func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEditingNote:
		return "editing-note"
	case ModeEditingSection:
		return "editing-section"
	case ModeEditingExistingNote:
		return "editing-existing-note"
	case ModeEditingExistingSection:
		return "editing-existing-section"
	case ModeSaving:
		return "saving"
	case ModeLoading:
		return "loading"
	case ModeTimeHack:
		return "time-hack"
	case ModeKeyBindings:
		return "key-bindings"
	case ModeKeyCapture:
		return "key-capture"
	case ModeConfirmReplace:
		return "confirm-replace"
	case ModeBindWarning:
		return "bind-warning"
	case ModeThemeSelect:
		return "theme-select"
	default:
		return "unknown"
	}
}

// timeHack offsets the displayed clock: current time = today at the base
// time-of-day plus the wall-clock duration elapsed since capture.
type timeHack struct {
	base       time.Time // only the clock fields matter
	capturedAt time.Time // carries Go's monotonic reading
}

// App is the aggregate the event loop drives. All mutation goes through
// HandleKey or the exported operations; the renderer reads accessors only.
type App struct {
	entries []model.Entry

	input  []rune
	cursor int
	mode   InputMode

	noteTime    time.Time
	noteTimeSet bool

	hack *timeHack

	selected  int // index into entries, -1 = none
	editIndex int // entry being edited in the existing-* modes, -1 = none

	keys  KeyBindings
	paths store.Paths

	loadFiles    []string
	loadSelected int

	keybindSelected int
	captureAction   Action
	captureActive   bool
	pendingKey      key.Key
	pendingAction   Action
	pendingConflict Action
	pendingActive   bool

	theme         theme.Name
	themeSelected int
}

// New builds an App with bindings and theme loaded from the injected paths.
// The save dir is created eagerly so save/load prompts have somewhere to point.
func New(paths store.Paths) *App {
	_ = os.MkdirAll(paths.SaveDir, 0o755)
	return &App{
		mode:      ModeNormal,
		selected:  -1,
		editIndex: -1,
		keys:      LoadBindings(paths.BindingsPath()),
		paths:     paths,
		theme:     theme.Load(paths.ThemePath()),
	}
}

// Accessors for the renderer and CLI.

func (a *App) Mode() InputMode { return a.mode }

func (a *App) Input() string { return string(a.input) }

func (a *App) Cursor() int { return a.cursor }

func (a *App) Entries() []model.Entry { return a.entries }

func (a *App) Keybindings() *KeyBindings { return &a.keys }

func (a *App) Paths() store.Paths { return a.paths }

func (a *App) LoadFiles() []string { return a.loadFiles }

func (a *App) LoadSelected() int { return a.loadSelected }

func (a *App) KeybindSelected() int { return a.keybindSelected }

func (a *App) ThemeSelected() int { return a.themeSelected }

func (a *App) Theme() theme.Name { return a.theme }

// Notes returns the note-only projection of the entry list.
func (a *App) Notes() []model.Note { return model.Notes(a.entries) }

// NoteTime returns the timestamp captured when note editing started.
func (a *App) NoteTime() (time.Time, bool) { return a.noteTime, a.noteTimeSet }

// Selected returns the selection cursor if anything is selected.
func (a *App) Selected() (int, bool) {
	if a.selected < 0 {
		return 0, false
	}
	return a.selected, true
}

// CaptureAction returns the action being rebound while capturing a key.
func (a *App) CaptureAction() (Action, bool) { return a.captureAction, a.captureActive }

// PendingRebind returns the stashed conflict negotiation, if one is active.
func (a *App) PendingRebind() (k key.Key, action, conflict Action, ok bool) {
	return a.pendingKey, a.pendingAction, a.pendingConflict, a.pendingActive
}

// Now returns the current timestamp, honoring an active time hack.
func (a *App) Now() time.Time {
	if a.hack != nil {
		now := time.Now()
		base := time.Date(now.Year(), now.Month(), now.Day(),
			a.hack.base.Hour(), a.hack.base.Minute(), a.hack.base.Second(),
			a.hack.base.Nanosecond(), time.Local)
		return base.Add(time.Since(a.hack.capturedAt))
	}
	return time.Now()
}

// TimeSource names the active clock for the status line.
func (a *App) TimeSource() string {
	if a.hack != nil {
		return "Hacked"
	}
	return "System"
}

// TimeHackActive reports whether a hacked clock is installed.
func (a *App) TimeHackActive() bool { return a.hack != nil }

// SelectPrevious moves the selection up, clamping at the first entry.
func (a *App) SelectPrevious() {
	if a.selected > 0 {
		a.selected--
	}
}

// SelectNext moves the selection down; from no selection it lands on the
// first entry of a non-empty list.
func (a *App) SelectNext() {
	switch {
	case a.selected >= 0 && a.selected+1 < len(a.entries):
		a.selected++
	case a.selected < 0 && len(a.entries) > 0:
		a.selected = 0
	}
}

// StartNote begins a new note, capturing the timestamp now: a note's
// timestamp reflects when the user began writing it, not when they finished.
func (a *App) StartNote() {
	a.noteTime = a.Now()
	a.noteTimeSet = true
	a.input = nil
	a.cursor = 0
	a.editIndex = -1
	a.mode = ModeEditingNote
}

// StartSection begins a new untimed section header.
func (a *App) StartSection() {
	a.noteTimeSet = false
	a.input = nil
	a.cursor = 0
	a.editIndex = -1
	a.mode = ModeEditingSection
}

// EditSelected copies the selected entry into the input buffer and switches
// to the matching existing-entry editing mode.
func (a *App) EditSelected() {
	if a.selected < 0 || a.selected >= len(a.entries) {
		return
	}
	e := a.entries[a.selected]
	switch e.Kind {
	case model.EntryKindNote:
		a.input = []rune(e.Note.Text)
		a.cursor = len(a.input)
		a.noteTime = e.Note.Timestamp
		a.noteTimeSet = true
		a.editIndex = a.selected
		a.mode = ModeEditingExistingNote
	case model.EntryKindSection:
		a.input = []rune(e.Section.Title)
		a.cursor = len(a.input)
		a.noteTimeSet = false
		a.editIndex = a.selected
		a.mode = ModeEditingExistingSection
	}
}

// FinalizeNote commits the note edit: overwrite in place when editing an
// existing entry, otherwise append a new note with the timestamp captured at
// edit-start. A silent no-op when neither applies.
func (a *App) FinalizeNote() {
	if a.editIndex >= 0 {
		idx := a.editIndex
		a.editIndex = -1
		if idx < len(a.entries) && a.entries[idx].Kind == model.EntryKindNote {
			a.entries[idx].Note.Text = string(a.input)
		}
		a.input = nil
		a.cursor = 0
		a.noteTimeSet = false
		a.mode = ModeNormal
		return
	}
	if !a.noteTimeSet {
		return
	}
	n := model.Note{ID: model.NewNoteID(), Timestamp: a.noteTime, Text: string(a.input)}
	a.noteTimeSet = false
	a.entries = append(a.entries, model.NoteEntry(n))
	a.selected = len(a.entries) - 1
	a.input = nil
	a.cursor = 0
	a.mode = ModeNormal
}

// FinalizeSection commits a section edit. New sections with a blank title
// are discarded rather than stored.
func (a *App) FinalizeSection() {
	title := string(a.input)
	a.input = nil
	if a.editIndex >= 0 {
		idx := a.editIndex
		a.editIndex = -1
		if idx < len(a.entries) && a.entries[idx].Kind == model.EntryKindSection {
			a.entries[idx].Section.Title = title
		}
		a.noteTimeSet = false
	} else if strings.TrimSpace(title) != "" {
		a.entries = append(a.entries, model.SectionEntry(model.Section{Title: title}))
		a.selected = len(a.entries) - 1
	}
	a.cursor = 0
	a.mode = ModeNormal
}

// CancelEntry discards the input buffer and any pending timestamp or edit
// target without touching the entry list.
func (a *App) CancelEntry() {
	a.input = nil
	a.noteTimeSet = false
	a.editIndex = -1
	a.cursor = 0
	a.mode = ModeNormal
}

// StartSave prompts for a save path, prefilled with the default file in the
// save dir.
func (a *App) StartSave() {
	a.input = []rune(filepath.Join(a.paths.SaveDir, "notes.csv"))
	a.cursor = len(a.input)
	a.mode = ModeSaving
}

// StartLoad opens the load menu over the CSV files found in the save dir.
func (a *App) StartLoad() {
	a.loadFiles = store.ListSaveFiles(a.paths.SaveDir)
	a.loadSelected = 0
	a.input = nil
	a.cursor = 0
	a.mode = ModeLoading
}

// StartKeybindings opens the key-bindings overlay.
func (a *App) StartKeybindings() {
	a.keybindSelected = 0
	a.mode = ModeKeyBindings
}

// StartThemeMenu opens the theme overlay with the active theme highlighted.
func (a *App) StartThemeMenu() {
	a.themeSelected = 0
	for i, t := range theme.All {
		if t == a.theme {
			a.themeSelected = i
			break
		}
	}
	a.mode = ModeThemeSelect
}

// StartTimeHack opens the time-hack input.
func (a *App) StartTimeHack() {
	a.input = nil
	a.cursor = 0
	a.mode = ModeTimeHack
}

func (a *App) startCaptureBinding() {
	if a.keybindSelected < len(Actions) {
		a.captureAction = Actions[a.keybindSelected]
		a.captureActive = true
		a.mode = ModeKeyCapture
	}
}

// finalizeTimeHack interprets the buffer: empty clears the hack, a parseable
// time-of-day installs it and appends an audit note stamped with the real
// system time, anything else leaves the hack unchanged. The buffer is cleared
// and the mode returns to Normal in every case.
func (a *App) finalizeTimeHack() {
	in := string(a.input)
	if in == "" {
		a.hack = nil
	} else if base, ok := parseTimeOfDay(in); ok {
		now := time.Now()
		a.hack = &timeHack{base: base, capturedAt: now}
		hacked := a.Now()
		n := model.Note{
			ID:        model.NewNoteID(),
			Timestamp: now,
			Text:      fmt.Sprintf("Time Hack: %s -> %s", now.Format("15:04:05"), hacked.Format("15:04:05")),
		}
		a.entries = append(a.entries, model.NoteEntry(n))
		a.selected = len(a.entries) - 1
	}
	a.input = nil
	a.cursor = 0
	a.mode = ModeNormal
}

// resetTimeHack clears the hack immediately, skipping the parse step.
func (a *App) resetTimeHack() {
	a.hack = nil
	a.input = nil
	a.cursor = 0
	a.mode = ModeNormal
}

func parseTimeOfDay(s string) (time.Time, bool) {
	for _, layout := range []string{"15:04:05.999999999", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SaveToFile writes the entry list to path.
func (a *App) SaveToFile(path string) error {
	return store.SaveEntries(path, a.entries)
}

// LoadFromFileInPlace replaces the whole app state with a fresh app holding
// the entries loaded from path. Bindings and theme are re-read from the
// injected paths, matching a restart with that file.
func (a *App) LoadFromFileInPlace(path string) error {
	entries, err := store.LoadEntries(path)
	if err != nil {
		return err
	}
	fresh := New(a.paths)
	fresh.entries = entries
	*a = *fresh
	return nil
}
