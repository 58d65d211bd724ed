package app

import (
	"strings"

	"rtnt-cli/internal/key"
	"rtnt-cli/internal/theme"
)

// HandleKey is the single entry point the event loop calls. Dispatch is
// purely a function of the current input mode; the host loop delivers only
// key presses, one per call.
func (a *App) HandleKey(k key.Key) {
	switch a.mode {
	case ModeNormal:
		a.handleNormalKey(k)
	case ModeLoading:
		a.handleLoadingKey(k)
	case ModeKeyBindings:
		a.handleKeybindingsKey(k)
	case ModeKeyCapture:
		a.handleCaptureKey(k)
	case ModeConfirmReplace:
		a.handleConfirmKey(k)
	case ModeBindWarning:
		a.handleBindWarningKey(k)
	case ModeThemeSelect:
		a.handleThemeKey(k)
	default:
		// EditingNote, EditingSection, both existing-entry variants, Saving
		// and TimeHack share the text-editing handler.
		a.handleEditingKey(k)
	}
}

func (a *App) handleNormalKey(k key.Key) {
	action, ok := a.keys.ActionForKey(k)
	if !ok {
		return
	}
	switch action {
	case ActionUp:
		a.SelectPrevious()
	case ActionDown:
		a.SelectNext()
	case ActionEdit:
		a.EditSelected()
	case ActionNewNote:
		a.StartNote()
	case ActionNewSection:
		a.StartSection()
	case ActionSave:
		a.StartSave()
	case ActionLoad:
		a.StartLoad()
	case ActionBindings:
		a.StartKeybindings()
	case ActionTheme:
		a.StartThemeMenu()
	case ActionTimeHack:
		a.StartTimeHack()
	case ActionQuit, ActionCancel:
		// Quit is observed by the host event loop; cancel is a no-op here.
	}
}

// handleEditingKey implements the shared text editor. The confirm key is
// whatever NewNote is bound to; its meaning depends on the active mode.
func (a *App) handleEditingKey(k key.Key) {
	switch {
	case k == a.keys.Get(ActionNewNote):
		switch a.mode {
		case ModeEditingNote, ModeEditingExistingNote:
			a.FinalizeNote()
		case ModeEditingSection, ModeEditingExistingSection:
			a.FinalizeSection()
		case ModeSaving:
			a.finalizeSave()
		case ModeTimeHack:
			a.finalizeTimeHack()
		}
	case k == a.keys.Get(ActionCancel):
		a.CancelEntry()
	case a.mode == ModeTimeHack && k == key.Char('r'):
		a.resetTimeHack()
	case k.Code == key.CodeRune:
		if a.cursor >= len(a.input) {
			a.input = append(a.input, k.Rune)
		} else {
			a.input = append(a.input[:a.cursor], append([]rune{k.Rune}, a.input[a.cursor:]...)...)
		}
		a.cursor++
	case k == key.Backspace:
		if a.cursor > 0 && a.cursor <= len(a.input) {
			a.cursor--
			a.input = append(a.input[:a.cursor], a.input[a.cursor+1:]...)
		}
	case k == key.Left:
		if a.cursor > 0 {
			a.cursor--
		}
	case k == key.Right:
		if a.cursor < len(a.input) {
			a.cursor++
		}
	}
}

// finalizeSave writes to the typed path. Failures are swallowed: losing one
// save beats interrupting a live session.
func (a *App) finalizeSave() {
	path := string(a.input)
	a.input = nil
	if strings.TrimSpace(path) != "" {
		_ = a.SaveToFile(path)
	}
	a.cursor = 0
	a.mode = ModeNormal
}

func (a *App) handleLoadingKey(k key.Key) {
	switch k {
	case a.keys.Get(ActionUp):
		if a.loadSelected > 0 {
			a.loadSelected--
		}
	case a.keys.Get(ActionDown):
		if a.loadSelected+1 < len(a.loadFiles) {
			a.loadSelected++
		}
	case a.keys.Get(ActionNewNote):
		if a.loadSelected < len(a.loadFiles) {
			// Best-effort: a failed load leaves the current entries alone.
			_ = a.LoadFromFileInPlace(a.loadFiles[a.loadSelected])
		}
		a.mode = ModeNormal
	case a.keys.Get(ActionCancel):
		a.mode = ModeNormal
	}
}

func (a *App) handleKeybindingsKey(k key.Key) {
	switch k {
	case a.keys.Get(ActionUp):
		if a.keybindSelected > 0 {
			a.keybindSelected--
		}
	case a.keys.Get(ActionDown):
		if a.keybindSelected+1 < len(Actions) {
			a.keybindSelected++
		}
	case key.Enter:
		a.startCaptureBinding()
	case a.keys.Get(ActionCancel):
		a.mode = ModeNormal
	}
}

func (a *App) handleCaptureKey(k key.Key) {
	if !a.captureActive {
		return
	}
	action := a.captureAction
	switch {
	case k == a.keys.Get(ActionCancel):
		a.captureActive = false
		a.mode = ModeKeyBindings
	case k == a.keys.Get(ActionBindings) && action != ActionBindings:
		// Stealing the bindings-menu key would lock the user out of this
		// menu; warn instead of applying.
		a.mode = ModeBindWarning
	default:
		a.captureActive = false
		if conflict, ok := a.keys.ActionForKey(k); ok && conflict != action {
			a.pendingKey = k
			a.pendingAction = action
			a.pendingConflict = conflict
			a.pendingActive = true
			a.mode = ModeConfirmReplace
			return
		}
		a.keys.Set(action, k)
		a.keys.Save(a.paths.BindingsPath())
		a.mode = ModeKeyBindings
	}
}

func (a *App) handleBindWarningKey(k key.Key) {
	if k == a.keys.Get(ActionCancel) {
		a.captureActive = false
		a.mode = ModeKeyBindings
		return
	}
	a.mode = ModeKeyCapture
}

func (a *App) handleConfirmKey(k key.Key) {
	switch k {
	case key.Enter:
		if a.pendingActive {
			// Confirm-to-steal: the conflicting action drops to the unbound
			// sentinel and the new action takes the key.
			a.keys.Set(a.pendingConflict, key.Null)
			a.keys.Set(a.pendingAction, a.pendingKey)
			a.keys.Save(a.paths.BindingsPath())
			a.pendingActive = false
		}
		a.mode = ModeKeyBindings
	case a.keys.Get(ActionCancel):
		a.pendingActive = false
		a.mode = ModeKeyBindings
	}
}

func (a *App) handleThemeKey(k key.Key) {
	switch k {
	case a.keys.Get(ActionUp):
		if a.themeSelected > 0 {
			a.themeSelected--
		}
	case a.keys.Get(ActionDown):
		if a.themeSelected+1 < len(theme.All) {
			a.themeSelected++
		}
	case key.Enter:
		if a.themeSelected < len(theme.All) {
			a.theme = theme.All[a.themeSelected]
			a.theme.Save(a.paths.ThemePath())
		}
		a.mode = ModeNormal
	case a.keys.Get(ActionCancel):
		a.mode = ModeNormal
	}
}
