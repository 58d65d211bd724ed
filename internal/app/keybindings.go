package app

import (
	"encoding/json"
	"os"

	"rtnt-cli/internal/key"
	"rtnt-cli/internal/store"
)

// KeyBindings maps every Action to a key. The mapping is total; the Null
// sentinel means "never triggers". A reverse key->action index is rebuilt on
// every mutation so lookups don't re-scan, and so the "first declared action
// wins" tie-break is applied in one place.
type KeyBindings struct {
	keys  map[Action]key.Key
	index map[key.Key]Action
}

// DefaultBindings returns the built-in mapping: arrows for navigation, Enter
// for new-note, Esc for cancel, single letters for the rest.
func DefaultBindings() KeyBindings {
	b := KeyBindings{keys: map[Action]key.Key{
		ActionUp:         key.Up,
		ActionDown:       key.Down,
		ActionEdit:       key.Char('e'),
		ActionNewNote:    key.Enter,
		ActionNewSection: key.Char('s'),
		ActionSave:       key.Char('w'),
		ActionLoad:       key.Char('l'),
		ActionQuit:       key.Char('q'),
		ActionCancel:     key.Esc,
		ActionBindings:   key.Char('b'),
		ActionTheme:      key.Char('t'),
		ActionTimeHack:   key.Char('h'),
	}}
	b.rebuildIndex()
	return b
}

func (b *KeyBindings) rebuildIndex() {
	b.index = make(map[key.Key]Action, len(b.keys))
	for _, a := range Actions {
		k := b.keys[a]
		if k == key.Null {
			continue
		}
		if _, taken := b.index[k]; taken {
			// Duplicate bindings can only come from a hand-edited config;
			// the earlier-declared action keeps the key.
			continue
		}
		b.index[k] = a
	}
}

// Get returns the key bound to action.
func (b *KeyBindings) Get(a Action) key.Key {
	return b.keys[a]
}

// Set binds action to k and refreshes the reverse index.
func (b *KeyBindings) Set(a Action, k key.Key) {
	b.keys[a] = k
	b.rebuildIndex()
}

// ActionForKey returns the action bound to k, if any. Null never matches.
func (b *KeyBindings) ActionForKey(k key.Key) (Action, bool) {
	a, ok := b.index[k]
	return a, ok
}

// bindingsConfig is the on-disk JSON shape. theme and time_hack were added
// later; older config files lacking them get 't' and 'h'.
type bindingsConfig struct {
	Up         string `json:"up"`
	Down       string `json:"down"`
	Edit       string `json:"edit"`
	NewNote    string `json:"new_note"`
	NewSection string `json:"new_section"`
	Save       string `json:"save"`
	Load       string `json:"load"`
	Quit       string `json:"quit"`
	Cancel     string `json:"cancel"`
	Bindings   string `json:"bindings"`
	Theme      string `json:"theme"`
	TimeHack   string `json:"time_hack"`
}

// LoadBindings reads key bindings from path. Any read or parse failure falls
// back to defaults; a broken config must never block the session. Individual
// unparseable fields keep that action's default.
func LoadBindings(path string) KeyBindings {
	b := DefaultBindings()
	data, err := os.ReadFile(path)
	if err != nil {
		return b
	}
	var cfg bindingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return b
	}
	if cfg.Theme == "" {
		cfg.Theme = "t"
	}
	if cfg.TimeHack == "" {
		cfg.TimeHack = "h"
	}
	fields := []struct {
		action Action
		value  string
	}{
		{ActionUp, cfg.Up},
		{ActionDown, cfg.Down},
		{ActionEdit, cfg.Edit},
		{ActionNewNote, cfg.NewNote},
		{ActionNewSection, cfg.NewSection},
		{ActionSave, cfg.Save},
		{ActionLoad, cfg.Load},
		{ActionQuit, cfg.Quit},
		{ActionCancel, cfg.Cancel},
		{ActionBindings, cfg.Bindings},
		{ActionTheme, cfg.Theme},
		{ActionTimeHack, cfg.TimeHack},
	}
	for _, f := range fields {
		if k, ok := key.Parse(f.value); ok {
			b.keys[f.action] = k
		}
	}
	b.rebuildIndex()
	return b
}

// Save persists the bindings to path, best effort. Losing a keybinding save
// must not crash the session.
func (b *KeyBindings) Save(path string) {
	cfg := bindingsConfig{
		Up:         b.Get(ActionUp).String(),
		Down:       b.Get(ActionDown).String(),
		Edit:       b.Get(ActionEdit).String(),
		NewNote:    b.Get(ActionNewNote).String(),
		NewSection: b.Get(ActionNewSection).String(),
		Save:       b.Get(ActionSave).String(),
		Load:       b.Get(ActionLoad).String(),
		Quit:       b.Get(ActionQuit).String(),
		Cancel:     b.Get(ActionCancel).String(),
		Bindings:   b.Get(ActionBindings).String(),
		Theme:      b.Get(ActionTheme).String(),
		TimeHack:   b.Get(ActionTimeHack).String(),
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = store.WriteFileAtomic(path, data)
}
