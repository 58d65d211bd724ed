package app

// Action is a logical operation a key can be bound to.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionEdit
	ActionNewNote
	ActionNewSection
	ActionSave
	ActionLoad
	ActionQuit
	ActionCancel
	ActionBindings
	ActionTheme
	ActionTimeHack
)

// Actions lists every action in declaration order. The key-bindings menu and
// the key-conflict tie-break (first declared action wins) both follow it.
var Actions = []Action{
	ActionUp,
	ActionDown,
	ActionEdit,
	ActionNewNote,
	ActionNewSection,
	ActionSave,
	ActionLoad,
	ActionQuit,
	ActionCancel,
	ActionBindings,
	ActionTheme,
	ActionTimeHack,
}

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionEdit:
		return "Edit"
	case ActionNewNote:
		return "New Note"
	case ActionNewSection:
		return "New Section"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionQuit:
		return "Quit"
	case ActionCancel:
		return "Cancel"
	case ActionBindings:
		return "Key Menu"
	case ActionTheme:
		return "Theme Menu"
	case ActionTimeHack:
		return "Time Hack"
	default:
		return "Unknown"
	}
}
