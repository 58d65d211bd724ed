// Package theme enumerates the named color palettes and persists the active
// selection. Palette colors are only consumed by the renderer.
package theme

import (
	"encoding/json"
	"os"

	"github.com/charmbracelet/lipgloss"

	"rtnt-cli/internal/store"
)

type Name string

const (
	Default     Name = "Default"
	Matrix      Name = "Matrix"
	CyanCrush   Name = "CyanCrush"
	Embercore   Name = "Embercore"
	ToxicOrchid Name = "ToxicOrchid"
	Coldfire    Name = "Coldfire"
)

// All lists every theme in menu order.
var All = []Name{Default, Matrix, CyanCrush, Embercore, ToxicOrchid, Coldfire}

func (n Name) DisplayName() string {
	switch n {
	case CyanCrush:
		return "Cyan Crush"
	case ToxicOrchid:
		return "Toxic Orchid"
	default:
		return string(n)
	}
}

func valid(n Name) bool {
	for _, t := range All {
		if t == n {
			return true
		}
	}
	return false
}

// Load reads the persisted theme name from path. Missing, unreadable or
// unknown values fall back to Default; a broken theme file must never block
// the session.
func Load(path string) Name {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default
	}
	var n Name
	if err := json.Unmarshal(data, &n); err != nil || !valid(n) {
		return Default
	}
	return n
}

// Save persists the theme name to path, best effort.
func (n Name) Save(path string) {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return
	}
	_ = store.WriteFileAtomic(path, data)
}

// Palette maps the semantic color slots the renderer paints with.
type Palette struct {
	NotesBorder      lipgloss.TerminalColor
	NotesTitle       lipgloss.TerminalColor
	NotesHighlightBg lipgloss.TerminalColor
	NotesHighlightFg lipgloss.TerminalColor
	NoteFg           lipgloss.TerminalColor
	SectionFg        lipgloss.TerminalColor
	TimestampFg      lipgloss.TerminalColor
	InputFg          lipgloss.TerminalColor
	InputTitle       lipgloss.TerminalColor
	HelpKey          lipgloss.TerminalColor
	HelpDesc         lipgloss.TerminalColor
	OverlayBorder    lipgloss.TerminalColor
	OverlayTitle     lipgloss.TerminalColor
	OverlayHighBg    lipgloss.TerminalColor
	OverlayHighFg    lipgloss.TerminalColor
	OverlayBg        lipgloss.TerminalColor
	EditingFg        lipgloss.TerminalColor
	EditingTitle     lipgloss.TerminalColor
	OverlayText      lipgloss.TerminalColor
}

// fromColors expands a (primary, secondary, tertiary) triple into the full
// slot set. Every built-in theme is defined this way.
func fromColors(primary, secondary, tertiary lipgloss.Color) Palette {
	return Palette{
		NotesBorder:      primary,
		NotesTitle:       secondary,
		NotesHighlightBg: secondary,
		NotesHighlightFg: tertiary,
		NoteFg:           secondary,
		SectionFg:        secondary,
		TimestampFg:      primary,
		InputFg:          primary,
		InputTitle:       secondary,
		HelpKey:          secondary,
		HelpDesc:         primary,
		OverlayBorder:    primary,
		OverlayTitle:     secondary,
		OverlayHighBg:    secondary,
		OverlayHighFg:    primary,
		OverlayBg:        tertiary,
		EditingFg:        secondary,
		EditingTitle:     primary,
		OverlayText:      primary,
	}
}

// ANSI palette indices; keep the renderer on the 16-color set so themes look
// the same across terminals.
const (
	ansiBlack        = lipgloss.Color("0")
	ansiRed          = lipgloss.Color("1")
	ansiGreen        = lipgloss.Color("2")
	ansiYellow       = lipgloss.Color("3")
	ansiCyan         = lipgloss.Color("6")
	ansiLightRed     = lipgloss.Color("9")
	ansiLightGreen   = lipgloss.Color("10")
	ansiLightBlue    = lipgloss.Color("12")
	ansiLightMagenta = lipgloss.Color("13")
	ansiWhite        = lipgloss.Color("15")
)

// Palette returns the color set for this theme.
func (n Name) Palette() Palette {
	switch n {
	case Matrix:
		return fromColors(ansiLightGreen, ansiGreen, ansiBlack)
	case CyanCrush:
		return fromColors(ansiCyan, ansiLightMagenta, ansiBlack)
	case Embercore:
		return fromColors(ansiRed, ansiYellow, ansiBlack)
	case ToxicOrchid:
		return fromColors(ansiLightMagenta, ansiLightGreen, ansiBlack)
	case Coldfire:
		return fromColors(ansiLightBlue, ansiLightRed, ansiBlack)
	default:
		return fromColors(ansiWhite, ansiBlack, ansiBlack)
	}
}
