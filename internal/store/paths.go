package store

import (
	"os"
	"path/filepath"
)

// Paths resolves the per-user locations used by the app: the config dir for
// key bindings and theme selection, and the save dir for note CSV files. It is
// an explicit value injected into App construction so tests and CLI flags can
// redirect it instead of relying on a hidden process-wide default.
type Paths struct {
	ConfigDir string
	SaveDir   string

	// BindingsFile, when set, overrides the bindings path inside ConfigDir.
	BindingsFile string
}

// DefaultPaths places everything under the OS user config dir.
func DefaultPaths() Paths {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	dir := filepath.Join(base, "rtnt")
	return Paths{ConfigDir: dir, SaveDir: dir}
}

func (p Paths) BindingsPath() string {
	if p.BindingsFile != "" {
		return p.BindingsFile
	}
	return filepath.Join(p.ConfigDir, "keybindings.json")
}

func (p Paths) ThemePath() string {
	return filepath.Join(p.ConfigDir, "theme.json")
}
