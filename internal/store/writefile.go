package store

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data via a tmp file + rename so a crash mid-write
// never leaves a truncated config behind. Parent dirs are created as needed.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
