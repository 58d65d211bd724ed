package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"rtnt-cli/internal/model"
)

// Entries are persisted as a headerless three-column CSV:
//
//	note,<rfc3339 timestamp>,<text>
//	section,,<title>
//
// Row order is entry order. Loading replaces the whole in-memory entry list;
// rows with an unrecognized first column are skipped without error.

// SaveEntries writes entries to path.
func SaveEntries(path string, entries []model.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	for _, e := range entries {
		var rec []string
		switch e.Kind {
		case model.EntryKindNote:
			rec = []string{"note", e.Note.Timestamp.Format(time.RFC3339Nano), e.Note.Text}
		case model.EntryKindSection:
			rec = []string{"section", "", e.Section.Title}
		default:
			continue
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadEntries reads entries from path. Loaded notes get fresh IDs; identity is
// not persisted in the CSV.
func LoadEntries(path string) ([]model.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var entries []model.Entry
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if len(rec) < 3 {
			continue
		}
		switch rec[0] {
		case "note":
			ts, err := time.Parse(time.RFC3339Nano, rec[1])
			if err != nil {
				return nil, fmt.Errorf("parse note timestamp %q: %w", rec[1], err)
			}
			entries = append(entries, model.NoteEntry(model.Note{
				ID:        model.NewNoteID(),
				Timestamp: ts.In(time.Local),
				Text:      rec[2],
			}))
		case "section":
			entries = append(entries, model.SectionEntry(model.Section{Title: rec[2]}))
		default:
			// Unknown row kinds from newer/older versions are ignored.
		}
	}
	return entries, nil
}

// ListSaveFiles returns the CSV files directly under dir, sorted by name.
// A missing dir yields an empty list; the load menu just shows nothing.
func ListSaveFiles(dir string) []string {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		if strings.HasSuffix(de.Name(), ".csv") {
			out = append(out, filepath.Join(dir, de.Name()))
		}
	}
	sort.Strings(out)
	return out
}
