package model

import (
	"strings"
	"testing"
	"time"
)

func TestNotesProjection(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 12, 21, 10, 30, 0, 0, time.UTC)
	entries := []Entry{
		NoteEntry(Note{ID: "note-a", Timestamp: now, Text: "first"}),
		SectionEntry(Section{Title: "agenda"}),
		NoteEntry(Note{ID: "note-b", Timestamp: now.Add(time.Minute), Text: "second"}),
	}

	notes := Notes(entries)
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes; got %d", len(notes))
	}
	if notes[0].Text != "first" || notes[1].Text != "second" {
		t.Fatalf("projection out of order: %+v", notes)
	}

	if got := Notes(nil); got != nil {
		t.Fatalf("expected nil projection of no entries; got %v", got)
	}
}

func TestNewNoteID(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewNoteID()
		if !strings.HasPrefix(id, "note-") {
			t.Fatalf("unexpected id form %q", id)
		}
		if len(id) != len("note-")+8 {
			t.Fatalf("unexpected id length %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
