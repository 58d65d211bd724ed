// Package model defines the entry data model for the note taker.
package model

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
	"time"
)

type EntryKind string

const (
	EntryKindNote    EntryKind = "note"
	EntryKindSection EntryKind = "section"
)

// Note is a timestamped note. The timestamp is captured when the user began
// writing, not when the note was finalized. ID is a stable generated
// identifier; two notes may share a timestamp but never an ID.
type Note struct {
	ID        string
	Timestamp time.Time
	Text      string
}

// Section is an untimed header between notes.
type Section struct {
	Title string
}

// Entry is a tagged union of Note or Section. Exactly one of Note/Section is
// meaningful, selected by Kind. The ordered entry sequence is the single
// source of truth; note-only views are computed from it on demand.
type Entry struct {
	Kind    EntryKind
	Note    Note
	Section Section
}

func NoteEntry(n Note) Entry {
	return Entry{Kind: EntryKindNote, Note: n}
}

func SectionEntry(s Section) Entry {
	return Entry{Kind: EntryKindSection, Section: s}
}

// Notes returns the note-only projection of entries, in entry order.
func Notes(entries []Entry) []Note {
	var out []Note
	for _, e := range entries {
		if e.Kind == EntryKindNote {
			out = append(out, e.Note)
		}
	}
	return out
}

// NewNoteID returns note-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func NewNoteID() string {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms; degrade to a
		// time-derived suffix rather than abort mid-session.
		enc := base32.StdEncoding.WithPadding(base32.NoPadding)
		suffix := enc.EncodeToString([]byte(time.Now().Format("150405.00")))
		return "note-" + strings.ToLower(suffix[:8])
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return "note-" + strings.ToLower(enc.EncodeToString(b[:]))
}
