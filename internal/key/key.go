// Package key defines the abstract key identifier used by the app core and
// its stable string codec for the key-bindings config file.
package key

import (
	"fmt"
	"unicode/utf8"
)

// Code enumerates the kinds of keys the core dispatches on.
type Code int

const (
	// CodeNull is the unbound sentinel. A binding set to Null never triggers.
	CodeNull Code = iota
	CodeRune
	CodeEnter
	CodeEsc
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeBackspace
)

// Key identifies a single key press. Rune is only meaningful when
// Code == CodeRune. Keys are comparable and usable as map keys.
type Key struct {
	Code Code
	Rune rune
}

var (
	Null      = Key{Code: CodeNull}
	Enter     = Key{Code: CodeEnter}
	Esc       = Key{Code: CodeEsc}
	Up        = Key{Code: CodeUp}
	Down      = Key{Code: CodeDown}
	Left      = Key{Code: CodeLeft}
	Right     = Key{Code: CodeRight}
	Backspace = Key{Code: CodeBackspace}
)

// Char returns the key for a single printable character.
func Char(r rune) Key {
	return Key{Code: CodeRune, Rune: r}
}

// String encodes the key as a canonical, human-readable token. Every key this
// type can represent encodes to something; keys outside the codec's symbolic
// set use a generic fallback form that Parse does not recognize.
func (k Key) String() string {
	switch k.Code {
	case CodeRune:
		return string(k.Rune)
	case CodeEnter:
		return "Enter"
	case CodeEsc:
		return "Esc"
	case CodeUp:
		return "Up"
	case CodeDown:
		return "Down"
	case CodeLeft:
		return "Left"
	case CodeRight:
		return "Right"
	case CodeNull:
		return "Null"
	case CodeBackspace:
		return "Backspace"
	default:
		return fmt.Sprintf("Key(%d)", int(k.Code))
	}
}

// Parse is the inverse of String for the symbolic set plus single characters.
// Unrecognized tokens return ok=false; the caller supplies its own default.
func Parse(s string) (Key, bool) {
	switch s {
	case "Enter":
		return Enter, true
	case "Esc":
		return Esc, true
	case "Up":
		return Up, true
	case "Down":
		return Down, true
	case "Left":
		return Left, true
	case "Right":
		return Right, true
	case "Null":
		return Null, true
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Char(r), true
	}
	return Key{}, false
}
