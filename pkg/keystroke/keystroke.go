// Package keystroke implements the keystroke notation used by sheet data
// files. It provides the closed token vocabulary, the three keystroke-group
// forms (single token, contiguous range, set of alternatives) and the
// parse/serialize round trip for space-separated chords.
package keystroke

import "unicode/utf8"

// Keystroke is an atomic key token. Its value is the canonical textual
// representation used in data files and rendered output.
type Keystroke string

// Modifier and special keys.
const (
	Backspace  Keystroke = "⌫"
	Cmd        Keystroke = "⌘"
	Ctrl       Keystroke = "^"
	Del        Keystroke = "del"
	End        Keystroke = "end"
	Esc        Keystroke = "esc"
	Fn         Keystroke = "fn"
	Home       Keystroke = "home"
	Opt        Keystroke = "⌥"
	Alt        Keystroke = "alt"
	Win        Keystroke = "⊞"
	PgDn       Keystroke = "pgdn"
	PgUp       Keystroke = "pgup"
	Ret        Keystroke = "⏎"
	Shift      Keystroke = "⇧"
	Space      Keystroke = "space"
	Tab        Keystroke = "tab"
	ScrollLock Keystroke = "scroll_lock"
	Up         Keystroke = "↑"
	Down       Keystroke = "↓"
	Left       Keystroke = "←"
	Right      Keystroke = "→"
)

// Function keys.
const (
	F1  Keystroke = "F1"
	F2  Keystroke = "F2"
	F3  Keystroke = "F3"
	F4  Keystroke = "F4"
	F5  Keystroke = "F5"
	F6  Keystroke = "F6"
	F7  Keystroke = "F7"
	F8  Keystroke = "F8"
	F9  Keystroke = "F9"
	F10 Keystroke = "F10"
	F11 Keystroke = "F11"
	F12 Keystroke = "F12"
)

// Letters.
const (
	A Keystroke = "A"
	B Keystroke = "B"
	C Keystroke = "C"
	D Keystroke = "D"
	E Keystroke = "E"
	F Keystroke = "F"
	G Keystroke = "G"
	H Keystroke = "H"
	I Keystroke = "I"
	J Keystroke = "J"
	K Keystroke = "K"
	L Keystroke = "L"
	M Keystroke = "M"
	N Keystroke = "N"
	O Keystroke = "O"
	P Keystroke = "P"
	Q Keystroke = "Q"
	R Keystroke = "R"
	S Keystroke = "S"
	T Keystroke = "T"
	U Keystroke = "U"
	V Keystroke = "V"
	W Keystroke = "W"
	X Keystroke = "X"
	Y Keystroke = "Y"
	Z Keystroke = "Z"
)

// Digits.
const (
	Zero  Keystroke = "0"
	One   Keystroke = "1"
	Two   Keystroke = "2"
	Three Keystroke = "3"
	Four  Keystroke = "4"
	Five  Keystroke = "5"
	Six   Keystroke = "6"
	Seven Keystroke = "7"
	Eight Keystroke = "8"
	Nine  Keystroke = "9"
)

// Punctuation.
const (
	Apostrophe   Keystroke = "'"
	Period       Keystroke = "."
	QuestionMark Keystroke = "?"
	Slash        Keystroke = "/"
	Plus         Keystroke = "+"
	Minus        Keystroke = "-"
	LeftBracket  Keystroke = "["
	RightBracket Keystroke = "]"
	Equals       Keystroke = "="
	Semicolon    Keystroke = ";"
	Grave        Keystroke = "`"
)

// vocabulary is the full closed token set in display order.
var vocabulary = []Keystroke{
	Backspace, Cmd, Ctrl, Del, End, Esc, Fn, Home, Opt, Alt, Win,
	PgDn, PgUp, Ret, Shift, Space, Tab, ScrollLock,
	Up, Down, Left, Right,
	F1, F2, F3, F4, F5, F6, F7, F8, F9, F10, F11, F12,
	A, B, C, D, E, F, G, H, I, J, K, L, M,
	N, O, P, Q, R, S, T, U, V, W, X, Y, Z,
	Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine,
	Apostrophe, Period, QuestionMark, Slash, Plus, Minus,
	LeftBracket, RightBracket, Equals, Semicolon, Grave,
}

var byToken = func() map[string]Keystroke {
	m := make(map[string]Keystroke, len(vocabulary))
	for _, k := range vocabulary {
		if _, dup := m[string(k)]; dup {
			// Canonical string -> token must be a bijection.
			panic("keystroke: duplicate canonical token " + string(k))
		}
		m[string(k)] = k
	}
	return m
}()

// Parse returns the Keystroke whose canonical string is exactly s.
// Matching is case-sensitive; no fuzzy or partial matching is done.
func Parse(s string) (Keystroke, error) {
	k, ok := byToken[s]
	if !ok {
		return "", &UnrecognizedTokenError{Token: s}
	}
	return k, nil
}

// String returns the canonical textual representation of the keystroke.
func (k Keystroke) String() string { return string(k) }

// Valid reports whether k is a member of the vocabulary.
func (k Keystroke) Valid() bool {
	_, ok := byToken[string(k)]
	return ok
}

// Glyph reports whether the canonical representation is a single
// character. Only glyph tokens can appear inside a Set encoding, since
// set notation concatenates members with no separator.
func (k Keystroke) Glyph() bool {
	return utf8.RuneCountInString(string(k)) == 1
}

// All returns the vocabulary in display order. The returned slice is a
// copy and may be modified by the caller.
func All() []Keystroke {
	out := make([]Keystroke, len(vocabulary))
	copy(out, vocabulary)
	return out
}
