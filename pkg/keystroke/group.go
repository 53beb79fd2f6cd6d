package keystroke

import "strings"

// Group is one element of a chord: a single Keystroke, a Range, or a
// Set. The three forms share lexical shape, so decoding tries them in a
// fixed priority order (single, then range, then set) and takes the
// first that succeeds.
type Group interface {
	// String returns the canonical encoding of the group.
	String() string

	group()
}

func (Keystroke) group() {}

// Range represents any key from Start through End, e.g. 0-9.
type Range struct {
	Start Keystroke
	End   Keystroke
}

func (Range) group() {}

// String encodes the range as "{start}-{end}".
func (r Range) String() string {
	return string(r.Start) + "-" + string(r.End)
}

// Set represents any one of an ordered sequence of keys, e.g. the four
// arrow keys. Order is preserved for display. Only single-glyph tokens
// can be members: the encoding concatenates canonical strings with no
// separator, so the decoder segments it rune by rune.
type Set struct {
	Keys []Keystroke
}

func (Set) group() {}

// String encodes the set as the concatenation of its members.
func (s Set) String() string {
	var b strings.Builder
	for _, k := range s.Keys {
		b.WriteString(string(k))
	}
	return b.String()
}

// ParseGroup decodes one whitespace-free substring into a Group.
//
// The grammars are tried in priority order: a whole-substring vocabulary
// match wins, so a literal "-" decodes as the minus token rather than a
// malformed range; only then is a single interior "-" treated as a range
// separator; finally the substring is read rune by rune as a set of
// glyph tokens. If all three fail, the returned GroupError carries the
// substring and the single-token error.
func ParseGroup(text string) (Group, error) {
	k, kerr := Parse(text)
	if kerr == nil {
		return k, nil
	}

	if start, end, ok := splitRange(text); ok {
		s, serr := Parse(start)
		e, eerr := Parse(end)
		if serr == nil && eerr == nil {
			return Range{Start: s, End: e}, nil
		}
	}

	if set, ok := parseSet(text); ok {
		return set, nil
	}

	return nil, &GroupError{Text: text, Err: kerr}
}

// splitRange splits text around a single interior "-" separator.
func splitRange(text string) (start, end string, ok bool) {
	if strings.Count(text, "-") != 1 {
		return "", "", false
	}
	i := strings.Index(text, "-")
	if i == 0 || i == len(text)-1 {
		return "", "", false
	}
	return text[:i], text[i+1:], true
}

// parseSet reads text as a sequence of single-glyph tokens.
func parseSet(text string) (Set, bool) {
	if text == "" {
		return Set{}, false
	}
	var keys []Keystroke
	for _, r := range text {
		k, err := Parse(string(r))
		if err != nil {
			return Set{}, false
		}
		keys = append(keys, k)
	}
	return Set{Keys: keys}, true
}
