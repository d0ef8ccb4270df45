// Package literal escapes literal characters for use in a pattern and
// condenses character sets into character classes.
package literal

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// MetaChars is the fixed set of characters escaped with a backslash.
// It includes ']', '[', '^', '-' and '\', so an escaped character is also
// literal inside a character class.
const MetaChars = `#$&()*+-.?[]\^{}|~`

// IsMeta reports whether r is escaped by Escape.
func IsMeta(r rune) bool {
	return r < utf8.RuneSelf && strings.ContainsRune(MetaChars, r)
}

// Escape returns r as a pattern literal.
func Escape(r rune) string {
	if IsMeta(r) {
		return `\` + string(r)
	}
	return string(r)
}

// EscapeString escapes every character of s.
func EscapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(Escape(r))
	}
	return b.String()
}

// SingleRune returns the character s stands for when s is exactly one
// literal character, escaped or not.
func SingleRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	if s[0] == '\\' {
		r, size := utf8.DecodeRuneInString(s[1:])
		if size == 0 || 1+size != len(s) || !IsMeta(r) {
			return 0, false
		}
		return r, true
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || IsMeta(r) {
		return 0, false
	}
	return r, true
}

// IsSingle reports whether s is exactly one literal character.
func IsSingle(s string) bool {
	_, ok := SingleRune(s)
	return ok
}

// Runes collects the characters of single-character literals, skipping
// anything else.
func Runes(labels []string) []rune {
	var out []rune
	for _, l := range labels {
		if r, ok := SingleRune(l); ok {
			out = append(out, r)
		}
	}
	return out
}

// CondenseRange walks a sorted character list and collapses every run of
// consecutive code points of length three or more into a "start-end"
// range. Runs of two are written as two literals. Characters are escaped.
func CondenseRange(chars []rune) string {
	var b strings.Builder
	for len(chars) > 0 {
		i := 1
		for i < len(chars) && chars[i] == chars[i-1]+1 {
			i++
		}
		switch {
		case i == 1:
			b.WriteString(Escape(chars[0]))
		case i == 2:
			b.WriteString(Escape(chars[0]))
			b.WriteString(Escape(chars[1]))
		default:
			b.WriteString(Escape(chars[0]))
			b.WriteByte('-')
			b.WriteString(Escape(chars[i-1]))
		}
		chars = chars[i:]
	}
	return b.String()
}

// CharClass renders a character set. The set is sorted and deduplicated;
// a single character is returned bare, more are wrapped in brackets.
func CharClass(chars []rune) string {
	set := slices.Clone(chars)
	slices.Sort(set)
	set = slices.Compact(set)

	switch len(set) {
	case 0:
		return ""
	case 1:
		return Escape(set[0])
	}
	return "[" + CondenseRange(set) + "]"
}
