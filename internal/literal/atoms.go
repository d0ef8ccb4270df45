package literal

import (
	"strings"
	"unicode/utf8"
)

// Atoms splits a pattern fragment into its top-level atoms: an escaped
// character, a bracketed class, a parenthesized group or a plain
// character, each together with a trailing '?' quantifier. A bare '|'
// is an atom of its own.
//
// Factoring fragments atom by atom never cuts an escape or a group in half.
func Atoms(s string) []string {
	var atoms []string
	for i := 0; i < len(s); {
		j := atomEnd(s, i)
		if j < len(s) && s[j] == '?' {
			j++
		}
		atoms = append(atoms, s[i:j])
		i = j
	}
	return atoms
}

// HasTopLevelAlt reports whether s contains a '|' outside any group or class.
func HasTopLevelAlt(s string) bool {
	for _, a := range Atoms(s) {
		if a == "|" {
			return true
		}
	}
	return false
}

// IsPlain reports whether atom is one unescaped, unquantified character.
func IsPlain(atom string) bool {
	r, size := utf8.DecodeRuneInString(atom)
	return size > 0 && size == len(atom) && !IsMeta(r)
}

// CommonSuffix returns the longest sequence of whole atoms every fragment
// of l ends with.
func CommonSuffix(l []string) string {
	if len(l) == 0 {
		return ""
	}
	split := make([][]string, len(l))
	for i, s := range l {
		split[i] = Atoms(s)
	}

	n := 0
	for ; ; n++ {
		var cur string
		done := false
		for i, atoms := range split {
			if n >= len(atoms) {
				done = true
				break
			}
			a := atoms[len(atoms)-1-n]
			if i == 0 {
				cur = a
			} else if a != cur {
				done = true
				break
			}
		}
		if done {
			break
		}
	}

	first := split[0]
	return strings.Join(first[len(first)-n:], "")
}

func atomEnd(s string, i int) int {
	switch s[i] {
	case '\\':
		return escapeEnd(s, i)
	case '[':
		return classEnd(s, i)
	case '(':
		depth := 0
		for j := i; j < len(s); {
			switch s[j] {
			case '\\':
				j = escapeEnd(s, j)
				continue
			case '[':
				j = classEnd(s, j)
				continue
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return j + 1
				}
			}
			j++
		}
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}

func escapeEnd(s string, i int) int {
	if i+1 >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[i+1:])
	return i + 1 + size
}

func classEnd(s string, i int) int {
	for j := i + 1; j < len(s); {
		switch s[j] {
		case '\\':
			j = escapeEnd(s, j)
			continue
		case ']':
			return j + 1
		}
		j++
	}
	return len(s)
}
