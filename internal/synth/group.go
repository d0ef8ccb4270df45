package synth

import (
	"slices"
	"strings"

	"github.com/KromDaniel/alternation/internal/literal"
)

// reprKeys renders a set of labels that share one continuation.
func (s *Synthesizer) reprKeys(labels []string, doGroup bool) string {
	switch {
	case allSingle(labels):
		return s.charClass(labels)
	case allLen01(labels):
		return s.optCharClass(labels)
	}
	return s.asGroup(labels, doGroup)
}

// charClass renders single-character labels as one class.
func (s *Synthesizer) charClass(labels []string) string {
	s.log("as_char_class:input", labels)
	out := literal.CharClass(literal.Runes(labels))
	s.log("as_char_class:output", out)
	return out
}

// optCharClass renders the empty label plus single characters as an
// optional class.
func (s *Synthesizer) optCharClass(labels []string) string {
	s.log("as_opt_charclass:input", labels)
	out := literal.CharClass(literal.Runes(labels))
	if out != "" {
		out += "?"
	}
	s.log("as_opt_charclass:output", out)
	return out
}

// optGroup makes fragment optional, grouping it when it is longer than one
// atom. The group is non-capturing only when fragment contains a space.
func (s *Synthesizer) optGroup(fragment string) string {
	s.log("opt_group:input", fragment)
	if needsGroup(fragment) {
		fragment = s.enclose(fragment, strings.Contains(fragment, " "))
	}
	out := fragment + "?"
	s.log("opt_group:output", out)
	return out
}

// optionalGroup renders a list holding the empty string as the optional
// alternation of its other members.
func (s *Synthesizer) optionalGroup(l []string) string {
	l = slices.Clone(l)
	slices.Sort(l)
	s.log("as_optional_group:input_sorted", l)

	var rest []string
	for _, x := range l {
		if x != "" {
			rest = append(rest, x)
		}
	}
	if len(rest) == 0 {
		s.log("as_optional_group:output", "")
		return ""
	}

	var out string
	if allDigits(rest) {
		out = s.charClass(rest)
		s.log("as_optional_group:digits", out)
	} else {
		single := allSingle(rest)
		if len(rest) > 1 {
			out = s.asGroup(rest, true)
		} else {
			out = rest[0]
		}
		if !single && needsGroup(out) {
			out = s.enclose(out, false)
		}
	}
	out += "?"
	s.log("as_optional_group:output", out)
	return out
}

// asGroup factors the longest common suffix out of l and groups what is
// left in front of it. Without a common suffix it falls back to group.
func (s *Synthesizer) asGroup(l []string, doGroup bool) string {
	l = slices.Clone(l)
	slices.Sort(l)
	s.log("as_group:input", l)

	suffix := ""
	if len(l) > 1 && !anyTopLevelAlt(l) {
		suffix = literal.CommonSuffix(l)
	}
	s.log("as_group:suffix", suffix)

	var out string
	if suffix != "" {
		prefixes := make([]string, len(l))
		for i, x := range l {
			prefixes[i] = strings.TrimSuffix(x, suffix)
		}
		s.log("as_group:prefixes", prefixes)

		var head string
		if allSingle(prefixes) {
			head = s.charClass(prefixes)
		} else {
			head = s.group(prefixes, true)
		}
		out = s.concat(head, suffix)
	} else {
		out = s.group(l, doGroup)
	}
	s.log("as_group:output", out)
	return out
}

// group joins l into one alternation. Single characters are merged into a
// class and members ending in the same character are suffix-factored.
// With doGroup the result is enclosed when it holds more than one
// alternative.
func (s *Synthesizer) group(l []string, doGroup bool) string {
	s.log("group:input", l)

	var out string
	if hasEmpty(l) {
		out = s.optionalGroup(l)
	} else {
		l = s.condenseSingles(l)
		l = s.condensePrefix(l)
		out = strings.Join(l, "|")
		if doGroup && (len(l) > 1 || literal.HasTopLevelAlt(out)) {
			out = s.enclose(out, len(l) > 1)
		}
	}
	s.log("group:output", out)
	return out
}

// condenseSingles pulls every single-character member of l into one
// character class.
func (s *Synthesizer) condenseSingles(l []string) []string {
	s.log("condense_len1:input", l)

	var chars []rune
	rest := make([]string, 0, len(l))
	for _, x := range l {
		if r, ok := literal.SingleRune(x); ok {
			chars = append(chars, r)
		} else {
			rest = append(rest, x)
		}
	}
	if len(chars) > 0 {
		rest = append(rest, literal.CharClass(chars))
	}
	slices.Sort(rest)

	s.log("condense_len1:output", rest)
	return rest
}

// condensePrefix buckets the literal members of l by their last character
// and factors each bucket's common suffix. Members that already contain a
// group or an alternation, or that end in anything but a plain character,
// are kept as they are. Bucketing and rebuilding are separate passes.
func (s *Synthesizer) condensePrefix(l []string) []string {
	s.log("condense_prefix:input", l)

	sorted := slices.Clone(l)
	slices.Sort(sorted)

	buckets := make(map[string][]string)
	var order, rest []string
	for _, x := range sorted {
		atoms := literal.Atoms(x)
		if strings.Contains(x, "(?:") || strings.Contains(x, "|") || len(atoms) == 0 || !literal.IsPlain(atoms[len(atoms)-1]) {
			rest = append(rest, x)
			continue
		}
		last := atoms[len(atoms)-1]
		if _, ok := buckets[last]; !ok {
			order = append(order, last)
		}
		buckets[last] = append(buckets[last], x)
	}

	out := make([]string, 0, len(l))
	for _, last := range order {
		members := buckets[last]
		suffix := literal.CommonSuffix(members)
		prefixes := make([]string, len(members))
		for i, x := range members {
			prefixes[i] = strings.TrimSuffix(x, suffix)
		}
		out = append(out, s.concat(s.asGroup(prefixes, true), suffix))
	}
	out = append(out, rest...)

	s.log("condense_prefix:output", out)
	return out
}

func anyTopLevelAlt(l []string) bool {
	for _, x := range l {
		if literal.HasTopLevelAlt(x) {
			return true
		}
	}
	return false
}
