// Package verify checks a synthesized pattern against the words it was
// built from.
package verify

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/dlclark/regexp2"
)

// Engine names a regular expression engine.
type Engine string

const (
	// EngineRE2 is the standard library's RE2 engine.
	EngineRE2 Engine = "re2"
	// EngineECMAScript is regexp2 in ECMAScript mode, the dialect of
	// JavaScript's RegExp.
	EngineECMAScript Engine = "ecmascript"
)

// ErrUnknownEngine is returned for an engine name that is not supported.
var ErrUnknownEngine = errors.New("unknown engine")

// Engines lists the supported engines.
func Engines() []Engine {
	return []Engine{EngineRE2, EngineECMAScript}
}

// ParseEngine validates an engine name. The empty name selects RE2.
func ParseEngine(name string) (Engine, error) {
	if name == "" {
		return EngineRE2, nil
	}
	e := Engine(name)
	if !slices.Contains(Engines(), e) {
		return "", fmt.Errorf("%w %q, must be one of: %s, %s", ErrUnknownEngine, name, EngineRE2, EngineECMAScript)
	}
	return e, nil
}

// Matcher reports whether a string matches a compiled pattern.
type Matcher interface {
	MatchString(s string) (bool, error)
}

type re2Matcher struct {
	re *regexp.Regexp
}

func (m re2Matcher) MatchString(s string) (bool, error) {
	return m.re.MatchString(s), nil
}

// Anchor wraps pattern so that it must match a whole string.
func Anchor(pattern string) string {
	return "^(?:" + pattern + ")$"
}

// Compile anchors pattern and compiles it with engine.
func Compile(engine Engine, pattern string) (Matcher, error) {
	anchored := Anchor(pattern)
	switch engine {
	case EngineRE2, "":
		re, err := regexp.Compile(anchored)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern: %w", err)
		}
		return re2Matcher{re: re}, nil
	case EngineECMAScript:
		re, err := regexp2.Compile(anchored, regexp2.ECMAScript)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern: %w", err)
		}
		return re, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEngine, engine)
}

// Report maps every input word to whether the pattern matched it.
type Report map[string]bool

// OK reports whether every word matched.
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}

// Failed returns the words that did not match, sorted.
func (r Report) Failed() []string {
	var failed []string
	for word, ok := range r {
		if !ok {
			failed = append(failed, word)
		}
	}
	slices.Sort(failed)
	return failed
}

// Words returns the reported words, sorted.
func (r Report) Words() []string {
	words := make([]string, 0, len(r))
	for word := range r {
		words = append(words, word)
	}
	slices.Sort(words)
	return words
}

// Verify full-matches every word against pattern. It never alters the
// pattern; an empty word list yields an empty report.
func Verify(engine Engine, pattern string, words []string) (Report, error) {
	m, err := Compile(engine, pattern)
	if err != nil {
		return nil, err
	}
	report := make(Report, len(words))
	for _, w := range words {
		ok, err := m.MatchString(w)
		if err != nil {
			return nil, fmt.Errorf("failed to match %q: %w", w, err)
		}
		report[w] = ok
	}
	return report, nil
}
