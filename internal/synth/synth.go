// Package synth turns a compressed trie into a regular expression that
// matches every word stored in it.
//
// Each node is serialized by the first strategy that applies:
//
//  1. character class: every label is one character and nothing follows
//  2. shared continuation: all children are equal, so the labels are
//     grouped once and the child is serialized after them
//  3. optional character class: labels are empty or one character and
//     nothing follows
//  4. binary optional: the terminal marker plus one edge to a word end
//  5. alternation: edges are grouped by continuation and joined with '|'
//
// The heuristics are greedy and local to a node. The result accepts every
// input word; it is not guaranteed to be minimal or to reject other strings.
package synth

import (
	"errors"
	"fmt"
	"io"
	"regexp/syntax"
	"strings"

	"github.com/KromDaniel/alternation/internal/literal"
	"github.com/KromDaniel/alternation/internal/trie"
)

// ErrInternal reports a fragment that violates the synthesizer's own
// invariants. It indicates a bug, never a property of the input.
var ErrInternal = errors.New("internal synthesis error")

// Config holds the configuration for a synthesis run.
type Config struct {
	Verbose      bool // Trace every recursive decision
	NonCapturing bool // Emit (?:...) for every group instead of the mixed default
}

// Synthesizer serializes a trie into a pattern.
// It keeps the current depth for tracing and is not safe for concurrent use.
type Synthesizer struct {
	config Config
	logger *Logger
	depth  int
}

// New creates a new synthesizer.
func New(config Config) *Synthesizer {
	return &Synthesizer{
		config: config,
		logger: NewLogger(config.Verbose),
	}
}

// Logger returns the trace logger.
func (s *Synthesizer) Logger() *Logger {
	return s.logger
}

// SetOutput redirects the trace.
func (s *Synthesizer) SetOutput(w io.Writer) {
	s.logger.SetOutput(w)
}

// Serialize returns the pattern for root. The result is unanchored; an
// empty trie yields the empty pattern.
func (s *Synthesizer) Serialize(root *trie.Node) (string, error) {
	s.logger.Section("Serialize")
	pattern := s.serialize(root, 0)

	if _, err := syntax.Parse(pattern, syntax.Perl); err != nil {
		return "", fmt.Errorf("%w: fragment %q does not parse: %v", ErrInternal, pattern, err)
	}
	return pattern, nil
}

// Synthesize builds the trie for words and serializes it.
func Synthesize(words []string, config Config) (string, error) {
	return New(config).Serialize(trie.FromWords(words))
}

func (s *Synthesizer) log(step string, value interface{}) {
	s.logger.Log(s.depth, step, value)
}

func (s *Synthesizer) serialize(n *trie.Node, level int) string {
	saved := s.depth
	s.depth = level
	defer func() { s.depth = saved }()

	s.log("serializer:input", n)
	labels := n.Labels()

	var out string
	switch {
	case n.IsEnd():
		out = ""
	case s.isCharClass(n, labels):
		s.log("case", "char class")
		out = s.charClass(labels)
	case allIdentical(n, labels):
		s.log("case", "identical continuations")
		var head string
		switch {
		case allSingle(labels):
			head = s.charClass(labels)
		case allLen01(labels):
			head = s.optCharClass(labels)
		case isOptional(n, labels):
			head = s.optionalGroup(labels)
		default:
			head = s.asGroup(labels, true)
		}
		out = s.concat(head, s.serialize(n.Child(labels[0]), level+1))
	case s.isOptionalCharClass(n, labels):
		s.log("case", "optional char class")
		out = s.optCharClass(labels)
	case isOptional(n, labels):
		s.log("case", "optional")
		label := labels[1]
		out = s.optGroup(s.concat(label, s.serialize(n.Child(label), level+1)))
	default:
		s.log("case", "alternation")
		out = s.alternation(n, labels, level)
	}

	s.log("serializer:output", out)
	return out
}

// alternation groups the edges of n by continuation. When some edges share
// one, each group is rendered as its grouped labels followed by the shared
// child; otherwise every edge is rendered on its own.
func (s *Synthesizer) alternation(n *trie.Node, labels []string, level int) string {
	groups := groupByContinuation(n, labels)
	s.log("serializer:groups", len(groups))

	parts := make([]string, 0, len(labels))
	if len(groups) < len(labels) {
		for _, g := range groups {
			head := s.reprKeys(g.labels, level > 0)
			parts = append(parts, s.concat(head, s.serialize(g.child, level+1)))
		}
		s.log("serializer:suffixes", parts)
	} else {
		for _, label := range labels {
			child := n.Child(label)
			tail := ""
			if child.Kind() != trie.KindLeaf {
				tail = s.serialize(child, level+1)
			}
			parts = append(parts, s.concat(label, tail))
		}
		s.log("serializer:grouped", parts)
	}
	return s.group(parts, true)
}

type continuation struct {
	labels []string
	child  *trie.Node
}

// groupByContinuation partitions labels by the continuation of their
// child, in order of first appearance.
func groupByContinuation(n *trie.Node, labels []string) []continuation {
	var groups []continuation
	index := make(map[string]int)
	for _, label := range labels {
		child := n.Child(label)
		key := child.ContinuationKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, continuation{child: child})
		}
		groups[i].labels = append(groups[i].labels, label)
	}
	return groups
}

func (s *Synthesizer) isCharClass(n *trie.Node, labels []string) bool {
	return allSingle(labels) && allChildrenEnd(n, labels)
}

func (s *Synthesizer) isOptionalCharClass(n *trie.Node, labels []string) bool {
	return allLen01(labels) && allChildrenEnd(n, labels)
}

// isOptional reports whether n holds the terminal marker and exactly one
// other edge whose child ends the word or has a single edge.
func isOptional(n *trie.Node, labels []string) bool {
	if len(labels) != 2 || labels[0] != trie.Terminal {
		return false
	}
	child := n.Child(labels[1])
	return child.IsTerminalOnly() || child.Len() == 1
}

func allIdentical(n *trie.Node, labels []string) bool {
	if len(labels) < 2 {
		return false
	}
	first := n.Child(labels[0])
	for _, label := range labels[1:] {
		if !trie.Equal(first, n.Child(label)) {
			return false
		}
	}
	return true
}

func allChildrenEnd(n *trie.Node, labels []string) bool {
	for _, label := range labels {
		if !n.Child(label).IsEnd() {
			return false
		}
	}
	return true
}

func allSingle(l []string) bool {
	for _, s := range l {
		if !literal.IsSingle(s) {
			return false
		}
	}
	return true
}

// allLen01 reports whether l mixes the empty string with single
// characters and holds nothing else.
func allLen01(l []string) bool {
	var empty, single bool
	for _, s := range l {
		switch {
		case s == "":
			empty = true
		case literal.IsSingle(s):
			single = true
		default:
			return false
		}
	}
	return empty && single
}

func allDigits(l []string) bool {
	for _, s := range l {
		r, ok := literal.SingleRune(s)
		if !ok || r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasEmpty(l []string) bool {
	for _, s := range l {
		if s == "" {
			return true
		}
	}
	return false
}

// concat appends tail to head, grouping either side that holds a
// top-level alternation.
func (s *Synthesizer) concat(head, tail string) string {
	if tail == "" {
		return head
	}
	if head == "" {
		return tail
	}
	if literal.HasTopLevelAlt(head) {
		head = s.enclose(head, true)
	}
	if literal.HasTopLevelAlt(tail) {
		tail = s.enclose(tail, true)
	}
	return head + tail
}

// enclose wraps body in a group. Non-capturing is used when asked for or
// when configured; otherwise a capturing group is emitted.
func (s *Synthesizer) enclose(body string, nonCapturing bool) string {
	if nonCapturing || s.config.NonCapturing {
		return "(?:" + body + ")"
	}
	return "(" + body + ")"
}

// needsGroup reports whether a '?' applied to fragment would bind to less
// than all of it.
func needsGroup(fragment string) bool {
	atoms := literal.Atoms(fragment)
	if len(atoms) != 1 {
		return len(atoms) > 1
	}
	return strings.HasSuffix(fragment, "?") && fragment != `\?`
}
