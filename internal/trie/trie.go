// Package trie builds the radix trie a word list is synthesized from.
//
// Edge labels are pattern literals: every character is escaped with
// literal.Escape before it becomes part of a label. The empty label is the
// terminal marker: an edge to a leaf meaning "a word ends here".
package trie

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/KromDaniel/alternation/internal/literal"
)

// Terminal is the label of the edge that marks the end of a word.
const Terminal = ""

// Kind tags the two shapes a Node can take.
type Kind int

const (
	// KindLeaf is a node without outgoing edges.
	KindLeaf Kind = iota
	// KindBranch is a node with at least one outgoing edge.
	KindBranch
)

func (k Kind) String() string {
	if k == KindLeaf {
		return "leaf"
	}
	return "branch"
}

// Node is a trie node: a mapping from edge label to child.
// A nil *Node is a leaf.
type Node struct {
	edges map[string]*Node
}

// New returns a leaf.
func New() *Node {
	return &Node{}
}

// Kind reports whether n is a leaf or a branch.
func (n *Node) Kind() Kind {
	if n.Len() == 0 {
		return KindLeaf
	}
	return KindBranch
}

// Len returns the number of outgoing edges.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.edges)
}

// Labels returns the edge labels in lexicographic order.
func (n *Node) Labels() []string {
	if n == nil {
		return nil
	}
	labels := make([]string, 0, len(n.edges))
	for label := range n.edges {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

// Child returns the node at the end of the edge labelled label, or nil.
func (n *Node) Child(label string) *Node {
	if n == nil {
		return nil
	}
	return n.edges[label]
}

// HasTerminal reports whether a word ends at n.
func (n *Node) HasTerminal() bool {
	if n == nil {
		return false
	}
	_, ok := n.edges[Terminal]
	return ok
}

// IsTerminalOnly reports whether the terminal marker is n's only edge.
func (n *Node) IsTerminalOnly() bool {
	return n.Len() == 1 && n.HasTerminal()
}

// IsEnd reports whether nothing can follow n: it is a leaf or holds only
// the terminal marker.
func (n *Node) IsEnd() bool {
	return n.Kind() == KindLeaf || n.IsTerminalOnly()
}

func (n *Node) set(label string, child *Node) {
	if n.edges == nil {
		n.edges = make(map[string]*Node)
	}
	n.edges[label] = child
}

// Build creates the uncompressed trie: one edge per character. The empty
// word sets the terminal marker on the root.
func Build(words []string) *Node {
	root := New()
	for _, word := range words {
		node := root
		for _, r := range word {
			label := literal.Escape(r)
			child := node.Child(label)
			if child == nil {
				child = New()
				node.set(label, child)
			}
			node = child
		}
		if !node.HasTerminal() {
			node.set(Terminal, New())
		}
	}
	return root
}

// Compress returns the radix form of n. Every non-terminal edge whose
// child has a single non-terminal edge is merged with it, so a chain of
// non-branching edges becomes one multi-character label. n is not modified.
func Compress(n *Node) *Node {
	out := New()
	for label, child := range n.edgesOrNil() {
		child = Compress(child)
		for label != Terminal && child.Len() == 1 && !child.HasTerminal() {
			next := child.Labels()[0]
			label, child = label+next, child.edges[next]
		}
		out.set(label, child)
	}
	return out
}

// FromWords builds and compresses the trie for words.
func FromWords(words []string) *Node {
	return Compress(Build(words))
}

func (n *Node) edgesOrNil() map[string]*Node {
	if n == nil {
		return nil
	}
	return n.edges
}

// Equal reports whether a and b have the same shape: the same labels
// leading to pairwise equal children.
func Equal(a, b *Node) bool {
	if a.Len() != b.Len() {
		return false
	}
	for label, ca := range a.edgesOrNil() {
		cb, ok := b.edges[label]
		if !ok || !Equal(ca, cb) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes reachable from n, n included.
func Count(n *Node) int {
	count := 1
	for _, child := range n.edgesOrNil() {
		count += Count(child)
	}
	return count
}

// Key returns a canonical rendering of n. Two nodes have the same key
// exactly when they are Equal.
func (n *Node) Key() string {
	var b strings.Builder
	n.writeKey(&b)
	return b.String()
}

func (n *Node) writeKey(b *strings.Builder) {
	b.WriteByte('{')
	for i, label := range n.Labels() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(label))
		b.WriteByte(':')
		n.edges[label].writeKey(b)
	}
	b.WriteByte('}')
}

// ContinuationKey is Key, except every node that IsEnd shares one key.
// Nodes with the same continuation key accept the same remainders.
func (n *Node) ContinuationKey() string {
	if n.IsEnd() {
		return "{}"
	}
	return n.Key()
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.Key()
}

// MarshalJSON renders n as nested objects keyed by edge label.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.Len() == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(n.edges)
}

// MarshalYAML renders n as nested mappings keyed by edge label.
func (n *Node) MarshalYAML() (interface{}, error) {
	if n.Len() == 0 {
		return map[string]*Node{}, nil
	}
	return n.edges, nil
}
