package alternation

import (
	"fmt"
	"strings"

	"github.com/KromDaniel/alternation/internal/input"
	"github.com/KromDaniel/alternation/internal/literal"
	"github.com/KromDaniel/alternation/internal/trie"
)

// AnalysisResult describes how much a word list was compressed.
type AnalysisResult struct {
	Words          int    `json:"words" yaml:"words"`
	RawNodes       int    `json:"raw_nodes" yaml:"raw_nodes"`
	RadixNodes     int    `json:"radix_nodes" yaml:"radix_nodes"`
	Pattern        string `json:"pattern" yaml:"pattern"`
	PatternLength  int    `json:"pattern_length" yaml:"pattern_length"`
	NaiveLength    int    `json:"naive_length" yaml:"naive_length"`
	LongestLiteral int    `json:"longest_literal" yaml:"longest_literal"`
}

// Analyze synthesizes the pattern for the words described by opts and
// compares it with the naive alternation of every escaped word. The
// grouping and trace settings of opts apply; the engine is not used.
//
// Example:
//
//	a, err := alternation.Analyze(alternation.Options{Words: []string{"cat", "bat"}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(a.Pattern, a.PatternLength, a.NaiveLength) // [bc]at 6 7
func Analyze(opts Options) (*AnalysisResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	words, err := input.Source{Words: opts.Words, Raw: opts.Input}.Resolve()
	if err != nil {
		return nil, err
	}

	raw := trie.Build(words)
	root := trie.Compress(raw)

	pattern, err := opts.synthesizer().Serialize(root)
	if err != nil {
		return nil, err
	}

	escaped := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	longest := 0
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		e := literal.EscapeString(w)
		escaped = append(escaped, e)
		longest = max(longest, len(e))
	}

	return &AnalysisResult{
		Words:          len(escaped),
		RawNodes:       trie.Count(raw),
		RadixNodes:     trie.Count(root),
		Pattern:        pattern,
		PatternLength:  len(pattern),
		NaiveLength:    len(strings.Join(escaped, "|")),
		LongestLiteral: longest,
	}, nil
}
