// Package alternation synthesizes one regular expression matching a given
// list of words. Shared prefixes and suffixes are factored into groups and
// runs of single characters into classes, so that
//
//	alternation.Generate(alternation.Options{Words: []string{"cat", "bat"}})
//
// yields the pattern "[bc]at".
package alternation

import (
	"fmt"
	"io"

	"github.com/KromDaniel/alternation/internal/codegen"
	"github.com/KromDaniel/alternation/internal/input"
	"github.com/KromDaniel/alternation/internal/synth"
	"github.com/KromDaniel/alternation/internal/trie"
	"github.com/KromDaniel/alternation/internal/verify"
)

// Options configures a synthesis run.
type Options struct {
	// Words is the word list, used verbatim. When nil, Input is tokenized instead.
	Words []string

	// Input is a single string split into words with shell quoting rules
	Input string

	// Engine is the regex engine used for the self-check: "re2" (default) or "ecmascript"
	Engine string

	// NonCapturing emits (?:...) for every group
	NonCapturing bool

	// Verbose writes a trace of every synthesis decision to TraceOutput
	Verbose bool

	// TraceOutput receives the verbose trace (default: stderr)
	TraceOutput io.Writer

	// TraceColor forces the trace arrow colour on or off; nil detects a terminal
	TraceColor *bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Words != nil && o.Input != "" {
		return fmt.Errorf("words and input are mutually exclusive")
	}
	if _, err := verify.ParseEngine(o.Engine); err != nil {
		return err
	}
	return nil
}

// Result is the outcome of a synthesis run.
type Result struct {
	// Input is the ordered word list the pattern was synthesized from
	Input []string `json:"input" yaml:"input"`

	// Raw is Options.Input as given, before it was tokenized into Input
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`

	// Pattern is the synthesized, unanchored pattern
	Pattern string `json:"output" yaml:"output"`

	// Trie is the compressed trie, reported only when the pattern is empty
	Trie *trie.Node `json:"trie,omitempty" yaml:"trie,omitempty"`

	// Matches maps every input word to whether the anchored pattern matched it
	Matches verify.Report `json:"test_all" yaml:"test_all"`
}

// OK reports whether the pattern matched every input word.
func (r *Result) OK() bool {
	return r.Matches.OK()
}

// Generate synthesizes the pattern for the words described by opts and
// checks it against every word.
func Generate(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	engine, _ := verify.ParseEngine(opts.Engine)

	words, err := input.Source{Words: opts.Words, Raw: opts.Input}.Resolve()
	if err != nil {
		return nil, err
	}

	root := trie.FromWords(words)

	pattern, err := opts.synthesizer().Serialize(root)
	if err != nil {
		return nil, err
	}

	matches, err := verify.Verify(engine, pattern, words)
	if err != nil {
		return nil, fmt.Errorf("failed to verify pattern: %w", err)
	}

	result := &Result{
		Input:   words,
		Raw:     opts.Input,
		Pattern: pattern,
		Matches: matches,
	}
	if pattern == "" {
		result.Trie = root
	}
	return result, nil
}

// synthesizer creates a synthesizer honouring the grouping and trace
// settings of o.
func (o Options) synthesizer() *synth.Synthesizer {
	s := synth.New(synth.Config{
		Verbose:      o.Verbose,
		NonCapturing: o.NonCapturing,
	})
	if o.TraceOutput != nil {
		s.SetOutput(o.TraceOutput)
	}
	if o.TraceColor != nil {
		s.Logger().SetColor(*o.TraceColor)
	}
	return s
}

// Synthesize returns the pattern for words without verifying it.
func Synthesize(words []string) (string, error) {
	return synth.Synthesize(words, synth.Config{})
}

// FileOptions configures Go code generation for a word list.
type FileOptions struct {
	Options

	// Name is the exported type name of the generated matcher (e.g. "Fruit" generates "CompiledFruit")
	Name string

	// Package is the Go package name for the generated code
	Package string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// GenerateTestFile also writes a test file asserting every word matches
	GenerateTestFile bool
}

// Validate checks if the file options are valid.
func (o FileOptions) Validate() error {
	if err := o.Options.Validate(); err != nil {
		return err
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// GenerateFile synthesizes the pattern and writes Go code embedding it.
// It fails if the pattern does not match every word.
func GenerateFile(opts FileOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := Generate(opts.Options)
	if err != nil {
		return nil, err
	}
	if !result.OK() {
		return nil, fmt.Errorf("%w: pattern %q does not match %q", synth.ErrInternal, result.Pattern, result.Matches.Failed())
	}

	g := codegen.New(codegen.Config{
		Pattern:          result.Pattern,
		Words:            result.Input,
		Name:             opts.Name,
		Package:          opts.Package,
		OutputFile:       opts.OutputFile,
		GenerateTestFile: opts.GenerateTestFile,
	})
	if err := g.Generate(); err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}
	return result, nil
}
