// Package input turns raw user input into the ordered word list the trie
// is built from.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
)

// ErrTokenize is returned when a raw string cannot be split, for example
// because a quote is never closed.
var ErrTokenize = errors.New("failed to tokenize input")

// Split tokenizes raw with shell quoting and whitespace rules.
func Split(raw string) ([]string, error) {
	words, err := shlex.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenize, err)
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// ReadWords reads one word per line. Trailing carriage returns are
// stripped and blank lines are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}
	return words, nil
}

// ReadFile reads words from path, one per line. The path "-" reads stdin.
func ReadFile(path string) ([]string, error) {
	if path == "-" {
		return ReadWords(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word file: %w", err)
	}
	defer f.Close()
	return ReadWords(f)
}

// Source describes where the words of a run come from. Exactly one of the
// fields is used: Words verbatim, else Raw tokenized, else File read.
type Source struct {
	Words []string
	Raw   string
	File  string
}

// Resolve returns the ordered word list for s.
func (s Source) Resolve() ([]string, error) {
	switch {
	case s.Words != nil:
		return s.Words, nil
	case s.File != "":
		return ReadFile(s.File)
	}
	return Split(s.Raw)
}
