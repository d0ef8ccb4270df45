package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/KromDaniel/alternation/internal/config"
	"github.com/KromDaniel/alternation/pkg/alternation"
)

// writeResult renders result in the given format.
func writeResult(w io.Writer, result *alternation.Result, format string, colored bool) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText:
		return writeText(w, result, colored)
	default:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
}

// writeText prints the pattern followed by one line per word.
func writeText(w io.Writer, result *alternation.Result, colored bool) error {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	for _, c := range []*color.Color{bold, green, red} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if result.Pattern == "" && result.Trie != nil {
		fmt.Fprintf(w, "%s %s\n", bold.Sprint("trie:"), result.Trie)
	} else {
		fmt.Fprintf(w, "%s %s\n", bold.Sprint("pattern:"), result.Pattern)
	}

	seen := make(map[string]bool, len(result.Input))
	for _, word := range result.Input {
		if seen[word] {
			continue
		}
		seen[word] = true
		if result.Matches[word] {
			fmt.Fprintf(w, "  %s %q\n", green.Sprint("ok  "), word)
		} else {
			fmt.Fprintf(w, "  %s %q\n", red.Sprint("FAIL"), word)
		}
	}
	_, err := fmt.Fprintf(w, "%d/%d words matched\n", len(seen)-len(result.Matches.Failed()), len(seen))
	return err
}
