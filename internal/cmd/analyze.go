package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KromDaniel/alternation/internal/config"
	"github.com/KromDaniel/alternation/pkg/alternation"
)

// NewAnalyzeCommand creates the analyze command
func NewAnalyzeCommand() *cobra.Command {
	var words wordFlags

	cmd := &cobra.Command{
		Use:   "analyze [words...]",
		Short: "Report how much a word list compresses",
		Long: `Build the trie for a word list and compare the synthesized pattern with
the naive alternation of every escaped word.

--non-capturing and --verbose apply as they do for generate.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			opts, err := words.source(args)
			if err != nil {
				return err
			}
			a, err := alternation.Analyze(baseOptions(cmd, cfg, opts))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return writeAnalysis(out, a, cfg.Format, useColor(cfg.Color, out))
		},
		SilenceUsage: true,
	}

	words.register(cmd)

	return cmd
}

func writeAnalysis(w io.Writer, a *alternation.AnalysisResult, format string, colored bool) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText:
		cyan := color.New(color.FgCyan, color.Bold)
		if colored {
			cyan.EnableColor()
		} else {
			cyan.DisableColor()
		}
		fmt.Fprintf(w, "%s\n", cyan.Sprint("Word list analysis"))
		fmt.Fprintf(w, "  Words:           %d\n", a.Words)
		fmt.Fprintf(w, "  Trie nodes:      %d raw, %d compressed\n", a.RawNodes, a.RadixNodes)
		fmt.Fprintf(w, "  Longest literal: %d\n", a.LongestLiteral)
		fmt.Fprintf(w, "  Pattern length:  %d (naive %d)\n", a.PatternLength, a.NaiveLength)
		_, err := fmt.Fprintf(w, "  Pattern:         %s\n", a.Pattern)
		return err
	default:
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
}
