package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for alternation
func NewRootCommand() *cobra.Command {
	var words wordFlags

	cmd := &cobra.Command{
		Use:   "alternation [words...]",
		Short: "Synthesize one regular expression matching a list of words",
		Long: `Alternation builds a radix trie from a list of words and serializes it
into a single regular expression. Shared prefixes and suffixes are factored
into groups, runs of single characters into character classes.

The pattern is checked against every input word before it is printed.

A first positional word naming a subcommand (generate, gen-go, analyze)
runs that subcommand. Pass such words with --word instead.

Examples:
  alternation cat bat                    # [bc]at
  alternation --word do --word dog       # dog?
  alternation --file words.txt --format yaml
  alternation gen-go --file words.txt --name Fruit --package fruit -o fruit.go`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, &words)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: ./"+configFileHint+")")
	cmd.PersistentFlags().Bool("verbose", false, "Print the synthesis trace to stderr")
	cmd.PersistentFlags().String("engine", "", "Regex engine used to check the pattern (re2, ecmascript)")
	cmd.PersistentFlags().String("format", "", "Output format (json, yaml, text)")
	cmd.PersistentFlags().String("color", "", "Coloured output (auto, always, never)")
	cmd.PersistentFlags().Bool("non-capturing", false, "Emit (?:...) for every group")
	words.register(cmd)

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewGenGoCommand())
	cmd.AddCommand(NewAnalyzeCommand())

	return cmd
}
