package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/alternation/internal/synth"
	"github.com/KromDaniel/alternation/pkg/alternation"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var words wordFlags

	cmd := &cobra.Command{
		Use:   "generate [words...]",
		Short: "Synthesize a pattern and print it with its self-check",
		Long: `Synthesize a pattern for a list of words and print the input, the
pattern and whether the pattern matched every word.

Positional arguments are joined with spaces and split with shell quoting,
so "ice cream" is one word. --word takes a word verbatim and may be
repeated. --file reads one word per line.

Configuration is loaded from ./.alternation.yaml if present.
CLI flags override configuration file settings.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, &words)
		},
		SilenceUsage: true,
	}

	words.register(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, words *wordFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts, err := words.source(args)
	if err != nil {
		return err
	}

	result, err := alternation.Generate(baseOptions(cmd, cfg, opts))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeResult(out, result, cfg.Format, useColor(cfg.Color, out)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if !result.OK() {
		return fmt.Errorf("%w: pattern %q does not match %q", synth.ErrInternal, result.Pattern, result.Matches.Failed())
	}
	return nil
}
