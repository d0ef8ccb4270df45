package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/KromDaniel/alternation/internal/config"
	"github.com/KromDaniel/alternation/internal/input"
	"github.com/KromDaniel/alternation/pkg/alternation"
)

const configFileHint = config.DefaultFileName

// arrayFlags collects every occurrence of a repeated flag.
type arrayFlags []string

func (i *arrayFlags) String() string {
	return strings.Join(*i, ", ")
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func (i *arrayFlags) Type() string {
	return "stringArray"
}

// wordFlags are the flags selecting where the words of a run come from.
type wordFlags struct {
	words arrayFlags
	file  string
}

func (f *wordFlags) register(cmd *cobra.Command) {
	cmd.Flags().VarP(&f.words, "word", "w", "Word to match, taken verbatim (repeatable)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Read words from a file, one per line (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("word", "file")
}

// source resolves the flags and positional args into synthesis options.
// Positional args are joined with spaces and split with shell quoting.
func (f *wordFlags) source(args []string) (alternation.Options, error) {
	if len(args) > 0 && (len(f.words) > 0 || f.file != "") {
		return alternation.Options{}, fmt.Errorf("positional words cannot be combined with --word or --file")
	}

	switch {
	case len(f.words) > 0:
		return alternation.Options{Words: []string(f.words)}, nil
	case f.file != "":
		words, err := input.ReadFile(f.file)
		if err != nil {
			return alternation.Options{}, err
		}
		return alternation.Options{Words: words}, nil
	}
	return alternation.Options{Input: strings.Join(args, " ")}, nil
}

// loadConfig reads the config file named by --config, or the default file
// in the working directory, and applies every flag the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var verbose, nonCapturing *bool
	var engine, format, colorMode *string

	if cmd.Flags().Changed("verbose") {
		v, _ := cmd.Flags().GetBool("verbose")
		verbose = &v
	}
	if cmd.Flags().Changed("non-capturing") {
		v, _ := cmd.Flags().GetBool("non-capturing")
		nonCapturing = &v
	}
	if cmd.Flags().Changed("engine") {
		v, _ := cmd.Flags().GetString("engine")
		engine = &v
	}
	if cmd.Flags().Changed("format") {
		v, _ := cmd.Flags().GetString("format")
		format = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		colorMode = &v
	}

	cfg.MergeWithFlags(verbose, engine, format, colorMode, nonCapturing)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// useColor resolves a colour mode for a writer. Auto enables colour only
// for terminals.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// baseOptions applies the configuration to opts.
func baseOptions(cmd *cobra.Command, cfg *config.Config, opts alternation.Options) alternation.Options {
	opts.Engine = cfg.Engine
	opts.NonCapturing = cfg.NonCapturing
	opts.Verbose = cfg.Verbose
	if cfg.Verbose {
		trace := cmd.ErrOrStderr()
		colored := useColor(cfg.Color, trace)
		opts.TraceOutput = trace
		opts.TraceColor = &colored
	}
	return opts
}
