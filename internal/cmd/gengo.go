package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/alternation/pkg/alternation"
)

// NewGenGoCommand creates the gen-go command
func NewGenGoCommand() *cobra.Command {
	var words wordFlags

	cmd := &cobra.Command{
		Use:   "gen-go [words...]",
		Short: "Generate a Go file embedding the synthesized pattern",
		Long: `Synthesize a pattern and write a Go source file that compiles it once
and exposes a typed matcher:

  var Compiled<Name> = <Name>{}
  func (<Name>) MatchString(input string) bool
  func (<Name>) MatchBytes(input []byte) bool

With --test-file a _test.go file asserting every word matches is written
next to it. Package and name default to the codegen section of the config
file.

Example:
  alternation gen-go --file fruit.txt --name Fruit --package fruit -o fruit/fruit.go`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenGo(cmd, args, &words)
		},
		SilenceUsage: true,
	}

	words.register(cmd)
	cmd.Flags().StringP("output", "o", "", "Output Go file (required)")
	cmd.Flags().String("name", "", "Exported matcher type name")
	cmd.Flags().String("package", "", "Package name of the generated file")
	cmd.Flags().Bool("test-file", false, "Also generate a _test.go file")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runGenGo(cmd *cobra.Command, args []string, words *wordFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts, err := words.source(args)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	name := cfg.Codegen.Name
	if cmd.Flags().Changed("name") {
		name, _ = cmd.Flags().GetString("name")
	}
	pkg := cfg.Codegen.Package
	if cmd.Flags().Changed("package") {
		pkg, _ = cmd.Flags().GetString("package")
	}
	testFile := cfg.Codegen.TestFile
	if cmd.Flags().Changed("test-file") {
		testFile, _ = cmd.Flags().GetBool("test-file")
	}

	result, err := alternation.GenerateFile(alternation.FileOptions{
		Options:          baseOptions(cmd, cfg, opts),
		Name:             name,
		Package:          pkg,
		OutputFile:       output,
		GenerateTestFile: testFile,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d words): %s\n", output, len(result.Matches), result.Pattern)
	return nil
}
