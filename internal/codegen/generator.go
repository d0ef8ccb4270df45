package codegen

import (
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/alternation/internal/verify"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern          string   // Synthesized, unanchored pattern
	Words            []string // Words the pattern was synthesized from
	Name             string   // Exported type name of the matcher
	Package          string   // Package clause of the generated file
	OutputFile       string   // Path of the generated file
	GenerateTestFile bool     // Also write <output>_test.go
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Name) || !token.IsExported(c.Name) {
		return fmt.Errorf("name %q is not an exported Go identifier", c.Name)
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a Go identifier", c.Package)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	return nil
}

// Generator writes Go source for a synthesized pattern.
type Generator struct {
	config Config
	file   *jen.File
}

// New creates a new generator instance.
func New(config Config) *Generator {
	return &Generator{
		config: config,
		file:   jen.NewFile(config.Package),
	}
}

// method returns a jen.Statement declaring a method on the generated type.
func (g *Generator) method(name string) *jen.Statement {
	return g.file.Func().
		Params(jen.Id(g.config.Name)).
		Id(name)
}

// Generate writes the matcher file and, if requested, its test file.
func (g *Generator) Generate() error {
	if err := g.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	name := g.config.Name
	g.file.HeaderComment(fmt.Sprintf("Code generated by alternation for %d words. DO NOT EDIT.", len(g.config.Words)))

	g.file.Comment(fmt.Sprintf("%s is the anchored pattern %q.", RegexpName(name), verify.Anchor(g.config.Pattern)))
	g.file.Var().Id(RegexpName(name)).Op("=").
		Qual("regexp", "MustCompile").Call(jen.Lit(verify.Anchor(g.config.Pattern)))
	g.file.Line()

	g.file.Comment(fmt.Sprintf("%s holds the words %s was synthesized from.", WordsName(name), name))
	g.file.Var().Id(WordsName(name)).Op("=").Index().String().ValuesFunc(func(group *jen.Group) {
		for _, w := range g.config.Words {
			group.Lit(w)
		}
	})
	g.file.Line()

	g.file.Comment(fmt.Sprintf("%s matches exactly the strings accepted by its synthesized pattern.", name))
	g.file.Type().Id(name).Struct()
	g.file.Line()

	g.file.Var().Id(CompiledName(name)).Op("=").Id(name).Values()
	g.file.Line()

	g.method("Pattern").Params().String().Block(
		jen.Return(jen.Lit(g.config.Pattern)),
	)

	g.method("MatchString").
		Params(jen.Id(InputName).String()).
		Bool().
		Block(jen.Return(jen.Id(RegexpName(name)).Dot("MatchString").Call(jen.Id(InputName))))

	g.method("MatchBytes").
		Params(jen.Id(InputName).Index().Byte()).
		Bool().
		Block(jen.Return(jen.Id(RegexpName(name)).Dot("Match").Call(jen.Id(InputName))))

	if err := g.file.Save(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	if err := formatFile(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	if g.config.GenerateTestFile {
		if err := g.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}
	return nil
}

// TestFileName returns the path of the test file written next to output.
func TestFileName(output string) string {
	return strings.TrimSuffix(output, ".go") + "_test.go"
}

// generateTestFile writes tests asserting every word matches, plus a
// benchmark over the whole word list.
func (g *Generator) generateTestFile() error {
	name := g.config.Name
	f := jen.NewFile(g.config.Package)
	f.HeaderComment("Code generated by alternation. DO NOT EDIT.")

	for _, fn := range []struct {
		suffix string
		arg    jen.Code
	}{
		{"MatchString", jen.Id(WordName)},
		{"MatchBytes", jen.Index().Byte().Parens(jen.Id(WordName))},
	} {
		f.Func().Id("Test"+name+fn.suffix).
			Params(jen.Id(TestingName).Op("*").Qual("testing", "T")).
			Block(
				jen.For(jen.List(jen.Id("_"), jen.Id(WordName)).Op(":=").Range().Id(WordsName(name))).Block(
					jen.If(jen.Op("!").Id(CompiledName(name)).Dot(fn.suffix).Call(fn.arg)).Block(
						jen.Id(TestingName).Dot("Errorf").Call(jen.Lit(fn.suffix+"(%q) = false, want true"), jen.Id(WordName)),
					),
				),
			)
		f.Line()
	}

	f.Func().Id("Benchmark"+name+"MatchString").
		Params(jen.Id(BenchName).Op("*").Qual("testing", "B")).
		Block(
			jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id(BenchName).Dot("N"), jen.Id("i").Op("++")).Block(
				jen.For(jen.List(jen.Id("_"), jen.Id(WordName)).Op(":=").Range().Id(WordsName(name))).Block(
					jen.Id(CompiledName(name)).Dot("MatchString").Call(jen.Id(WordName)),
				),
			),
		)

	path := TestFileName(g.config.OutputFile)
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return formatFile(path)
}

// formatFile formats a Go source file in place using gofmt.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
