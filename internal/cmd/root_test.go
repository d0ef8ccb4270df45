package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

type report struct {
	Input   []string        `json:"input" yaml:"input"`
	Output  string          `json:"output" yaml:"output"`
	TestAll map[string]bool `json:"test_all" yaml:"test_all"`
}

func TestRootCommand(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "alternation")
	assert.Contains(t, out, "radix trie")
	assert.Contains(t, out, "Pass such words with --word instead.")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "alternation", cmd.Name())

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "gen-go")
	assert.Contains(t, names, "analyze")
}

func TestVersionFlag(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "version")
	assert.Contains(t, out, Version)
}

func TestGenerateJSON(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"root positional", []string{"cat", "bat"}},
		{"generate positional", []string{"generate", "cat", "bat"}},
		{"generate word flags", []string{"generate", "--word", "cat", "-w", "bat"}},
		{"root word flags", []string{"--word", "cat", "--word", "bat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)

			var r report
			require.NoError(t, json.Unmarshal([]byte(out), &r))
			assert.Equal(t, []string{"cat", "bat"}, r.Input)
			assert.Equal(t, "[bc]at", r.Output)
			assert.Equal(t, map[string]bool{"cat": true, "bat": true}, r.TestAll)
		})
	}
}

func TestGenerateShellQuoting(t *testing.T) {
	out, _, err := execute(t, "generate", "--", `"ice cream"`, "ice")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, []string{"ice cream", "ice"}, r.Input)
	assert.Equal(t, map[string]bool{"ice cream": true, "ice": true}, r.TestAll)

	var raw struct {
		Raw string `json:"raw"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	assert.Equal(t, `"ice cream" ice`, raw.Raw)
}

func TestGenerateSubcommandNamesAsWords(t *testing.T) {
	out, _, err := execute(t, "--word", "generate", "--word", "analyze")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, []string{"generate", "analyze"}, r.Input)
	assert.Equal(t, map[string]bool{"generate": true, "analyze": true}, r.TestAll)
}

func TestGenerateEmpty(t *testing.T) {
	out, _, err := execute(t, "generate")
	require.NoError(t, err)
	assert.JSONEq(t, `{"input":[],"output":"","trie":{},"test_all":{}}`, out)
}

func TestGenerateYAMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("do\ndog\n"), 0644))

	out, _, err := execute(t, "generate", "--file", path, "--format", "yaml")
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "dog?", r.Output)
	assert.Equal(t, map[string]bool{"do": true, "dog": true}, r.TestAll)
}

func TestGenerateText(t *testing.T) {
	out, _, err := execute(t, "--format", "text", "--color", "never", "a", "b", "c", "d")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern: [a-d]")
	assert.Contains(t, out, `ok   "c"`)
	assert.Contains(t, out, "4/4 words matched")
	assert.NotContains(t, out, "\x1b[")
}

func TestGenerateNonCapturing(t *testing.T) {
	out, _, err := execute(t, "--non-capturing", "--word", "foo", "--word", "foobar", "--word", "foobaz")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "foo(?:ba[rz])?", r.Output)
}

func TestGenerateVerbose(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "cat", "bat")
	require.NoError(t, err)
	assert.Contains(t, stderr, "=== Serialize ===")
	assert.Contains(t, stderr, "serializer:output => \"[bc]at\"")
}

func TestGenerateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: text\ncolor: never\nengine: ecmascript\n"), 0644))

	out, _, err := execute(t, "--config", path, "cat", "bat")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern: [bc]at")

	// Flags override the file
	out, _, err = execute(t, "--config", path, "--format", "json", "cat", "bat")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown engine", []string{"--engine", "pcre", "cat"}},
		{"unknown format", []string{"--format", "xml", "cat"}},
		{"unbalanced quote", []string{"generate", "--", `"cat`}},
		{"word and file", []string{"generate", "--word", "a", "--file", "words.txt"}},
		{"word and args", []string{"generate", "--word", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestGenGo(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "fruit.go")

	out, _, err := execute(t, "gen-go",
		"--word", "apple", "--word", "apricot", "--word", "banana",
		"--name", "Fruit", "--package", "fruit", "--test-file", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated "+output)

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package fruit")
	assert.Contains(t, string(src), "var CompiledFruit = Fruit{}")

	_, err = os.Stat(filepath.Join(dir, "fruit_test.go"))
	assert.NoError(t, err)
}

func TestGenGoDefaultsFromConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("codegen:\n  package: colors\n  name: Color\n"), 0644))
	output := filepath.Join(dir, "colors.go")

	_, _, err := execute(t, "gen-go", "--config", config, "-o", output, "red", "green", "blue")
	require.NoError(t, err)

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package colors")
	assert.Contains(t, string(src), "type Color struct{}")

	_, err = os.Stat(filepath.Join(dir, "colors_test.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenGoRequiresOutput(t *testing.T) {
	_, _, err := execute(t, "gen-go", "cat")
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	out, _, err := execute(t, "analyze", "cat", "bat")
	require.NoError(t, err)

	var a struct {
		Words         int    `json:"words"`
		RawNodes      int    `json:"raw_nodes"`
		RadixNodes    int    `json:"radix_nodes"`
		Pattern       string `json:"pattern"`
		PatternLength int    `json:"pattern_length"`
		NaiveLength   int    `json:"naive_length"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, 2, a.Words)
	assert.Equal(t, 9, a.RawNodes)
	assert.Equal(t, 5, a.RadixNodes)
	assert.Equal(t, "[bc]at", a.Pattern)
	assert.Equal(t, 6, a.PatternLength)
	assert.Equal(t, 7, a.NaiveLength)

	out, _, err = execute(t, "analyze", "--format", "text", "--color", "never", "--word", "do", "--word", "dog")
	require.NoError(t, err)
	assert.Contains(t, out, "Pattern:         dog?")
}

func TestAnalyzeHonoursFlags(t *testing.T) {
	out, stderr, err := execute(t, "analyze", "--non-capturing", "--verbose", "foo", "foobar", "foobaz")
	require.NoError(t, err)

	var a struct {
		Pattern       string `json:"pattern"`
		PatternLength int    `json:"pattern_length"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "foo(?:ba[rz])?", a.Pattern)
	assert.Equal(t, 14, a.PatternLength)
	assert.Contains(t, stderr, "=== Serialize ===")
	assert.Contains(t, stderr, "serializer:output => \"foo(?:ba[rz])?\"")
}
