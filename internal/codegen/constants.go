// Package codegen emits Go source embedding a synthesized pattern.
package codegen

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Identifiers used in generated code
const (
	InputName   = "input"
	WordName    = "word"
	TestingName = "t"
	BenchName   = "b"
)

// RegexpName returns the name of the unexported compiled pattern variable.
func RegexpName(name string) string {
	return LowerFirst(name) + "Regexp"
}

// WordsName returns the name of the exported word list.
func WordsName(name string) string {
	return fmt.Sprintf("%sWords", name)
}

// CompiledName returns the name of the exported matcher value.
func CompiledName(name string) string {
	return fmt.Sprintf("Compiled%s", name)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
