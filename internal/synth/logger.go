package synth

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger prints the step-by-step trace of a synthesis run.
type Logger struct {
	enabled bool
	out     io.Writer
	arrow   *color.Color
}

// NewLogger creates a new logger instance writing to stderr.
func NewLogger(enabled bool) *Logger {
	l := &Logger{
		enabled: enabled,
		arrow:   color.New(color.FgHiGreen),
	}
	l.SetOutput(os.Stderr)
	return l
}

// SetOutput sets the output writer for the logger. Colour is switched on
// only when w is a terminal.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
	f, ok := w.(*os.File)
	l.SetColor(ok && isatty.IsTerminal(f.Fd()))
}

// SetColor forces colour on or off.
func (l *Logger) SetColor(on bool) {
	if on {
		l.arrow.EnableColor()
	} else {
		l.arrow.DisableColor()
	}
}

// Log prints one trace step at the given recursion depth.
func (l *Logger) Log(depth int, step string, value interface{}) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(l.out, "%s%s %s %s\n", strings.Repeat("  ", max(depth, 0)), step, l.arrow.Sprint("=>"), render(value))
}

// Section prints a section header.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n=== %s ===\n", name)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

func render(v interface{}) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
