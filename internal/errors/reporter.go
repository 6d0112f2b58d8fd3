package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"aml/token"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// CompilerError is a diagnostic ready to be rendered against its source
type CompilerError struct {
	Level       ErrorLevel
	Code        string         // Error code like E0001
	Message     string         // Primary error message
	Position    token.Position // Location in source
	Length      int            // Length of the offending span
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Suggestion is a proposed fix for a diagnostic
type Suggestion struct {
	Message     string
	Replacement string // optional replacement text
}

func (e CompilerError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s[%s]: %s", e.Position.Line, e.Position.Column, e.Level, e.Code, e.Message)
}

// ErrorReporter renders diagnostics for one source file
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a reporter for the named source
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders a diagnostic with the offending line and a caret marker
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder

	levelColor := levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// error[E0001]: message
	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	width := lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, dim("│"))

	if line, ok := er.line(err.Position.Line); ok {
		fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, err.Position.Line)), dim("│"), line)
		fmt.Fprintf(&b, "%s %s %s\n", indent, dim("│"), marker(err.Position.Column, err.Length, levelColor))
	}

	hint := color.New(color.FgCyan).SprintFunc()
	for i, s := range err.Suggestions {
		label := "    "
		if i == 0 {
			label = "help"
		}
		fmt.Fprintf(&b, "%s %s %s\n", indent, hint(label), s.Message)
		if s.Replacement != "" {
			fmt.Fprintf(&b, "%s %s %s\n", indent, hint("│"), hint(s.Replacement))
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, n := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, dim("│"), noteColor("note:"), n)
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, dim("│"), helpColor("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

func (er *ErrorReporter) line(n int) (string, bool) {
	if n <= 0 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

func levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func marker(column, length int, paint func(...interface{}) string) string {
	if length <= 0 {
		length = 1
	}
	return strings.Repeat(" ", max(0, column-1)) + paint(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	return max(3, len(fmt.Sprint(line)))
}
