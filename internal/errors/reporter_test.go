package errors

import (
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aml/internal/keywords"
	"aml/internal/lexer"
	"aml/token"
)

func init() {
	color.NoColor = true
}

func scanError(t *testing.T, source string) error {
	t.Helper()
	s, err := lexer.New(keywords.Default())
	require.NoError(t, err)
	_, err = s.Scan(source)
	require.Error(t, err)
	return err
}

func TestErrorReporter(t *testing.T) {
	source := `scenario {
    x = a & b
}`

	reporter := NewErrorReporter("attack.aml", source)

	diag, ok := FromScanError(scanError(t, source))
	require.True(t, ok)

	formatted := reporter.FormatError(diag)

	assert.Contains(t, formatted, "error["+ErrorIllegalCharacter+"]")
	assert.Contains(t, formatted, "illegal character '&'")
	assert.Contains(t, formatted, "attack.aml:2:11")
	assert.Contains(t, formatted, "    x = a & b")
	assert.Contains(t, formatted, "          ^")
	assert.Contains(t, formatted, "did you mean '&&'?")
}

func TestIllegalCharacterSuggestions(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"a | b", "did you mean '||'?"},
		{"!a", "did you mean '!='?"},
		{"x = 3.", "digits on both sides"},
		{`x = "open`, "never closed"},
		{"x = 'a'", "double quotes"},
		{"_x", "start with a letter"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			diag, ok := FromScanError(scanError(t, tt.source))
			require.True(t, ok)
			require.NotEmpty(t, diag.Suggestions)
			assert.Contains(t, diag.Suggestions[0].Message, tt.want)
		})
	}
}

func TestCarriageReturnHelp(t *testing.T) {
	diag, ok := FromScanError(scanError(t, "x\r\n"))
	require.True(t, ok)
	assert.Equal(t, ErrorIllegalCharacter, diag.Code)
	assert.Contains(t, diag.HelpText, "LF line endings")
}

func TestMalformedNumberDiagnostic(t *testing.T) {
	source := "x = 123456789012345678901"
	diag, ok := FromScanError(scanError(t, source))
	require.True(t, ok)

	assert.Equal(t, ErrorMalformedNumber, diag.Code)
	assert.Equal(t, 21, diag.Length)
	assert.Equal(t, token.Position{Line: 1, Column: 5, Offset: 4}, diag.Position)
	require.Len(t, diag.Notes, 1)
	assert.Contains(t, diag.Notes[0], "64-bit")

	formatted := NewErrorReporter("n.aml", source).FormatError(diag)
	assert.Contains(t, formatted, "    ^^^^^^^^^^^^^^^^^^^^^")
	assert.Contains(t, formatted, "note:")
}

func TestFromScanErrorRejectsOtherErrors(t *testing.T) {
	_, ok := FromScanError(fmt.Errorf("boom"))
	assert.False(t, ok)
	_, ok = FromScanError(nil)
	assert.False(t, ok)
}

func TestFromScanErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("scanning a.aml: %w", &lexer.IllegalCharacterError{Char: '@', Line: 4, Pos: token.Position{Line: 4, Column: 2}})
	diag, ok := FromScanError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 4, diag.Position.Line)
	assert.Equal(t, "illegal character '@'", diag.Message)
}

func TestKeywordConfigDiagnostic(t *testing.T) {
	diag := KeywordConfig("kw.yaml", fmt.Errorf("unknown kind %q", "NOPE"))
	assert.Equal(t, ErrorKeywordConfig, diag.Code)
	assert.Contains(t, diag.HelpText, "kw.yaml")

	formatted := NewErrorReporter("kw.yaml", "").FormatError(diag)
	assert.Contains(t, formatted, "error[E0900]")
}

func TestCompilerErrorString(t *testing.T) {
	diag := IllegalCharacter('@', token.Position{Line: 2, Column: 7})
	assert.Equal(t, "2:7: error[E0001]: illegal character '@'", diag.Error())
}

func TestFormatErrorOutOfRangeLine(t *testing.T) {
	diag := IllegalCharacter('@', token.Position{Line: 40, Column: 1})
	formatted := NewErrorReporter("x.aml", "one line").FormatError(diag)
	assert.Contains(t, formatted, "x.aml:40:1")
	assert.NotContains(t, formatted, "^")
}

func TestGetErrorDescription(t *testing.T) {
	assert.Contains(t, GetErrorDescription(ErrorIllegalCharacter), "Character")
	assert.Contains(t, GetErrorDescription(ErrorMalformedNumber), "Numeric")
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}
