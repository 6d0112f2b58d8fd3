package lexer

import (
	"fmt"

	"aml/token"
)

// IllegalCharacterError is returned when no rule matches at the cursor.
type IllegalCharacterError struct {
	Char rune
	Line int
	Pos  token.Position
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("line %d: illegal character %q", e.Line, e.Char)
}

// MalformedNumberError is returned when a numeric lexeme matched its pattern
// but could not be converted.
type MalformedNumberError struct {
	Lexeme string
	Kind   token.Kind
	Line   int
	Pos    token.Position
	Err    error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("line %d: malformed %s literal %q: %v", e.Line, kindNoun(e.Kind), e.Lexeme, e.Err)
}

func (e *MalformedNumberError) Unwrap() error {
	return e.Err
}

func kindNoun(k token.Kind) string {
	switch k {
	case token.REAL:
		return "real"
	case token.INTEGER:
		return "integer"
	default:
		return "numeric"
	}
}
