package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"aml/internal/lexer"
	"aml/token"
)

// FromScanError converts an error returned by the lexer into a diagnostic.
// It reports false for errors that are not lexical.
func FromScanError(err error) (CompilerError, bool) {
	var illegal *lexer.IllegalCharacterError
	if stderrors.As(err, &illegal) {
		return IllegalCharacter(illegal.Char, illegal.Pos), true
	}

	var malformed *lexer.MalformedNumberError
	if stderrors.As(err, &malformed) {
		return MalformedNumber(malformed.Lexeme, malformed.Kind, malformed.Pos, malformed.Err), true
	}

	return CompilerError{}, false
}

// IllegalCharacter builds the diagnostic for a character no rule accepts
func IllegalCharacter(ch rune, pos token.Position) CompilerError {
	err := CompilerError{
		Level:    Error,
		Code:     ErrorIllegalCharacter,
		Message:  fmt.Sprintf("illegal character %q", ch),
		Position: pos,
		Length:   1,
	}

	switch ch {
	case '&':
		err.Suggestions = append(err.Suggestions, Suggestion{Message: "did you mean '&&'?", Replacement: "&&"})
	case '|':
		err.Suggestions = append(err.Suggestions, Suggestion{Message: "did you mean '||'?", Replacement: "||"})
	case '!':
		err.Suggestions = append(err.Suggestions, Suggestion{Message: "did you mean '!='?", Replacement: "!="})
	case '.':
		err.Suggestions = append(err.Suggestions, Suggestion{Message: "real literals need digits on both sides of the point, as in 0.5 or 3.0"})
	case '"':
		err.Suggestions = append(err.Suggestions, Suggestion{Message: "this string literal is never closed; add a closing '\"'"})
	case '\'':
		err.Suggestions = append(err.Suggestions, Suggestion{Message: "string literals use double quotes"})
	case '_':
		err.Suggestions = append(err.Suggestions, Suggestion{Message: "identifiers must start with a letter"})
	case '\r':
		err.HelpText = "convert the file to LF line endings"
	}
	return err
}

// MalformedNumber builds the diagnostic for a numeric literal that failed conversion
func MalformedNumber(lexeme string, kind token.Kind, pos token.Position, cause error) CompilerError {
	err := CompilerError{
		Level:    Error,
		Code:     ErrorMalformedNumber,
		Message:  fmt.Sprintf("malformed number %q", lexeme),
		Position: pos,
		Length:   len(lexeme),
	}
	if stderrors.Is(cause, strconv.ErrRange) {
		if kind == token.INTEGER {
			err.Notes = append(err.Notes, "integer literals must fit in a signed 64-bit value")
		} else {
			err.Notes = append(err.Notes, "real literal is out of range")
		}
	}
	return err
}

// KeywordConfig builds the diagnostic for a keyword table that could not be loaded
func KeywordConfig(path string, cause error) CompilerError {
	return CompilerError{
		Level:    Error,
		Code:     ErrorKeywordConfig,
		Message:  cause.Error(),
		HelpText: fmt.Sprintf("check %s against the `keywords: {spelling: KIND}` format", path),
	}
}
