package lexer

import (
	"fmt"
	"strconv"
)

// ConvertString strips the enclosing double quotes. Escape sequences are
// kept as written: `"a\"b"` converts to `a\"b`.
func ConvertString(lexeme string) (any, error) {
	if len(lexeme) < 2 || lexeme[0] != '"' || lexeme[len(lexeme)-1] != '"' {
		return nil, fmt.Errorf("string literal %q is not quoted", lexeme)
	}
	return lexeme[1 : len(lexeme)-1], nil
}

// ConvertReal parses a signed decimal real such as -3.25.
func ConvertReal(lexeme string) (any, error) {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ConvertInteger parses a signed decimal integer. Values outside the int64
// range fail.
func ConvertInteger(lexeme string) (any, error) {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, err
	}
	return v, nil
}
