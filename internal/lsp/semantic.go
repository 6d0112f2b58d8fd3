package lsp

import (
	"strings"

	"aml/token"
)

// SemanticTokenTypes is the legend advertised to the client. The index of a
// name is the token type sent on the wire.
var SemanticTokenTypes = []string{
	"keyword",
	"operator",
	"number",
	"string",
	"variable",
}

const (
	typeKeyword = iota
	typeOperator
	typeNumber
	typeString
	typeVariable
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
type SemanticToken struct {
	Line      uint32
	StartChar uint32
	Length    uint32
	TokenType int
}

func semanticType(k token.Kind) int {
	switch k.Family() {
	case token.Reserved:
		return typeKeyword
	case token.Operator:
		return typeOperator
	}
	switch k {
	case token.INTEGER, token.REAL:
		return typeNumber
	case token.STRING:
		return typeString
	default:
		return typeVariable
	}
}

func collectSemanticTokens(source string, tokens []token.Token) []SemanticToken {
	out := make([]SemanticToken, 0, len(tokens))
	for _, tok := range tokens {
		// tokens cannot span lines on the wire
		if strings.Contains(tok.Lexeme, "\n") {
			continue
		}
		start := lspPosition(source, tok.Pos.Offset)
		out = append(out, SemanticToken{
			Line:      start.Line,
			StartChar: start.Character,
			Length:    uint32(utf16Len(tok.Lexeme)),
			TokenType: semanticType(tok.Kind),
		})
	}
	return out
}

// encodeSemanticTokens applies the LSP delta-line, delta-start compression.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32
	for _, t := range tokens {
		deltaLine := t.Line - prevLine
		deltaStart := t.StartChar
		if deltaLine == 0 {
			deltaStart = t.StartChar - prevStart
		}
		data = append(data, deltaLine, deltaStart, t.Length, uint32(t.TokenType), 0)
		prevLine = t.Line
		prevStart = t.StartChar
	}
	return data
}
