package lsp

import (
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	amlerrors "aml/internal/errors"
)

const diagnosticSource = "aml-lexer"

// ConvertScanError turns the error of a failed scan into LSP diagnostics.
// A nil error yields an empty, non-nil slice so that publishing it clears
// earlier diagnostics in the editor.
func ConvertScanError(source string, err error) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if err == nil {
		return diagnostics
	}

	diag, ok := amlerrors.FromScanError(err)
	if !ok {
		// Not tied to a location; pin it to the start of the document.
		return append(diagnostics, protocol.Diagnostic{
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(diagnosticSource),
			Message:  err.Error(),
		})
	}

	start := lspPosition(source, diag.Position.Offset)
	end := lspPosition(source, min(len(source), diag.Position.Offset+max(1, diag.Length)))

	message := diag.Message
	if len(diag.Suggestions) > 0 {
		message += " (" + diag.Suggestions[0].Message + ")"
	}

	return append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: diag.Code},
		Source:   ptrString(diagnosticSource),
		Message:  message,
	})
}

// lspPosition converts a byte offset into a 0-based line and UTF-16 character.
func lspPosition(source string, offset int) protocol.Position {
	if offset > len(source) {
		offset = len(source)
	}
	prefix := source[:offset]
	line := strings.Count(prefix, "\n")
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(prefix[lineStart:])),
	}
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
