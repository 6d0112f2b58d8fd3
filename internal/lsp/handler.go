package lsp

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"aml/internal/lexer"
	"aml/token"
)

// Handler implements the LSP server handlers for AML documents
type Handler struct {
	mu      sync.RWMutex
	scanner *lexer.Scanner
	docs    map[protocol.DocumentUri]string
	log     commonlog.Logger
}

// NewHandler creates a Handler that tokenizes documents with scanner
func NewHandler(scanner *lexer.Scanner) *Handler {
	return &Handler{
		scanner: scanner,
		docs:    make(map[protocol.DocumentUri]string),
		log:     commonlog.GetLogger("aml.lsp"),
	}
}

// Initialize advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: []string{},
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen stores the document and publishes its diagnostics
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.log.Debugf("opened %s", uri)

	h.mu.Lock()
	h.docs[uri] = params.TextDocument.Text
	h.mu.Unlock()

	h.publish(ctx, uri, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange applies the edits and republishes diagnostics
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.log.Debugf("changed %s", uri)

	h.mu.Lock()
	text, ok := h.docs[uri]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("document %s is not open", uri)
	}
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			start, end := c.Range.IndexesIn(text)
			text = text[:start] + c.Text + text[end:]
		default:
			h.log.Warningf("ignoring change of type %T for %s", change, uri)
		}
	}
	h.docs[uri] = text
	h.mu.Unlock()

	h.publish(ctx, uri, text)
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()
	return nil
}

// TextDocumentCompletion offers every keyword spelling
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	table := h.scanner.Keywords()
	kind := protocol.CompletionItemKindKeyword

	items := make([]protocol.CompletionItem, 0, table.Len())
	for _, spelling := range table.Spellings() {
		item := protocol.CompletionItem{Label: spelling, Kind: &kind}
		if group, ok := table.Group(spelling); ok && group != "" {
			item.Detail = ptrString(string(group))
		}
		items = append(items, item)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull highlights the tokens of a document. When
// the document has a lexical error the tokens before it are still returned.
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	h.mu.RLock()
	text, ok := h.docs[params.TextDocument.URI]
	h.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("document %s is not open", params.TextDocument.URI)
	}

	tokens, _ := h.scanPrefix(text)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(text, tokens)),
	}, nil
}

// scanPrefix returns the tokens produced before the scan ended or failed.
func (h *Handler) scanPrefix(text string) ([]token.Token, error) {
	var tokens []token.Token
	stream := h.scanner.Stream(text)
	for {
		tok, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

func (h *Handler) publish(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	_, err := h.scanPrefix(text)
	diagnostics := ConvertScanError(text, err)
	if err != nil {
		h.log.Debugf("%s: %s", uri, err)
	}

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
