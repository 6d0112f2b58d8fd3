package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	plex "github.com/alecthomas/participle/v2/lexer"

	"aml/internal/keywords"
	"aml/token"
)

// Scanner turns source text into tokens. It holds only read-only state and
// can serve any number of scans, sequentially or concurrently.
type Scanner struct {
	registry *Registry
	keywords *keywords.Table
}

type options struct {
	rules []Rule
}

// Option configures a Scanner.
type Option func(*options)

// WithRules replaces the default rule set.
func WithRules(rules []Rule) Option {
	return func(o *options) {
		o.rules = rules
	}
}

// New builds a Scanner resolving identifiers against table.
func New(table *keywords.Table, opts ...Option) (*Scanner, error) {
	if table == nil {
		return nil, fmt.Errorf("keyword table is required")
	}
	o := options{rules: DefaultRules()}
	for _, opt := range opts {
		opt(&o)
	}
	registry, err := NewRegistry(o.rules)
	if err != nil {
		return nil, err
	}
	return &Scanner{registry: registry, keywords: table}, nil
}

// Registry returns the rule registry the scanner was built with.
func (s *Scanner) Registry() *Registry {
	return s.registry
}

// Keywords returns the keyword table the scanner resolves identifiers against.
func (s *Scanner) Keywords() *keywords.Table {
	return s.keywords
}

// Scan tokenizes the whole source. It returns either every token or, on the
// first lexical error, no tokens at all.
func (s *Scanner) Scan(source string) ([]token.Token, error) {
	var tokens []token.Token
	stream := s.Stream(source)
	for {
		tok, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

type state int

const (
	scanning state = iota
	haltedSuccess
	haltedError
)

// Stream is a single scan over one source. It must not be shared between
// goroutines.
type Stream struct {
	scanner *Scanner
	lex     plex.Lexer
	source  string
	line    int
	state   state
	err     error
}

// Stream starts a new scan of source.
func (s *Scanner) Stream(source string) *Stream {
	st := &Stream{scanner: s, source: source, line: 1}
	lex, err := s.registry.def.LexString("", source)
	if err != nil {
		st.halt(fmt.Errorf("failed to start lexer: %w", err))
		return st
	}
	st.lex = lex
	return st
}

// Next returns the next token. At the end of input it returns io.EOF; after
// a lexical error it returns that error. Both are final: every later call
// returns the same result.
func (st *Stream) Next() (token.Token, error) {
	for st.state == scanning {
		ptok, err := st.lex.Next()
		if err != nil {
			return token.Token{}, st.halt(st.lexError(err))
		}
		if ptok.EOF() {
			st.state = haltedSuccess
			break
		}

		rule, ok := st.scanner.registry.rule(ptok.Type)
		if !ok {
			return token.Token{}, st.halt(fmt.Errorf("line %d: no rule for lexer symbol %d", st.line, ptok.Type))
		}

		if rule.Suppress {
			if rule.CountLines {
				st.line += strings.Count(ptok.Value, "\n")
			}
			continue
		}

		tok, err := st.emit(rule, ptok)
		if err != nil {
			return token.Token{}, st.halt(err)
		}
		return tok, nil
	}

	if st.state == haltedError {
		return token.Token{}, st.err
	}
	return token.Token{}, io.EOF
}

// Line returns the current value of the line counter.
func (st *Stream) Line() int {
	return st.line
}

func (st *Stream) halt(err error) error {
	st.state = haltedError
	st.err = err
	return err
}

func (st *Stream) emit(rule *Rule, ptok plex.Token) (token.Token, error) {
	tok := token.Token{
		Kind:   rule.Kind,
		Lexeme: ptok.Value,
		Line:   st.line,
		Pos:    position(ptok.Pos),
	}

	if rule.Convert != nil {
		value, err := rule.Convert(ptok.Value)
		if err != nil {
			if rule.Kind == token.INTEGER || rule.Kind == token.REAL {
				return token.Token{}, &MalformedNumberError{
					Lexeme: ptok.Value,
					Kind:   rule.Kind,
					Line:   st.line,
					Pos:    tok.Pos,
					Err:    err,
				}
			}
			return token.Token{}, fmt.Errorf("line %d: %s %q: %w", st.line, rule.Name, ptok.Value, err)
		}
		tok.Value = value
	}

	if rule.Kind == token.IDENTIFIER {
		if kind, ok := st.scanner.keywords.Lookup(ptok.Value); ok {
			tok.Kind = kind
			tok.Value = nil
		}
	}
	return tok, nil
}

// lexError turns a failure of the underlying lexer into an
// IllegalCharacterError naming the character at the failing offset.
func (st *Stream) lexError(err error) error {
	var located interface{ Position() plex.Position }
	if !errors.As(err, &located) {
		return fmt.Errorf("line %d: %w", st.line, err)
	}
	pos := located.Position()
	if pos.Offset < 0 || pos.Offset >= len(st.source) {
		return fmt.Errorf("line %d: %w", st.line, err)
	}
	ch, _ := utf8.DecodeRuneInString(st.source[pos.Offset:])
	return &IllegalCharacterError{Char: ch, Line: st.line, Pos: position(pos)}
}

func position(p plex.Position) token.Position {
	return token.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}
