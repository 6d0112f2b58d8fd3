package lexer

import (
	"fmt"
	"regexp"
	"sort"

	plex "github.com/alecthomas/participle/v2/lexer"

	"aml/token"
)

// Class is the priority tier of a rule.
type Class int

const (
	// Content rules are tried first, in declaration order.
	Content Class = iota
	// Simple rules are fixed-text operators, tried longest text first.
	Simple
)

func (c Class) String() string {
	switch c {
	case Content:
		return "content"
	case Simple:
		return "simple"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Rule describes one lexical pattern.
//
// For Content rules Pattern is a regular expression; for Simple rules it is
// the literal operator text. Order is the declaration index used to break
// priority ties; reordering content rules changes tokenization.
type Rule struct {
	Name    string
	Kind    token.Kind
	Pattern string
	Class   Class
	Order   int

	// Convert computes the token value from the lexeme. Nil means no value.
	Convert func(lexeme string) (any, error)
	// Suppress consumes the match without emitting a token.
	Suppress bool
	// CountLines adds the number of newlines in the match to the line counter.
	CountLines bool
}

// Names of the suppressing content rules.
const (
	RuleComment    = "COMMENT"
	RuleNewline    = "NEWLINE"
	RuleWhitespace = "WHITESPACE"
)

// DefaultRules returns the rule set of the language in declaration order.
func DefaultRules() []Rule {
	rules := []Rule{
		{Name: "STRING", Kind: token.STRING, Pattern: `"([^\\"]|(\\.))*"`, Convert: ConvertString},
		{Name: "REAL", Kind: token.REAL, Pattern: `-?[0-9]+\.[0-9]+`, Convert: ConvertReal},
		{Name: "INTEGER", Kind: token.INTEGER, Pattern: `-?[0-9]+`, Convert: ConvertInteger},
		{Name: "IDENTIFIER", Kind: token.IDENTIFIER, Pattern: `[a-zA-Z][a-zA-Z_0-9]*`, Convert: identity},
		{Name: RuleComment, Pattern: `#[^\n]*`, Suppress: true},
		{Name: RuleNewline, Pattern: `\n+`, Suppress: true, CountLines: true},
		{Name: RuleWhitespace, Pattern: `[ \t]+`, Suppress: true},
	}
	for i := range rules {
		rules[i].Class = Content
		rules[i].Order = i
	}

	order := 0
	for _, k := range token.Kinds() {
		if !k.IsOperator() {
			continue
		}
		rules = append(rules, Rule{
			Name:    k.String(),
			Kind:    k,
			Pattern: k.Text(),
			Class:   Simple,
			Order:   order,
		})
		order++
	}
	return rules
}

func identity(lexeme string) (any, error) { return lexeme, nil }

// Registry is the validated, priority-ordered rule table. It is read-only
// after construction and may be shared by any number of scans.
type Registry struct {
	rules  []Rule
	byType map[plex.TokenType]*Rule
	def    *plex.StatefulDefinition
}

// NewRegistry validates rules and fixes their priority order: content rules
// by Order, then simple rules by descending text length with Order breaking
// ties.
func NewRegistry(rules []Rule) (*Registry, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("no lexical rules")
	}
	if err := validateRules(rules); err != nil {
		return nil, err
	}

	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Class != b.Class {
			return a.Class < b.Class
		}
		if a.Class == Simple && len(a.Pattern) != len(b.Pattern) {
			return len(a.Pattern) > len(b.Pattern)
		}
		return a.Order < b.Order
	})

	root := make([]plex.Rule, 0, len(ordered))
	for _, r := range ordered {
		pattern := r.Pattern
		if r.Class == Simple {
			pattern = regexp.QuoteMeta(pattern)
		}
		root = append(root, plex.Rule{Name: r.Name, Pattern: pattern})
	}
	def, err := plex.New(plex.Rules{"Root": root})
	if err != nil {
		return nil, fmt.Errorf("failed to build lexer: %w", err)
	}

	reg := &Registry{
		rules:  ordered,
		byType: make(map[plex.TokenType]*Rule, len(ordered)),
		def:    def,
	}
	symbols := def.Symbols()
	for i := range reg.rules {
		typ, ok := symbols[reg.rules[i].Name]
		if !ok {
			return nil, fmt.Errorf("rule %q has no lexer symbol", reg.rules[i].Name)
		}
		reg.byType[typ] = &reg.rules[i]
	}
	return reg, nil
}

func validateRules(rules []Rule) error {
	names := map[string]bool{}
	orders := map[Class]map[int]string{Content: {}, Simple: {}}

	for _, r := range rules {
		if r.Name == "" {
			return fmt.Errorf("rule with pattern %q has no name", r.Pattern)
		}
		if names[r.Name] {
			return fmt.Errorf("duplicate rule %q", r.Name)
		}
		names[r.Name] = true

		byOrder, ok := orders[r.Class]
		if !ok {
			return fmt.Errorf("rule %q: unknown class %s", r.Name, r.Class)
		}
		if other, dup := byOrder[r.Order]; dup {
			return fmt.Errorf("rules %q and %q share %s order %d", other, r.Name, r.Class, r.Order)
		}
		byOrder[r.Order] = r.Name

		if r.Pattern == "" {
			return fmt.Errorf("rule %q has an empty pattern", r.Name)
		}

		switch r.Class {
		case Simple:
			if !r.Kind.IsOperator() {
				return fmt.Errorf("simple rule %q must produce an operator, not %s", r.Name, r.Kind)
			}
			if r.Suppress || r.Convert != nil {
				return fmt.Errorf("simple rule %q cannot suppress or convert", r.Name)
			}
		case Content:
			re, err := regexp.Compile(r.Pattern)
			if err != nil {
				return fmt.Errorf("rule %q: %w", r.Name, err)
			}
			if re.MatchString("") {
				return fmt.Errorf("rule %q matches the empty string", r.Name)
			}
			if !r.Suppress && !r.Kind.Valid() {
				return fmt.Errorf("rule %q produces undeclared kind %d", r.Name, int(r.Kind))
			}
		}
	}
	return nil
}

// Rules returns a copy of the rules in the order they are tried.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

func (r *Registry) rule(typ plex.TokenType) (*Rule, bool) {
	rule, ok := r.byType[typ]
	return rule, ok
}
