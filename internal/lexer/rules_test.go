package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aml/token"
)

func TestDefaultPriorityOrder(t *testing.T) {
	reg, err := NewRegistry(DefaultRules())
	require.NoError(t, err)
	rules := reg.Rules()

	var names []string
	for _, r := range rules[:7] {
		names = append(names, r.Name)
		assert.Equal(t, Content, r.Class)
	}
	assert.Equal(t, []string{"STRING", "REAL", "INTEGER", "IDENTIFIER", RuleComment, RuleNewline, RuleWhitespace}, names)

	simple := rules[7:]
	require.Len(t, simple, 27)
	for i, r := range simple {
		assert.Equal(t, Simple, r.Class)
		if i == 0 {
			continue
		}
		prev := simple[i-1]
		assert.GreaterOrEqual(t, len(prev.Pattern), len(r.Pattern), "%s before %s", prev.Name, r.Name)
		if len(prev.Pattern) == len(r.Pattern) {
			assert.Less(t, prev.Order, r.Order)
		}
	}

	// every two-character operator precedes every one-character operator
	assert.Equal(t, "+=", simple[0].Pattern)
	assert.Equal(t, 1, len(simple[len(simple)-1].Pattern))
}

func TestRegistryOrdersByOrderFieldNotSliceOrder(t *testing.T) {
	rules := DefaultRules()
	// Declaring INTEGER before REAL in the slice must not change priority.
	rules[1], rules[2] = rules[2], rules[1]

	reg, err := NewRegistry(rules)
	require.NoError(t, err)
	assert.Equal(t, "REAL", reg.Rules()[1].Name)
	assert.Equal(t, "INTEGER", reg.Rules()[2].Name)
}

func TestReorderedContentRulesChangeTokenization(t *testing.T) {
	rules := DefaultRules()
	// Putting INTEGER ahead of REAL splits reals apart.
	rules[1].Order, rules[2].Order = rules[2].Order, rules[1].Order

	table := newTestScanner(t).Keywords()
	s, err := New(table, WithRules(rules))
	require.NoError(t, err)

	_, err = s.Scan("3.14")
	var illegal *IllegalCharacterError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, '.', illegal.Char)
}

func TestRegistryIsolatedFromCaller(t *testing.T) {
	rules := DefaultRules()
	reg, err := NewRegistry(rules)
	require.NoError(t, err)

	rules[0].Name = "CHANGED"
	got := reg.Rules()
	got[0].Name = "CHANGED"
	assert.Equal(t, "STRING", reg.Rules()[0].Name)
}

func TestRegistryValidation(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule
		want  string
	}{
		{"empty", nil, "no lexical rules"},
		{"unnamed", []Rule{{Pattern: "a", Kind: token.IDENTIFIER}}, "has no name"},
		{"duplicate name", []Rule{
			{Name: "A", Pattern: "a", Kind: token.IDENTIFIER},
			{Name: "A", Pattern: "b", Kind: token.IDENTIFIER, Order: 1},
		}, "duplicate rule"},
		{"duplicate order", []Rule{
			{Name: "A", Pattern: "a", Kind: token.IDENTIFIER},
			{Name: "B", Pattern: "b", Kind: token.IDENTIFIER},
		}, "share content order 0"},
		{"empty pattern", []Rule{{Name: "A", Kind: token.IDENTIFIER}}, "empty pattern"},
		{"bad regexp", []Rule{{Name: "A", Pattern: "[", Kind: token.IDENTIFIER}}, `rule "A"`},
		{"matches empty", []Rule{{Name: "A", Pattern: "a*", Kind: token.IDENTIFIER}}, "matches the empty string"},
		{"undeclared kind", []Rule{{Name: "A", Pattern: "a", Kind: token.Kind(999)}}, "undeclared kind"},
		{"simple non operator", []Rule{{Name: "A", Pattern: "a", Kind: token.IDENTIFIER, Class: Simple}}, "must produce an operator"},
		{"simple converts", []Rule{{Name: "A", Pattern: "+", Kind: token.ADD, Class: Simple, Convert: identity}}, "cannot suppress or convert"},
		{"unknown class", []Rule{{Name: "A", Pattern: "a", Kind: token.IDENTIFIER, Class: Class(7)}}, "unknown class"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.rules)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSimpleRuleTextIsLiteral(t *testing.T) {
	// "*" and "(" would be regexp metacharacters if not quoted.
	rules := []Rule{
		{Name: "MUL", Kind: token.MUL, Pattern: "*", Class: Simple},
		{Name: "LEFT_ROUND", Kind: token.LEFT_ROUND, Pattern: "(", Class: Simple, Order: 1},
	}
	reg, err := NewRegistry(rules)
	require.NoError(t, err)
	assert.Len(t, reg.Rules(), 2)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "content", Content.String())
	assert.Equal(t, "simple", Simple.String())
	assert.Equal(t, "Class(9)", Class(9).String())
}
