// Package keywords holds the reserved table consulted by the scanner after an
// identifier has been matched.
package keywords

import (
	"fmt"
	"regexp"
	"sort"

	"aml/token"
)

// Group is the category a keyword belongs to.
type Group string

const (
	GroupType      Group = "type"
	GroupPrimitive Group = "primitive"
	GroupStatement Group = "statement"
	GroupAccessor  Group = "accessor"
	GroupWellKnown Group = "well-known"
)

var spellingPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z_0-9]*$`)

type entry struct {
	kind  token.Kind
	group Group
}

// Table maps exact, case-sensitive keyword spellings to reserved kinds.
// A Table is never modified after construction.
type Table struct {
	words map[string]entry
}

// New builds a table from spelling -> kind pairs. Every kind must be in the
// reserved family and every spelling must have the shape of an identifier,
// otherwise the scanner could never produce it.
func New(words map[string]token.Kind) (*Table, error) {
	t := &Table{words: make(map[string]entry, len(words))}
	for spelling, kind := range words {
		if err := t.add(spelling, kind, groupOf(kind)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) add(spelling string, kind token.Kind, group Group) error {
	if !spellingPattern.MatchString(spelling) {
		return fmt.Errorf("keyword %q is not a valid identifier", spelling)
	}
	if !kind.IsReserved() {
		return fmt.Errorf("keyword %q maps to %s, which is not a reserved kind", spelling, kind)
	}
	t.words[spelling] = entry{kind: kind, group: group}
	return nil
}

// Lookup returns the reserved kind for spelling.
func (t *Table) Lookup(spelling string) (token.Kind, bool) {
	if t == nil {
		return 0, false
	}
	e, ok := t.words[spelling]
	return e.kind, ok
}

// Group returns the category of a keyword spelling.
func (t *Table) Group(spelling string) (Group, bool) {
	if t == nil {
		return "", false
	}
	e, ok := t.words[spelling]
	return e.group, ok
}

// Len returns the number of spellings in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.words)
}

// Spellings returns every keyword spelling, sorted.
func (t *Table) Spellings() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.words))
	for s := range t.words {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

type defaultKeyword struct {
	spelling string
	kind     token.Kind
	group    Group
}

func defaultKeywords() []defaultKeyword {
	return []defaultKeyword{
		{"variable", token.VARIABLE, GroupType},
		{"packet", token.PACKET, GroupType},
		{"filter", token.FILTER, GroupType},
		{"list", token.LIST, GroupType},

		{"disableComponent", token.DISABLE_COMPONENT, GroupPrimitive},
		{"deceiveComponent", token.DECEIVE_COMPONENT, GroupPrimitive},
		{"destroyComponent", token.DESTROY_COMPONENT, GroupPrimitive},
		{"misplaceNode", token.MISPLACE_NODE, GroupPrimitive},
		{"destroyNode", token.DESTROY_NODE, GroupPrimitive},
		{"writeField", token.WRITE_FIELD, GroupPrimitive},
		{"readField", token.READ_FIELD, GroupPrimitive},
		{"forwardPacket", token.FORWARD_PACKET, GroupPrimitive},
		{"createPacket", token.CREATE_PACKET, GroupPrimitive},
		{"injectPacket", token.INJECT_PACKET, GroupPrimitive},
		{"clonePacket", token.CLONE_PACKET, GroupPrimitive},
		{"dropPacket", token.DROP_PACKET, GroupPrimitive},

		{"scenario", token.SCENARIO, GroupStatement},
		{"packets", token.PACKETS, GroupStatement},
		{"every", token.EVERY, GroupStatement},
		{"nodes", token.NODES, GroupStatement},
		{"from", token.FROM, GroupStatement},
		{"once", token.ONCE, GroupStatement},

		{"matching", token.MATCHING, GroupAccessor},
		{"for", token.FOR, GroupAccessor},
		{"in", token.IN, GroupAccessor},

		{"captured", token.CAPTURED, GroupWellKnown},
		{"self", token.SELF, GroupWellKnown},
		{"tx", token.TX, GroupWellKnown},
		{"rx", token.RX, GroupWellKnown},
		{"us", token.US, GroupWellKnown},
		{"ms", token.MS, GroupWellKnown},
		{"s", token.S, GroupWellKnown},
	}
}

// Default returns a fresh table holding the language's keywords.
func Default() *Table {
	defaults := defaultKeywords()
	t := &Table{words: make(map[string]entry, len(defaults))}
	for _, kw := range defaults {
		t.words[kw.spelling] = entry{kind: kw.kind, group: kw.group}
	}
	return t
}

// groupOf returns the default group of a reserved kind.
func groupOf(kind token.Kind) Group {
	for _, kw := range defaultKeywords() {
		if kw.kind == kind {
			return kw.group
		}
	}
	return ""
}
