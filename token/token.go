// Package token SPDX-License-Identifier: Apache-2.0
package token

import "fmt"

// Family groups token kinds. Every kind belongs to exactly one family.
type Family int

const (
	Reserved Family = iota
	Operator
	Operand
)

func (f Family) String() string {
	switch f {
	case Reserved:
		return "reserved"
	case Operator:
		return "operator"
	case Operand:
		return "operand"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Kind is the closed set of token kinds. The constants are laid out in three
// contiguous ranges (reserved, operator, operand); Family relies on it.
type Kind int

const (
	// Types
	VARIABLE Kind = iota
	PACKET
	FILTER
	LIST

	// Physical primitives on nodes' components
	DISABLE_COMPONENT
	DECEIVE_COMPONENT
	DESTROY_COMPONENT
	// Physical primitives on nodes
	MISPLACE_NODE
	DESTROY_NODE
	// Logical primitives on packets' fields
	WRITE_FIELD
	READ_FIELD
	// Logical primitives on packets
	FORWARD_PACKET
	CREATE_PACKET
	INJECT_PACKET
	CLONE_PACKET
	DROP_PACKET

	// Statements
	SCENARIO
	PACKETS
	EVERY
	NODES
	FROM
	ONCE

	// Accessors
	MATCHING
	FOR
	IN

	// Well known values
	CAPTURED
	SELF
	TX
	RX
	US
	MS
	S

	// Compound assignment operators
	ADD_ASSIGN
	SUB_ASSIGN
	MUL_ASSIGN
	DIV_ASSIGN
	MOD_ASSIGN

	// Comparison operators
	NOT_EQUAL_TO
	EQUAL_TO
	GREATER_EQUAL
	LESS_EQUAL
	GREATER
	LESS

	// Basic assignment operator
	ASSIGN

	// Arithmetic operators
	ADD
	SUB
	MUL
	DIV
	MOD
	EXP

	// Logical operators
	LAND
	LOR

	// Punctuation
	LEFT_ROUND
	RIGHT_ROUND
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_CURLY
	RIGHT_CURLY
	COMMA

	// Operands
	IDENTIFIER
	INTEGER
	REAL
	STRING

	kindCount
)

const (
	firstReserved = VARIABLE
	firstOperator = ADD_ASSIGN
	firstOperand  = IDENTIFIER
)

var kindNames = [kindCount]string{
	VARIABLE:          "VARIABLE",
	PACKET:            "PACKET",
	FILTER:            "FILTER",
	LIST:              "LIST",
	DISABLE_COMPONENT: "DISABLE_COMPONENT",
	DECEIVE_COMPONENT: "DECEIVE_COMPONENT",
	DESTROY_COMPONENT: "DESTROY_COMPONENT",
	MISPLACE_NODE:     "MISPLACE_NODE",
	DESTROY_NODE:      "DESTROY_NODE",
	WRITE_FIELD:       "WRITE_FIELD",
	READ_FIELD:        "READ_FIELD",
	FORWARD_PACKET:    "FORWARD_PACKET",
	CREATE_PACKET:     "CREATE_PACKET",
	INJECT_PACKET:     "INJECT_PACKET",
	CLONE_PACKET:      "CLONE_PACKET",
	DROP_PACKET:       "DROP_PACKET",
	SCENARIO:          "SCENARIO",
	PACKETS:           "PACKETS",
	EVERY:             "EVERY",
	NODES:             "NODES",
	FROM:              "FROM",
	ONCE:              "ONCE",
	MATCHING:          "MATCHING",
	FOR:               "FOR",
	IN:                "IN",
	CAPTURED:          "CAPTURED",
	SELF:              "SELF",
	TX:                "TX",
	RX:                "RX",
	US:                "US",
	MS:                "MS",
	S:                 "S",
	ADD_ASSIGN:        "ADD_ASSIGN",
	SUB_ASSIGN:        "SUB_ASSIGN",
	MUL_ASSIGN:        "MUL_ASSIGN",
	DIV_ASSIGN:        "DIV_ASSIGN",
	MOD_ASSIGN:        "MOD_ASSIGN",
	NOT_EQUAL_TO:      "NOT_EQUAL_TO",
	EQUAL_TO:          "EQUAL_TO",
	GREATER_EQUAL:     "GREATER_EQUAL",
	LESS_EQUAL:        "LESS_EQUAL",
	GREATER:           "GREATER",
	LESS:              "LESS",
	ASSIGN:            "ASSIGN",
	ADD:               "ADD",
	SUB:               "SUB",
	MUL:               "MUL",
	DIV:               "DIV",
	MOD:               "MOD",
	EXP:               "EXP",
	LAND:              "LAND",
	LOR:               "LOR",
	LEFT_ROUND:        "LEFT_ROUND",
	RIGHT_ROUND:       "RIGHT_ROUND",
	LEFT_BRACKET:      "LEFT_BRACKET",
	RIGHT_BRACKET:     "RIGHT_BRACKET",
	LEFT_CURLY:        "LEFT_CURLY",
	RIGHT_CURLY:       "RIGHT_CURLY",
	COMMA:             "COMMA",
	IDENTIFIER:        "IDENTIFIER",
	INTEGER:           "INTEGER",
	REAL:              "REAL",
	STRING:            "STRING",
}

// operatorText holds the fixed spelling of every operator kind.
var operatorText = [kindCount]string{
	ADD_ASSIGN:    "+=",
	SUB_ASSIGN:    "-=",
	MUL_ASSIGN:    "*=",
	DIV_ASSIGN:    "/=",
	MOD_ASSIGN:    "%=",
	NOT_EQUAL_TO:  "!=",
	EQUAL_TO:      "==",
	GREATER_EQUAL: ">=",
	LESS_EQUAL:    "<=",
	GREATER:       ">",
	LESS:          "<",
	ASSIGN:        "=",
	ADD:           "+",
	SUB:           "-",
	MUL:           "*",
	DIV:           "/",
	MOD:           "%",
	EXP:           "**",
	LAND:          "&&",
	LOR:           "||",
	LEFT_ROUND:    "(",
	RIGHT_ROUND:   ")",
	LEFT_BRACKET:  "[",
	RIGHT_BRACKET: "]",
	LEFT_CURLY:    "{",
	RIGHT_CURLY:   "}",
	COMMA:         ",",
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Family returns the family k belongs to. It panics on an undeclared kind.
func (k Kind) Family() Family {
	switch {
	case !k.Valid():
		panic(fmt.Sprintf("token: undeclared kind %d", int(k)))
	case k >= firstOperand:
		return Operand
	case k >= firstOperator:
		return Operator
	default:
		return Reserved
	}
}

func (k Kind) IsReserved() bool { return k.Valid() && k.Family() == Reserved }
func (k Kind) IsOperator() bool { return k.Valid() && k.Family() == Operator }
func (k Kind) IsOperand() bool  { return k.Valid() && k.Family() == Operand }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Text returns the fixed spelling of an operator kind, or "" for any other kind.
func (k Kind) Text() string {
	if !k.IsOperator() {
		return ""
	}
	return operatorText[k]
}

// LookupKind maps a canonical kind name (as returned by String) back to its kind.
func LookupKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Position is a physical location in the source.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one classified lexeme.
//
// Value holds the converted literal: string for STRING and IDENTIFIER, int64
// for INTEGER, float64 for REAL and nil for reserved words and operators.
// Line is the logical line kept by the scanner's line tracker, which only
// advances on newline runs; Pos is the physical position of the lexeme.
type Token struct {
	Kind   Kind
	Lexeme string
	Value  any
	Line   int
	Pos    Position
}

func (t Token) String() string {
	if t.Value == nil {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%s(%q, %v)", t.Kind, t.Lexeme, t.Value)
}
