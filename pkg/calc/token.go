// Package calc implements a single-line integer calculator: an
// infix-to-postfix converter driven by operator priorities, and a postfix
// evaluator driven by an operator function table.
package calc

import (
	"strconv"
	"strings"
)

// OperatorID identifies an entry of the operator table. The numeric value is
// the entry's position in the table.
type OperatorID int

// Operator table, in declaration order. A later position means a higher
// priority; the blank slot between ^ and ! only keeps ! above ^.
const (
	OpLParen OperatorID = iota // (
	OpRParen                   // )
	OpAdd                      // +
	OpSub                      // -
	OpMul                      // *
	OpDiv                      // /
	OpPow                      // ^
	opUnused                   // unused slot
	OpFact                     // !
)

// operatorChars holds the table characters indexed by OperatorID.
const operatorChars = "()+-*/^ !"

// Char returns the character the operator was written as.
func (id OperatorID) Char() byte {
	if id < 0 || int(id) >= len(operatorChars) {
		return '?'
	}
	return operatorChars[id]
}

// Priority returns the binding priority of the operator. Pairs of adjacent
// table entries share a priority: + and - bind equally, as do * and /.
// Parentheses report 0 and are never compared; the converter matches them
// structurally.
func (id OperatorID) Priority() int {
	return int(id) / 2
}

// String returns the operator character.
func (id OperatorID) String() string {
	return string(id.Char())
}

// TokenKind discriminates the two meanings a Token can carry.
type TokenKind int

const (
	TokenOperand TokenKind = iota
	TokenOperator
)

// String returns a debug-friendly representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenOperand:
		return "OPERAND"
	case TokenOperator:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// Token is one element of an expression: either an integer operand or an
// operator from the table.
type Token struct {
	Kind  TokenKind
	Value int64      // for TokenOperand
	Op    OperatorID // for TokenOperator
}

// Operand creates an operand token.
func Operand(v int64) Token {
	return Token{Kind: TokenOperand, Value: v}
}

// Encode maps an operator character to its token. It fails with
// UnknownCharacter for anything that is not in the operator table.
func Encode(ch byte) (Token, error) {
	var id OperatorID
	switch ch {
	case '(':
		id = OpLParen
	case ')':
		id = OpRParen
	case '+':
		id = OpAdd
	case '-':
		id = OpSub
	case '*':
		id = OpMul
	case '/':
		id = OpDiv
	case '^':
		id = OpPow
	case '!':
		id = OpFact
	default:
		return Token{}, NewUnknownCharacterError(ch, 0)
	}
	return Token{Kind: TokenOperator, Op: id}, nil
}

// IsOperatorChar reports whether ch names an entry of the operator table.
func IsOperatorChar(ch byte) bool {
	_, err := Encode(ch)
	return err == nil
}

// Decode splits a token into its discriminant, operator identity and
// priority. For operands id and priority are zero.
func Decode(t Token) (isOperator bool, id OperatorID, priority int) {
	if t.Kind != TokenOperator {
		return false, 0, 0
	}
	return true, t.Op, t.Op.Priority()
}

// IsOperator reports whether the token is an operator.
func (t Token) IsOperator() bool {
	return t.Kind == TokenOperator
}

// Is reports whether the token is the given operator.
func (t Token) Is(id OperatorID) bool {
	return t.Kind == TokenOperator && t.Op == id
}

// String renders an operand as its decimal value and an operator as its
// character.
func (t Token) String() string {
	if t.Kind == TokenOperator {
		return t.Op.String()
	}
	return strconv.FormatInt(t.Value, 10)
}

// Postfix is a token stream in left-to-right postfix order.
type Postfix []Token

// String renders the stream with single spaces between tokens.
func (p Postfix) String() string {
	parts := make([]string, len(p))
	for i, t := range p {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
