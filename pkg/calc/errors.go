package calc

import (
	"errors"
	"fmt"
)

// Error kind constants. Every failure reported by the converter or the
// evaluator carries exactly one of these.
const (
	KindTruncated           = "Truncated"
	KindUnmatchedCloseParen = "UnmatchedCloseParen"
	KindUnmatchedOpenParen  = "UnmatchedOpenParen"
	KindStackUnderflow      = "StackUnderflow"
	KindDivisionByZero      = "DivisionByZero"
	KindUnknownCharacter    = "UnknownCharacter"
	KindOverflow            = "Overflow"
	KindDomain              = "Domain"
)

// Error is a typed calculator failure with a kind, a message and, for
// conversion errors, the 1-based column on the input line (0 when unknown).
type Error struct {
	Kind    string
	Message string
	Pos     int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("%s: %s (column %d)", e.Kind, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is a *Error of the same kind, so that
// errors.Is(err, calc.ErrTruncated) works for any truncation error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrTruncated           = &Error{Kind: KindTruncated}
	ErrUnmatchedCloseParen = &Error{Kind: KindUnmatchedCloseParen}
	ErrUnmatchedOpenParen  = &Error{Kind: KindUnmatchedOpenParen}
	ErrStackUnderflow      = &Error{Kind: KindStackUnderflow}
	ErrDivisionByZero      = &Error{Kind: KindDivisionByZero}
	ErrUnknownCharacter    = &Error{Kind: KindUnknownCharacter}
	ErrOverflow            = &Error{Kind: KindOverflow}
	ErrDomain              = &Error{Kind: KindDomain}
)

// KindOf returns the kind of a calculator error, or "" if err is not one.
func KindOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Common error constructors.

// NewTruncatedError reports end of input before a line terminator.
func NewTruncatedError(pos int) *Error {
	return &Error{Kind: KindTruncated, Message: "end of input before end of line", Pos: pos}
}

// NewUnmatchedCloseParenError reports a ')' with no matching '('.
func NewUnmatchedCloseParenError(pos int) *Error {
	return &Error{Kind: KindUnmatchedCloseParen, Message: "')' has no matching '('", Pos: pos}
}

// NewUnmatchedOpenParenError reports a '(' still open at end of line.
func NewUnmatchedOpenParenError(pos int) *Error {
	return &Error{Kind: KindUnmatchedOpenParen, Message: "'(' is never closed", Pos: pos}
}

// NewStackUnderflowError reports a malformed postfix sequence.
func NewStackUnderflowError(msg string) *Error {
	return &Error{Kind: KindStackUnderflow, Message: msg}
}

// NewDivisionByZeroError reports a zero divisor.
func NewDivisionByZeroError() *Error {
	return &Error{Kind: KindDivisionByZero, Message: "division by zero"}
}

// NewUnknownCharacterError reports a character that is not part of the grammar.
func NewUnknownCharacterError(ch byte, pos int) *Error {
	return &Error{Kind: KindUnknownCharacter, Message: fmt.Sprintf("unexpected character %q", string(ch)), Pos: pos}
}

// NewOverflowError reports a value that does not fit in an int64.
func NewOverflowError(msg string) *Error {
	return &Error{Kind: KindOverflow, Message: msg}
}

// NewDomainError reports an operand outside an operator's domain.
func NewDomainError(msg string) *Error {
	return &Error{Kind: KindDomain, Message: msg}
}

// AtEndOfInput reports whether err is a Truncated error raised before any
// character of the line was read, which is how a clean end of input shows up
// to a caller reading line after line.
func AtEndOfInput(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTruncated && e.Pos == 0
}
