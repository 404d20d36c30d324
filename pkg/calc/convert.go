package calc

import (
	"errors"
	"fmt"
	"io"

	"github.com/lemonberrylabs/stackcalc/pkg/stack"
)

// pendingOp is an operator waiting on the operator stack, with the column
// it was read from.
type pendingOp struct {
	tok Token
	pos int
}

// converter holds the state of one infix-to-postfix conversion. It wraps the
// input so that it can report columns in errors.
type converter struct {
	r      io.ByteScanner
	col    int
	quirks Quirks
	ops    *stack.Stack[pendingOp]
	out    Postfix
}

// ToPostfix reads one line from r, up to and including the '\n', and
// returns its tokens in postfix order.
//
// Hitting end of input before the '\n' yields a Truncated error. Any other
// error leaves r positioned after the '\n' of the offending line, so the
// next call starts on a fresh line.
func ToPostfix(r io.ByteScanner, q Quirks) (Postfix, error) {
	c := &converter{
		r:      r,
		quirks: q,
		ops:    stack.New[pendingOp](16),
	}
	defer c.ops.Reset()
	return c.convert()
}

func (c *converter) convert() (Postfix, error) {
	for {
		ch, err := c.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil, NewTruncatedError(c.col)
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		if ch == '\n' {
			break
		}

		switch {
		case isSpace(ch):
			continue

		case ch >= '0' && ch <= '9':
			start := c.col
			if err := c.UnreadByte(); err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}
			v, err := ReadDecimal(c)
			if err != nil {
				var ce *Error
				if errors.As(err, &ce) && ce.Pos == 0 {
					ce.Pos = start
				}
				return nil, c.fail(err)
			}
			c.out = append(c.out, Operand(v))

		case ch == '(':
			c.ops.Push(pendingOp{tok: Token{Kind: TokenOperator, Op: OpLParen}, pos: c.col})

		case ch == ')':
			if err := c.closeParen(); err != nil {
				return nil, c.fail(err)
			}

		default:
			tok, err := Encode(ch)
			if err != nil {
				return nil, c.fail(NewUnknownCharacterError(ch, c.col))
			}
			c.pushOperator(tok)
		}
	}

	for !c.ops.IsEmpty() {
		top, _ := c.ops.Pop()
		if top.tok.Is(OpLParen) {
			return nil, NewUnmatchedOpenParenError(top.pos)
		}
		c.out = append(c.out, top.tok)
	}
	return c.out, nil
}

// closeParen moves operators to the output until the matching '(' is popped.
func (c *converter) closeParen() error {
	if c.ops.IsEmpty() {
		if c.quirks.TolerateUnmatchedCloseParen {
			return nil
		}
		return NewUnmatchedCloseParenError(c.col)
	}
	for {
		top, err := c.ops.Pop()
		if err != nil {
			return NewUnmatchedCloseParenError(c.col)
		}
		if top.tok.Is(OpLParen) {
			return nil
		}
		c.out = append(c.out, top.tok)
	}
}

// pushOperator places tok on the operator stack, first moving to the output
// every stacked operator that binds at least as tightly (or strictly more
// tightly under RightGroupEqualPriority). A '(' on the stack stops the scan.
func (c *converter) pushOperator(tok Token) {
	op := pendingOp{tok: tok, pos: c.col}
	top, err := c.ops.Peek()
	if err != nil || top.tok.Is(OpLParen) || tok.Op.Priority() > top.tok.Op.Priority() {
		c.ops.Push(op)
		return
	}

	for !c.ops.IsEmpty() {
		top, _ = c.ops.Peek()
		if top.tok.Is(OpLParen) || !c.outranks(top.tok, tok) {
			break
		}
		c.ops.Pop()
		c.out = append(c.out, top.tok)
	}
	c.ops.Push(op)
}

// outranks reports whether the stacked operator must be emitted before the
// incoming one.
func (c *converter) outranks(stacked, incoming Token) bool {
	sp, ip := stacked.Op.Priority(), incoming.Op.Priority()
	if c.quirks.RightGroupEqualPriority {
		return sp > ip
	}
	return sp >= ip
}

// fail discards the rest of the current line and returns err.
func (c *converter) fail(err error) error {
	for {
		ch, rerr := c.ReadByte()
		if rerr != nil || ch == '\n' {
			return err
		}
	}
}

// ReadByte implements io.ByteReader, tracking the column.
func (c *converter) ReadByte() (byte, error) {
	ch, err := c.r.ReadByte()
	if err == nil {
		c.col++
	}
	return ch, err
}

// UnreadByte implements io.ByteScanner.
func (c *converter) UnreadByte() error {
	if err := c.r.UnreadByte(); err != nil {
		return err
	}
	c.col--
	return nil
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
