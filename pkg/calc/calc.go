package calc

import (
	"io"
	"strings"
)

// Result is the outcome of evaluating one line.
type Result struct {
	Postfix Postfix
	Value   int64
}

// Calculator runs convert-then-evaluate on successive lines with a fixed set
// of quirks. It holds no per-expression state and is safe for concurrent use.
type Calculator struct {
	quirks Quirks
}

// New creates a Calculator.
func New(q Quirks) *Calculator {
	return &Calculator{quirks: q}
}

// Quirks returns the behaviour switches the calculator was created with.
func (c *Calculator) Quirks() Quirks {
	return c.quirks
}

// EvalLine converts and evaluates the next line of r. The returned Result
// carries the postfix stream even when evaluation fails.
func (c *Calculator) EvalLine(r io.ByteScanner) (Result, error) {
	p, err := ToPostfix(r, c.quirks)
	if err != nil {
		return Result{}, err
	}
	v, err := Evaluate(p, c.quirks)
	if err != nil {
		return Result{Postfix: p}, err
	}
	return Result{Postfix: p, Value: v}, nil
}

// EvalString evaluates a single-line expression. A trailing newline is
// optional.
func (c *Calculator) EvalString(expr string) (Result, error) {
	r, err := lineReader(expr)
	if err != nil {
		return Result{}, err
	}
	return c.EvalLine(r)
}

// PostfixString converts a single-line expression without evaluating it.
func (c *Calculator) PostfixString(expr string) (Postfix, error) {
	r, err := lineReader(expr)
	if err != nil {
		return nil, err
	}
	return ToPostfix(r, c.quirks)
}

func lineReader(expr string) (*strings.Reader, error) {
	expr = strings.TrimSuffix(expr, "\n")
	if i := strings.IndexByte(expr, '\n'); i >= 0 {
		return nil, &Error{Kind: KindUnknownCharacter, Message: "expression spans more than one line", Pos: i + 1}
	}
	return strings.NewReader(expr + "\n"), nil
}
