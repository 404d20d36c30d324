package calc

import (
	"fmt"

	"github.com/lemonberrylabs/stackcalc/pkg/stack"
)

// Evaluate computes the value of a postfix token stream. Operands are pushed
// on a result stack; each operator pops its operands (right-hand operand
// first), applies its function and pushes the result. Exactly one value must
// remain at the end.
func Evaluate(p Postfix, q Quirks) (int64, error) {
	results := stack.New[int64](len(p))
	defer results.Reset()

	for i, t := range p {
		if !t.IsOperator() {
			results.Push(t.Value)
			continue
		}

		f, ok := functions[t.Op]
		if !ok {
			return 0, fmt.Errorf("operator %s at token %d cannot be evaluated", t.Op, i+1)
		}

		first, err := results.Pop()
		if err != nil {
			return 0, NewStackUnderflowError(fmt.Sprintf("operator %s at token %d has no operands", t.Op, i+1))
		}

		var second int64
		switch {
		case f.arity == 2:
			second, err = results.Pop()
			if err != nil {
				return 0, NewStackUnderflowError(fmt.Sprintf("operator %s at token %d needs two operands", t.Op, i+1))
			}
		case q.PopDiscardedOperand && !results.IsEmpty():
			results.Pop()
		}

		v, err := f.fn(first, second, q)
		if err != nil {
			return 0, err
		}
		results.Push(v)
	}

	switch results.Len() {
	case 0:
		return 0, NewStackUnderflowError("empty expression")
	case 1:
		v, _ := results.Pop()
		return v, nil
	default:
		return 0, NewStackUnderflowError(fmt.Sprintf("expression leaves %d values on the stack", results.Len()))
	}
}
