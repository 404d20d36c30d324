package calc

import (
	"fmt"
	"math"
)

// opFunc computes an operator's result. first is the value popped first
// (the right-hand operand), second the value popped after it.
type opFunc func(first, second int64, q Quirks) (int64, error)

// operatorFunc pairs an evaluation function with the number of values it
// consumes from the result stack.
type operatorFunc struct {
	arity int
	fn    opFunc
}

// functions is the operator dispatch table. Parentheses never reach the
// evaluator and have no entry.
var functions = map[OperatorID]operatorFunc{
	OpAdd:  {arity: 2, fn: add},
	OpSub:  {arity: 2, fn: subtract},
	OpMul:  {arity: 2, fn: multiply},
	OpDiv:  {arity: 2, fn: divide},
	OpPow:  {arity: 2, fn: exponent},
	OpFact: {arity: 1, fn: factorial},
}

func add(augend, addend int64, _ Quirks) (int64, error) {
	r := addend + augend
	if (augend > 0 && r < addend) || (augend < 0 && r > addend) {
		return 0, NewOverflowError(fmt.Sprintf("%d + %d overflows", addend, augend))
	}
	return r, nil
}

func subtract(subtrahend, minuend int64, _ Quirks) (int64, error) {
	r := minuend - subtrahend
	if (subtrahend > 0 && r > minuend) || (subtrahend < 0 && r < minuend) {
		return 0, NewOverflowError(fmt.Sprintf("%d - %d overflows", minuend, subtrahend))
	}
	return r, nil
}

func multiply(x, y int64, _ Quirks) (int64, error) {
	r, ok := mulChecked(x, y)
	if !ok {
		return 0, NewOverflowError(fmt.Sprintf("%d * %d overflows", y, x))
	}
	return r, nil
}

func divide(divisor, dividend int64, _ Quirks) (int64, error) {
	if divisor == 0 {
		return 0, NewDivisionByZeroError()
	}
	if divisor == -1 && dividend == math.MinInt64 {
		return 0, NewOverflowError(fmt.Sprintf("%d / %d overflows", dividend, divisor))
	}
	return dividend / divisor, nil
}

// exponent raises base to power by repeated multiplication.
func exponent(power, base int64, q Quirks) (int64, error) {
	if power < 1 {
		if q.ZeroExponentIsBase {
			return base, nil
		}
		if power < 0 {
			return 0, NewDomainError(fmt.Sprintf("negative exponent %d", power))
		}
		return 1, nil
	}

	// These never overflow, and would otherwise loop power times.
	switch base {
	case 0, 1:
		return base, nil
	case -1:
		if power%2 == 0 {
			return 1, nil
		}
		return -1, nil
	}

	result := base
	for i := int64(1); i < power; i++ {
		var ok bool
		result, ok = mulChecked(result, base)
		if !ok {
			return 0, NewOverflowError(fmt.Sprintf("%d ^ %d overflows", base, power))
		}
	}
	return result, nil
}

// factorial ignores its second argument; ! takes one operand.
func factorial(n, _ int64, q Quirks) (int64, error) {
	if n < 1 {
		if q.ZeroFactorialIsZero {
			return n, nil
		}
		if n < 0 {
			return 0, NewDomainError(fmt.Sprintf("factorial of negative number %d", n))
		}
		return 1, nil
	}

	result := n
	for i := n - 1; i > 1; i-- {
		var ok bool
		result, ok = mulChecked(result, i)
		if !ok {
			return 0, NewOverflowError(fmt.Sprintf("%d ! overflows", n))
		}
	}
	return result, nil
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || r/b != a {
		return 0, false
	}
	return r, true
}
