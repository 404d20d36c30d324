package calc

import (
	"errors"
	"testing"
)

func TestEvaluateExpressions(t *testing.T) {
	c := New(Quirks{})

	tests := []struct {
		input string
		want  int64
	}{
		{"3 + 4", 7},
		{"2 * 3 + 4", 10},     // precedence
		{"2 + 3 * 4", 14},     // precedence
		{"(2 + 3) * 4", 20},   // parens
		{"5 - 2", 3},          // pop order
		{"4 / 2", 2},
		{"7 / 2", 3},          // integer division
		{"2 ^ 3", 8},
		{"5 !", 120},
		{"3 + 5 !", 123},
		{"5 ! + 1", 121},
		{"5 - 2 - 1", 2},      // left to right
		{"100 / 10 / 5", 2},   // left to right
		{"2 ^ 3 ^ 2", 64},     // left to right
		{"0 - 5", -5},
		{"(0 - 2) ^ 3", -8},
		{"(0 - 7) / 2", -3},   // truncates toward zero
		{"2 ^ 0", 1},
		{"0 !", 1},
		{"1 !", 1},
		{"1 ^ 1000000000000", 1},
		{"(0 - 1) ^ 1000000000001", -1},
		{"20 !", 2432902008176640000},
		{"2 ^ 62", 4611686018427387904},
		{"12*(3+4)-5/5", 83},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := c.EvalString(tt.input)
			if err != nil {
				t.Fatalf("eval error: %v", err)
			}
			if res.Value != tt.want {
				t.Errorf("got %d, want %d (postfix %q)", res.Value, tt.want, res.Postfix)
			}
		})
	}
}

func TestEvaluateLegacyQuirks(t *testing.T) {
	c := New(LegacyQuirks())

	tests := []struct {
		input string
		want  int64
	}{
		{"2 ^ 0", 2},
		{"2 ^ (0 - 1)", 2},
		{"0 !", 0},
		{"(0 - 3) !", -3},
		{"5 !", 120},
		{"5 - 2 - 1", 4},
		{"2 ^ 3 ^ 2", 512},
		{") 3 + 4", 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := c.EvalString(tt.input)
			if err != nil {
				t.Fatalf("eval error: %v", err)
			}
			if res.Value != tt.want {
				t.Errorf("got %d, want %d", res.Value, tt.want)
			}
		})
	}
}

func TestEvaluateLegacyFactorialSwallowsOperand(t *testing.T) {
	// ! pops 5, discards 3, and + is left with a single value.
	_, err := New(LegacyQuirks()).EvalString("3 + 5 !")
	if !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("got %v, want StackUnderflow", err)
	}
}

func TestEvaluateErrors(t *testing.T) {
	c := New(Quirks{})

	tests := []struct {
		input string
		err   error
	}{
		{"1 / 0", ErrDivisionByZero},
		{"5 / (3 - 3)", ErrDivisionByZero},
		{"3 +", ErrStackUnderflow},
		{"+", ErrStackUnderflow},
		{"3 4", ErrStackUnderflow},
		{"", ErrStackUnderflow},
		{"21 !", ErrOverflow},
		{"2 ^ 63", ErrOverflow},
		{"9223372036854775807 + 1", ErrOverflow},
		{"0 - 9223372036854775807 - 2", ErrOverflow},
		{"4294967296 * 4294967296", ErrOverflow},
		{"2 ^ (0 - 1)", ErrDomain},
		{"(0 - 3) !", ErrDomain},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := c.EvalString(tt.input)
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestEvaluateHandBuiltPostfix(t *testing.T) {
	sub, _ := Encode('-')
	div, _ := Encode('/')
	fact, _ := Encode('!')

	tests := []struct {
		name string
		p    Postfix
		want int64
	}{
		{"minuend popped second", Postfix{Operand(10), Operand(4), sub}, 6},
		{"dividend popped second", Postfix{Operand(20), Operand(5), div}, 4},
		{"factorial takes one operand", Postfix{Operand(4), fact}, 24},
		{"negative operands", Postfix{Operand(-3), Operand(-4), sub}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.p, Quirks{})
			if err != nil {
				t.Fatalf("eval error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluateRejectsParenthesis(t *testing.T) {
	lp, _ := Encode('(')
	_, err := Evaluate(Postfix{Operand(1), Operand(2), lp}, Quirks{})
	if err == nil {
		t.Fatal("expected error for parenthesis in postfix stream")
	}
}

func TestOperatorFunctions(t *testing.T) {
	tests := []struct {
		name          string
		id            OperatorID
		first, second int64
		want          int64
	}{
		{"add", OpAdd, 4, 3, 7},
		{"subtract", OpSub, 2, 5, 3},
		{"multiply", OpMul, 6, 7, 42},
		{"divide", OpDiv, 2, 9, 4},
		{"exponent", OpPow, 3, 2, 8},
		{"exponent of zero base", OpPow, 5, 0, 0},
		{"factorial", OpFact, 5, 999, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := functions[tt.id]
			if !ok {
				t.Fatalf("no function for %s", tt.id)
			}
			got, err := f.fn(tt.first, tt.second, Quirks{})
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}

	if _, ok := functions[OpLParen]; ok {
		t.Error("parenthesis must not have an evaluation function")
	}
}
