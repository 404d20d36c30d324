package calc

import "testing"

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		ch       byte
		id       OperatorID
		priority int
	}{
		{'(', OpLParen, 0},
		{')', OpRParen, 0},
		{'+', OpAdd, 1},
		{'-', OpSub, 1},
		{'*', OpMul, 2},
		{'/', OpDiv, 2},
		{'^', OpPow, 3},
		{'!', OpFact, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.ch), func(t *testing.T) {
			tok, err := Encode(tt.ch)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			isOp, id, prio := Decode(tok)
			if !isOp {
				t.Fatal("expected operator token")
			}
			if id != tt.id {
				t.Errorf("id: got %v, want %v", id, tt.id)
			}
			if prio != tt.priority {
				t.Errorf("priority: got %d, want %d", prio, tt.priority)
			}
			if id.Char() != tt.ch {
				t.Errorf("char: got %q, want %q", id.Char(), tt.ch)
			}
		})
	}
}

func TestEncodeRejectsUnknown(t *testing.T) {
	for _, ch := range []byte{' ', 'x', '%', '=', '0', '\n'} {
		if _, err := Encode(ch); KindOf(err) != KindUnknownCharacter {
			t.Errorf("Encode(%q): got %v, want UnknownCharacter", ch, err)
		}
		if IsOperatorChar(ch) {
			t.Errorf("IsOperatorChar(%q) = true", ch)
		}
	}
}

func TestDecodeOperand(t *testing.T) {
	isOp, id, prio := Decode(Operand(42))
	if isOp || id != 0 || prio != 0 {
		t.Errorf("got (%v, %v, %d), want (false, 0, 0)", isOp, id, prio)
	}
}

func TestOperandsNeverLookLikeOperators(t *testing.T) {
	for _, v := range []int64{-1, -9223372036854775808, 0, 40, 43} {
		if Operand(v).IsOperator() {
			t.Errorf("operand %d decoded as operator", v)
		}
	}
}

func TestPostfixString(t *testing.T) {
	add, _ := Encode('+')
	mul, _ := Encode('*')
	p := Postfix{Operand(2), Operand(3), Operand(4), mul, add}
	if got := p.String(); got != "2 3 4 * +" {
		t.Errorf("got %q", got)
	}
	if got := (Postfix{}).String(); got != "" {
		t.Errorf("empty postfix rendered as %q", got)
	}
}
