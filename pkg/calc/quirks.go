package calc

// Quirks switches individual behaviours back to the historical calculator's
// results. The zero value selects the corrected behaviour throughout.
type Quirks struct {
	// ZeroExponentIsBase makes b ^ 0 evaluate to b instead of 1, and a
	// negative exponent evaluate to b instead of failing.
	ZeroExponentIsBase bool `yaml:"zero_exponent_is_base"`

	// ZeroFactorialIsZero makes 0 ! evaluate to 0 instead of 1, and a
	// negative operand evaluate to itself instead of failing.
	ZeroFactorialIsZero bool `yaml:"zero_factorial_is_zero"`

	// TolerateUnmatchedCloseParen ignores a ')' read while the operator
	// stack is empty instead of failing with UnmatchedCloseParen.
	TolerateUnmatchedCloseParen bool `yaml:"tolerate_unmatched_close_paren"`

	// RightGroupEqualPriority stops popping at an operator of equal
	// priority, so 5 - 2 - 1 groups as 5 - (2 - 1).
	RightGroupEqualPriority bool `yaml:"right_group_equal_priority"`

	// PopDiscardedOperand makes ! also pop and discard a second value when
	// one is available.
	PopDiscardedOperand bool `yaml:"pop_discarded_operand"`
}

// LegacyQuirks returns a Quirks value with every historical behaviour on.
func LegacyQuirks() Quirks {
	return Quirks{
		ZeroExponentIsBase:          true,
		ZeroFactorialIsZero:         true,
		TolerateUnmatchedCloseParen: true,
		RightGroupEqualPriority:     true,
		PopDiscardedOperand:         true,
	}
}
