package token

// The classification predicates below are consulted by both the analyzer
// (to pick a typing rule) and the emitter (to pick a C lexeme), adapted from
// the teacher's pkg/compiler/operators.Operator, which classified its own
// bytecode operator set the same way (IsComparison, CanOperand, ...).

// IsCompoundAssign reports whether k is one of the `op=` family (spec.md
// §3.1), as distinct from plain `=`.
func IsCompoundAssign(k Kind) bool {
	switch k {
	case PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN,
		PERCENT_ASSIGN, AMP_ASSIGN, PIPE_ASSIGN, CARET_ASSIGN,
		SHL_ASSIGN, SHR_ASSIGN:
		return true
	default:
		return false
	}
}

// IsNumericCompoundAssign reports whether k is `+= -= *= /=`, the subset of
// compound assignment that accepts float or int operands (spec.md §4.3).
func IsNumericCompoundAssign(k Kind) bool {
	switch k {
	case PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN:
		return true
	default:
		return false
	}
}

// IsIntegerCompoundAssign reports whether k is `%= &= |= ^= <<= >>=`, the
// subset of compound assignment that requires integer operands.
func IsIntegerCompoundAssign(k Kind) bool {
	switch k {
	case PERCENT_ASSIGN, AMP_ASSIGN, PIPE_ASSIGN, CARET_ASSIGN,
		SHL_ASSIGN, SHR_ASSIGN:
		return true
	default:
		return false
	}
}

// CompoundAssignToInfix maps a compound-assignment Kind to the infix
// operator it abbreviates (`+=` -> `+`). The emitter does not use it: it
// writes compound assignments with their own lexeme.
func CompoundAssignToInfix(k Kind) (Kind, bool) {
	switch k {
	case PLUS_ASSIGN:
		return PLUS, true
	case MINUS_ASSIGN:
		return MINUS, true
	case STAR_ASSIGN:
		return STAR, true
	case SLASH_ASSIGN:
		return SLASH, true
	case PERCENT_ASSIGN:
		return PERCENT, true
	case AMP_ASSIGN:
		return AMP, true
	case PIPE_ASSIGN:
		return PIPE, true
	case CARET_ASSIGN:
		return CARET, true
	case SHL_ASSIGN:
		return SHL, true
	case SHR_ASSIGN:
		return SHR, true
	default:
		return UNKNOWN, false
	}
}

// IsAdditive reports `+ - * /`, the class whose result is floating-point if
// either operand is floating, else the left operand's integer type.
func IsAdditive(k Kind) bool {
	switch k {
	case PLUS, MINUS, STAR, SLASH:
		return true
	default:
		return false
	}
}

// IsIntegerOnly reports `% & | ^ << >>`, the class that requires both
// operands to be integer and whose result is the left operand's type.
func IsIntegerOnly(k Kind) bool {
	switch k {
	case PERCENT, AMP, PIPE, CARET, SHL, SHR:
		return true
	default:
		return false
	}
}

// IsEquality reports `== !=`.
func IsEquality(k Kind) bool {
	return k == EQUAL_EQUAL || k == BANG_EQUAL
}

// IsRelational reports `< > <= >=`.
func IsRelational(k Kind) bool {
	switch k {
	case LESS, GREATER, LESS_EQUAL, GREATER_EQUAL:
		return true
	default:
		return false
	}
}

// IsBooleanBinary reports `&& || ^^`.
func IsBooleanBinary(k Kind) bool {
	switch k {
	case AND_AND, OR_OR, BOOLEAN_XOR:
		return true
	default:
		return false
	}
}

// IsIncDec reports `++ --`.
func IsIncDec(k Kind) bool {
	return k == INCREMENT || k == DECREMENT
}

// Lexeme returns the canonical source spelling for an operator or
// punctuation Kind, used by the emitter to translate to the lexically
// identical C operator (spec.md §4.5).
func Lexeme(k Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return k.String()
}
