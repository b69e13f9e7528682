package calc

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// yields reports whether an operator p already on the stack must be popped
// before pushing next.
func (p operator) yields(next operator) bool {
	if p.prec != next.prec {
		return p.prec > next.prec
	}
	return !next.right
}

// binop gets a binary operator for a token string. If there is no such
// operator, then the result has a prec of 0.
func binop(text string) operator {
	switch text {
	case "+", "-":
		return operator{1, false}
	case "*", "/":
		return operator{2, false}
	case "^":
		return operator{3, true}
	default:
		return operator{}
	}
}
