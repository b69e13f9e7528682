package calc

import (
	"math"
	"strconv"
	"strings"
)

// Evaluate runs a postfix program, as produced by ToPostfix, and returns its
// result rounded to 10 decimal places.
func Evaluate(postfix []Token) (float64, error) {
	if len(postfix) == 0 {
		return 0, fail(EmptyExpression, "", 0)
	}
	stack := make([]float64, 0, len(postfix))
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, tok.Value)
		case TokenOp:
			if len(stack) < 2 {
				return 0, fail(InsufficientOperands, tok.Text, tok.Pos)
			}
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			a := &stack[len(stack)-1]
			r, err := apply(tok, *a, b)
			if err != nil {
				return 0, err
			}
			*a = r
		case TokenFunc:
			var err error
			stack, err = call(tok, stack)
			if err != nil {
				return 0, err
			}
		default:
			// Brackets never survive ToPostfix.
			return 0, fail(InvalidExpression, tok.Text, tok.Pos)
		}
	}
	if len(stack) != 1 {
		return 0, fail(InvalidExpression, "", 0)
	}
	return Round(stack[0]), nil
}

// apply computes a op b for the binary operator tok.
func apply(tok Token, a, b float64) (float64, error) {
	switch tok.Text {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fail(DivisionByZero, "", tok.Pos)
		}
		return a / b, nil
	case "^":
		return math.Pow(a, b), nil
	default:
		return 0, fail(InvalidToken, tok.Text, tok.Pos)
	}
}

// roundLimit is the magnitude from which every float64 is an integer.
const roundLimit = 1 << 52

// Round rounds x to 10 decimal places to absorb binary floating-point noise,
// so that e.g. 0.1+0.2 is 0.3. Non-finite values and values too large to
// have a fractional part are returned unchanged.
func Round(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) || math.Abs(x) >= roundLimit {
		return x
	}
	return math.Round(x*1e10) / 1e10
}

// Format formats a result with at most 10 fractional digits, without
// trailing zeros and without a trailing decimal point. Negative zero is
// formatted as 0.
func Format(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(x, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
