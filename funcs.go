package calc

import (
	"math"
	"sort"
	"strconv"
)

// function is an entry in the function table.
type function struct {
	// arity is the number of arguments the function consumes.
	arity int
	// f computes the function. If x is outside the function's domain, f
	// returns errDomain.
	f func(x float64) (float64, error)
}

// errDomain is the sentinel returned by function implementations. The
// evaluator converts it to a DomainError naming the call.
var errDomain = DomainError

var globalfuncs = map[string]function{
	"sin": monadic(math.Sin),
	"cos": monadic(math.Cos),
	"tan": monadic(math.Tan),
	"sqrt": {1, func(x float64) (float64, error) {
		if x < 0 {
			return 0, errDomain
		}
		return math.Sqrt(x), nil
	}},
	"log": positive(math.Log10),
	"ln":  positive(math.Log),
}

// monadic wraps a total function of one variable.
func monadic(f func(float64) float64) function {
	return function{1, func(x float64) (float64, error) { return f(x), nil }}
}

// positive wraps a function of one variable whose domain is x > 0.
func positive(f func(float64) float64) function {
	return function{1, func(x float64) (float64, error) {
		if x <= 0 {
			return 0, errDomain
		}
		return f(x), nil
	}}
}

// Funcs returns the names of the functions that expressions may call, in
// sorted order.
func Funcs() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// call applies the function named by tok to its arguments, which are the top
// arity values of stack. It returns the stack with the arguments replaced by
// the result.
func call(tok Token, stack []float64) ([]float64, error) {
	fn, ok := globalfuncs[tok.Text]
	if !ok {
		// The tokenizer only produces function tokens from the table, but
		// callers can build programs by hand.
		return nil, fail(InvalidFunction, tok.Text, tok.Pos)
	}
	if len(stack) < fn.arity {
		return nil, fail(InsufficientOperands, tok.Text, tok.Pos)
	}
	x := stack[len(stack)-1]
	r, err := fn.f(x)
	if err != nil {
		return nil, fail(DomainError, tok.Text+"("+strconv.FormatFloat(x, 'g', -1, 64)+")", tok.Pos)
	}
	stack[len(stack)-1] = r
	return stack, nil
}
