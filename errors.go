package calc

import "strconv"

// ErrorKind identifies a class of failure. The set of kinds is closed. Each
// ErrorKind is itself an error, so errors.Is(err, DivisionByZero) reports
// whether err is an *Error of that kind.
type ErrorKind int8

const (
	kindNone ErrorKind = iota
	// InvalidToken is a rune or literal the tokenizer cannot read, including
	// malformed numbers like 1.2.3.
	InvalidToken
	// InvalidFunction is an identifier that does not name a function.
	InvalidFunction
	// UnmatchedParenthesis is a bracket without a partner.
	UnmatchedParenthesis
	// DivisionByZero is a division whose divisor is zero.
	DivisionByZero
	// InsufficientOperands is an operator or function that finds too few
	// values on the evaluation stack.
	InsufficientOperands
	// InvalidExpression is a program that leaves other than exactly one value
	// on the evaluation stack.
	InvalidExpression
	// EmptyExpression is an input with nothing to evaluate.
	EmptyExpression
	// MissingOperand is a binary operator with nothing to its right.
	MissingOperand
	// DomainError is a function argument outside the function's domain.
	DomainError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "InvalidToken"
	case InvalidFunction:
		return "InvalidFunction"
	case UnmatchedParenthesis:
		return "UnmatchedParenthesis"
	case DivisionByZero:
		return "DivisionByZero"
	case InsufficientOperands:
		return "InsufficientOperands"
	case InvalidExpression:
		return "InvalidExpression"
	case EmptyExpression:
		return "EmptyExpression"
	case MissingOperand:
		return "MissingOperand"
	case DomainError:
		return "DomainError"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error returns a short description of the kind.
func (k ErrorKind) Error() string {
	switch k {
	case InvalidToken:
		return "invalid token"
	case InvalidFunction:
		return "unknown function"
	case UnmatchedParenthesis:
		return "unmatched parenthesis"
	case DivisionByZero:
		return "division by zero"
	case InsufficientOperands:
		return "insufficient operands"
	case InvalidExpression:
		return "invalid expression"
	case EmptyExpression:
		return "empty expression"
	case MissingOperand:
		return "missing operand"
	case DomainError:
		return "argument outside domain"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every stage of evaluation. It
// implements InputError.
type Error struct {
	// Kind is the class of the error.
	Kind ErrorKind
	// Text is the offending text, if any: the invalid token, the unknown
	// function name, the operator missing an operand, or the function call
	// outside its domain.
	Text string
	// Col is the 1-based rune column of the token that caused the error, or
	// 0 if the error does not belong to any one token.
	Col int
}

func (err *Error) Error() string {
	msg := err.Kind.Error()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

// Unwrap returns the error's kind.
func (err *Error) Unwrap() error {
	return err.Kind
}

func (err *Error) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// fail creates an *Error.
func fail(kind ErrorKind, text string, col int) error {
	return &Error{Kind: kind, Text: text, Col: col}
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, or 0 if there
	// is no single such token.
	Pos() int
}

var _ InputError = (*Error)(nil)
