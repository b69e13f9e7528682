package calc

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err *Error
		msg string
	}{
		{&Error{Kind: DivisionByZero, Col: 3}, "3: division by zero"},
		{&Error{Kind: InvalidToken, Text: "$", Col: 2}, `2: invalid token "$"`},
		{&Error{Kind: InvalidFunction, Text: "foo", Col: 1}, `1: unknown function "foo"`},
		{&Error{Kind: UnmatchedParenthesis, Text: ")", Col: 4}, `4: unmatched parenthesis ")"`},
		{&Error{Kind: MissingOperand, Text: "+", Col: 2}, `2: missing operand "+"`},
		{&Error{Kind: DomainError, Text: "sqrt(-1)", Col: 1}, `1: argument outside domain "sqrt(-1)"`},
		{&Error{Kind: EmptyExpression}, "empty expression"},
		{&Error{Kind: InvalidExpression}, "invalid expression"},
	}
	for _, c := range cases {
		if msg := c.err.Error(); msg != c.msg {
			t.Errorf("%v: want message %q, got %q", c.err.Kind, c.msg, msg)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	kinds := []ErrorKind{
		InvalidToken, InvalidFunction, UnmatchedParenthesis, DivisionByZero,
		InsufficientOperands, InvalidExpression, EmptyExpression,
		MissingOperand, DomainError,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if seen[s] {
			t.Errorf("duplicate kind name %q", s)
		}
		seen[s] = true
		if k.Error() == kindNone.Error() {
			t.Errorf("%v has no description", k)
		}
		var err error = fmt.Errorf("wrapped: %w", fail(k, "", 1))
		if !errors.Is(err, k) {
			t.Errorf("%v does not match its own kind", k)
		}
		for _, other := range kinds {
			if other != k && errors.Is(err, other) {
				t.Errorf("%v matches %v", k, other)
			}
		}
		var ie InputError
		if !errors.As(err, &ie) || ie.Pos() != 1 {
			t.Errorf("%v: not an InputError at column 1", k)
		}
	}
	if s := ErrorKind(100).String(); s != "ErrorKind(100)" {
		t.Errorf("wrong name for unknown kind: %q", s)
	}
}
