// Package calc implements a float64 calculator for arithmetic expressions.
//
// Expressions are written the usual way: numbers, the binary operators
// + - * / and ^, parentheses, and the functions sin, cos, tan, sqrt, log and
// ln. "2^3^2" is "2^(3^2)", and "8/4/2" is "(8/4)/2". A minus sign where no
// binary operator could go belongs to the number after it, so "3*-2" is -6
// and "-2^2" is "(-2)^2".
//
// Evaluation goes through three stages which may also be used separately:
// Tokenize splits the source into tokens, ToPostfix reorders them into
// reverse Polish notation, and Evaluate runs the postfix program on a stack.
// Parse and EvalString combine the stages. Every failure is an *Error whose
// Kind identifies what went wrong.
package calc
