package calc

import (
	"strings"
)

// Expr is a parsed expression: a program in postfix order that can be
// evaluated any number of times.
type Expr struct {
	// prog is the postfix program.
	prog []Token
}

// Parse tokenizes and parses an expression.
func Parse(src string) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	prog, err := ToPostfix(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{prog: prog}, nil
}

// ToPostfix reorders tokens in infix order into postfix order using the
// shunting-yard algorithm. Brackets do not appear in the result; functions
// follow their arguments.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var ops []Token
	for i, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenFunc, TokenOpen:
			ops = append(ops, tok)
		case TokenClose:
			for {
				if len(ops) == 0 {
					return nil, fail(UnmatchedParenthesis, tok.Text, tok.Pos)
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
			if k := len(ops) - 1; k >= 0 && ops[k].Kind == TokenFunc {
				// The function applies to the group just closed.
				out = append(out, ops[k])
				ops = ops[:k]
			}
		case TokenOp:
			prec := binop(tok.Text)
			if prec.prec == 0 {
				return nil, fail(InvalidToken, tok.Text, tok.Pos)
			}
			if missingRHS(tokens, i) {
				return nil, fail(MissingOperand, tok.Text, tok.Pos)
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == TokenOp && binop(top.Text).yields(prec) || top.Kind == TokenFunc {
					out = append(out, top)
					ops = ops[:len(ops)-1]
					continue
				}
				break
			}
			ops = append(ops, tok)
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
	for k := len(ops) - 1; k >= 0; k-- {
		if ops[k].Kind == TokenOpen {
			return nil, fail(UnmatchedParenthesis, ops[k].Text, ops[k].Pos)
		}
		out = append(out, ops[k])
	}
	return out, nil
}

// missingRHS reports whether the binary operator at tokens[i] has a left
// operand but nothing to its right.
func missingRHS(tokens []Token, i int) bool {
	if i == 0 {
		return false
	}
	switch tokens[i-1].Kind {
	case TokenNum, TokenClose:
	default:
		return false
	}
	return i+1 == len(tokens) || tokens[i+1].Kind == TokenClose
}

// Eval evaluates the expression.
func (e *Expr) Eval() (float64, error) {
	return Evaluate(e.prog)
}

// Tokens returns a copy of the expression's postfix program.
func (e *Expr) Tokens() []Token {
	return append([]Token(nil), e.prog...)
}

// String formats the expression's postfix program with tokens separated by
// spaces, e.g. "2 3 4 * +".
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.prog {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
