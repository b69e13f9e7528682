package calc

import "strconv"

// Token is a lexical unit of an expression. Which fields are meaningful
// depends on Kind.
type Token struct {
	// Kind is the token type.
	Kind TokenKind
	// Text is the token as written: the literal of a number (including a
	// folded sign), the operator symbol, the bracket, or the function name.
	// Synthetic tokens produced by the tokenizer have their canonical text.
	Text string
	// Value is the value of a TokenNum.
	Value float64
	// Pos is the 1-based rune column where the token starts.
	Pos int
}

// Open reports whether t is an open bracket.
func (t Token) Open() bool {
	return t.Kind == TokenOpen
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a number literal.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open bracket, (.
	TokenOpen
	// TokenClose is a close bracket, ).
	TokenClose
	// TokenFunc is a function name.
	TokenFunc
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	case TokenFunc:
		return "Func"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}
