package calc

import (
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	src  *strings.Reader
	buf  strings.Builder
	rune int
	toks []Token
	// depth is the number of open brackets from the source that have not
	// been closed.
	depth int
	// negs is the stack of synthetic negation groups awaiting their close.
	negs []neg
}

// neg is a synthetic negation group. A minus sign in sign position that is
// followed by a bracket or a function name is lexed as "( 0 -" and closed
// with a synthetic ")" once its operand ends.
type neg struct {
	// depth is the bracket depth at which the group was opened.
	depth int
	// start is the index of the first token of the operand.
	start int
	// armed is set when the operand opens a bracket, which means the group
	// closes with that bracket.
	armed bool
	// pos is the column of the minus sign.
	pos int
}

// Tokenize splits an expression into tokens. An empty or all-whitespace
// input produces no tokens and no error.
func Tokenize(src string) ([]Token, error) {
	l := lexer{src: strings.NewReader(src), rune: 1}
	for {
		pos := l.rune
		r, ok := l.readRune()
		if !ok {
			break
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(pos); err != nil {
				return nil, err
			}
		case unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(pos); err != nil {
				return nil, err
			}
		case r == '(':
			l.open(pos)
		case r == ')':
			l.close(pos)
		case r == '-' && l.signpos():
			if err := l.sign(pos); err != nil {
				return nil, err
			}
		case strings.ContainsRune(Operators, r):
			l.emit(Token{Kind: TokenOp, Text: string(r), Pos: pos})
		default:
			return nil, fail(InvalidToken, string(r), pos)
		}
	}
	// Negation groups whose operand was an unbracketed function application
	// end with the input.
	l.closeNegs(false)
	return l.toks, nil
}

// readRune reads a rune from the src and updates the lexer's position info.
// The result is false at the end of the input.
func (l *lexer) readRune() (rune, bool) {
	r, _, err := l.src.ReadRune()
	if err != nil {
		// strings.Reader only fails at EOF.
		return 0, false
	}
	l.rune++
	return r, true
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// peek skips whitespace and returns the next rune without consuming it. The
// result is false at the end of the input.
func (l *lexer) peek() (rune, bool) {
	for {
		r, ok := l.readRune()
		if !ok {
			return 0, false
		}
		if !unicode.IsSpace(r) {
			l.unreadRune()
			return r, true
		}
	}
}

func (l *lexer) emit(tok Token) {
	l.toks = append(l.toks, tok)
}

// signpos reports whether a binary operator is syntactically impossible at the
// current position, i.e. whether a minus sign here is a sign.
func (l *lexer) signpos() bool {
	if len(l.toks) == 0 {
		return true
	}
	switch l.toks[len(l.toks)-1].Kind {
	case TokenOpen, TokenOp:
		return true
	}
	return false
}

// sign handles a minus sign in sign position. It is folded into a following
// number, opens a negation group before a bracket or function, and is
// otherwise an ordinary operator.
func (l *lexer) sign(pos int) error {
	r, ok := l.peek()
	switch {
	case ok && ('0' <= r && r <= '9' || r == '.'):
		l.buf.WriteByte('-')
		return l.scanNum(pos)
	case ok && (r == '(' || unicode.IsLetter(r)):
		l.emit(Token{Kind: TokenOpen, Text: "(", Pos: pos})
		l.emit(Token{Kind: TokenNum, Text: "0", Pos: pos})
		l.emit(Token{Kind: TokenOp, Text: "-", Pos: pos})
		l.negs = append(l.negs, neg{depth: l.depth, start: len(l.toks), pos: pos})
	default:
		l.emit(Token{Kind: TokenOp, Text: "-", Pos: pos})
	}
	return nil
}

func (l *lexer) open(pos int) {
	if k := len(l.negs) - 1; k >= 0 {
		g := &l.negs[k]
		if !g.armed && g.depth == l.depth {
			// The operand is either this bracket or a call whose argument
			// list is this bracket.
			n := len(l.toks) - g.start
			if n == 0 || n == 1 && l.toks[g.start].Kind == TokenFunc {
				g.armed = true
			}
		}
	}
	l.depth++
	l.emit(Token{Kind: TokenOpen, Text: "(", Pos: pos})
}

func (l *lexer) close(pos int) {
	// An unarmed group at this depth is inside the bracket being closed.
	l.closeNegs(false)
	l.emit(Token{Kind: TokenClose, Text: ")", Pos: pos})
	if l.depth > 0 {
		l.depth--
	}
	l.closeNegs(true)
}

// closeNegs emits synthetic close brackets for the negation groups at the
// current depth. If armed is true, only groups whose operand was bracketed
// are closed.
func (l *lexer) closeNegs(armed bool) {
	for k := len(l.negs) - 1; k >= 0; k-- {
		g := l.negs[k]
		if g.depth != l.depth || armed && !g.armed {
			return
		}
		l.emit(Token{Kind: TokenClose, Text: ")", Pos: g.pos})
		l.negs = l.negs[:k]
	}
}

// scanNum scans a run of digits and decimal points, appending to anything
// already in the buffer, and emits it as a number.
func (l *lexer) scanNum(pos int) error {
	defer l.buf.Reset()
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if r != '.' && (r < '0' || '9' < r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fail(InvalidToken, text, pos)
	}
	l.emit(Token{Kind: TokenNum, Text: text, Value: v, Pos: pos})
	return nil
}

// scanIdent scans a run of letters and emits it as a function name.
func (l *lexer) scanIdent(pos int) error {
	defer l.buf.Reset()
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	name := l.buf.String()
	if _, ok := globalfuncs[name]; !ok {
		return fail(InvalidFunction, name, pos)
	}
	l.emit(Token{Kind: TokenFunc, Text: name, Pos: pos})
	return nil
}
