package sexpr

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenLParen
	tokenRParen
	tokenLBrace
	tokenRBrace
	tokenQuote
	tokenQuasiquote
	tokenUnquote
	tokenUnquoteSplicing
	tokenString
	tokenAtom
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

// lexer splits source text into tokens. Comments run from ; to end of line.
type lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src), line: 1, col: 1}
}

func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("%d:%d: %s", l.line, l.col, fmt.Sprintf(format, args...))
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		r := l.peek()
		switch {
		case unicode.IsSpace(r) || r == ',':
			l.advance()
		case r == ';':
			for l.pos < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isDelimiter(r rune) bool {
	return r == 0 || r == '(' || r == ')' || r == '{' || r == '}' ||
		r == '"' || r == ';' || r == ',' || unicode.IsSpace(r)
}

func (l *lexer) next() (token, error) {
	l.skipSpace()

	tok := token{line: l.line, col: l.col}
	if l.pos >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}

	switch r := l.peek(); r {
	case '(':
		l.advance()
		tok.kind = tokenLParen
	case ')':
		l.advance()
		tok.kind = tokenRParen
	case '{':
		l.advance()
		tok.kind = tokenLBrace
	case '}':
		l.advance()
		tok.kind = tokenRBrace
	case '\'':
		l.advance()
		tok.kind = tokenQuote
	case '`':
		l.advance()
		tok.kind = tokenQuasiquote
	case '~':
		l.advance()
		if l.peek() == '@' {
			l.advance()
			tok.kind = tokenUnquoteSplicing
		} else {
			tok.kind = tokenUnquote
		}
	case '"':
		text, err := l.lexString()
		if err != nil {
			return tok, err
		}
		tok.kind = tokenString
		tok.text = text
	default:
		tok.kind = tokenAtom
		tok.text = l.lexAtom()
	}
	return tok, nil
}

func (l *lexer) lexString() (string, error) {
	l.advance() // opening quote

	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return "", l.errorf("unterminated string")
		}
		r := l.advance()
		if r == '"' {
			return b.String(), nil
		}
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		if l.pos >= len(l.src) {
			return "", l.errorf("unterminated string escape")
		}
		switch esc := l.advance(); esc {
		case 'n':
			b.WriteRune('\n')
		case 't':
			b.WriteRune('\t')
		case 'r':
			b.WriteRune('\r')
		case '\\':
			b.WriteRune('\\')
		case '"':
			b.WriteRune('"')
		default:
			return "", l.errorf("invalid string escape %q", esc)
		}
	}
}

func (l *lexer) lexAtom() string {
	var b strings.Builder
	for l.pos < len(l.src) && !isDelimiter(l.peek()) {
		b.WriteRune(l.advance())
	}
	return b.String()
}
