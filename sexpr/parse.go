package sexpr

import (
	"fmt"
	"strconv"
)

// SyntaxError reports malformed source text.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

type parser struct {
	lex *lexer
	tok token
}

// Parse reads every form in src and returns them in order.
func Parse(src string) ([]Value, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var forms []Value
	for p.tok.kind != tokenEOF {
		form, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// ParseOne reads exactly one form from src.
func ParseOne(src string) (Value, error) {
	forms, err := Parse(src)
	if err != nil {
		return nil, err
	}
	if len(forms) != 1 {
		return nil, &SyntaxError{Line: 1, Col: 1, Msg: fmt.Sprintf("expected a single form, got %d", len(forms))}
	}
	return forms[0], nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.tok.line, Col: p.tok.col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseForm() (Value, error) {
	switch tok := p.tok; tok.kind {
	case tokenEOF:
		return nil, p.errorf("unexpected end of input")
	case tokenLParen:
		return p.parseList()
	case tokenRParen:
		return nil, p.errorf("unexpected )")
	case tokenLBrace:
		return p.parseMap()
	case tokenRBrace:
		return nil, p.errorf("unexpected }")
	case tokenQuote:
		return p.parseWrapped("quote")
	case tokenQuasiquote:
		return p.parseWrapped("quasiquote")
	case tokenUnquote:
		return p.parseWrapped("unquote")
	case tokenUnquoteSplicing:
		return p.parseWrapped("unquote-splicing")
	case tokenString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return String(tok.text), nil
	case tokenAtom:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return parseAtom(tok.text)
	default:
		return nil, p.errorf("unexpected token")
	}
}

func (p *parser) parseList() (Value, error) {
	if err := p.advance(); err != nil { // consume (
		return nil, err
	}

	var items []Value
	for p.tok.kind != tokenRParen {
		if p.tok.kind == tokenEOF {
			return nil, p.errorf("unterminated list")
		}
		item, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := p.advance(); err != nil { // consume )
		return nil, err
	}
	return NewList(items...), nil
}

func (p *parser) parseMap() (Value, error) {
	if err := p.advance(); err != nil { // consume {
		return nil, err
	}

	var entries []Value
	for p.tok.kind != tokenRBrace {
		if p.tok.kind == tokenEOF {
			return nil, p.errorf("unterminated map")
		}
		entry, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if len(entries)%2 != 0 {
		return nil, p.errorf("map literal requires an even number of forms")
	}
	if err := p.advance(); err != nil { // consume }
		return nil, err
	}

	m, err := NewMap(entries...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// parseWrapped handles the reader sugar ' ` ~ ~@ by wrapping the following
// form in the named special form.
func (p *parser) parseWrapped(name string) (Value, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	form, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	return NewList(Symbol(name), form), nil
}

func parseAtom(text string) (Value, error) {
	switch text {
	case "nil":
		return Nil{}, nil
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	}
	if text[0] == ':' {
		if len(text) == 1 {
			return nil, &SyntaxError{Line: 1, Col: 1, Msg: "empty keyword"}
		}
		return Keyword(text[1:]), nil
	}
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		return Number(n), nil
	}
	return Symbol(text), nil
}
