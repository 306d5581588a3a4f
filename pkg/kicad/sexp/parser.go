package sexp

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Parser parses S-expressions from a pre-lexed token stream
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser creates a parser for the given input
func NewParser(r io.Reader) (*Parser, error) {
	lex, err := modLexer.Lex("", r)
	if err != nil {
		return nil, err
	}

	var tokens []lexer.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			break
		}
		if tok.Type == tWhitespace {
			continue
		}
		tokens = append(tokens, tok)
	}

	return &Parser{tokens: tokens}, nil
}

// Parse parses all top-level S-expressions from the input
func Parse(r io.Reader) ([]Sexp, error) {
	p, err := NewParser(r)
	if err != nil {
		return nil, err
	}
	return p.ParseAll()
}

// ParseString parses all top-level S-expressions from a string
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}

// ParseAll parses expressions until the token stream is exhausted
func (p *Parser) ParseAll() ([]Sexp, error) {
	var result []Sexp

	for p.pos < len(p.tokens) {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		result = append(result, expr)
	}

	return result, nil
}

// parseExpr parses a single S-expression
func (p *Parser) parseExpr() (Sexp, error) {
	tok := p.tokens[p.pos]

	switch tok.Type {
	case tLParen:
		return p.parseList()

	case tRParen:
		return nil, fmt.Errorf("unexpected ')' at %s", tok.Pos)

	default:
		p.pos++
		return Symbol(tok.Value), nil
	}
}

// parseList parses a list: ( ... )
func (p *Parser) parseList() (Sexp, error) {
	open := p.tokens[p.pos]
	p.pos++ // consume '('

	var elements []Sexp

	for {
		if p.pos >= len(p.tokens) {
			return nil, fmt.Errorf("unterminated list opened at %s", open.Pos)
		}

		if p.tokens[p.pos].Type == tRParen {
			p.pos++ // consume ')'
			break
		}

		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
	}

	return &List{elements: elements}, nil
}
