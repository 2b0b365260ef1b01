package query

import (
	"fmt"
	"strings"
)

// Parser consumes tokens produced by the lexer and builds an AST.
//
// Precedence, tightest binding first: phrase/term/group atoms, field
// qualification, NOT, AND, OR, juxtaposition. Parenthesized groups are
// preserved as explicit Group nodes.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse tokenizes and parses a query string. It returns ErrEmptyQuery
// for empty or whitespace-only input and *SyntaxError for malformed
// grammar.
func Parse(input string) (Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyQuery
	}
	return ParseTokens(Tokenize(input))
}

// ParseTokens parses an already-produced token stream.
func ParseTokens(tokens []Token) (Node, error) {
	p := &Parser{tokens: tokens}

	clauses, err := p.parseClauses()
	if err != nil {
		return nil, err
	}
	if tok := p.cur(); tok.Type == TokenRParen {
		return nil, &SyntaxError{Msg: "unbalanced parentheses: unexpected ')'", Pos: tok.Pos}
	}

	switch len(clauses) {
	case 0:
		return nil, ErrEmptyQuery
	case 1:
		return clauses[0], nil
	default:
		return &Unknown{Children: clauses}, nil
	}
}

func (p *Parser) cur() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

// parseClauses collects sibling expressions until EOF or a closing
// parenthesis, in source order.
func (p *Parser) parseClauses() ([]Node, error) {
	var clauses []Node
	for {
		switch p.cur().Type {
		case TokenEOF, TokenRParen:
			return clauses, nil
		}
		clause, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
}

// parseOr handles OR chains, collecting operands into one n-ary node.
func (p *Parser) parseOr() (Node, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	children := []Node{first}
	for p.cur().Type == TokenOr {
		p.pos++
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return first, nil
	}
	return &Or{Children: children}, nil
}

// parseAnd handles AND chains, collecting operands into one n-ary node.
func (p *Parser) parseAnd() (Node, error) {
	first, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	children := []Node{first}
	for p.cur().Type == TokenAnd {
		p.pos++
		next, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return first, nil
	}
	return &And{Children: children}, nil
}

// parseNot handles the unary NOT prefix. NOT is right-associative.
func (p *Parser) parseNot() (Node, error) {
	if p.cur().Type != TokenNot {
		return p.parsePrimary()
	}
	p.pos++
	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return &Not{Children: []Node{operand}}, nil
}

// parsePrimary handles atoms: terms, phrases, field-qualified values,
// and parenthesized groups.
func (p *Parser) parsePrimary() (Node, error) {
	tok := p.cur()
	switch tok.Type {
	case TokenTerm:
		p.pos++
		if p.cur().Type == TokenColon {
			return p.parseFieldValue(tok.Literal, p.cur().Pos)
		}
		return &Term{Value: tok.Literal}, nil

	case TokenPhrase:
		p.pos++
		return &Phrase{Value: tok.Literal}, nil

	case TokenLParen:
		return p.parseGroup()

	case TokenColon:
		return nil, &SyntaxError{Msg: "field marker ':' has no field name", Pos: tok.Pos}

	case TokenAnd, TokenOr, TokenNot:
		return nil, &SyntaxError{Msg: fmt.Sprintf("operator %s is missing an operand", tok.Type), Pos: tok.Pos}

	case TokenError:
		return nil, &SyntaxError{Msg: tok.Literal, Pos: tok.Pos}

	default:
		return nil, &SyntaxError{Msg: "missing operand", Pos: tok.Pos}
	}
}

// parseFieldValue parses the value after a field marker. The value is
// an atom: a phrase, a term (possibly itself field-qualified), or a
// parenthesized group.
func (p *Parser) parseFieldValue(name string, colonPos int) (Node, error) {
	p.pos++ // consume ':'
	switch tok := p.cur(); tok.Type {
	case TokenTerm, TokenPhrase, TokenLParen:
		value, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &Field{Name: name, Value: value}, nil
	case TokenError:
		return nil, &SyntaxError{Msg: tok.Literal, Pos: tok.Pos}
	default:
		return nil, &SyntaxError{Msg: fmt.Sprintf("field %q has no value", name), Pos: colonPos}
	}
}

// parseGroup parses a parenthesized sub-expression into a Group node.
func (p *Parser) parseGroup() (Node, error) {
	open := p.cur()
	p.pos++ // consume '('

	clauses, err := p.parseClauses()
	if err != nil {
		return nil, err
	}
	if p.cur().Type != TokenRParen {
		return nil, &SyntaxError{Msg: "unbalanced parentheses: missing ')'", Pos: open.Pos}
	}
	p.pos++ // consume ')'

	if len(clauses) == 0 {
		return nil, &SyntaxError{Msg: "empty group", Pos: open.Pos}
	}
	return &Group{Children: clauses}, nil
}
