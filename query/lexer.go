package query

// Lexer tokenizes Lucene-style query strings into tokens.
type Lexer struct {
	input string
	pos   int // position after the current character
	ch    byte
}

// NewLexer creates a new lexer for the given input string.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
	l.pos++
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.pos - 1

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Pos: len(l.input)}
	case '(':
		l.readChar()
		return Token{Type: TokenLParen, Literal: "(", Pos: start}
	case ')':
		l.readChar()
		return Token{Type: TokenRParen, Literal: ")", Pos: start}
	case ':':
		l.readChar()
		return Token{Type: TokenColon, Literal: ":", Pos: start}
	case '"':
		return l.readPhrase(start)
	default:
		return l.readTerm(start)
	}
}

// readPhrase scans a quoted phrase. The literal keeps both quote
// characters verbatim. A colon inside the quotes is plain text, not a
// field marker.
func (l *Lexer) readPhrase(start int) Token {
	l.readChar() // consume opening quote
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == 0 {
		return Token{Type: TokenError, Literal: "unterminated phrase", Pos: start}
	}
	l.readChar() // consume closing quote
	return Token{Type: TokenPhrase, Literal: l.input[start : l.pos-1], Pos: start}
}

// readTerm scans a run of characters up to the next separator. Keyword
// matching is a case-sensitive exact match on the whole token, so
// "android" stays a term.
func (l *Lexer) readTerm(start int) Token {
	for l.ch != 0 && !isSeparator(l.ch) {
		l.readChar()
	}
	literal := l.input[start : l.pos-1]

	tok := Token{Type: TokenTerm, Literal: literal, Pos: start}
	switch literal {
	case "AND":
		tok.Type = TokenAnd
	case "OR":
		tok.Type = TokenOr
	case "NOT":
		tok.Type = TokenNot
	}
	return tok
}

func isSeparator(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '(', ')', ':', '"':
		return true
	}
	return false
}

// Tokenize scans the entire input and returns the token stream,
// terminated by an EOF token. It is total: unrecognized characters
// become term fragments, and lexical problems such as an unterminated
// phrase surface as a single error token that ends the stream.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
		if tok.Type == TokenError {
			tokens = append(tokens, Token{Type: TokenEOF, Pos: len(input)})
			return tokens
		}
	}
}
