package query

// TokenType represents the type of a token in a query string.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenTerm
	TokenPhrase // quoted string, quotes included in the literal
	TokenColon  // field marker, e.g. title:value

	// Boolean keywords, case-sensitive whole-token matches
	TokenAnd
	TokenOr
	TokenNot

	// Delimiters
	TokenLParen // (
	TokenRParen // )

	// Whitespace is a separator only; the lexer never emits it.
	TokenWhitespace

	TokenError // lexical error, literal holds the message
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenTerm:       "TERM",
	TokenPhrase:     "PHRASE",
	TokenColon:      ":",
	TokenAnd:        "AND",
	TokenOr:         "OR",
	TokenNot:        "NOT",
	TokenLParen:     "(",
	TokenRParen:     ")",
	TokenWhitespace: "WHITESPACE",
	TokenError:      "ERROR",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a single lexical token with its type, literal text,
// and starting byte offset in the original input.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}
