// Package luq parses Lucene-style boolean query strings and renders
// them as deterministic technical text, a natural-language narrative,
// and a serializable syntax tree.
//
// Parsing is a pure function of the input string: no state is shared
// across calls, so a Parser is safe for unbounded concurrent use.
package luq

import (
	"go.uber.org/zap"

	"github.com/lucidsearch/luq/formatter"
	"github.com/lucidsearch/luq/query"
)

// Version is the library version reported by the CLI.
const Version = "1.0.0"

// QueryResult bundles everything derived from one parse. It is
// immutable once created.
type QueryResult struct {
	Query             string         `json:"query"`
	NarrativeText     string         `json:"narrative_text"`
	DeterministicText string         `json:"deterministic_text"`
	ASTJSON           *query.ASTNode `json:"ast_json"`
}

// ToMapping returns a flattened view of the result, keyed the way
// adapters serialize it.
func (r *QueryResult) ToMapping() map[string]any {
	return map[string]any{
		"query":              r.Query,
		"narrative_text":     r.NarrativeText,
		"deterministic_text": r.DeterministicText,
		"ast_json":           r.ASTJSON,
	}
}

// Parser parses query strings into QueryResults. The zero value is not
// usable; construct with New.
type Parser struct {
	logger *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger installs a diagnostic sink. Logging is a side channel
// only: it never affects output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Parser. Diagnostics are discarded unless WithLogger is
// given.
func New(opts ...Option) *Parser {
	p := &Parser{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a query string and assembles the full result. It
// returns query.ErrEmptyQuery for empty or whitespace-only input and
// *query.SyntaxError for malformed grammar; no partial results are
// produced on failure.
func (p *Parser) Parse(q string) (*QueryResult, error) {
	p.logger.Debug("parsing query", zap.String("query", q))

	root, err := query.Parse(q)
	if err != nil {
		p.logger.Debug("parse failed", zap.Error(err))
		return nil, err
	}

	deterministic, err := formatter.Deterministic(root)
	if err != nil {
		return nil, err
	}
	narrative, err := formatter.Narrative(root)
	if err != nil {
		return nil, err
	}

	return &QueryResult{
		Query:             q,
		NarrativeText:     narrative,
		DeterministicText: deterministic,
		ASTJSON:           query.Marshal(root),
	}, nil
}

var defaultParser = New()

// Parse parses a query with the default Parser.
func Parse(q string) (*QueryResult, error) {
	return defaultParser.Parse(q)
}

// Normalize rewrites deterministic technical text into narrative form.
// It operates on text alone and needs no parse.
func Normalize(text string) string {
	return formatter.Normalize(text)
}
