/*
Package query provides a lexer and recursive-descent parser for
Lucene-style boolean query strings.

# Overview

The package turns a raw query string into an immutable abstract syntax
tree. It is the first phase of the pipeline; the formatter package
renders the resulting tree into deterministic and narrative text.

# Grammar

The grammar covers terms, quoted phrases, field-qualified values,
boolean AND/OR/NOT, and parenthesized grouping:

	machine learning
	"Machine Learning"
	title:"Machine Learning"
	status:published AND (title:go OR title:golang)
	("H.B. Fuller" OR "Arkema") NOT "Albemarle County"

Precedence, tightest binding first:

 1. Atoms: terms, phrases, parenthesized groups
 2. Field qualification (name:value)
 3. NOT (unary prefix, right-associative)
 4. AND
 5. OR
 6. Juxtaposition: sibling clauses with no connective are wrapped in an
    Unknown node rather than being given AND semantics

AND, OR, and NOT are case-sensitive whole-token keywords, so "android"
is an ordinary term. A colon inside a quoted phrase is plain text, not
a field marker. Groups are kept as explicit Group nodes because
grouping affects narrative phrasing downstream.

# Errors

Parse reports ErrEmptyQuery for empty or whitespace-only input, before
tokenization. Malformed grammar, unbalanced parentheses, unterminated
phrases, operators missing an operand, and field markers without a
value are reported as *SyntaxError with the offending byte offset.

# Serialization

Marshal folds a tree into the {type, value, children} form used by
external adapters; Unmarshal reconstructs it. The round trip is
lossless for node type, value, and child order.
*/
package query
