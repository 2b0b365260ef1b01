package formatter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lucidsearch/luq/query"
)

// Narrative renders a tree into a natural-language English sentence.
// Identical trees always produce identical text.
//
// Top-level clauses map to fixed templates: AND to "Search for
// documents containing all of the following: ...", OR to the "any of"
// variant, NOT to "but exclude documents where ...". A connective
// nested inside another connective's item list renders as a
// parenthetical clause, recursively, so groups-within-groups nest
// parentheticals.
func Narrative(n query.Node) (string, error) {
	var body string
	var err error

	switch n.(type) {
	case *query.Term, *query.Phrase, *query.Field:
		// A lone leaf gets a plain sentence, not the list templates.
		item, ierr := narrativeItem(n)
		if ierr != nil {
			return "", ierr
		}
		body = "Search for documents containing " + item
	default:
		body, err = narrativeClause(n)
		if err != nil {
			return "", err
		}
	}

	return sentence(body), nil
}

// narrativeClause renders a node as a top-level clause fragment.
func narrativeClause(n query.Node) (string, error) {
	switch n := n.(type) {
	case *query.Term:
		return n.Value, nil

	case *query.Phrase:
		return n.Value, nil

	case *query.Field:
		return narrativeItem(n)

	case *query.And:
		items, err := narrativeItems(n.Children)
		if err != nil {
			return "", err
		}
		return "Search for documents containing all of the following: " + items, nil

	case *query.Or:
		items, err := narrativeItems(n.Children)
		if err != nil {
			return "", err
		}
		return "Search for documents containing any of the following: " + items, nil

	case *query.Not:
		return narrativeNot(n)

	case *query.Group:
		return narrativeSiblings(n.Children)

	case *query.Unknown:
		return narrativeSiblings(n.Children)

	default:
		return "", &query.RenderError{Node: n}
	}
}

// narrativeNot phrases an exclusion clause. Excluding a disjunction
// reads better as "containing any of" than as a nested search sentence.
func narrativeNot(n *query.Not) (string, error) {
	if len(n.Children) == 1 {
		if or, ok := unwrapGroup(n.Children[0]).(*query.Or); ok {
			items, err := narrativeItems(or.Children)
			if err != nil {
				return "", err
			}
			return "but exclude documents containing any of: " + items, nil
		}
	}
	items, err := narrativeItems(n.Children)
	if err != nil {
		return "", err
	}
	return "but exclude documents where " + items, nil
}

// narrativeSiblings joins juxtaposed clause fragments with a space, in
// source order.
func narrativeSiblings(children []query.Node) (string, error) {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		part, err := narrativeClause(child)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " "), nil
}

// narrativeItems renders list items, comma-joined in source order.
func narrativeItems(children []query.Node) (string, error) {
	items := make([]string, 0, len(children))
	for _, child := range children {
		item, err := narrativeItem(child)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return strings.Join(items, ", "), nil
}

// narrativeItem renders one list item. Leaf values stay verbatim,
// quote characters included; nested connectives become parenthetical
// clauses.
func narrativeItem(n query.Node) (string, error) {
	switch n := n.(type) {
	case *query.Term:
		return n.Value, nil

	case *query.Phrase:
		return n.Value, nil

	case *query.Field:
		value, err := narrativeItem(n.Value)
		if err != nil {
			return "", err
		}
		return n.Name + " " + value, nil

	case *query.Not:
		items, err := narrativeItems(n.Children)
		if err != nil {
			return "", err
		}
		return "not " + items, nil

	case *query.And, *query.Or:
		clause, err := narrativeClause(n)
		if err != nil {
			return "", err
		}
		return "(" + clause + ")", nil

	case *query.Group:
		if len(n.Children) == 1 {
			return narrativeItem(n.Children[0])
		}
		clause, err := narrativeSiblings(n.Children)
		if err != nil {
			return "", err
		}
		return "(" + clause + ")", nil

	case *query.Unknown:
		clause, err := narrativeSiblings(n.Children)
		if err != nil {
			return "", err
		}
		return "(" + clause + ")", nil

	default:
		return "", &query.RenderError{Node: n}
	}
}

func unwrapGroup(n query.Node) query.Node {
	for {
		group, ok := n.(*query.Group)
		if !ok || len(group.Children) != 1 {
			return n
		}
		n = group.Children[0]
	}
}

// sentence finishes a clause chain: trims, guarantees exactly one
// terminal period, and upper-cases the first rune.
func sentence(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	if !strings.HasSuffix(body, ".") {
		body += "."
	}
	r, size := utf8.DecodeRuneInString(body)
	return string(unicode.ToUpper(r)) + body[size:]
}
