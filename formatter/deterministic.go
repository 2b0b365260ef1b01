package formatter

import (
	"strings"

	"github.com/lucidsearch/luq/query"
)

// Deterministic renders a tree into its canonical technical form. The
// output is stable across runs for structurally identical trees, and
// child order is always preserved.
func Deterministic(n query.Node) (string, error) {
	switch n := n.(type) {
	case *query.Term:
		return n.Value, nil

	case *query.Phrase:
		return n.Value, nil

	case *query.Field:
		value, err := Deterministic(n.Value)
		if err != nil {
			return "", err
		}
		return n.Name + ":" + value, nil

	case *query.And:
		items, err := renderAll(n.Children)
		if err != nil {
			return "", err
		}
		return "Include items that match ALL of: (" + strings.Join(items, "; ") + ")", nil

	case *query.Or:
		items, err := renderAll(n.Children)
		if err != nil {
			return "", err
		}
		return "Include items that match ANY of: (" + strings.Join(items, "; ") + ")", nil

	case *query.Not:
		items, err := renderAll(n.Children)
		if err != nil {
			return "", err
		}
		return "EXCLUDE items where: (" + strings.Join(items, "; ") + ")", nil

	case *query.Group:
		// A single child supplies its own framing; re-adding parentheses
		// around "Include items that match ..." would double them up.
		if len(n.Children) == 1 {
			return Deterministic(n.Children[0])
		}
		items, err := renderAll(n.Children)
		if err != nil {
			return "", err
		}
		return "(" + strings.Join(items, " ") + ")", nil

	case *query.Unknown:
		items, err := renderAll(n.Children)
		if err != nil {
			return "", err
		}
		return strings.Join(items, " "), nil

	default:
		return "", &query.RenderError{Node: n}
	}
}

func renderAll(children []query.Node) ([]string, error) {
	items := make([]string, 0, len(children))
	for _, child := range children {
		text, err := Deterministic(child)
		if err != nil {
			return nil, err
		}
		items = append(items, text)
	}
	return items, nil
}
