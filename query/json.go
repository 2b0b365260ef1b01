package query

import (
	"encoding/json"
	"fmt"

	"github.com/valyala/fastjson"
)

// ASTNode is the serializable {type, value, children} form of a tree.
// Value is null for connective nodes and a string for leaf nodes; for a
// Field node it carries the field name.
type ASTNode struct {
	Type     string     `json:"type"`
	Value    *string    `json:"value"`
	Children []*ASTNode `json:"children,omitempty"`
}

// JSON returns the indented JSON encoding of the tree.
func (a *ASTNode) JSON() ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

// Marshal converts a tree into its serializable form via a structural
// fold, preserving child order.
func Marshal(n Node) *ASTNode {
	if n == nil {
		return nil
	}
	out := &ASTNode{Type: n.Kind().String()}
	switch n := n.(type) {
	case *Term:
		v := n.Value
		out.Value = &v
	case *Phrase:
		v := n.Value
		out.Value = &v
	case *Field:
		v := n.Name
		out.Value = &v
		out.Children = []*ASTNode{Marshal(n.Value)}
	default:
		for _, child := range Children(n) {
			out.Children = append(out.Children, Marshal(child))
		}
	}
	return out
}

// Unmarshal reconstructs a tree from its JSON encoding. The round trip
// through Marshal and Unmarshal is lossless for node type, value, and
// child order.
func Unmarshal(data []byte) (Node, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("invalid ast json: %w", err)
	}
	return nodeFromValue(v)
}

func nodeFromValue(v *fastjson.Value) (Node, error) {
	typ := string(v.GetStringBytes("type"))
	switch typ {
	case "Term":
		return &Term{Value: string(v.GetStringBytes("value"))}, nil
	case "Phrase":
		return &Phrase{Value: string(v.GetStringBytes("value"))}, nil
	case "Field":
		children, err := childrenFromValue(v)
		if err != nil {
			return nil, err
		}
		if len(children) != 1 {
			return nil, fmt.Errorf("ast json: Field node needs exactly one child, got %d", len(children))
		}
		return &Field{Name: string(v.GetStringBytes("value")), Value: children[0]}, nil
	case "And", "Or", "Not", "Group", "Unknown":
		children, err := childrenFromValue(v)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, fmt.Errorf("ast json: %s node has no children", typ)
		}
		switch typ {
		case "And":
			if len(children) < 2 {
				return nil, fmt.Errorf("ast json: And node needs at least two children")
			}
			return &And{Children: children}, nil
		case "Or":
			if len(children) < 2 {
				return nil, fmt.Errorf("ast json: Or node needs at least two children")
			}
			return &Or{Children: children}, nil
		case "Not":
			return &Not{Children: children}, nil
		case "Group":
			return &Group{Children: children}, nil
		default:
			return &Unknown{Children: children}, nil
		}
	default:
		return nil, fmt.Errorf("ast json: unknown node type %q", typ)
	}
}

func childrenFromValue(v *fastjson.Value) ([]Node, error) {
	var children []Node
	for _, cv := range v.GetArray("children") {
		child, err := nodeFromValue(cv)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
