package query

// NodeKind identifies the variant of an AST node.
type NodeKind uint8

const (
	KindTerm NodeKind = iota
	KindPhrase
	KindField
	KindAnd
	KindOr
	KindNot
	KindGroup
	KindUnknown
)

var kindNames = map[NodeKind]string{
	KindTerm:    "Term",
	KindPhrase:  "Phrase",
	KindField:   "Field",
	KindAnd:     "And",
	KindOr:      "Or",
	KindNot:     "Not",
	KindGroup:   "Group",
	KindUnknown: "Unknown",
}

// String returns the variant name used in the serialized tree.
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Node is the interface implemented by every AST node. The interface is
// closed: only this package can add variants, so renderers can match
// exhaustively. Trees are immutable once constructed; transformations
// produce new text, never mutate the tree.
type Node interface {
	Kind() NodeKind
	node()
}

var (
	_ Node = (*Term)(nil)
	_ Node = (*Phrase)(nil)
	_ Node = (*Field)(nil)
	_ Node = (*And)(nil)
	_ Node = (*Or)(nil)
	_ Node = (*Not)(nil)
	_ Node = (*Group)(nil)
	_ Node = (*Unknown)(nil)
)

// Term is a bare word.
type Term struct {
	Value string
}

func (*Term) Kind() NodeKind { return KindTerm }
func (*Term) node()          {}

// Phrase is a quoted string. Value keeps the surrounding quote
// characters verbatim.
type Phrase struct {
	Value string
}

func (*Phrase) Kind() NodeKind { return KindPhrase }
func (*Phrase) node()          {}

// Field scopes a subtree to a named document field, e.g. title:"AI",
// status:published, or field:(A OR B).
type Field struct {
	Name  string
	Value Node
}

func (*Field) Kind() NodeKind { return KindField }
func (*Field) node()          {}

// And is an explicit conjunction with at least two children, in source order.
type And struct {
	Children []Node
}

func (*And) Kind() NodeKind { return KindAnd }
func (*And) node()          {}

// Or is an explicit disjunction with at least two children, in source order.
type Or struct {
	Children []Node
}

func (*Or) Kind() NodeKind { return KindOr }
func (*Or) node()          {}

// Not holds the operand(s) to exclude. The parser always produces
// exactly one child; externally built trees may carry several.
type Not struct {
	Children []Node
}

func (*Not) Kind() NodeKind { return KindNot }
func (*Not) node()          {}

// Group is a parenthesized sub-expression kept as an explicit node
// rather than flattened, because grouping affects narrative phrasing.
type Group struct {
	Children []Node
}

func (*Group) Kind() NodeKind { return KindGroup }
func (*Group) node()          {}

// Unknown wraps sibling top-level clauses juxtaposed without an
// explicit connective. The composition is AND-like but the grammar does
// not commit to AND semantics when the operator is omitted.
type Unknown struct {
	Children []Node
}

func (*Unknown) Kind() NodeKind { return KindUnknown }
func (*Unknown) node()          {}

// Children returns the ordered child list of a node, or nil for leaves.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Field:
		return []Node{n.Value}
	case *And:
		return n.Children
	case *Or:
		return n.Children
	case *Not:
		return n.Children
	case *Group:
		return n.Children
	case *Unknown:
		return n.Children
	default:
		return nil
	}
}

// Equal reports whether two trees are structurally identical: same
// variants, same values, same child order.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case *Term:
		return a.Value == b.(*Term).Value
	case *Phrase:
		return a.Value == b.(*Phrase).Value
	case *Field:
		bf := b.(*Field)
		return a.Name == bf.Name && Equal(a.Value, bf.Value)
	default:
		ac, bc := Children(a), Children(b)
		if len(ac) != len(bc) {
			return false
		}
		for i := range ac {
			if !Equal(ac[i], bc[i]) {
				return false
			}
		}
		return true
	}
}
