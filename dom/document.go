package dom

// QuirksMode records which of the three rendering modes a document's
// DOCTYPE selects (spec.md §5.2 / SPEC_FULL §4.3.1's quirks-mode
// determination, ported from the WHATWG "quirks mode" algorithm).
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (q QuirksMode) String() string {
	switch q {
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	default:
		return "no-quirks"
	}
}

// Document is a parsed tree's root: Root.Type is always DocumentNode, and
// Quirks records the mode the DOCTYPE (if any) selected.
type Document struct {
	Root   *Node
	Quirks QuirksMode
}

// NewDocument creates an empty document, ready for the tree constructor to
// populate.
func NewDocument() *Document {
	return &Document{Root: &Node{Type: DocumentNode}}
}

// Preorder calls visit for every node in the tree rooted at n, in document
// (depth-first, pre-order) order, stopping early if visit returns false.
func Preorder(n *Node, visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !Preorder(c, visit) {
			return false
		}
	}
	return true
}

// FindFirst returns the first node (in document order) for which pred
// returns true, or nil. Supplements the query surface original_source's
// DOM implementation exposes alongside construction (SPEC_FULL §12).
func FindFirst(root *Node, pred func(*Node) bool) *Node {
	var found *Node
	Preorder(root, func(n *Node) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node (in document order) for which pred returns
// true.
func FindAll(root *Node, pred func(*Node) bool) []*Node {
	var found []*Node
	Preorder(root, func(n *Node) bool {
		if pred(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// ByTagName returns every Element of root's subtree, root itself included,
// whose Data matches
// name exactly (HTML element names are already lowercased by the tree
// constructor).
func ByTagName(root *Node, name string) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Type == ElementNode && n.Data == name
	})
}
