// Package dom implements the DOM model (C4): the owning tree of nodes the
// tree constructor builds, adapted from the linked-list Node shape in
// dpotapov-go-pages's chtml package with the templating-specific fields
// (Cond, Loop, RenderShape, Symbols, ...) stripped and the attribute model
// replaced with plain strings, as spec.md §5 requires.
package dom

import (
	"golang.org/x/net/html/atom"

	"github.com/htmlkit/htmlkit/pos"
)

// NodeType discriminates the DOM node variants from spec.md §5.
type NodeType int

const (
	// DocumentNode is the root of every tree; it has no Parent. Its
	// children, in source order, are any Doctype, Comment, Element and
	// Text nodes built at top level: no single root element is
	// synthesized, so there may be several Element children.
	DocumentNode NodeType = iota
	DoctypeNode
	ElementNode
	TextNode
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case DoctypeNode:
		return "Doctype"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	default:
		return "Invalid"
	}
}

// Attribute is an ordered (namespace, name, value) triple. Namespace is ""
// for plain HTML attributes and sPEC_FULL's foreign-attribute namespaces
// (xlink, xml, xmlns) otherwise.
type Attribute struct {
	Namespace string
	Name      string
	Value     string
}

// Node is one node of the DOM tree (C4). Parent owns its children; children
// hold only a non-owning back-reference, the same shape chtml.Node uses.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Type      NodeType
	DataAtom  atom.Atom // zero for non-Element nodes, and for unrecognized element names
	Data      string    // tag name (Element), text (Text/Comment), or doctype name (Doctype)
	Namespace string    // "" (HTML), "svg", or "math"

	Attr []Attribute

	// PublicID and SystemID carry a Doctype node's external identifiers
	// (spec.md §5.2).
	PublicID, SystemID string

	// Pos is the source position of the token that produced this node,
	// carried through for diagnostics and for SourceCodeContext-style error
	// reporting (grounded in chtml's Span/Source pattern, see the pos
	// package).
	Pos pos.Position

	attrIndex map[string]int // lazily built; see Attribute lookup below
}

// InsertBefore inserts newChild as a child of n immediately before oldChild.
// oldChild may be nil, appending newChild instead.
//
// It panics if newChild is already attached.
func (n *Node) InsertBefore(newChild, oldChild *Node) {
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic("dom: InsertBefore called for an attached child Node")
	}
	var prev, next *Node
	if oldChild != nil {
		prev, next = oldChild.PrevSibling, oldChild
	} else {
		prev = n.LastChild
	}
	if prev != nil {
		prev.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	if next != nil {
		next.PrevSibling = newChild
	} else {
		n.LastChild = newChild
	}
	newChild.Parent = n
	newChild.PrevSibling = prev
	newChild.NextSibling = next
}

// AppendChild adds newChild as n's last child.
//
// It panics if newChild is already attached.
func (n *Node) AppendChild(newChild *Node) {
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic("dom: AppendChild called for an attached child Node")
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	n.LastChild = newChild
	newChild.Parent = n
	newChild.PrevSibling = last
}

// RemoveChild detaches c, which must be a child of n. Afterwards c has no
// parent and no siblings.
func (n *Node) RemoveChild(c *Node) {
	if c.Parent != n {
		panic("dom: RemoveChild called for a non-child Node")
	}
	if n.FirstChild == c {
		n.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	}
	if n.LastChild == c {
		n.LastChild = c.PrevSibling
	}
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	}
	c.Parent = nil
	c.PrevSibling = nil
	c.NextSibling = nil
}

// ReparentChildren moves all of src's children to the end of dst's
// children, in order. Used by the tree constructor's adoption agency
// algorithm (spec.md §6.6) when a formatting element is relocated.
func ReparentChildren(dst, src *Node) {
	for {
		child := src.FirstChild
		if child == nil {
			break
		}
		src.RemoveChild(child)
		dst.AppendChild(child)
	}
}

// Attribute looks up an attribute by name, without a namespace, returning
// its value and whether it was present. The lookup is O(1) after the first
// call per node (SPEC_FULL §12: lazily-built index alongside the
// insertion-order Attr slice, so Attr iteration order is never disturbed).
func (n *Node) Attribute(name string) (string, bool) {
	n.ensureAttrIndex()
	i, ok := n.attrIndex[name]
	if !ok {
		return "", false
	}
	return n.Attr[i].Value, true
}

func (n *Node) ensureAttrIndex() {
	if n.attrIndex != nil || len(n.Attr) == 0 {
		if n.attrIndex == nil {
			n.attrIndex = map[string]int{}
		}
		return
	}
	n.attrIndex = make(map[string]int, len(n.Attr))
	for i, a := range n.Attr {
		if a.Namespace == "" {
			if _, exists := n.attrIndex[a.Name]; !exists {
				n.attrIndex[a.Name] = i
			}
		}
	}
}

// SetAttribute appends or overwrites a plain (no-namespace) attribute,
// keeping Attr's insertion order for a new name and the index valid.
func (n *Node) SetAttribute(name, value string) {
	n.ensureAttrIndex()
	if i, ok := n.attrIndex[name]; ok {
		n.Attr[i].Value = value
		return
	}
	n.attrIndex[name] = len(n.Attr)
	n.Attr = append(n.Attr, Attribute{Name: name, Value: value})
}

// IsWhitespace reports whether a Text node consists entirely of ASCII
// whitespace, as used by the tree constructor's "whitespace-only text"
// branches in InBody/InTable/... (spec.md §6).
func (n *Node) IsWhitespace() bool {
	if n.Type != TextNode {
		return false
	}
	for _, r := range n.Data {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
		default:
			return false
		}
	}
	return true
}
