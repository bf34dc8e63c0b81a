package treebuilder

import "github.com/htmlkit/htmlkit/dom"

// openStack is the stack of open elements (spec.md §6.2), adapted from
// chtml/html/node.go's nodeStack.
type openStack []*dom.Node

func (s *openStack) push(n *dom.Node) { *s = append(*s, n) }

func (s *openStack) pop() *dom.Node {
	i := len(*s)
	n := (*s)[i-1]
	*s = (*s)[:i-1]
	return n
}

func (s openStack) top() *dom.Node {
	if i := len(s); i > 0 {
		return s[i-1]
	}
	return nil
}

func (s openStack) index(n *dom.Node) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == n {
			return i
		}
	}
	return -1
}

func (s openStack) contains(name string) bool {
	for _, n := range s {
		if n.Data == name && n.Namespace == "" {
			return true
		}
	}
	return false
}

func (s *openStack) insert(i int, n *dom.Node) {
	*s = append(*s, nil)
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = n
}

func (s *openStack) remove(n *dom.Node) {
	i := s.index(n)
	if i == -1 {
		return
	}
	copy((*s)[i:], (*s)[i+1:])
	j := len(*s) - 1
	(*s)[j] = nil
	*s = (*s)[:j]
}

// afeEntry is one slot of the active formatting elements list (spec.md
// §6.3). A marker entry (node == nil) delimits the boundary inserted on
// entering applet/object/marquee, the way the
// teacher overlays a dedicated scopeMarkerNode node type onto the same
// list; this module keeps the DOM's NodeType enum free of a
// parser-internal value instead and carries the marker as a flag.
type afeEntry struct {
	node   *dom.Node
	marker bool
}

type afeList []afeEntry

func (l *afeList) pushMarker() { *l = append(*l, afeEntry{marker: true}) }

func (l *afeList) push(n *dom.Node) { *l = append(*l, afeEntry{node: n}) }

func (l afeList) top() *afeEntry {
	if i := len(l); i > 0 {
		return &l[i-1]
	}
	return nil
}

func (l afeList) index(n *dom.Node) int {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].node == n {
			return i
		}
	}
	return -1
}

func (l *afeList) pop() afeEntry {
	i := len(*l)
	e := (*l)[i-1]
	*l = (*l)[:i-1]
	return e
}

func (l *afeList) remove(n *dom.Node) {
	for i := len(*l) - 1; i >= 0; i-- {
		if (*l)[i].node == n {
			copy((*l)[i:], (*l)[i+1:])
			*l = (*l)[:len(*l)-1]
			return
		}
	}
}

func (l *afeList) insert(i int, n *dom.Node) {
	*l = append(*l, afeEntry{})
	copy((*l)[i+1:], (*l)[i:])
	(*l)[i] = afeEntry{node: n}
}

// cloneNode returns a detached copy of n's type, data, and attributes, used
// by the adoption agency algorithm (spec.md §6.6) to clone formatting
// elements.
func cloneNode(n *dom.Node) *dom.Node {
	m := &dom.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      make([]dom.Attribute, len(n.Attr)),
		Pos:       n.Pos,
	}
	copy(m.Attr, n.Attr)
	return m
}
