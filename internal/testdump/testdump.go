// Package testdump pretty-prints DOM subtrees for test failure output
// (SPEC_FULL §10). A failing tree-construction assertion is usually easier
// to diagnose from a full structural dump than from the one mismatched
// field a testify assertion reports on its own.
package testdump

import (
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/htmlkit/htmlkit/dom"
)

var config = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Node renders n and its descendants as an indented tree, one line per
// node, for inclusion in a t.Errorf/t.Logf message.
func Node(n *dom.Node) string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return b.String()
}

func writeNode(b *strings.Builder, n *dom.Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	switch n.Type {
	case dom.TextNode:
		b.WriteString("#text ")
		b.WriteString(config.Sprint(n.Data))
	case dom.CommentNode:
		b.WriteString("#comment ")
		b.WriteString(config.Sprint(n.Data))
	case dom.DoctypeNode:
		b.WriteString("#doctype ")
		b.WriteString(n.Data)
	case dom.DocumentNode:
		b.WriteString("#document")
	default:
		b.WriteString("<")
		if n.Namespace != "" {
			b.WriteString(n.Namespace)
			b.WriteString(":")
		}
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			b.WriteString(" ")
			b.WriteString(a.Name)
			b.WriteString("=")
			b.WriteString(config.Sprint(a.Value))
		}
		b.WriteString(">")
	}
	b.WriteString("\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(b, c, depth+1)
	}
}

// Dump spew-dumps an arbitrary value, used for tokens and other non-tree
// structures where Node's tree layout doesn't apply.
func Dump(v interface{}) string {
	return config.Sdump(v)
}
