package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleTree() *Node {
	root := &Node{Type: DocumentNode}
	html := &Node{Type: ElementNode, Data: "html"}
	head := &Node{Type: ElementNode, Data: "head"}
	body := &Node{Type: ElementNode, Data: "body"}
	p1 := &Node{Type: ElementNode, Data: "p"}
	p2 := &Node{Type: ElementNode, Data: "p"}
	text := &Node{Type: TextNode, Data: "hi"}

	root.AppendChild(html)
	html.AppendChild(head)
	html.AppendChild(body)
	body.AppendChild(p1)
	body.AppendChild(p2)
	p1.AppendChild(text)
	return root
}

func TestPreorderVisitsEveryNodeOnce(t *testing.T) {
	root := buildSampleTree()

	var order []string
	Preorder(root, func(n *Node) bool {
		order = append(order, n.Type.String()+":"+n.Data)
		return true
	})

	assert.Equal(t, []string{
		"Document:", "Element:html", "Element:head", "Element:body",
		"Element:p", "Text:hi", "Element:p",
	}, order)
}

func TestPreorderStopsEarly(t *testing.T) {
	root := buildSampleTree()
	count := 0
	Preorder(root, func(n *Node) bool {
		count++
		return n.Data != "head"
	})
	assert.Equal(t, 3, count) // Document, html, head
}

func TestFindFirst(t *testing.T) {
	root := buildSampleTree()
	n := FindFirst(root, func(n *Node) bool { return n.Type == ElementNode && n.Data == "p" })
	require.NotNil(t, n)
	assert.Equal(t, "hi", n.FirstChild.Data)
}

func TestFindFirstNoMatch(t *testing.T) {
	root := buildSampleTree()
	n := FindFirst(root, func(n *Node) bool { return n.Data == "table" })
	assert.Nil(t, n)
}

func TestFindAll(t *testing.T) {
	root := buildSampleTree()
	all := FindAll(root, func(n *Node) bool { return n.Type == ElementNode && n.Data == "p" })
	assert.Len(t, all, 2)
}

func TestByTagName(t *testing.T) {
	root := buildSampleTree()
	assert.Len(t, ByTagName(root, "p"), 2)
	assert.Len(t, ByTagName(root, "body"), 1)
	assert.Len(t, ByTagName(root, "span"), 0)
}

func TestQuirksModeString(t *testing.T) {
	assert.Equal(t, "no-quirks", NoQuirks.String())
	assert.Equal(t, "limited-quirks", LimitedQuirks.String())
	assert.Equal(t, "quirks", Quirks.String())
}

func TestNewDocument(t *testing.T) {
	d := NewDocument()
	require.NotNil(t, d.Root)
	assert.Equal(t, DocumentNode, d.Root.Type)
	assert.Equal(t, NoQuirks, d.Quirks)
}
