package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChildAndRemoveChild(t *testing.T) {
	root := &Node{Type: ElementNode, Data: "div"}
	a := &Node{Type: ElementNode, Data: "a"}
	b := &Node{Type: ElementNode, Data: "b"}
	root.AppendChild(a)
	root.AppendChild(b)

	require.Equal(t, a, root.FirstChild)
	require.Equal(t, b, root.LastChild)
	require.Equal(t, root, a.Parent)
	require.Equal(t, b, a.NextSibling)
	require.Equal(t, a, b.PrevSibling)

	root.RemoveChild(a)
	assert.Nil(t, a.Parent)
	assert.Nil(t, a.NextSibling)
	assert.Equal(t, b, root.FirstChild)
	assert.Equal(t, b, root.LastChild)
	assert.Nil(t, b.PrevSibling)
}

func TestAppendChildPanicsOnAttached(t *testing.T) {
	root := &Node{Type: ElementNode}
	child := &Node{Type: TextNode}
	root.AppendChild(child)

	other := &Node{Type: ElementNode}
	assert.Panics(t, func() { other.AppendChild(child) })
}

func TestInsertBefore(t *testing.T) {
	root := &Node{Type: ElementNode}
	a := &Node{Type: ElementNode, Data: "a"}
	c := &Node{Type: ElementNode, Data: "c"}
	root.AppendChild(a)
	root.AppendChild(c)

	b := &Node{Type: ElementNode, Data: "b"}
	root.InsertBefore(b, c)

	var order []string
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		order = append(order, n.Data)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestInsertBeforeNilAppends(t *testing.T) {
	root := &Node{Type: ElementNode}
	a := &Node{Type: ElementNode, Data: "a"}
	root.InsertBefore(a, nil)
	assert.Equal(t, a, root.LastChild)
}

func TestReparentChildren(t *testing.T) {
	src := &Node{Type: ElementNode, Data: "src"}
	dst := &Node{Type: ElementNode, Data: "dst"}
	x := &Node{Type: TextNode, Data: "x"}
	y := &Node{Type: TextNode, Data: "y"}
	src.AppendChild(x)
	src.AppendChild(y)

	ReparentChildren(dst, src)

	assert.Nil(t, src.FirstChild)
	assert.Equal(t, x, dst.FirstChild)
	assert.Equal(t, y, dst.LastChild)
	assert.Equal(t, dst, x.Parent)
}

func TestAttributeLookupAndSet(t *testing.T) {
	n := &Node{Type: ElementNode, Data: "a", Attr: []Attribute{
		{Name: "href", Value: "x"},
		{Name: "href", Value: "duplicate-ignored-by-index"},
		{Name: "class", Value: "y"},
	}}

	v, ok := n.Attribute("href")
	assert.True(t, ok)
	assert.Equal(t, "x", v) // first occurrence wins

	_, ok = n.Attribute("missing")
	assert.False(t, ok)

	n.SetAttribute("class", "z")
	v, _ = n.Attribute("class")
	assert.Equal(t, "z", v)
	assert.Equal(t, "z", n.Attr[2].Value)

	n.SetAttribute("id", "new")
	v, ok = n.Attribute("id")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Len(t, n.Attr, 4)
}

func TestIsWhitespace(t *testing.T) {
	assert.True(t, (&Node{Type: TextNode, Data: " \t\n\f\r"}).IsWhitespace())
	assert.False(t, (&Node{Type: TextNode, Data: " a "}).IsWhitespace())
	assert.False(t, (&Node{Type: ElementNode, Data: ""}).IsWhitespace())
}
