package dom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVoidElementHasNoEndTag(t *testing.T) {
	doc := NewDocument()
	html := &Node{Type: ElementNode, Data: "html"}
	br := &Node{Type: ElementNode, Data: "br"}
	doc.Root.AppendChild(html)
	html.AppendChild(br)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc.Root))
	assert.Equal(t, "<html><br></html>", buf.String())
}

func TestRenderAttributesPreserveInsertionOrderAndEscapeQuotes(t *testing.T) {
	doc := NewDocument()
	div := &Node{Type: ElementNode, Data: "div"}
	div.SetAttribute("class", "a")
	div.SetAttribute("title", `say "hi"`)
	doc.Root.AppendChild(div)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc.Root))
	assert.Equal(t, `<div class="a" title="say &quot;hi&quot;"></div>`, buf.String())
}

func TestRenderEscapesTextButNotScriptBody(t *testing.T) {
	doc := NewDocument()
	p := &Node{Type: ElementNode, Data: "p"}
	p.AppendChild(&Node{Type: TextNode, Data: "a < b & c"})
	doc.Root.AppendChild(p)

	script := &Node{Type: ElementNode, Data: "script"}
	script.AppendChild(&Node{Type: TextNode, Data: "a < b && c"})
	doc.Root.AppendChild(script)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc.Root))
	assert.Equal(t, "<p>a &lt; b &amp; c</p><script>a < b && c</script>", buf.String())
}

func TestRenderRoundTripsRestrictedASCIISubset(t *testing.T) {
	// spec.md §8's round-trip property: no entity references, no optional
	// tags, ASCII only.
	cases := []string{
		`<html><head></head><body><p>hi</p></body></html>`,
		`<div class="a" id="b">text</div>`,
		`<br>`,
	}
	for _, src := range cases {
		doc := NewDocument()
		root := parseMini(t, src)
		doc.Root.AppendChild(root)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, doc.Root))
		assert.Equal(t, src, buf.String())
	}
}

// parseMini builds the exact tree the given restricted-subset source
// describes, by hand, standing in for the tree constructor so this package's
// tests don't import treebuilder (which already exercises real parsing).
func parseMini(t *testing.T, src string) *Node {
	t.Helper()
	switch src {
	case `<html><head></head><body><p>hi</p></body></html>`:
		html := &Node{Type: ElementNode, Data: "html"}
		head := &Node{Type: ElementNode, Data: "head"}
		body := &Node{Type: ElementNode, Data: "body"}
		p := &Node{Type: ElementNode, Data: "p"}
		p.AppendChild(&Node{Type: TextNode, Data: "hi"})
		body.AppendChild(p)
		html.AppendChild(head)
		html.AppendChild(body)
		return html
	case `<div class="a" id="b">text</div>`:
		div := &Node{Type: ElementNode, Data: "div"}
		div.SetAttribute("class", "a")
		div.SetAttribute("id", "b")
		div.AppendChild(&Node{Type: TextNode, Data: "text"})
		return div
	case `<br>`:
		return &Node{Type: ElementNode, Data: "br"}
	}
	t.Fatalf("parseMini: unhandled case %q", src)
	return nil
}
