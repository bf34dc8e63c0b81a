package htmlkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlkit/htmlkit/perr"
)

// These cover spec.md §8's "Concrete scenarios" table.

func TestParseSimpleHTML(t *testing.T) {
	var sink perr.CollectSink
	doc, err := Parse(strings.NewReader("<html></html>"), &sink)
	require.NoError(t, err)

	root := Root(doc)
	require.NotNil(t, root)
	assert.Equal(t, "html", root.Data)
	// No <head>/<body> are implied: elements are opened and closed exactly
	// as the tokens dictate, with no synthesized ancestors.
	assert.Nil(t, root.FirstChild)
	assert.Empty(t, sink.Errors)
}

func TestParseVoidElement(t *testing.T) {
	doc, err := Parse(strings.NewReader("<br>"), nil)
	require.NoError(t, err)

	br := FindFirst(Root(doc), "br")
	require.NotNil(t, br)
	assert.Nil(t, br.FirstChild)
}

func TestParseAttributesAndText(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<html dir="ltr">v</html>`), nil)
	require.NoError(t, err)

	root := Root(doc)
	require.NotNil(t, root)
	dir, ok := root.Attribute("dir")
	assert.True(t, ok)
	assert.Equal(t, "ltr", dir)

	// "v" lands directly under <html>: no <body> is synthesized to hold it.
	require.NotNil(t, root.FirstChild)
	assert.Equal(t, TextNode, root.FirstChild.Type)
	assert.Equal(t, "v", root.FirstChild.Data)
}

func TestParseComment(t *testing.T) {
	doc, err := Parse(strings.NewReader("<!-- hi -->"), nil)
	require.NoError(t, err)

	require.NotNil(t, doc.Root.FirstChild)
	assert.Equal(t, CommentNode, doc.Root.FirstChild.Type)
	assert.Equal(t, " hi ", doc.Root.FirstChild.Data)
}

func TestParseImplicitlyClosedP(t *testing.T) {
	var sink perr.CollectSink
	doc, err := Parse(strings.NewReader("<p>a<p>b"), &sink)
	require.NoError(t, err)

	// Neither <p> has an <html> ancestor, so they're siblings directly under
	// the document, not a subtree rooted at the first one.
	ps := FindAll(doc.Root, "p")
	require.Len(t, ps, 2)
	require.NotNil(t, ps[0].FirstChild)
	require.NotNil(t, ps[1].FirstChild)
	assert.Equal(t, "a", ps[0].FirstChild.Data)
	assert.Equal(t, "b", ps[1].FirstChild.Data)
}

func TestParseScriptIsRawText(t *testing.T) {
	doc, err := Parse(strings.NewReader("<script>a<b>c</script>d"), nil)
	require.NoError(t, err)

	// A leading <script> with no explicit <html>/<head> lands directly at
	// the document root; trailing text after </script> is its sibling, not
	// a child of some implied <body>.
	script := FindFirst(doc.Root, "script")
	require.NotNil(t, script)
	require.NotNil(t, script.FirstChild)
	assert.Equal(t, "a<b>c", script.FirstChild.Data)

	require.NotNil(t, script.NextSibling)
	assert.Equal(t, TextNode, script.NextSibling.Type)
	assert.Equal(t, "d", script.NextSibling.Data)
}

func TestParseEmptyInput(t *testing.T) {
	// Empty input produces a document with no root element at all.
	doc, err := Parse(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Nil(t, Root(doc))
}

func TestParseWhitespaceOnlyInput(t *testing.T) {
	// Whitespace-only input is discarded; it never opens a root either.
	doc, err := Parse(strings.NewReader("   \n\t"), nil)
	require.NoError(t, err)
	assert.Nil(t, Root(doc))
}

func TestParseMismatchedEndTagIgnored(t *testing.T) {
	var sink perr.CollectSink
	doc, err := Parse(strings.NewReader("<html></body></html>"), &sink)
	require.NoError(t, err)
	assert.NotNil(t, Root(doc))
}

func TestParseDoctype(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"><html></html>`), nil)
	require.NoError(t, err)

	dt := Doctype(doc)
	require.NotNil(t, dt)
	assert.Equal(t, "html", dt.Data)
	assert.Equal(t, "-//W3C//DTD HTML 4.01//EN", dt.PublicID)
}

func TestFindFirstAndFindAll(t *testing.T) {
	doc, err := Parse(strings.NewReader("<div><span>a</span><span>b</span></div>"), nil)
	require.NoError(t, err)

	root := Root(doc)
	first := FindFirst(root, "span")
	require.NotNil(t, first)
	assert.Equal(t, "a", first.FirstChild.Data)

	all := FindAll(root, "span")
	assert.Len(t, all, 2)
}
