package treebuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlkit/htmlkit/dom"
	"github.com/htmlkit/htmlkit/internal/testdump"
	"github.com/htmlkit/htmlkit/perr"
)

func parse(t *testing.T, src string, sink perr.Sink) *dom.Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(src), sink)
	require.NoError(t, err)
	return doc
}

func htmlElem(doc *dom.Document) *dom.Node {
	return dom.FindFirst(doc.Root, func(n *dom.Node) bool {
		return n.Type == dom.ElementNode && n.Data == "html"
	})
}

func elem(root *dom.Node, name string) *dom.Node {
	return dom.FindFirst(root, func(n *dom.Node) bool {
		return n.Type == dom.ElementNode && n.Data == name
	})
}

func TestParseMinimalDocumentHasNoImpliedSkeleton(t *testing.T) {
	// Plain text with no tags at all produces no element root at all:
	// <html>/<head>/<body> are never synthesized.
	doc := parse(t, "hi", nil)
	assert.Nil(t, htmlElem(doc))
	require.NotNil(t, doc.Root.FirstChild)
	assert.Equal(t, dom.TextNode, doc.Root.FirstChild.Type)
	assert.Equal(t, "hi", doc.Root.FirstChild.Data)
}

func TestParagraphAutoClosesOnNestedParagraph(t *testing.T) {
	doc := parse(t, "<html><body><p>one<p>two</body></html>", nil)
	body := elem(htmlElem(doc), "body")
	require.NotNil(t, body)

	var ps []*dom.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == dom.ElementNode && c.Data == "p" {
			ps = append(ps, c)
		}
	}
	require.Len(t, ps, 2)
	assert.Equal(t, "one", ps[0].FirstChild.Data)
	assert.Equal(t, "two", ps[1].FirstChild.Data)
}

func TestHeadingAutoClosesPriorHeading(t *testing.T) {
	doc := parse(t, "<html><body><h1>a<h2>b</body></html>", nil)
	body := elem(htmlElem(doc), "body")
	h1 := elem(body, "h1")
	h2 := elem(body, "h2")
	require.NotNil(t, h1)
	require.NotNil(t, h2)
	require.NotNil(t, h1.NextSibling)
	assert.Equal(t, "h2", h1.NextSibling.Data) // h1, then h2 directly, no nesting
	assert.Nil(t, h2.NextSibling)
}

func TestMisnestedFormattingElementsAdoptionAgency(t *testing.T) {
	// <b>1<i>2</b>3</i> is the canonical adoption-agency torture case: the
	// <i> must end up wrapping "3" even though </b> closed before </i>.
	doc := parse(t, "<html><body><p><b>1<i>2</b>3</i></p></body></html>", nil)
	body := elem(htmlElem(doc), "body")
	p := elem(body, "p")
	require.NotNil(t, p)

	// "3" must be inside a (cloned) <i>, not a sibling of the original <b>.
	var found bool
	dom.Preorder(p, func(n *dom.Node) bool {
		if n.Type == dom.TextNode && n.Data == "3" {
			require.NotNil(t, n.Parent)
			assert.Equal(t, "i", n.Parent.Data)
			found = true
		}
		return true
	})
	if !found {
		t.Logf("tree:\n%s", testdump.Node(p))
	}
	assert.True(t, found, "expected text \"3\" to survive inside a reconstructed <i>")
}

func TestUnmatchedEndTagForUnopenedFormattingElementIsIgnored(t *testing.T) {
	var sink perr.CollectSink
	doc := parse(t, "<html><body><p>a</i>b</p></body></html>", &sink)
	body := elem(htmlElem(doc), "body")
	p := elem(body, "p")
	require.NotNil(t, p)
	require.NotNil(t, p.FirstChild)
	// The stray </i> has no structural effect; "a" and "b" merge into one
	// text node since nothing intervenes between them.
	assert.Equal(t, "ab", p.FirstChild.Data)
	assert.Nil(t, p.FirstChild.NextSibling)
}

func TestForeignSVGSubtreeGetsNamespaceTagged(t *testing.T) {
	doc := parse(t, "<html><body><svg><circle/></svg></body></html>", nil)
	body := elem(htmlElem(doc), "body")
	svg := elem(body, "svg")
	require.NotNil(t, svg)
	assert.Equal(t, "svg", svg.Namespace)

	circle := svg.FirstChild
	require.NotNil(t, circle)
	assert.Equal(t, "circle", circle.Data)
	assert.Equal(t, "svg", circle.Namespace)
}

func TestForeignContentEndTagClosesOnlyMatchingElement(t *testing.T) {
	doc := parse(t, "<html><body><svg><a></a>text</svg>after</body></html>", nil)
	body := elem(htmlElem(doc), "body")
	svg := elem(body, "svg")
	require.NotNil(t, svg)
	assert.Equal(t, "after", svg.NextSibling.Data)
}

func TestTableTextGetsFosterParentedOutOfTable(t *testing.T) {
	doc := parse(t, "<html><body><table>x</table></body></html>", nil)
	body := elem(htmlElem(doc), "body")
	table := elem(body, "table")
	require.NotNil(t, table)

	// Character data appearing directly in "table" context must be foster
	// parented to just before the table, not become a child of <table>.
	assert.Equal(t, "x", table.PrevSibling.Data)
	assert.Nil(t, table.FirstChild)
}

func TestRCDATATitleTextIsLiteralNotMarkup(t *testing.T) {
	doc := parse(t, "<html><head><title>a &amp; <b></title></head></html>", nil)
	html := htmlElem(doc)
	head := elem(html, "head")
	title := elem(head, "title")
	require.NotNil(t, title)
	assert.Equal(t, "a & <b>", title.FirstChild.Data)
}

func TestCommentBeforeHTMLIsKeptAtDocumentLevel(t *testing.T) {
	doc := parse(t, "<!--c--><html></html>", nil)
	require.NotNil(t, doc.Root.FirstChild)
	assert.Equal(t, dom.CommentNode, doc.Root.FirstChild.Type)
}

func TestVoidElementsHaveNoChildrenAndArentPushed(t *testing.T) {
	doc := parse(t, "<html><body><p><br>after</p></body></html>", nil)
	body := elem(htmlElem(doc), "body")
	p := elem(body, "p")
	require.NotNil(t, p)
	br := p.FirstChild
	require.NotNil(t, br)
	assert.Equal(t, "br", br.Data)
	assert.Nil(t, br.FirstChild)
	require.NotNil(t, br.NextSibling)
	assert.Equal(t, "after", br.NextSibling.Data)
}

func TestSelfClosingNonVoidElementReportsParseErrorButStillNests(t *testing.T) {
	var sink perr.CollectSink
	doc := parse(t, "<html><body><div/>x</div></body></html>", &sink)
	body := elem(htmlElem(doc), "body")
	div := elem(body, "div")
	require.NotNil(t, div)
	// The trailing "/" doesn't make <div> self-closing; "x" still nests.
	require.NotNil(t, div.FirstChild)
	assert.Equal(t, "x", div.FirstChild.Data)

	var found bool
	for _, e := range sink.Errors {
		if e.Kind == perr.SelfClosingOnNonVoidElement {
			found = true
		}
	}
	assert.True(t, found, "expected a self-closing-on-non-void-element parse error")
}

// --- stack / scope / special white-box tests ---------------------------

func TestOpenStackPushPopTop(t *testing.T) {
	var s openStack
	a := &dom.Node{Data: "a"}
	b := &dom.Node{Data: "b"}
	s.push(a)
	s.push(b)
	assert.Equal(t, b, s.top())
	assert.Equal(t, 0, s.index(a))
	popped := s.pop()
	assert.Equal(t, b, popped)
	assert.Equal(t, a, s.top())
}

func TestOpenStackRemoveAndInsert(t *testing.T) {
	var s openStack
	a := &dom.Node{Data: "a"}
	b := &dom.Node{Data: "b"}
	c := &dom.Node{Data: "c"}
	s.push(a)
	s.push(b)
	s.push(c)
	s.remove(b)
	require.Len(t, s, 2)
	assert.Equal(t, a, s[0])
	assert.Equal(t, c, s[1])

	s.insert(1, b)
	require.Len(t, s, 3)
	assert.Equal(t, b, s[1])
}

func TestAFEListMarkerAndPush(t *testing.T) {
	var l afeList
	l.pushMarker()
	n := &dom.Node{Data: "b"}
	l.push(n)
	require.NotNil(t, l.top())
	assert.Equal(t, n, l.top().node)
	assert.Equal(t, 1, l.index(n))

	l.remove(n)
	assert.Equal(t, -1, l.index(n))
}

func TestCloneNodeCopiesAttributesNotChildren(t *testing.T) {
	n := &dom.Node{
		Type: dom.ElementNode,
		Data: "b",
		Attr: []dom.Attribute{{Name: "class", Value: "x"}},
	}
	n.AppendChild(&dom.Node{Type: dom.TextNode, Data: "child"})

	c := cloneNode(n)
	assert.Equal(t, "b", c.Data)
	require.Len(t, c.Attr, 1)
	assert.Equal(t, "x", c.Attr[0].Value)
	assert.Nil(t, c.FirstChild)

	// Mutating the clone's attr slice must not affect the original.
	c.Attr[0].Value = "y"
	assert.Equal(t, "x", n.Attr[0].Value)
}

func TestIsSpecialElement(t *testing.T) {
	assert.True(t, isSpecialElement(&dom.Node{Data: "div"}))
	assert.False(t, isSpecialElement(&dom.Node{Data: "span"}))
	assert.False(t, isSpecialElement(&dom.Node{Data: "div", Namespace: "svg"}))
}

func TestElementInScopeStopsAtTable(t *testing.T) {
	b := &Builder{}
	b.oe.push(&dom.Node{Data: "table"})
	b.oe.push(&dom.Node{Data: "div"})
	assert.False(t, b.elementInScope(defaultScope, "p"))

	b2 := &Builder{}
	b2.oe.push(&dom.Node{Data: "p"})
	b2.oe.push(&dom.Node{Data: "div"})
	assert.True(t, b2.elementInScope(defaultScope, "p"))
}

func TestGenerateImpliedEndTagsStopsAtException(t *testing.T) {
	b := &Builder{}
	b.oe.push(&dom.Node{Data: "ul"})
	b.oe.push(&dom.Node{Data: "li"})
	b.generateImpliedEndTags("li")
	assert.Equal(t, 2, len(b.oe))

	b.generateImpliedEndTags()
	require.Len(t, b.oe, 1)
	assert.Equal(t, "ul", b.oe.top().Data)
}
