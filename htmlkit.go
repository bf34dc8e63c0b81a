// Package htmlkit is an HTML5-conformant tokenizer and tree constructor: it
// turns a byte stream of HTML source into a DOM tree suitable for traversal,
// query, or serialization (spec.md §1).
//
// The work is split across four subpackages mirroring spec.md §2's
// component table — token (C1 input stream, C3 tokenizer), catalog (C2
// element metadata), dom (C4 node tree), and treebuilder (C5 tree
// constructor) — and this package ties them together behind the one-shot
// Parse entry point spec.md §6 names.
package htmlkit

import (
	"io"

	"github.com/htmlkit/htmlkit/dom"
	"github.com/htmlkit/htmlkit/perr"
	"github.com/htmlkit/htmlkit/token"
	"github.com/htmlkit/htmlkit/treebuilder"
)

// Re-exported so callers of this package don't need to import the
// subpackages directly for the common cases (spec.md §6's programmatic
// surface); the full subpackage APIs remain available for callers who need
// the incremental Tokenizer or direct DOM construction.
type (
	Document = dom.Document
	Node     = dom.Node
	NodeType = dom.NodeType

	Token     = token.Token
	TokenType = token.Type
	Attribute = token.Attribute

	ErrorSink  = perr.Sink
	ErrorKind  = perr.Kind
	FatalError = perr.FatalError
)

const (
	CharacterToken = token.CharacterToken
	StartTagToken  = token.StartTagToken
	EndTagToken    = token.EndTagToken
	CommentToken   = token.CommentToken
	DoctypeToken   = token.DoctypeToken
	EOFToken       = token.EOFToken
)

const (
	DocumentNode = dom.DocumentNode
	DoctypeNode  = dom.DoctypeNode
	ElementNode  = dom.ElementNode
	TextNode     = dom.TextNode
	CommentNode  = dom.CommentNode
)

// Parse reads HTML from r and builds a Document, reporting parse errors to
// sink (spec.md §6: "parse(byte_source, error_sink?) -> Document"). sink may
// be nil, in which case parse errors are silently discarded (spec.md §7).
//
// Parse returns a non-nil error only for the two hard-error cases spec.md
// §7 names: an I/O failure from r, or an internal invariant violation. A
// malformed-but-readable document is never itself an error; it is reported
// through sink and construction continues to completion (spec.md §7: "the
// parser NEVER terminates on malformed HTML").
func Parse(r io.Reader, sink ErrorSink) (*Document, error) {
	return treebuilder.Parse(r, sink)
}

// NewTokenizer exposes the incremental tokenizer API (spec.md §6) for
// callers that want a token stream instead of a constructed tree — for
// example, a syntax highlighter that never needs a DOM.
func NewTokenizer(r io.Reader, sink ErrorSink) *token.Tokenizer {
	return token.NewTokenizer(token.NewInputStream(r, sink), sink)
}

// Doctype returns the Document's DOCTYPE node, or nil if it has none
// (spec.md §6's Document query API).
func Doctype(doc *Document) *Node {
	for c := doc.Root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == DoctypeNode {
			return c
		}
	}
	return nil
}

// Root returns the first Element child of the Document (conventionally
// <html>), or nil if there is none (spec.md §6). No root element is
// synthesized, so the Document may hold further Element or Text children
// after the one returned.
func Root(doc *Document) *Node {
	for c := doc.Root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ElementNode {
			return c
		}
	}
	return nil
}

// FindFirst returns the first node of n's subtree, n itself included, in
// document order whose tag name matches name, or nil (spec.md §6).
func FindFirst(n *Node, name string) *Node {
	return dom.FindFirst(n, func(c *Node) bool {
		return c.Type == ElementNode && c.Data == name
	})
}

// FindAll returns every node of n's subtree, n itself included, whose tag
// name matches name, in document order (SPEC_FULL §12).
func FindAll(n *Node, name string) []*Node {
	return dom.ByTagName(n, name)
}

// Serialize writes doc back out as HTML text (spec.md §8's round-trip
// property: for the restricted subset it names — no entity references, no
// optional tags, ASCII only — Serialize(Parse(s)) reproduces s).
func Serialize(w io.Writer, doc *Document) error {
	return dom.Render(w, doc.Root)
}
