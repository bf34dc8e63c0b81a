// Package treebuilder implements the tree constructor (C5): the insertion-
// mode state machine that consumes tokens from C3 and builds the C4 DOM,
// adapted from dpotapov-go-pages's chtml/html/parse.go.
package treebuilder

import (
	"io"

	"github.com/htmlkit/htmlkit/catalog"
	"github.com/htmlkit/htmlkit/dom"
	"github.com/htmlkit/htmlkit/perr"
	"github.com/htmlkit/htmlkit/token"
)

// insertionMode is the state transition function for one of spec.md
// §4.5.1's insertion modes. It reports whether the token was consumed (the
// same "reprocess" signal chtml/html/parse.go's insertionMode uses).
type insertionMode func(b *Builder) bool

// Builder drives tree construction (C5) over a Tokenizer (C3), building a
// dom.Document (C4).
type Builder struct {
	tokenizer *token.Tokenizer
	sink      perr.Sink
	tok       token.Token

	doc *dom.Document

	oe  openStack
	afe afeList

	form *dom.Node

	im, originalIM insertionMode

	fosterParenting bool
	framesetOK      bool

	fatal error
}

// NewBuilder creates a Builder that will consume tok and build a document,
// reporting parse errors to sink (spec.md §6: "absent a sink, parse errors
// are silently suppressed").
func NewBuilder(tok *token.Tokenizer, sink perr.Sink) *Builder {
	return &Builder{
		tokenizer:  tok,
		sink:       sink,
		doc:        dom.NewDocument(),
		im:         initialIM,
		framesetOK: true,
	}
}

func (b *Builder) top() *dom.Node {
	if n := b.oe.top(); n != nil {
		return n
	}
	return b.doc.Root
}

func (b *Builder) reportErr(kind perr.Kind) {
	perr.Report(b.sink, kind, b.tok.Pos)
}

// Parse drives the tokenizer to completion and returns the resulting
// document, adapted from chtml/html/parse.go's parse/Parse.
func Parse(r io.Reader, sink perr.Sink) (*dom.Document, error) {
	input := token.NewInputStream(r, sink)
	tz := token.NewTokenizer(input, sink)
	b := NewBuilder(tz, sink)
	if err := b.run(); err != nil {
		return nil, err
	}
	return b.doc, nil
}

func (b *Builder) run() error {
	for {
		n := b.oe.top()
		b.tokenizer.AllowCDATA(n != nil && n.Namespace != "")

		b.tok = b.tokenizer.Next()
		if b.tokenizer.NeedMore() {
			// Best-effort resumability (spec.md §5): a blocking source
			// surfaces here as a retryable condition rather than a
			// token; callers driving their own loop around a streaming
			// Source see this as io.ErrNoProgress-shaped backpressure.
			return token.ErrWouldBlock
		}
		if err := b.tokenizer.Err(); err != nil {
			b.fatal = err
			return err
		}

		b.parseCurrentToken()

		if b.tok.Type == token.EOFToken {
			return nil
		}
	}
}

// parseCurrentToken runs the current token through the insertion-mode
// machinery until it is consumed, honoring the foreign-content override the
// same way chtml/html/parse.go's parseCurrentToken does.
func (b *Builder) parseCurrentToken() {
	consumed := false
	for !consumed {
		if b.inForeignContent() {
			consumed = b.parseForeignContent()
		} else {
			consumed = b.im(b)
		}
	}
}

// parseImpliedToken parses a synthetic token as though it had appeared in
// the input, the way chtml/html/parse.go's parseImpliedToken does for
// implied </body> etc.
func (b *Builder) parseImpliedToken(typ token.Type, name string) {
	real := b.tok
	b.tok = token.Token{Type: typ, Name: name, Pos: real.Pos}
	b.parseCurrentToken()
	b.tok = real
}

func (b *Builder) setOriginalIM() {
	b.originalIM = b.im
}

// --- insertion ---------------------------------------------------------

// addChild adds n to the top of the stack's element (or foster-parents it),
// and pushes n if it is an Element.
func (b *Builder) addChild(n *dom.Node) {
	if b.shouldFosterParent() {
		b.fosterParent(n)
	} else {
		b.top().AppendChild(n)
	}
	if n.Type == dom.ElementNode {
		b.oe.push(n)
	}
}

func (b *Builder) shouldFosterParent() bool {
	if b.fosterParenting {
		switch b.top().Data {
		case "table", "tbody", "tfoot", "thead", "tr":
			return true
		}
	}
	return false
}

// fosterParent implements spec.md §6.7's foster-parenting algorithm.
func (b *Builder) fosterParent(n *dom.Node) {
	var table, parent, prev, template *dom.Node
	var i int
	for i = len(b.oe) - 1; i >= 0; i-- {
		if b.oe[i].Data == "table" && b.oe[i].Namespace == "" {
			table = b.oe[i]
			break
		}
	}
	var j int
	for j = len(b.oe) - 1; j >= 0; j-- {
		if b.oe[j].Data == "template" && b.oe[j].Namespace == "" {
			template = b.oe[j]
			break
		}
	}
	if template != nil && (table == nil || j > i) {
		template.AppendChild(n)
		return
	}
	if table == nil {
		parent = b.oe[0]
	} else {
		parent = table.Parent
	}
	if parent == nil {
		parent = b.oe[i-1]
	}
	if table != nil {
		prev = table.PrevSibling
	} else {
		prev = parent.LastChild
	}
	if prev != nil && prev.Type == dom.TextNode && n.Type == dom.TextNode {
		prev.Data += n.Data
		return
	}
	parent.InsertBefore(n, table)
}

// addText appends text to the preceding Text node if there is one, else
// inserts a new Text node.
func (b *Builder) addText(text string) {
	if text == "" {
		return
	}
	if b.shouldFosterParent() {
		b.fosterParent(&dom.Node{Type: dom.TextNode, Data: text, Pos: b.tok.Pos})
		return
	}
	t := b.top()
	if n := t.LastChild; n != nil && n.Type == dom.TextNode {
		n.Data += text
		return
	}
	b.addChild(&dom.Node{Type: dom.TextNode, Data: text, Pos: b.tok.Pos})
}

// addElement adds a child Element built from the current token. A trailing
// "/>" on a non-void HTML element is a tree-construction parse error
// (spec.md §4.5), not a tokenizer-level one: the tokenizer only records
// SelfClosing on the token, this is where it's acknowledged. Foreign
// (SVG/MathML) elements are exempt: XML-style self-closing is their normal
// form, handled separately by parseForeignContent.
func (b *Builder) addElement() {
	if b.tok.SelfClosing && !catalog.IsVoid(b.tok.Name) && !b.inForeignContent() &&
		b.tok.Name != "svg" && b.tok.Name != "math" {
		b.reportErr(perr.SelfClosingOnNonVoidElement)
	}
	e, _ := catalog.Lookup(b.tok.Name)
	b.addChild(&dom.Node{
		Type:     dom.ElementNode,
		DataAtom: e.Atom,
		Data:     b.tok.Name,
		Attr:     convertAttrs(b.tok.Attr),
		Pos:      b.tok.Pos,
	})
}

func convertAttrs(in []token.Attribute) []dom.Attribute {
	if len(in) == 0 {
		return nil
	}
	out := make([]dom.Attribute, len(in))
	for i, a := range in {
		out[i] = dom.Attribute{Name: a.Name, Value: a.Value}
	}
	return out
}

// addFormattingElement adds the current token as an element and records it
// in the active formatting elements list, applying the Noah's Ark clause
// (spec.md §6.3: at most three duplicates of the same tag+attributes
// survive between markers).
func (b *Builder) addFormattingElement() {
	name, attr := b.tok.Name, b.tok.Attr
	b.addElement()

	identical := 0
findIdentical:
	for i := len(b.afe) - 1; i >= 0; i-- {
		e := b.afe[i]
		if e.marker {
			break
		}
		n := e.node
		if n.Namespace != "" || n.Data != name || len(n.Attr) != len(attr) {
			continue
		}
	compareAttrs:
		for _, t0 := range n.Attr {
			for _, t1 := range attr {
				if t0.Name == t1.Name && t0.Value == t1.Value {
					continue compareAttrs
				}
			}
			continue findIdentical
		}
		identical++
		if identical >= 3 {
			b.afe.remove(n)
		}
	}

	b.afe.push(b.top())
}

func (b *Builder) clearActiveFormattingElements() {
	for {
		e := b.afe.pop()
		if len(b.afe) == 0 || e.marker {
			return
		}
	}
}

// reconstructActiveFormattingElements re-applies the afe list to the
// current insertion point (spec.md §6.3), used before adding text or most
// new elements inside InBody.
func (b *Builder) reconstructActiveFormattingElements() {
	e := b.afe.top()
	if e == nil {
		return
	}
	if e.marker || b.oe.index(e.node) != -1 {
		return
	}
	i := len(b.afe) - 1
	for !b.afe[i].marker && b.oe.index(b.afe[i].node) == -1 {
		if i == 0 {
			i = -1
			break
		}
		i--
	}
	for {
		i++
		clone := cloneNode(b.afe[i].node)
		b.addChild(clone)
		b.afe[i].node = clone
		if i == len(b.afe)-1 {
			break
		}
	}
}
