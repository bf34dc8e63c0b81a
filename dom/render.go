package dom

import (
	"io"
	"strings"

	"github.com/htmlkit/htmlkit/catalog"
)

// Render writes n and its descendants back out as HTML text, in the style of
// arturoeanton-go-xml's streaming Encoder (an io.Writer-driven recursive
// writer rather than a string-builder that materializes the whole output
// before returning). It supports spec.md §8's round-trip property for the
// restricted subset it names (no entity references, no optional tags, ASCII
// only): for such input, Render(parse(s)) reproduces s byte for byte.
//
// Outside that restricted subset — e.g. an attribute value containing a
// quote, or a tag whose end was implied rather than written — Render still
// produces well-formed HTML, just not necessarily the original bytes.
func Render(w io.Writer, n *Node) error {
	enc := &encoder{w: w}
	return enc.node(n)
}

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *encoder) node(n *Node) error {
	if n == nil {
		return nil
	}
	switch n.Type {
	case DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			e.node(c)
		}
	case DoctypeNode:
		e.write("<!DOCTYPE ")
		e.write(n.Data)
		if n.PublicID != "" || n.SystemID != "" {
			e.write(` PUBLIC "`)
			e.write(n.PublicID)
			e.write(`" "`)
			e.write(n.SystemID)
			e.write(`"`)
		}
		e.write(">")
	case CommentNode:
		e.write("<!--")
		e.write(n.Data)
		e.write("-->")
	case TextNode:
		if isRawTextParent(n.Parent) {
			e.write(n.Data)
		} else {
			e.write(escapeText(n.Data))
		}
	case ElementNode:
		e.startTag(n)
		if catalog.IsVoid(n.Data) {
			return e.err
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			e.node(c)
		}
		e.write("</")
		e.write(n.Data)
		e.write(">")
	}
	return e.err
}

func (e *encoder) startTag(n *Node) {
	e.write("<")
	e.write(n.Data)
	for _, a := range n.Attr {
		e.write(" ")
		if a.Namespace != "" {
			e.write(a.Namespace)
			e.write(":")
		}
		e.write(a.Name)
		e.write(`="`)
		e.write(escapeAttrValue(a.Value))
		e.write(`"`)
	}
	e.write(">")
}

// isRawTextParent reports whether text under parent is emitted literally
// rather than entity-escaped, mirroring the tokenizer's RAWTEXT/script-data
// dispatch (catalog.RawText/ScriptData) for the same element set.
func isRawTextParent(parent *Node) bool {
	if parent == nil || parent.Type != ElementNode {
		return false
	}
	e, ok := catalog.Lookup(parent.Data)
	if !ok {
		return false
	}
	return e.Flags&(catalog.RawText|catalog.ScriptData) != 0
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

var attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;")

func escapeAttrValue(s string) string {
	return attrEscaper.Replace(s)
}
