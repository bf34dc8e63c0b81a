package treebuilder

import (
	"strings"

	"github.com/htmlkit/htmlkit/dom"
	"github.com/htmlkit/htmlkit/token"
)

// inForeignContent reports whether the current token should be processed by
// the foreign-content rules (spec.md §4.5/§6, WHATWG §12.2.6) rather than by
// the current insertion mode. SPEC_FULL §13 narrows this to recognizing SVG
// and MathML subtrees without adjusting their tag or attribute names (no
// integration-point table), so the check here is the namespace test alone,
// minus chtml/html/parse.go's mathMLTextIntegrationPoint/htmlIntegrationPoint
// carve-outs.
func (b *Builder) inForeignContent() bool {
	n := b.oe.top()
	if n == nil || n.Namespace == "" {
		return false
	}
	return b.tok.Type != token.EOFToken
}

// parseForeignContent implements the foreign-content token-handling rules
// (spec.md §6, adapted from chtml/html/parse.go's parseForeignContent with
// the MathML/SVG attribute-adjustment and integration-point steps dropped,
// per SPEC_FULL §13's foreign-content Non-goal).
func (b *Builder) parseForeignContent() bool {
	switch b.tok.Type {
	case token.CharacterToken:
		c := b.tok.Character
		if c == 0 {
			c = '�'
		}
		b.addText(string(c))
	case token.CommentToken:
		b.addChild(&dom.Node{Type: dom.CommentNode, Data: b.tok.Text, Pos: b.tok.Pos})
	case token.StartTagToken:
		current := b.top()
		namespace := current.Namespace
		b.addElement()
		b.top().Namespace = namespace
		if b.tok.SelfClosing {
			b.oe.pop()
		}
	case token.EndTagToken:
		for i := len(b.oe) - 1; i >= 0; i-- {
			if b.oe[i].Namespace == "" {
				return b.im(b)
			}
			if strings.EqualFold(b.oe[i].Data, b.tok.Name) {
				b.oe = b.oe[:i]
				break
			}
		}
		return true
	}
	return true
}
