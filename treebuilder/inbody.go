package treebuilder

import (
	"strings"

	"github.com/htmlkit/htmlkit/dom"
	"github.com/htmlkit/htmlkit/perr"
	"github.com/htmlkit/htmlkit/token"
)

// inBodyIM is the InBody insertion mode (spec.md §4.5.1 / §6), adapted
// line-by-line from chtml/html/parse.go's inBodyIM with atom.Atom switches
// replaced by plain tag-name string switches (this module does not import
// golang.org/x/net/html's Node/Tokenizer, only its /atom name table via the
// catalog package).
func inBodyIM(b *Builder) bool {
	switch b.tok.Type {
	case token.DoctypeToken:
		b.reportErr(perr.UnexpectedEndTag)
		return true

	case token.CharacterToken:
		c := b.tok.Character
		switch n := b.top(); n.Data {
		case "pre", "listing":
			if n.FirstChild == nil && c == '\n' {
				return true
			}
		}
		if c == 0 {
			return true
		}
		b.reconstructActiveFormattingElements()
		b.addText(string(c))

	case token.StartTagToken:
		switch b.tok.Name {
		case "address", "article", "aside", "blockquote", "center", "details", "dialog",
			"dir", "div", "dl", "fieldset", "figcaption", "figure", "footer", "header",
			"hgroup", "main", "menu", "nav", "ol", "p", "section", "summary", "ul":
			b.popUntil(buttonScope, "p")
			b.addElement()
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.popUntil(buttonScope, "p")
			switch n := b.top(); n.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				b.oe.pop()
			}
			b.addElement()
		case "pre", "listing":
			b.popUntil(buttonScope, "p")
			b.addElement()
		case "form":
			if b.form != nil && !b.oe.contains("template") {
				return true
			}
			b.popUntil(buttonScope, "p")
			b.addElement()
			if !b.oe.contains("template") {
				b.form = b.top()
			}
		case "li":
			for i := len(b.oe) - 1; i >= 0; i-- {
				node := b.oe[i]
				switch node.Data {
				case "li":
					b.oe = b.oe[:i]
				case "address", "div", "p":
					continue
				default:
					if !isSpecialElement(node) {
						continue
					}
				}
				break
			}
			b.popUntil(buttonScope, "p")
			b.addElement()
		case "dd", "dt":
			for i := len(b.oe) - 1; i >= 0; i-- {
				node := b.oe[i]
				switch node.Data {
				case "dd", "dt":
					b.oe = b.oe[:i]
				case "address", "div", "p":
					continue
				default:
					if !isSpecialElement(node) {
						continue
					}
				}
				break
			}
			b.popUntil(buttonScope, "p")
			b.addElement()
		case "plaintext":
			b.popUntil(buttonScope, "p")
			b.addElement()
			b.tokenizer.SetState("plaintext")
		case "button":
			b.popUntil(defaultScope, "button")
			b.reconstructActiveFormattingElements()
			b.addElement()
		case "a":
			for i := len(b.afe) - 1; i >= 0 && !b.afe[i].marker; i-- {
				if n := b.afe[i].node; n.Data == "a" {
					b.inBodyEndTagFormatting("a")
					b.oe.remove(n)
					b.afe.remove(n)
					break
				}
			}
			b.reconstructActiveFormattingElements()
			b.addFormattingElement()
		case "b", "big", "code", "em", "font", "i", "s", "small", "strike", "strong", "tt", "u":
			b.reconstructActiveFormattingElements()
			b.addFormattingElement()
		case "nobr":
			b.reconstructActiveFormattingElements()
			if b.elementInScope(defaultScope, "nobr") {
				b.inBodyEndTagFormatting("nobr")
				b.reconstructActiveFormattingElements()
			}
			b.addFormattingElement()
		case "applet", "marquee", "object":
			b.reconstructActiveFormattingElements()
			b.addElement()
			b.afe.pushMarker()
		case "table":
			b.popUntil(buttonScope, "p")
			b.addElement()
			if b.doc.Quirks != dom.Quirks {
				b.fosterParenting = true
			}
			b.im = inTableIM
		case "area", "br", "embed", "img", "input", "keygen", "wbr":
			b.reconstructActiveFormattingElements()
			b.addElement()
			b.oe.pop()
			if b.tok.Name == "input" {
				for _, t := range b.tok.Attr {
					if t.Name == "type" && strings.EqualFold(t.Value, "hidden") {
						return true
					}
				}
			}
			b.framesetOK = false
		case "param", "source", "track":
			b.addElement()
			b.oe.pop()
		case "hr":
			b.popUntil(buttonScope, "p")
			b.addElement()
			b.oe.pop()
			b.framesetOK = false
		case "image":
			b.tok.Name = "img"
			return false
		case "textarea":
			b.addElement()
			b.setOriginalIM()
			b.im = textIM
			b.tokenizer.SetState("textarea")
			b.framesetOK = false
		case "xmp":
			b.popUntil(buttonScope, "p")
			b.reconstructActiveFormattingElements()
			b.framesetOK = false
			b.addElement()
			b.setOriginalIM()
			b.im = textIM
			b.tokenizer.SetState("xmp")
		case "iframe":
			b.framesetOK = false
			b.addElement()
			b.setOriginalIM()
			b.im = textIM
			b.tokenizer.SetState("iframe")
		case "noembed":
			b.addElement()
			b.setOriginalIM()
			b.im = textIM
			b.tokenizer.SetState("noembed")
		case "noscript":
			b.reconstructActiveFormattingElements()
			b.addElement()
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
			// Head-only content encountered outside <head> (including with
			// no <head> ever opened, since this module doesn't synthesize
			// one): process it with InHead's rules instead, per spec.md
			// §4.5 — the element still lands wherever InBody's current
			// insertion point is, just built with InHead's RAWTEXT/RCDATA
			// dispatch and void handling.
			return inHeadIM(b)
		case "optgroup", "option":
			if b.top().Data == "option" {
				b.oe.pop()
			}
			b.reconstructActiveFormattingElements()
			b.addElement()
		case "rb", "rtc":
			if b.elementInScope(defaultScope, "ruby") {
				b.generateImpliedEndTags()
			}
			b.addElement()
		case "rp", "rt":
			if b.elementInScope(defaultScope, "ruby") {
				b.generateImpliedEndTags("rtc")
			}
			b.addElement()
		case "math", "svg":
			// Foreign content is recognized, not interpreted (SPEC_FULL
			// Non-goal): no MathML/SVG tag or attribute name adjustment
			// table is applied, unlike the full WHATWG algorithm.
			b.reconstructActiveFormattingElements()
			ns := "svg"
			if b.tok.Name == "math" {
				ns = "math"
			}
			b.addElement()
			b.top().Namespace = ns
			if b.tok.SelfClosing {
				b.oe.pop()
			}
			return true
		default:
			b.reconstructActiveFormattingElements()
			b.addElement()
		}

	case token.EndTagToken:
		switch b.tok.Name {
		case "body":
			if b.elementInScope(defaultScope, "body") {
				b.im = afterBodyIM
			}
		case "html":
			if b.elementInScope(defaultScope, "body") {
				b.parseImpliedToken(token.EndTagToken, "body")
				return false
			}
			return true
		case "address", "article", "aside", "blockquote", "button", "center", "details",
			"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure", "footer",
			"header", "hgroup", "listing", "main", "menu", "nav", "ol", "pre", "section",
			"summary", "ul":
			b.popUntil(defaultScope, b.tok.Name)
		case "form":
			if b.oe.contains("template") {
				i := b.indexOfElementInScope(defaultScope, "form")
				if i == -1 {
					return true
				}
				b.generateImpliedEndTags()
				if b.oe[i].Data != "form" {
					return true
				}
				b.popUntil(defaultScope, "form")
			} else {
				node := b.form
				b.form = nil
				i := b.indexOfElementInScope(defaultScope, "form")
				if node == nil || i == -1 || b.oe[i] != node {
					return true
				}
				b.generateImpliedEndTags()
				b.oe.remove(node)
			}
		case "p":
			if !b.elementInScope(buttonScope, "p") {
				b.parseImpliedToken(token.StartTagToken, "p")
			}
			b.popUntil(buttonScope, "p")
		case "li":
			b.popUntil(listItemScope, "li")
		case "dd", "dt":
			b.popUntil(defaultScope, b.tok.Name)
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.popUntil(defaultScope, "h1", "h2", "h3", "h4", "h5", "h6")
		case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small", "strike",
			"strong", "tt", "u":
			b.inBodyEndTagFormatting(b.tok.Name)
		case "applet", "marquee", "object":
			if b.popUntil(defaultScope, b.tok.Name) {
				b.clearActiveFormattingElements()
			}
		case "br":
			b.tok.Type = token.StartTagToken
			return false
		default:
			b.inBodyEndTagOther(b.tok.Name)
		}

	case token.CommentToken:
		b.addChild(&dom.Node{Type: dom.CommentNode, Data: b.tok.Text, Pos: b.tok.Pos})

	case token.EOFToken:
		return true
	}

	return true
}
