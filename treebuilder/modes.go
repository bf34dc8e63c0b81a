package treebuilder

import (
	"github.com/htmlkit/htmlkit/dom"
	"github.com/htmlkit/htmlkit/perr"
	"github.com/htmlkit/htmlkit/token"
)

// initialIM is the Initial insertion mode (spec.md §4.5.1).
func initialIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		if isWhitespaceChar(b.tok.Character) {
			return true
		}
	case token.CommentToken:
		b.doc.Root.AppendChild(&dom.Node{Type: dom.CommentNode, Data: b.tok.Text, Pos: b.tok.Pos})
		return true
	case token.DoctypeToken:
		b.doc.Root.AppendChild(buildDoctype(b.tok))
		b.doc.Quirks = quirksMode(b.tok)
		b.im = beforeHTMLIM
		return true
	}
	b.im = beforeHTMLIM
	return false
}

// beforeHTMLIM is the BeforeHTML insertion mode.
func beforeHTMLIM(b *Builder) bool {
	switch b.tok.Type {
	case token.DoctypeToken:
		b.reportErr(perr.UnexpectedEndTag)
		return true
	case token.CommentToken:
		b.doc.Root.AppendChild(&dom.Node{Type: dom.CommentNode, Data: b.tok.Text, Pos: b.tok.Pos})
		return true
	case token.CharacterToken:
		if isWhitespaceChar(b.tok.Character) {
			return true
		}
	case token.StartTagToken:
		if b.tok.Name == "html" {
			b.addElement()
			b.im = beforeHeadIM
			return true
		}
	case token.EndTagToken:
		switch b.tok.Name {
		case "head", "body", "html", "br":
		default:
			b.reportErr(perr.StrayEndTagIgnored)
			return true
		}
	}
	// No <html> start tag appeared: spec.md §8's boundary cases are explicit
	// that nothing is synthesized ("no root" for empty/whitespace-only
	// input; <html></html> alone has zero children) — matching
	// original_source's parseLTagOpen/parseLTagClose, which open and close
	// elements literally with no implied ancestors. Hand the token straight
	// to InBody so it is built directly at the document root.
	b.im = inBodyIM
	return false
}

// beforeHeadIM is the BeforeHead insertion mode.
func beforeHeadIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		if isWhitespaceChar(b.tok.Character) {
			return true
		}
	case token.CommentToken:
		b.addChild(&dom.Node{Type: dom.CommentNode, Data: b.tok.Text, Pos: b.tok.Pos})
		return true
	case token.DoctypeToken:
		b.reportErr(perr.UnexpectedEndTag)
		return true
	case token.StartTagToken:
		switch b.tok.Name {
		case "html":
			return true
		case "head":
			b.addElement()
			b.im = inHeadIM
			return true
		}
	case token.EndTagToken:
		switch b.tok.Name {
		case "head", "body", "html", "br":
		default:
			b.reportErr(perr.StrayEndTagIgnored)
			return true
		}
	}
	// No <head> start tag appeared: don't imply one (spec.md §8). Hand the
	// token to InBody so it lands directly under <html> (or the document
	// root, if <html> itself was never opened either).
	b.im = inBodyIM
	return false
}

// inHeadIM is the InHead insertion mode.
func inHeadIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		if isWhitespaceChar(b.tok.Character) {
			b.addText(string(b.tok.Character))
			return true
		}
	case token.CommentToken:
		b.addChild(&dom.Node{Type: dom.CommentNode, Data: b.tok.Text, Pos: b.tok.Pos})
		return true
	case token.DoctypeToken:
		b.reportErr(perr.UnexpectedEndTag)
		return true
	case token.StartTagToken:
		switch b.tok.Name {
		case "html":
			return true
		case "base", "basefont", "bgsound", "link", "meta":
			b.addElement()
			b.oe.pop()
			return true
		case "title":
			b.addElement()
			b.setOriginalIM()
			b.im = textIM
			b.tokenizer.SetState("title")
			return true
		case "noframes", "style":
			b.addElement()
			b.setOriginalIM()
			b.im = textIM
			b.tokenizer.SetState(b.tok.Name)
			return true
		case "noscript":
			// Scripting is never enabled (this module doesn't execute
			// script), so noscript content is parsed as ordinary markup
			// rather than RAWTEXT, matching how the teacher's inBodyIM
			// handles the same element.
			b.addElement()
			return true
		case "script":
			b.addElement()
			b.setOriginalIM()
			b.im = textIM
			b.tokenizer.SetState("script")
			return true
		case "template":
			b.addElement()
			return true
		case "head":
			b.reportErr(perr.StrayEndTagIgnored)
			return true
		}
	case token.EndTagToken:
		switch b.tok.Name {
		case "head":
			b.oe.pop()
			b.im = afterHeadIM
			return true
		case "body", "html", "br":
		default:
			b.reportErr(perr.StrayEndTagIgnored)
			return true
		}
	}
	b.oe.pop()
	b.im = afterHeadIM
	return false
}

// afterHeadIM is the AfterHead insertion mode.
func afterHeadIM(b *Builder) bool {
	switch b.tok.Type {
	case token.CharacterToken:
		if isWhitespaceChar(b.tok.Character) {
			b.addText(string(b.tok.Character))
			return true
		}
	case token.CommentToken:
		b.addChild(&dom.Node{Type: dom.CommentNode, Data: b.tok.Text, Pos: b.tok.Pos})
		return true
	case token.DoctypeToken:
		b.reportErr(perr.UnexpectedEndTag)
		return true
	case token.StartTagToken:
		switch b.tok.Name {
		case "html":
			return true
		case "body":
			b.addElement()
			b.framesetOK = false
			b.im = inBodyIM
			return true
		case "frameset":
			// Frameset documents are out of scope (SPEC_FULL Non-goals);
			// treated as an ordinary element so the parse still completes.
			b.addElement()
			b.im = inBodyIM
			return true
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "title":
			// Rare "head content after </head>" case: delegate to InHead
			// without a lasting mode switch. The teacher's parser has no
			// equivalent since it never implements InHead at all; this is
			// a documented simplification versus pushing the head element
			// back onto the stack of open elements first.
			return inHeadIM(b)
		}
	case token.EndTagToken:
		switch b.tok.Name {
		case "body", "html", "br":
		default:
			b.reportErr(perr.StrayEndTagIgnored)
			return true
		}
	}
	// No <body> start tag appeared: don't imply one (spec.md §8). Hand the
	// token to InBody so it lands directly under <html> without a <body>
	// wrapper.
	b.im = inBodyIM
	return false
}

// textIM is the Text insertion mode, used while tokenizing RCDATA/RAWTEXT/
// script-data element content (spec.md §4.5.1).
func textIM(b *Builder) bool {
	switch b.tok.Type {
	case token.EOFToken:
		b.oe.pop()
	case token.CharacterToken:
		if n := b.oe.top(); n != nil && n.Data == "textarea" && n.FirstChild == nil && b.tok.Character == '\n' {
			return true
		}
		b.addText(string(b.tok.Character))
		return true
	case token.EndTagToken:
		b.oe.pop()
	}
	b.im = b.originalIM
	b.originalIM = nil
	return b.tok.Type == token.EndTagToken
}

// afterBodyIM is the AfterBody insertion mode.
func afterBodyIM(b *Builder) bool {
	switch b.tok.Type {
	case token.EOFToken:
		return true
	case token.CharacterToken:
		if isWhitespaceChar(b.tok.Character) {
			return inBodyIM(b)
		}
	case token.StartTagToken:
		if b.tok.Name == "html" {
			return inBodyIM(b)
		}
	case token.EndTagToken:
		if b.tok.Name == "html" {
			b.im = afterAfterBodyIM
			return true
		}
	case token.CommentToken:
		if len(b.oe) > 0 {
			b.oe[0].AppendChild(&dom.Node{Type: dom.CommentNode, Data: b.tok.Text, Pos: b.tok.Pos})
		}
		return true
	}
	b.im = inBodyIM
	return false
}

// afterAfterBodyIM is the AfterAfterBody insertion mode: only comments,
// whitespace, and a stray <html> are expected; anything else reverts to
// InBody (spec.md §4.5.1).
func afterAfterBodyIM(b *Builder) bool {
	switch b.tok.Type {
	case token.EOFToken:
		return true
	case token.CommentToken:
		b.doc.Root.AppendChild(&dom.Node{Type: dom.CommentNode, Data: b.tok.Text, Pos: b.tok.Pos})
		return true
	case token.CharacterToken:
		if isWhitespaceChar(b.tok.Character) {
			return inBodyIM(b)
		}
	case token.StartTagToken:
		if b.tok.Name == "html" {
			return inBodyIM(b)
		}
	}
	b.im = inBodyIM
	return false
}

func isWhitespaceChar(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// inTableIM is the one table-family insertion mode actually wired into
// dispatch (set by inBodyIM on a <table> start tag, see inbody.go): table
// elements are still built as ordinary elements under the InBody rules
// (SPEC_FULL §4.5.1's "recognized, not fully algorithmically implemented"
// scoping), exactly as the teacher's own parser does (its fosterParenting
// field is wired but, absent InTableText/InCaption/..., never drives any
// mode-specific logic beyond the foster-parenting check in addChild). The
// other seven table/select-family modes spec.md §4.5 lists were dropped:
// unlike inTableIM, nothing ever set b.im to them, so they were unreachable
// dead code rather than wired stubs (see DESIGN.md).
func inTableIM(b *Builder) bool { return inBodyIM(b) }
