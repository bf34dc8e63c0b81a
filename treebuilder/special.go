package treebuilder

import "github.com/htmlkit/htmlkit/dom"

// specialElements is the set of tag names the adoption agency algorithm's
// "furthest block" search and the Li/Dd/Dt "any open element" stack walk
// both test against (spec.md §6.6's "special" category). golang.org/x/net/
// html keeps an equivalent table in its unexported foreign.go, which this
// module does not import (SPEC_FULL §11: this module supplies its own tree
// constructor rather than delegating to the reference one), so the set is
// reproduced here directly from the HTML5 "special" element list.
var specialElements = map[string]bool{
	"address": true, "applet": true, "area": true, "article": true, "aside": true,
	"base": true, "basefont": true, "bgsound": true, "blockquote": true, "body": true,
	"br": true, "button": true, "caption": true, "center": true, "col": true,
	"colgroup": true, "dd": true, "details": true, "dir": true, "div": true,
	"dl": true, "dt": true, "embed": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "frame": true, "frameset": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hgroup": true, "hr": true, "html": true,
	"iframe": true, "img": true, "input": true, "keygen": true, "li": true,
	"link": true, "listing": true, "main": true, "marquee": true, "menu": true,
	"meta": true, "nav": true, "noembed": true, "noframes": true, "noscript": true,
	"object": true, "ol": true, "p": true, "param": true, "plaintext": true,
	"pre": true, "script": true, "section": true, "select": true, "source": true,
	"style": true, "summary": true, "table": true, "tbody": true, "td": true,
	"template": true, "textarea": true, "tfoot": true, "th": true, "thead": true,
	"title": true, "tr": true, "track": true, "ul": true, "wbr": true,
	"xmp": true,
}

func isSpecialElement(n *dom.Node) bool {
	if n.Namespace != "" {
		return false
	}
	return specialElements[n.Data]
}
