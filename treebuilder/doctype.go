package treebuilder

import (
	"strings"

	"github.com/htmlkit/htmlkit/dom"
	"github.com/htmlkit/htmlkit/token"
)

// buildDoctype turns a fully-tokenized Doctype token into a dom.Node and
// determines the document's quirks mode (spec.md §5.2 / SPEC_FULL §4.3.1).
// Unlike chtml/html/doctype.go's parseDoctype, which re-parses a DOCTYPE's
// raw text after the fact, this module's tokenizer already split name,
// public ID, and system ID into the token's own fields (SPEC_FULL §4.3.1),
// so construction here is direct.
func buildDoctype(tok token.Token) *dom.Node {
	n := &dom.Node{
		Type: dom.DoctypeNode,
		Data: tok.Name,
		Pos:  tok.Pos,
	}
	if tok.HasPublicID {
		n.PublicID = tok.PublicID
	}
	if tok.HasSystemID {
		n.SystemID = tok.SystemID
	}
	return n
}

// quirksMode implements the WHATWG "quirks mode" determination a DOCTYPE
// token selects.
func quirksMode(tok token.Token) dom.QuirksMode {
	if tok.ForceQuirks {
		return dom.Quirks
	}
	if tok.Name != "html" {
		return dom.Quirks
	}
	pub := strings.ToLower(tok.PublicID)
	sys := strings.ToLower(tok.SystemID)

	if pub == "-//w3o//dtd w3 html strict 3.0//en//" || pub == "-/w3d/dtd html 4.0 transitional/en" || pub == "html" {
		return dom.Quirks
	}
	if sys == "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd" {
		return dom.Quirks
	}
	for _, p := range quirksPublicPrefixes {
		if strings.HasPrefix(pub, p) {
			return dom.Quirks
		}
	}
	if tok.HasSystemID {
		for _, p := range quirksPublicPrefixesWithSystem {
			if strings.HasPrefix(pub, p) {
				return dom.Quirks
			}
		}
	} else {
		for _, p := range quirksPublicPrefixesNoSystemOnly {
			if strings.HasPrefix(pub, p) {
				return dom.Quirks
			}
		}
	}
	for _, p := range limitedQuirksPublicPrefixes {
		if strings.HasPrefix(pub, p) {
			return dom.LimitedQuirks
		}
	}
	if tok.HasSystemID {
		for _, p := range limitedQuirksPublicPrefixesWithSystem {
			if strings.HasPrefix(pub, p) {
				return dom.LimitedQuirks
			}
		}
	}
	return dom.NoQuirks
}

var quirksPublicPrefixes = []string{
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 2.1e//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

var quirksPublicPrefixesWithSystem []string

var quirksPublicPrefixesNoSystemOnly = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}

var limitedQuirksPublicPrefixes = []string{
	"-//w3c//dtd xhtml 1.0 frameset//",
	"-//w3c//dtd xhtml 1.0 transitional//",
}

var limitedQuirksPublicPrefixesWithSystem = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}
