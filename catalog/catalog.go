// Package catalog is the element catalog (C2): static, process-wide metadata
// about known HTML element names, loaded once and safe to share across
// parser instances.
package catalog

import (
	"golang.org/x/net/html/atom"
)

// Flags is a bitset of content-model properties for an element.
type Flags uint16

const (
	// Void elements have no children and no end tag.
	Void Flags = 1 << iota
	// RawText elements are tokenized as literal text (no markup, no
	// character references) until their matching end tag.
	RawText
	// EscapableRawText elements are tokenized as text but character
	// references are still recognized.
	EscapableRawText
	// ScriptData elements use the script-data tokenizer family, which
	// additionally recognizes the escaped/double-escaped sub-states used
	// to tolerate "</script>" appearing inside commented-out script bodies.
	ScriptData
	// Foreign marks elements whose subtree (SVG, MathML) is not ordinary
	// HTML content; the tree constructor stops applying HTML insertion
	// rules to their descendants.
	Foreign
	// OmitEndAllowed marks elements whose end tag may be omitted because a
	// following sibling or an enclosing end tag implicitly closes them
	// (li, p, dd, dt, rt, rp, td, th, tr, option, optgroup, ...).
	OmitEndAllowed
)

// TokenizerMode is the tokenizer state a start tag switches into, per
// spec.md §4.2's tokenizer_mode_after_start.
type TokenizerMode int

const (
	Data TokenizerMode = iota
	RCDATA
	RAWTEXT
	ScriptDataMode
	PlainText
)

// Entry is the catalog record for one known element name.
type Entry struct {
	Atom  atom.Atom
	Flags Flags
}

// table is keyed by atom.Atom rather than by string: every known HTML
// element name already has a stable atom.Atom assigned by
// golang.org/x/net/html/atom, so this reuses that table as the bijective
// name<->enum map spec.md §4.2 asks for instead of hand-rolling a second one.
var table = map[atom.Atom]Flags{
	atom.Area:  Void,
	atom.Base:  Void,
	atom.Br:    Void,
	atom.Col:   Void,
	atom.Embed: Void,
	atom.Hr:    Void,
	atom.Img:   Void,
	atom.Input: Void,
	atom.Link:  Void,
	atom.Meta:  Void,
	atom.Source: Void,
	atom.Track: Void,
	atom.Wbr:   Void,

	atom.Style:    RawText,
	atom.Xmp:      RawText,
	atom.Iframe:   RawText,
	atom.Noembed:  RawText,
	atom.Noframes: RawText,
	atom.Noscript: RawText,

	atom.Textarea: EscapableRawText,
	atom.Title:    EscapableRawText,

	atom.Script: ScriptData,

	atom.Template: OmitEndAllowed,

	// Elements whose end tag may be omitted because it is implied by a
	// following sibling of the same kind, or by the enclosing element's end
	// tag. Grounded in original_source's htmlElements_e special cases
	// (HTML_LI, HTML_DT, HTML_DD, HTML_RT, HTML_RP, HTML_TD).
	atom.Li:       OmitEndAllowed,
	atom.Dt:       OmitEndAllowed,
	atom.Dd:       OmitEndAllowed,
	atom.Rt:       OmitEndAllowed,
	atom.Rp:       OmitEndAllowed,
	atom.Td:       OmitEndAllowed,
	atom.Th:       OmitEndAllowed,
	atom.Tr:       OmitEndAllowed,
	atom.Option:   OmitEndAllowed,
	atom.Optgroup: OmitEndAllowed,
	atom.P:        OmitEndAllowed,

	// Foreign content roots. Descendants of these are not tokenized or
	// tree-constructed as ordinary HTML (spec.md's foreign-tag Non-goal:
	// recognized, not interpreted).
	atom.Svg: Foreign,
	atom.Math: Foreign,
}

// Lookup returns the catalog entry for name, and whether name is a known
// element. Unknown names (including all foreign/custom tags not listed
// above) pass through as opaque strings per spec.md §4.2 and are treated as
// ordinary Data-mode elements with no special flags.
func Lookup(name string) (Entry, bool) {
	a := atom.Lookup([]byte(name))
	if a == 0 {
		return Entry{}, false
	}
	flags, ok := table[a]
	if !ok {
		return Entry{Atom: a}, true
	}
	return Entry{Atom: a, Flags: flags}, true
}

// LookupAtom is Lookup for a caller that already resolved the atom (the
// tokenizer and tree constructor both do, while building a token/element).
func LookupAtom(a atom.Atom) Flags {
	return table[a]
}

// Name returns the canonical lowercase spelling of a, or "" if a is zero.
func Name(a atom.Atom) string {
	return a.String()
}

// IsVoid reports whether name is one of the fixed void elements.
func IsVoid(name string) bool {
	e, ok := Lookup(name)
	return ok && e.Flags&Void != 0
}

// TokenizerModeAfterStart returns which tokenizer state a start tag named
// name should switch into, per spec.md §4.2.
func TokenizerModeAfterStart(name string) TokenizerMode {
	e, ok := Lookup(name)
	if !ok {
		return Data
	}
	switch {
	case e.Atom == atom.Plaintext:
		return PlainText
	case e.Flags&ScriptData != 0:
		return ScriptDataMode
	case e.Flags&RawText != 0:
		return RAWTEXT
	case e.Flags&EscapableRawText != 0:
		return RCDATA
	default:
		return Data
	}
}
