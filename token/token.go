package token

import "github.com/htmlkit/htmlkit/pos"

// Type discriminates the Token variants from spec.md §3.
type Type int

const (
	CharacterToken Type = iota
	StartTagToken
	EndTagToken
	CommentToken
	DoctypeToken
	EOFToken
)

func (t Type) String() string {
	switch t {
	case CharacterToken:
		return "Character"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "Doctype"
	case EOFToken:
		return "EOF"
	default:
		return "Invalid"
	}
}

// Attribute is an ordered (name, value) pair (spec.md §3). Name is
// lowercased on emit; value preserves case.
type Attribute struct {
	Name  string
	Value string
}

// Token is the tagged-variant output of the tokenizer (C3). Every field not
// relevant to Type is left zero. Every token records the (row, col) of its
// first character.
type Token struct {
	Type Type
	Pos  pos.Position

	// Character holds the single code point for CharacterToken.
	Character rune

	// Name holds the (lowercased) tag or doctype name for StartTag, EndTag,
	// and Doctype tokens.
	Name string

	// Attr holds the ordered, deduplicated attribute list for StartTag
	// tokens (first occurrence wins on a duplicate name, spec.md §3).
	Attr []Attribute

	// SelfClosing is set for a StartTag token written with a trailing "/>",
	// and for an EndTag token written with one (which is always a parse
	// error per spec.md §3).
	SelfClosing bool

	// Text holds the comment text for CommentToken.
	Text string

	// PublicID and SystemID hold a Doctype token's external identifiers.
	// HasPublicID/HasSystemID distinguish an absent identifier from an
	// empty-but-present one (e.g. <!DOCTYPE html PUBLIC "" "">).
	PublicID, SystemID       string
	HasPublicID, HasSystemID bool

	// ForceQuirks is set on a Doctype token whenever the tokenization
	// algorithm specifies it (spec.md §4.3.1 / SPEC_FULL §4.3.1).
	ForceQuirks bool
}

// String renders a short, human-readable form of the token, primarily for
// test failure messages and debugging.
func (t Token) String() string {
	switch t.Type {
	case CharacterToken:
		return "Character(" + string(t.Character) + ")"
	case StartTagToken:
		return "StartTag(<" + t.Name + ">)"
	case EndTagToken:
		return "EndTag(</" + t.Name + ">)"
	case CommentToken:
		return "Comment(" + t.Text + ")"
	case DoctypeToken:
		return "Doctype(" + t.Name + ")"
	case EOFToken:
		return "EOF"
	default:
		return "Invalid"
	}
}
