// Package perr defines the parse-error taxonomy shared by the tokenizer and
// tree constructor (spec.md §7): recoverable, reportable diagnostics that
// never abort a parse, plus the two hard-error kinds that do.
package perr

import (
	"fmt"

	"github.com/htmlkit/htmlkit/pos"
)

// Kind names a recoverable parse error. Values follow the WHATWG HTML5
// tokenization/tree-construction error names (spec.md §7: "~60 named kinds
// per HTML5 spec").
type Kind string

// Tokenizer-level error kinds.
const (
	UnexpectedNullCharacter       Kind = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTagName Kind = "unexpected-question-mark-instead-of-tag-name"
	EOFBeforeTagName              Kind = "eof-before-tag-name"
	InvalidFirstCharacterOfTagName Kind = "invalid-first-character-of-tag-name"
	MissingEndTagName             Kind = "missing-end-tag-name"
	EOFInTag                      Kind = "eof-in-tag"
	EOFInScriptHTMLCommentLikeText Kind = "eof-in-script-html-comment-like-text"
	UnexpectedEqualsSignBeforeAttributeName Kind = "unexpected-equals-sign-before-attribute-name"
	UnexpectedCharacterInAttributeName Kind = "unexpected-character-in-attribute-name"
	MissingAttributeValue         Kind = "missing-attribute-value"
	UnexpectedCharacterInUnquotedAttributeValue Kind = "unexpected-character-in-unquoted-attribute-value"
	MissingWhitespaceBetweenAttributes Kind = "missing-whitespace-between-attributes"
	UnexpectedSolidusInTag        Kind = "unexpected-solidus-in-tag"
	DuplicateAttribute            Kind = "duplicate-attribute"
	EndTagWithAttributes          Kind = "end-tag-with-attributes"
	EndTagWithTrailingSolidus     Kind = "end-tag-with-trailing-solidus"
	AbruptClosingOfEmptyComment   Kind = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier Kind = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier Kind = "abrupt-doctype-system-identifier"
	CDATAInHTMLContent            Kind = "cdata-in-html-content"
	IncorrectlyClosedComment      Kind = "incorrectly-closed-comment"
	IncorrectlyOpenedComment      Kind = "incorrectly-opened-comment"
	EOFInComment                  Kind = "eof-in-comment"
	EOFInDoctype                  Kind = "eof-in-doctype"
	NestedComment                 Kind = "nested-comment"
	MissingDoctypeName            Kind = "missing-doctype-name"
	MissingDoctypePublicIdentifier Kind = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier Kind = "missing-doctype-system-identifier"
	MissingQuoteBeforeDoctypePublicIdentifier Kind = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDoctypeSystemIdentifier Kind = "missing-quote-before-doctype-system-identifier"
	MissingWhitespaceAfterDoctypePublicKeyword Kind = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDoctypeSystemKeyword Kind = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName Kind = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers Kind = "missing-whitespace-between-doctype-public-and-system-identifiers"
	UnexpectedCharacterAfterDoctypeSystemIdentifier Kind = "unexpected-character-after-doctype-system-identifier"
	EOFInCDATA                    Kind = "eof-in-cdata"
	SurrogateInInputStream        Kind = "surrogate-in-input-stream"
	NoncharacterInInputStream     Kind = "noncharacter-in-input-stream"
	ControlCharacterInInputStream Kind = "control-character-in-input-stream"
	MissingSemicolonAfterCharacterReference Kind = "missing-semicolon-after-character-reference"
	UnknownNamedCharacterReference Kind = "unknown-named-character-reference"
	AbsenceOfDigitsInNumericCharacterReference Kind = "absence-of-digits-in-numeric-character-reference"
	CharacterReferenceOutsideUnicodeRange Kind = "character-reference-outside-unicode-range"
	NullCharacterReference        Kind = "null-character-reference"
	SurrogateCharacterReference   Kind = "surrogate-character-reference"
	ControlCharacterReference     Kind = "control-character-reference"
	NoncharacterCharacterReference Kind = "noncharacter-character-reference"

	// Tree-construction error kinds.
	UnexpectedEndTag               Kind = "unexpected-end-tag"
	UnexpectedStartTagImpliesEndTag Kind = "unexpected-start-tag-implies-end-tag"
	StrayEndTagIgnored             Kind = "stray-end-tag-ignored"
	SelfClosingOnNonVoidElement    Kind = "non-void-html-element-start-tag-with-trailing-solidus-tree"
	MisplacedDoctype               Kind = "misplaced-doctype"
)

// Fatal distinguishes the two hard-error kinds from spec.md §7: I/O failure
// and internal invariant violation. Neither is reported through Sink;
// both abort the current parse.
type Fatal string

const (
	FatalIO        Fatal = "io-error"
	FatalInvariant Fatal = "invariant-violation"
)

// FatalError is a structured hard-error value (never reported to a Sink)
// pairing a Fatal kind with the position it occurred at. The tokenizer and
// tree constructor do not construct one: an error from the byte source is
// returned by Parse as is, unwrapped.
type FatalError struct {
	Kind Fatal
	Pos  pos.Position
	Err  error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Err)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Pos)
}

func (e *FatalError) Unwrap() error { return e.Err }

// Sink receives parse-error reports. It is purely observational: it never
// throws back into the parser (spec.md §6). A nil Sink is valid and simply
// discards every report.
type Sink interface {
	Report(kind Kind, p pos.Position)
}

// DiscardSink implements Sink by ignoring every report. It is the default
// used when a caller passes a nil Sink.
type DiscardSink struct{}

func (DiscardSink) Report(Kind, pos.Position) {}

// CollectSink accumulates every report in order, for tests and callers that
// want the whole list rather than a streaming callback.
type CollectSink struct {
	Errors []Reported
}

// Reported pairs an error kind with the position it was reported at.
type Reported struct {
	Kind Kind
	Pos  pos.Position
}

func (s *CollectSink) Report(kind Kind, p pos.Position) {
	s.Errors = append(s.Errors, Reported{Kind: kind, Pos: p})
}

// FuncSink adapts a plain function to Sink.
type FuncSink func(kind Kind, p pos.Position)

func (f FuncSink) Report(kind Kind, p pos.Position) { f(kind, p) }

// Report sends kind at p to sink, tolerating a nil sink (spec.md §7:
// "Absent a sink, parse errors are silently suppressed").
func Report(sink Sink, kind Kind, p pos.Position) {
	if sink == nil {
		return
	}
	sink.Report(kind, p)
}
