// Package token implements the buffered input stream (C1) and the HTML5
// tokenization state machine (C3) from spec.md §4.1 and §4.3.
package token

import (
	"github.com/htmlkit/htmlkit/catalog"
	"github.com/htmlkit/htmlkit/perr"
	"github.com/htmlkit/htmlkit/pos"
)

// stateFn is one state of the tokenizer's state machine (spec.md §9: "a
// pure function of (current_char, token_under_construction, temp_buffer) ->
// (next_state, optional_emit)"). It reads zero or more code points from the
// input and returns the next state. An exhausted switch over every stateFn
// value reachable from stateData is, by construction, an exhaustive
// enumeration of the ~70 states spec.md §4.3 requires.
type stateFn func(t *Tokenizer) stateFn

// Tokenizer drives the state machine over an InputStream, emitting one
// Token per Next call.
type Tokenizer struct {
	input *InputStream
	sink  perr.Sink

	state      stateFn
	returnState stateFn // saved state for character-reference recursion

	tok    Token   // token under construction
	tokPos pos.Position

	tagNameBuf []rune
	dataBuf    []rune // comment text / doctype identifier / character-reference output accumulator

	attrName    []rune
	attrValue   []rune
	curAttrPos  pos.Position
	attrInTag   bool // currently accumulating an attribute for tok

	tempBuf []rune // end-tag matching buffer (RCDATA/RAWTEXT/ScriptData)

	lastStartTag string

	charRefCode         int64
	charRefInAttribute  bool
	charRefStartPos     pos.Position

	allowCDATA bool // set by the tree constructor while inside foreign content

	pending []Token
	eofSent bool
	blocked bool

	fatal error
}

// NewTokenizer creates a Tokenizer reading from input, starting in the Data
// state.
func NewTokenizer(input *InputStream, sink perr.Sink) *Tokenizer {
	t := &Tokenizer{input: input, sink: sink, state: stateData}
	return t
}

// SetState switches the tokenizer into the mode appropriate for the given
// element name (spec.md §4.2/§4.5): the tree constructor calls this right
// after emitting a start tag whose category requires RCDATA, RAWTEXT,
// script-data, or PlainText tokenization, before pulling the next token.
// Looking the name up against the element catalog here is what spec.md §2
// means by "C3 consults C2".
func (t *Tokenizer) SetState(name string) {
	t.lastStartTag = name
	switch catalog.TokenizerModeAfterStart(name) {
	case catalog.RCDATA:
		t.state = stateRCDATA
	case catalog.RAWTEXT:
		t.state = stateRAWTEXT
	case catalog.ScriptDataMode:
		t.state = stateScriptData
	case catalog.PlainText:
		t.state = statePlainText
	default:
		t.state = stateData
	}
}

// AllowCDATA toggles whether a CDATA section is parsed as a CDATA section
// (inside foreign content) or as a bogus comment (spec.md §4.3's CDATA
// state is only reachable from foreign content).
func (t *Tokenizer) AllowCDATA(allow bool) {
	t.allowCDATA = allow
}

// Err returns the fatal I/O error that stopped tokenization, if any.
func (t *Tokenizer) Err() error {
	if t.fatal != nil {
		return t.fatal
	}
	return t.input.Err()
}

// NeedMore reports whether Next returned without a token because the
// source would block (spec.md §5).
func (t *Tokenizer) NeedMore() bool {
	return t.blocked
}

// Next advances the state machine until it has a token ready, and returns
// it. After the EOFToken, Next keeps returning EOFToken (spec.md invariant:
// "exactly one EOF token is emitted; it is the last token" — callers that
// keep calling Next anyway get a clean, repeatable terminal value rather
// than a crash).
func (t *Tokenizer) Next() Token {
	t.blocked = false
	for len(t.pending) == 0 {
		if t.eofSent {
			return Token{Type: EOFToken, Pos: t.tok.Pos}
		}
		if t.fatal != nil || t.input.Err() != nil {
			t.fatal = t.input.Err()
			return Token{Type: EOFToken}
		}
		if c := t.input.Peek(); c == EOF && t.input.NeedMore() {
			t.blocked = true
			return Token{}
		}
		t.state = t.state(t)
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	if tok.Type == EOFToken {
		t.eofSent = true
	}
	return tok
}

// --- token assembly helpers ---------------------------------------------

func (t *Tokenizer) emit(tok Token) {
	t.pending = append(t.pending, tok)
}

func (t *Tokenizer) emitChar(p pos.Position, r rune) {
	t.emit(Token{Type: CharacterToken, Pos: p, Character: r})
}

func (t *Tokenizer) emitEOF() {
	t.emit(Token{Type: EOFToken, Pos: t.input.Position()})
}

func (t *Tokenizer) reportErr(kind perr.Kind) {
	perr.Report(t.sink, kind, t.input.Position())
}

func (t *Tokenizer) reportErrAt(kind perr.Kind, p pos.Position) {
	perr.Report(t.sink, kind, p)
}

// startNewTag begins a StartTag or EndTag token at the current position.
func (t *Tokenizer) startNewTag(end bool) {
	typ := StartTagToken
	if end {
		typ = EndTagToken
	}
	t.tok = Token{Type: typ, Pos: t.tokPos}
	t.tagNameBuf = t.tagNameBuf[:0]
}

func (t *Tokenizer) appendTagName(r rune) {
	t.tagNameBuf = append(t.tagNameBuf, lowerASCII(r))
}

// finishAttr appends the in-progress attribute to tok.Attr, discarding it
// (with a parse error) if its name duplicates an earlier attribute on the
// same tag (spec.md §3: "first occurrence wins").
func (t *Tokenizer) finishAttr() {
	if !t.attrInTag {
		return
	}
	t.attrInTag = false
	name := string(t.attrName)
	if name == "" {
		return
	}
	for _, a := range t.tok.Attr {
		if a.Name == name {
			t.reportErrAt(perr.DuplicateAttribute, t.curAttrPos)
			return
		}
	}
	t.tok.Attr = append(t.tok.Attr, Attribute{Name: name, Value: string(t.attrValue)})
}

func (t *Tokenizer) emitCurrentTag() {
	t.finishAttr()
	t.tok.Name = string(t.tagNameBuf)
	if t.tok.Type == StartTagToken {
		t.lastStartTag = t.tok.Name
	}
	if t.tok.Type == EndTagToken {
		if len(t.tok.Attr) > 0 {
			t.reportErr(perr.EndTagWithAttributes)
		}
		if t.tok.SelfClosing {
			t.reportErr(perr.EndTagWithTrailingSolidus)
		}
	}
	t.emit(t.tok)
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIAlnum(r rune) bool {
	return isASCIIAlpha(r) || (r >= '0' && r <= '9')
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ':
		return true
	}
	return false
}
