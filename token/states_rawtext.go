package token

import "github.com/htmlkit/htmlkit/perr"

// The RCDATA, RAWTEXT, script-data, and PlainText families (spec.md §4.3)
// all tokenize character data under a "look for </lastStartTag" end-tag
// match, differing only in whether '&' starts a character reference
// (RCDATA only) and whether a comment-like escape sequence is recognized
// (script data only). t.tempBuf accumulates the candidate end-tag name;
// t.lastStartTag is compared case-insensitively against it.

// stateRCDATA tokenizes <title>/<textarea> content: character references are
// recognized, but tags (other than the matching end tag) are not.
func stateRCDATA(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case '&':
		t.returnState = stateRCDATA
		t.charRefInAttribute = false
		return stateCharacterReference
	case '<':
		t.tokPos = p
		return stateRCDATALessThan
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return stateRCDATA
	case EOF:
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return stateRCDATA
	}
}

func stateRCDATALessThan(t *Tokenizer) stateFn {
	if t.input.Peek() == '/' {
		t.input.Consume()
		t.tempBuf = t.tempBuf[:0]
		return stateRCDATAEndTagOpen
	}
	t.emitChar(t.tokPos, '<')
	return stateRCDATA
}

func stateRCDATAEndTagOpen(t *Tokenizer) stateFn {
	if isASCIIAlpha(t.input.Peek()) {
		t.startNewTag(true)
		return stateRCDATAEndTagName
	}
	t.emitChar(t.tokPos, '<')
	t.emitChar(t.input.Position(), '/')
	return stateRCDATA
}

func stateRCDATAEndTagName(t *Tokenizer) stateFn {
	return genericEndTagName(t, stateRCDATA)
}

// stateRAWTEXT tokenizes <style>/<xmp>/<iframe>/<noembed>/<noframes> raw
// content (<textarea> and <title> use stateRCDATA instead): neither
// character references nor nested tags are recognized.
func stateRAWTEXT(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case '<':
		t.tokPos = p
		return stateRAWTEXTLessThan
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return stateRAWTEXT
	case EOF:
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return stateRAWTEXT
	}
}

func stateRAWTEXTLessThan(t *Tokenizer) stateFn {
	if t.input.Peek() == '/' {
		t.input.Consume()
		t.tempBuf = t.tempBuf[:0]
		return stateRAWTEXTEndTagOpen
	}
	t.emitChar(t.tokPos, '<')
	return stateRAWTEXT
}

func stateRAWTEXTEndTagOpen(t *Tokenizer) stateFn {
	if isASCIIAlpha(t.input.Peek()) {
		t.startNewTag(true)
		return stateRAWTEXTEndTagName
	}
	t.emitChar(t.tokPos, '<')
	t.emitChar(t.input.Position(), '/')
	return stateRAWTEXT
}

func stateRAWTEXTEndTagName(t *Tokenizer) stateFn {
	return genericEndTagName(t, stateRAWTEXT)
}

// statePlainText tokenizes the rest of the document as plain character
// data with no markup recognized at all (spec.md §4.2: the PLAINTEXT
// element, which has no end tag).
func statePlainText(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return statePlainText
	case EOF:
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return statePlainText
	}
}

// genericEndTagName implements the shared "is this an appropriate end tag
// token" decision spec.md §4.3 uses for RCDATA/RAWTEXT/script-data end-tag
// matching: only a case-insensitive match against lastStartTag, followed by
// whitespace, '/', or '>', is treated as a real end tag; anything else
// reverts to emitting the consumed text literally.
func genericEndTagName(t *Tokenizer, fallback stateFn) stateFn {
	for {
		c := t.input.Consume()
		switch {
		case isWhitespace(c) && appropriateEndTag(t):
			return stateBeforeAttrName
		case c == '/' && appropriateEndTag(t):
			return stateSelfClosingStartTag
		case c == '>' && appropriateEndTag(t):
			t.emitCurrentTag()
			return stateData
		case isASCIIAlpha(c):
			t.appendTagName(c)
			t.tempBuf = append(t.tempBuf, c)
		default:
			t.input.Reconsume()
			t.emitChar(t.tokPos, '<')
			t.emitChar(t.tokPos, '/')
			for _, r := range t.tempBuf {
				t.emitChar(t.tokPos, r)
			}
			return fallback
		}
	}
}

func appropriateEndTag(t *Tokenizer) bool {
	return len(t.lastStartTag) > 0 && string(t.tagNameBuf) == t.lastStartTag
}

// --- script data ----------------------------------------------------------

func stateScriptData(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case '<':
		t.tokPos = p
		return stateScriptDataLessThan
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return stateScriptData
	case EOF:
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return stateScriptData
	}
}

func stateScriptDataLessThan(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch c {
	case '/':
		t.input.Consume()
		t.tempBuf = t.tempBuf[:0]
		return stateScriptDataEndTagOpen
	case '!':
		t.input.Consume()
		t.emitChar(t.tokPos, '<')
		t.emitChar(t.input.Position(), '!')
		return stateScriptDataEscapeStart
	default:
		t.emitChar(t.tokPos, '<')
		return stateScriptData
	}
}

func stateScriptDataEndTagOpen(t *Tokenizer) stateFn {
	if isASCIIAlpha(t.input.Peek()) {
		t.startNewTag(true)
		return stateScriptDataEndTagName
	}
	t.emitChar(t.tokPos, '<')
	t.emitChar(t.input.Position(), '/')
	return stateScriptData
}

func stateScriptDataEndTagName(t *Tokenizer) stateFn {
	return genericEndTagName(t, stateScriptData)
}

func stateScriptDataEscapeStart(t *Tokenizer) stateFn {
	if t.input.Peek() == '-' {
		t.input.Consume()
		t.emitChar(t.input.Position(), '-')
		return stateScriptDataEscapeStartDash
	}
	return stateScriptData
}

func stateScriptDataEscapeStartDash(t *Tokenizer) stateFn {
	if t.input.Peek() == '-' {
		t.input.Consume()
		t.emitChar(t.input.Position(), '-')
		return stateScriptDataEscapedDashDash
	}
	return stateScriptData
}

func stateScriptDataEscaped(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case '-':
		t.emitChar(p, '-')
		return stateScriptDataEscapedDash
	case '<':
		t.tokPos = p
		return stateScriptDataEscapedLessThan
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return stateScriptDataEscaped
	case EOF:
		t.reportErr(perr.EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return stateScriptDataEscaped
	}
}

func stateScriptDataEscapedDash(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case '-':
		t.emitChar(p, '-')
		return stateScriptDataEscapedDashDash
	case '<':
		t.tokPos = p
		return stateScriptDataEscapedLessThan
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return stateScriptDataEscaped
	case EOF:
		t.reportErr(perr.EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return stateScriptDataEscaped
	}
}

func stateScriptDataEscapedDashDash(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case '-':
		t.emitChar(p, '-')
		return stateScriptDataEscapedDashDash
	case '<':
		t.tokPos = p
		return stateScriptDataEscapedLessThan
	case '>':
		t.emitChar(p, '>')
		return stateScriptData
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return stateScriptDataEscaped
	case EOF:
		t.reportErr(perr.EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return stateScriptDataEscaped
	}
}

func stateScriptDataEscapedLessThan(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch c {
	case '/':
		t.input.Consume()
		t.tempBuf = t.tempBuf[:0]
		return stateScriptDataEscapedEndTagOpen
	default:
		if isASCIIAlpha(c) {
			t.tempBuf = t.tempBuf[:0]
			t.emitChar(t.tokPos, '<')
			return stateScriptDataDoubleEscapeStart
		}
		t.emitChar(t.tokPos, '<')
		return stateScriptDataEscaped
	}
}

func stateScriptDataEscapedEndTagOpen(t *Tokenizer) stateFn {
	if isASCIIAlpha(t.input.Peek()) {
		t.startNewTag(true)
		return stateScriptDataEscapedEndTagName
	}
	t.emitChar(t.tokPos, '<')
	t.emitChar(t.input.Position(), '/')
	return stateScriptDataEscaped
}

func stateScriptDataEscapedEndTagName(t *Tokenizer) stateFn {
	return genericEndTagName(t, stateScriptDataEscaped)
}

func stateScriptDataDoubleEscapeStart(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c) || c == '/' || c == '>':
		t.input.Consume()
		t.emitChar(t.input.Position(), c)
		if matchCaseInsensitive(t.tempBuf, "script") && len(t.tempBuf) == len("script") {
			return stateScriptDataDoubleEscaped
		}
		return stateScriptDataEscaped
	case isASCIIAlpha(c):
		t.input.Consume()
		t.tempBuf = append(t.tempBuf, lowerASCII(c))
		t.emitChar(t.input.Position(), c)
		return stateScriptDataDoubleEscapeStart
	default:
		return stateScriptDataEscaped
	}
}

func stateScriptDataDoubleEscaped(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case '-':
		t.emitChar(p, '-')
		return stateScriptDataDoubleEscapedDash
	case '<':
		t.emitChar(p, '<')
		return stateScriptDataDoubleEscapedLessThan
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return stateScriptDataDoubleEscaped
	case EOF:
		t.reportErr(perr.EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return stateScriptDataDoubleEscaped
	}
}

func stateScriptDataDoubleEscapedDash(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case '-':
		t.emitChar(p, '-')
		return stateScriptDataDoubleEscapedDashDash
	case '<':
		t.emitChar(p, '<')
		return stateScriptDataDoubleEscapedLessThan
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return stateScriptDataDoubleEscaped
	case EOF:
		t.reportErr(perr.EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return stateScriptDataDoubleEscaped
	}
}

func stateScriptDataDoubleEscapedDashDash(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case '-':
		t.emitChar(p, '-')
		return stateScriptDataDoubleEscapedDashDash
	case '<':
		t.emitChar(p, '<')
		return stateScriptDataDoubleEscapedLessThan
	case '>':
		t.emitChar(p, '>')
		return stateScriptData
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return stateScriptDataDoubleEscaped
	case EOF:
		t.reportErr(perr.EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return stateScriptDataDoubleEscaped
	}
}

func stateScriptDataDoubleEscapedLessThan(t *Tokenizer) stateFn {
	if t.input.Peek() == '/' {
		t.input.Consume()
		t.tempBuf = t.tempBuf[:0]
		t.emitChar(t.input.Position(), '/')
		return stateScriptDataDoubleEscapeEnd
	}
	return stateScriptDataDoubleEscaped
}

func stateScriptDataDoubleEscapeEnd(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c) || c == '/' || c == '>':
		t.input.Consume()
		t.emitChar(t.input.Position(), c)
		if matchCaseInsensitive(t.tempBuf, "script") && len(t.tempBuf) == len("script") {
			return stateScriptDataEscaped
		}
		return stateScriptDataDoubleEscaped
	case isASCIIAlpha(c):
		t.input.Consume()
		t.tempBuf = append(t.tempBuf, lowerASCII(c))
		t.emitChar(t.input.Position(), c)
		return stateScriptDataDoubleEscapeEnd
	default:
		return stateScriptDataDoubleEscaped
	}
}
