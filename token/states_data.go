package token

import "github.com/htmlkit/htmlkit/perr"

// stateData is the Data state (spec.md §4.3): the default state outside any
// tag or markup declaration.
func stateData(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch c {
	case '&':
		t.returnState = stateData
		t.charRefInAttribute = false
		return stateCharacterReference
	case '<':
		t.tokPos = p
		return stateTagOpen
	case 0:
		t.reportErrAt(perr.UnexpectedNullCharacter, p)
		t.emitChar(p, 0xFFFD)
		return stateData
	case EOF:
		t.emitEOF()
		return stateData
	default:
		t.emitChar(p, c)
		return stateData
	}
}

// stateTagOpen is the TagOpen state.
func stateTagOpen(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch {
	case c == '!':
		return stateMarkupDeclarationOpen
	case c == '/':
		return stateEndTagOpen
	case isASCIIAlpha(c):
		t.input.Reconsume()
		t.startNewTag(false)
		return stateTagName
	case c == '?':
		t.reportErrAt(perr.UnexpectedQuestionMarkInsteadOfTagName, p)
		t.input.Reconsume()
		t.dataBuf = t.dataBuf[:0]
		t.tok = Token{Type: CommentToken, Pos: t.tokPos}
		return stateBogusComment
	case c == EOF:
		t.reportErrAt(perr.EOFBeforeTagName, p)
		t.emitChar(t.tokPos, '<')
		t.emitEOF()
		return stateData
	default:
		t.reportErrAt(perr.InvalidFirstCharacterOfTagName, p)
		t.emitChar(t.tokPos, '<')
		t.input.Reconsume()
		return stateData
	}
}

func stateEndTagOpen(t *Tokenizer) stateFn {
	p := t.input.Position()
	c := t.input.Consume()
	switch {
	case isASCIIAlpha(c):
		t.input.Reconsume()
		t.startNewTag(true)
		return stateTagName
	case c == '>':
		t.reportErrAt(perr.MissingEndTagName, p)
		return stateData
	case c == EOF:
		t.reportErrAt(perr.EOFBeforeTagName, p)
		t.emitChar(t.tokPos, '<')
		t.emitChar(p, '/')
		t.emitEOF()
		return stateData
	default:
		t.reportErrAt(perr.InvalidFirstCharacterOfTagName, p)
		t.input.Reconsume()
		t.dataBuf = t.dataBuf[:0]
		t.tok = Token{Type: CommentToken, Pos: t.tokPos}
		return stateBogusComment
	}
}

func stateTagName(t *Tokenizer) stateFn {
	for {
		c := t.input.Consume()
		switch {
		case isWhitespace(c):
			return stateBeforeAttrName
		case c == '/':
			return stateSelfClosingStartTag
		case c == '>':
			t.emitCurrentTag()
			return stateData
		case c == 0:
			t.reportErr(perr.UnexpectedNullCharacter)
			t.appendTagName(0xFFFD)
		case c == EOF:
			t.reportErr(perr.EOFInTag)
			t.emitEOF()
			return stateData
		default:
			t.appendTagName(c)
		}
	}
}

func stateSelfClosingStartTag(t *Tokenizer) stateFn {
	c := t.input.Consume()
	switch c {
	case '>':
		t.tok.SelfClosing = true
		t.emitCurrentTag()
		return stateData
	case EOF:
		t.reportErr(perr.EOFInTag)
		t.emitEOF()
		return stateData
	default:
		t.reportErr(perr.UnexpectedSolidusInTag)
		t.input.Reconsume()
		return stateBeforeAttrName
	}
}

// --- attributes -----------------------------------------------------------

func stateBeforeAttrName(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateBeforeAttrName
	case c == '/' || c == '>' || c == EOF:
		return stateAfterAttrName
	case c == '=':
		t.reportErr(perr.UnexpectedEqualsSignBeforeAttributeName)
		t.input.Consume()
		t.beginAttr()
		t.attrName = append(t.attrName, '=')
		return stateAttrName
	default:
		t.beginAttr()
		return stateAttrName
	}
}

func (t *Tokenizer) beginAttr() {
	t.finishAttr()
	t.attrInTag = true
	t.attrName = t.attrName[:0]
	t.attrValue = t.attrValue[:0]
	t.curAttrPos = t.input.Position()
}

func stateAttrName(t *Tokenizer) stateFn {
	for {
		c := t.input.Consume()
		switch {
		case isWhitespace(c) || c == '/' || c == '>' || c == EOF:
			t.input.Reconsume()
			return stateAfterAttrName
		case c == '=':
			return stateBeforeAttrValue
		case c == 0:
			t.reportErr(perr.UnexpectedNullCharacter)
			t.attrName = append(t.attrName, 0xFFFD)
		case c == '"' || c == '\'' || c == '<':
			t.reportErr(perr.UnexpectedCharacterInAttributeName)
			t.attrName = append(t.attrName, lowerASCII(c))
		default:
			t.attrName = append(t.attrName, lowerASCII(c))
		}
	}
}

func stateAfterAttrName(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateAfterAttrName
	case c == '/':
		t.input.Consume()
		return stateSelfClosingStartTag
	case c == '=':
		t.input.Consume()
		return stateBeforeAttrValue
	case c == '>':
		t.input.Consume()
		t.emitCurrentTag()
		return stateData
	case c == EOF:
		t.input.Consume()
		t.reportErr(perr.EOFInTag)
		t.emitEOF()
		return stateData
	default:
		t.beginAttr()
		return stateAttrName
	}
}

func stateBeforeAttrValue(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateBeforeAttrValue
	case c == '"':
		t.input.Consume()
		return stateAttrValueDoubleQuoted
	case c == '\'':
		t.input.Consume()
		return stateAttrValueSingleQuoted
	case c == '>':
		t.reportErr(perr.MissingAttributeValue)
		t.input.Consume()
		t.emitCurrentTag()
		return stateData
	default:
		return stateAttrValueUnquoted
	}
}

func stateAttrValueDoubleQuoted(t *Tokenizer) stateFn {
	return stateAttrValueQuoted(t, '"')
}

func stateAttrValueSingleQuoted(t *Tokenizer) stateFn {
	return stateAttrValueQuoted(t, '\'')
}

func stateAttrValueQuoted(t *Tokenizer, quote rune) stateFn {
	for {
		c := t.input.Consume()
		switch c {
		case quote:
			return stateAfterAttrValueQuoted
		case '&':
			t.returnState = currentQuotedState(quote)
			t.charRefInAttribute = true
			return stateCharacterReference
		case 0:
			t.reportErr(perr.UnexpectedNullCharacter)
			t.attrValue = append(t.attrValue, 0xFFFD)
		case EOF:
			t.reportErr(perr.EOFInTag)
			t.emitEOF()
			return stateData
		default:
			t.attrValue = append(t.attrValue, c)
		}
	}
}

func currentQuotedState(quote rune) stateFn {
	if quote == '"' {
		return stateAttrValueDoubleQuoted
	}
	return stateAttrValueSingleQuoted
}

func stateAttrValueUnquoted(t *Tokenizer) stateFn {
	for {
		c := t.input.Consume()
		switch {
		case isWhitespace(c):
			return stateBeforeAttrName
		case c == '&':
			t.returnState = stateAttrValueUnquoted
			t.charRefInAttribute = true
			return stateCharacterReference
		case c == '>':
			t.emitCurrentTag()
			return stateData
		case c == 0:
			t.reportErr(perr.UnexpectedNullCharacter)
			t.attrValue = append(t.attrValue, 0xFFFD)
		case c == '"' || c == '\'' || c == '<' || c == '=' || c == '`':
			t.reportErr(perr.UnexpectedCharacterInUnquotedAttributeValue)
			t.attrValue = append(t.attrValue, c)
		case c == EOF:
			t.reportErr(perr.EOFInTag)
			t.emitEOF()
			return stateData
		default:
			t.attrValue = append(t.attrValue, c)
		}
	}
}

func stateAfterAttrValueQuoted(t *Tokenizer) stateFn {
	c := t.input.Consume()
	switch {
	case isWhitespace(c):
		return stateBeforeAttrName
	case c == '/':
		return stateSelfClosingStartTag
	case c == '>':
		t.emitCurrentTag()
		return stateData
	case c == EOF:
		t.reportErr(perr.EOFInTag)
		t.emitEOF()
		return stateData
	default:
		t.reportErr(perr.MissingWhitespaceBetweenAttributes)
		t.input.Reconsume()
		return stateBeforeAttrName
	}
}

// --- comments & markup declarations ---------------------------------------

func stateMarkupDeclarationOpen(t *Tokenizer) stateFn {
	if ahead := t.input.PeekAhead(2); len(ahead) == 2 && ahead[0] == '-' && ahead[1] == '-' {
		t.input.Consume()
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok = Token{Type: CommentToken, Pos: t.tokPos}
		return stateCommentStart
	}
	if matchCaseInsensitive(t.input.PeekAhead(7), "doctype") {
		for i := 0; i < 7; i++ {
			t.input.Consume()
		}
		t.tok = Token{Type: DoctypeToken, Pos: t.tokPos}
		t.dataBuf = t.dataBuf[:0]
		return stateDoctype
	}
	if ahead := t.input.PeekAhead(7); matchExact(ahead, "[CDATA[") {
		for i := 0; i < 7; i++ {
			t.input.Consume()
		}
		if t.allowCDATA {
			return stateCDATASection
		}
		t.reportErr(perr.CDATAInHTMLContent)
		t.dataBuf = t.dataBuf[:0]
		t.tok = Token{Type: CommentToken, Pos: t.tokPos}
		return stateBogusComment
	}
	t.reportErr(perr.IncorrectlyOpenedComment)
	t.dataBuf = t.dataBuf[:0]
	t.tok = Token{Type: CommentToken, Pos: t.tokPos}
	return stateBogusComment
}

func matchCaseInsensitive(runes []rune, want string) bool {
	if len(runes) < len(want) {
		return false
	}
	for i, w := range want {
		if lowerASCII(runes[i]) != w {
			return false
		}
	}
	return true
}

func matchExact(runes []rune, want string) bool {
	if len(runes) < len(want) {
		return false
	}
	for i, w := range want {
		if runes[i] != w {
			return false
		}
	}
	return true
}

func stateBogusComment(t *Tokenizer) stateFn {
	for {
		c := t.input.Consume()
		switch c {
		case '>':
			t.tok.Text = string(t.dataBuf)
			t.emit(t.tok)
			return stateData
		case EOF:
			t.tok.Text = string(t.dataBuf)
			t.emit(t.tok)
			t.emitEOF()
			return stateData
		case 0:
			t.dataBuf = append(t.dataBuf, 0xFFFD)
		default:
			t.dataBuf = append(t.dataBuf, c)
		}
	}
}

func stateCommentStart(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch c {
	case '-':
		t.input.Consume()
		return stateCommentStartDash
	case '>':
		t.input.Consume()
		t.reportErr(perr.AbruptClosingOfEmptyComment)
		t.tok.Text = string(t.dataBuf)
		t.emit(t.tok)
		return stateData
	default:
		return stateComment
	}
}

func stateCommentStartDash(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch c {
	case '-':
		t.input.Consume()
		return stateCommentEnd
	case '>':
		t.input.Consume()
		t.reportErr(perr.AbruptClosingOfEmptyComment)
		t.tok.Text = string(t.dataBuf)
		t.emit(t.tok)
		return stateData
	case EOF:
		t.reportErr(perr.EOFInComment)
		t.tok.Text = string(t.dataBuf)
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.dataBuf = append(t.dataBuf, '-')
		return stateComment
	}
}

func stateComment(t *Tokenizer) stateFn {
	for {
		c := t.input.Consume()
		switch c {
		case '<':
			t.dataBuf = append(t.dataBuf, c)
			return stateCommentLessThan
		case '-':
			return stateCommentEndDash
		case 0:
			t.reportErr(perr.UnexpectedNullCharacter)
			t.dataBuf = append(t.dataBuf, 0xFFFD)
		case EOF:
			t.reportErr(perr.EOFInComment)
			t.tok.Text = string(t.dataBuf)
			t.emit(t.tok)
			t.emitEOF()
			return stateData
		default:
			t.dataBuf = append(t.dataBuf, c)
		}
	}
}

func stateCommentLessThan(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch c {
	case '!':
		t.input.Consume()
		t.dataBuf = append(t.dataBuf, c)
		return stateCommentLessThanBang
	case '<':
		t.input.Consume()
		t.dataBuf = append(t.dataBuf, c)
		return stateCommentLessThan
	default:
		return stateComment
	}
}

func stateCommentLessThanBang(t *Tokenizer) stateFn {
	if t.input.Peek() == '-' {
		t.input.Consume()
		return stateCommentLessThanBangDash
	}
	return stateComment
}

func stateCommentLessThanBangDash(t *Tokenizer) stateFn {
	if t.input.Peek() == '-' {
		t.input.Consume()
		return stateCommentLessThanBangDashDash
	}
	return stateCommentEndDash
}

func stateCommentLessThanBangDashDash(t *Tokenizer) stateFn {
	return stateCommentEnd
}

func stateCommentEndDash(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch c {
	case '-':
		t.input.Consume()
		return stateCommentEnd
	case EOF:
		t.reportErr(perr.EOFInComment)
		t.tok.Text = string(t.dataBuf)
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.dataBuf = append(t.dataBuf, '-')
		return stateComment
	}
}

func stateCommentEnd(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch c {
	case '>':
		t.input.Consume()
		t.tok.Text = string(t.dataBuf)
		t.emit(t.tok)
		return stateData
	case '!':
		t.input.Consume()
		return stateCommentEndBang
	case '-':
		t.input.Consume()
		t.dataBuf = append(t.dataBuf, '-')
		return stateCommentEnd
	case EOF:
		t.reportErr(perr.EOFInComment)
		t.tok.Text = string(t.dataBuf)
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.dataBuf = append(t.dataBuf, '-', '-')
		return stateComment
	}
}

func stateCommentEndBang(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch c {
	case '-':
		t.input.Consume()
		t.dataBuf = append(t.dataBuf, '-', '-', '!')
		return stateCommentEndDash
	case '>':
		t.input.Consume()
		t.reportErr(perr.IncorrectlyClosedComment)
		t.tok.Text = string(t.dataBuf)
		t.emit(t.tok)
		return stateData
	case EOF:
		t.reportErr(perr.EOFInComment)
		t.tok.Text = string(t.dataBuf)
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.dataBuf = append(t.dataBuf, '-', '-', '!')
		return stateComment
	}
}

// stateCDATASection is only reachable in foreign content (spec.md §4.3:
// "CDATA"). Outside foreign content markup-declaration-open never switches
// here, so no additional guard is needed at this state itself.
func stateCDATASection(t *Tokenizer) stateFn {
	for {
		c := t.input.Consume()
		switch c {
		case ']':
			if matchExact(t.input.PeekAhead(2), "]>") {
				t.input.Consume()
				t.input.Consume()
				return stateData
			}
			t.emitChar(t.input.Position(), c)
		case EOF:
			t.reportErr(perr.EOFInCDATA)
			t.emitEOF()
			return stateData
		default:
			t.emitChar(t.input.Position(), c)
		}
	}
}
