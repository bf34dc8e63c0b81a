package token

import "github.com/htmlkit/htmlkit/perr"

// The DOCTYPE state family (spec.md §4.3, SPEC_FULL §4.3.1) parses name,
// public identifier, and system identifier incrementally, setting
// ForceQuirks whenever the WHATWG algorithm specifies it.

func stateDoctype(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateBeforeDoctypeName
	case c == '>':
		return stateBeforeDoctypeName
	case c == EOF:
		t.input.Consume()
		t.reportErr(perr.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.reportErr(perr.MissingWhitespaceBeforeDoctypeName)
		return stateBeforeDoctypeName
	}
}

func stateBeforeDoctypeName(t *Tokenizer) stateFn {
	c := t.input.Consume()
	switch {
	case isWhitespace(c):
		return stateBeforeDoctypeName
	case c == 0:
		t.reportErr(perr.UnexpectedNullCharacter)
		t.dataBuf = append(t.dataBuf[:0], 0xFFFD)
		return stateDoctypeName
	case c == '>':
		t.reportErr(perr.MissingDoctypeName)
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		return stateData
	case c == EOF:
		t.reportErr(perr.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.dataBuf = append(t.dataBuf[:0], lowerASCII(c))
		return stateDoctypeName
	}
}

func stateDoctypeName(t *Tokenizer) stateFn {
	for {
		c := t.input.Consume()
		switch {
		case isWhitespace(c):
			t.tok.Name = string(t.dataBuf)
			return stateAfterDoctypeName
		case c == '>':
			t.tok.Name = string(t.dataBuf)
			t.emit(t.tok)
			return stateData
		case c == 0:
			t.reportErr(perr.UnexpectedNullCharacter)
			t.dataBuf = append(t.dataBuf, 0xFFFD)
		case c == EOF:
			t.reportErr(perr.EOFInDoctype)
			t.tok.Name = string(t.dataBuf)
			t.tok.ForceQuirks = true
			t.emit(t.tok)
			t.emitEOF()
			return stateData
		default:
			t.dataBuf = append(t.dataBuf, lowerASCII(c))
		}
	}
}

func stateAfterDoctypeName(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateAfterDoctypeName
	case c == '>':
		t.input.Consume()
		t.emit(t.tok)
		return stateData
	case c == EOF:
		t.input.Consume()
		t.reportErr(perr.EOFInDoctype)
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		ahead := t.input.PeekAhead(6)
		switch {
		case matchCaseInsensitive(ahead, "public"):
			for i := 0; i < 6; i++ {
				t.input.Consume()
			}
			return stateAfterDoctypePublicKeyword
		case matchCaseInsensitive(ahead, "system"):
			for i := 0; i < 6; i++ {
				t.input.Consume()
			}
			return stateAfterDoctypeSystemKeyword
		default:
			t.reportErr(perr.InvalidFirstCharacterOfTagName)
			t.input.Consume()
			t.tok.ForceQuirks = true
			return stateBogusDoctype
		}
	}
}

func stateAfterDoctypePublicKeyword(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateBeforeDoctypePublicID
	case c == '"':
		t.reportErr(perr.MissingWhitespaceAfterDoctypePublicKeyword)
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasPublicID = true
		return stateDoctypePublicIDQuoted('"')
	case c == '\'':
		t.reportErr(perr.MissingWhitespaceAfterDoctypePublicKeyword)
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasPublicID = true
		return stateDoctypePublicIDQuoted('\'')
	case c == '>':
		t.reportErr(perr.MissingDoctypePublicIdentifier)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		return stateData
	case c == EOF:
		t.reportErr(perr.EOFInDoctype)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.reportErr(perr.MissingQuoteBeforeDoctypePublicIdentifier)
		t.input.Consume()
		t.tok.ForceQuirks = true
		return stateBogusDoctype
	}
}

func stateBeforeDoctypePublicID(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateBeforeDoctypePublicID
	case c == '"':
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasPublicID = true
		return stateDoctypePublicIDQuoted('"')
	case c == '\'':
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasPublicID = true
		return stateDoctypePublicIDQuoted('\'')
	case c == '>':
		t.reportErr(perr.MissingDoctypePublicIdentifier)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		return stateData
	case c == EOF:
		t.reportErr(perr.EOFInDoctype)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.reportErr(perr.MissingQuoteBeforeDoctypePublicIdentifier)
		t.input.Consume()
		t.tok.ForceQuirks = true
		return stateBogusDoctype
	}
}

func stateDoctypePublicIDQuoted(quote rune) stateFn {
	return func(t *Tokenizer) stateFn {
		for {
			c := t.input.Consume()
			switch c {
			case quote:
				t.tok.PublicID = string(t.dataBuf)
				return stateAfterDoctypePublicID
			case 0:
				t.reportErr(perr.UnexpectedNullCharacter)
				t.dataBuf = append(t.dataBuf, 0xFFFD)
			case '>':
				t.reportErr(perr.AbruptDoctypePublicIdentifier)
				t.tok.PublicID = string(t.dataBuf)
				t.tok.ForceQuirks = true
				t.emit(t.tok)
				return stateData
			case EOF:
				t.reportErr(perr.EOFInDoctype)
				t.tok.PublicID = string(t.dataBuf)
				t.tok.ForceQuirks = true
				t.emit(t.tok)
				t.emitEOF()
				return stateData
			default:
				t.dataBuf = append(t.dataBuf, c)
			}
		}
	}
}

func stateAfterDoctypePublicID(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateBetweenDoctypePublicAndSystemIDs
	case c == '>':
		t.input.Consume()
		t.emit(t.tok)
		return stateData
	case c == '"':
		t.reportErr(perr.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasSystemID = true
		return stateDoctypeSystemIDQuoted('"')
	case c == '\'':
		t.reportErr(perr.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasSystemID = true
		return stateDoctypeSystemIDQuoted('\'')
	case c == EOF:
		t.reportErr(perr.EOFInDoctype)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.reportErr(perr.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.input.Consume()
		t.tok.ForceQuirks = true
		return stateBogusDoctype
	}
}

func stateBetweenDoctypePublicAndSystemIDs(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateBetweenDoctypePublicAndSystemIDs
	case c == '>':
		t.input.Consume()
		t.emit(t.tok)
		return stateData
	case c == '"':
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasSystemID = true
		return stateDoctypeSystemIDQuoted('"')
	case c == '\'':
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasSystemID = true
		return stateDoctypeSystemIDQuoted('\'')
	case c == EOF:
		t.reportErr(perr.EOFInDoctype)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.reportErr(perr.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.input.Consume()
		t.tok.ForceQuirks = true
		return stateBogusDoctype
	}
}

func stateAfterDoctypeSystemKeyword(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateBeforeDoctypeSystemID
	case c == '"':
		t.reportErr(perr.MissingWhitespaceAfterDoctypeSystemKeyword)
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasSystemID = true
		return stateDoctypeSystemIDQuoted('"')
	case c == '\'':
		t.reportErr(perr.MissingWhitespaceAfterDoctypeSystemKeyword)
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasSystemID = true
		return stateDoctypeSystemIDQuoted('\'')
	case c == '>':
		t.reportErr(perr.MissingDoctypeSystemIdentifier)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		return stateData
	case c == EOF:
		t.reportErr(perr.EOFInDoctype)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.reportErr(perr.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.input.Consume()
		t.tok.ForceQuirks = true
		return stateBogusDoctype
	}
}

func stateBeforeDoctypeSystemID(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateBeforeDoctypeSystemID
	case c == '"':
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasSystemID = true
		return stateDoctypeSystemIDQuoted('"')
	case c == '\'':
		t.input.Consume()
		t.dataBuf = t.dataBuf[:0]
		t.tok.HasSystemID = true
		return stateDoctypeSystemIDQuoted('\'')
	case c == '>':
		t.reportErr(perr.MissingDoctypeSystemIdentifier)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		return stateData
	case c == EOF:
		t.reportErr(perr.EOFInDoctype)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.reportErr(perr.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.input.Consume()
		t.tok.ForceQuirks = true
		return stateBogusDoctype
	}
}

func stateDoctypeSystemIDQuoted(quote rune) stateFn {
	return func(t *Tokenizer) stateFn {
		for {
			c := t.input.Consume()
			switch c {
			case quote:
				t.tok.SystemID = string(t.dataBuf)
				return stateAfterDoctypeSystemID
			case 0:
				t.reportErr(perr.UnexpectedNullCharacter)
				t.dataBuf = append(t.dataBuf, 0xFFFD)
			case '>':
				t.reportErr(perr.AbruptDoctypeSystemIdentifier)
				t.tok.SystemID = string(t.dataBuf)
				t.tok.ForceQuirks = true
				t.emit(t.tok)
				return stateData
			case EOF:
				t.reportErr(perr.EOFInDoctype)
				t.tok.SystemID = string(t.dataBuf)
				t.tok.ForceQuirks = true
				t.emit(t.tok)
				t.emitEOF()
				return stateData
			default:
				t.dataBuf = append(t.dataBuf, c)
			}
		}
	}
}

func stateAfterDoctypeSystemID(t *Tokenizer) stateFn {
	c := t.input.Peek()
	switch {
	case isWhitespace(c):
		t.input.Consume()
		return stateAfterDoctypeSystemID
	case c == '>':
		t.input.Consume()
		t.emit(t.tok)
		return stateData
	case c == EOF:
		t.reportErr(perr.EOFInDoctype)
		t.input.Consume()
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return stateData
	default:
		t.reportErr(perr.UnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.input.Consume()
		return stateBogusDoctype
	}
}

func stateBogusDoctype(t *Tokenizer) stateFn {
	for {
		c := t.input.Consume()
		switch c {
		case '>':
			t.emit(t.tok)
			return stateData
		case EOF:
			t.emit(t.tok)
			t.emitEOF()
			return stateData
		default:
			// Ignore the character.
		}
	}
}
