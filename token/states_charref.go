package token

import "github.com/htmlkit/htmlkit/perr"

// The character-reference state family (spec.md §4.3.2 / SPEC_FULL §4.3.2)
// resolves "&name;", "&#nnnn;", and "&#xhhhh;" forms into their replacement
// text, both in ordinary text and inside attribute values.

// stateCharacterReference is entered from Data, RCDATA, and attribute-value
// states on seeing '&'. t.returnState and t.charRefInAttribute were set by
// the caller before switching here.
func stateCharacterReference(t *Tokenizer) stateFn {
	p := t.input.Position()
	p.Col-- // the '&' that led here has already been consumed
	t.charRefStartPos = p
	t.dataBuf = append(t.dataBuf[:0], '&')
	c := t.input.Peek()
	switch {
	case isASCIIAlnum(c):
		return stateNamedCharacterReference
	case c == '#':
		t.input.Consume()
		t.dataBuf = append(t.dataBuf, '#')
		return stateNumericCharacterReferenceStart
	default:
		t.flushCharRefLiteral()
		return t.returnState
	}
}

// flushCharRefLiteral emits/appends dataBuf verbatim (no reference matched)
// and returns control to returnState without consuming anything further.
func (t *Tokenizer) flushCharRefLiteral() {
	t.appendCharRefText(string(t.dataBuf))
}

// appendCharRefText delivers resolved (or literal, on failed match) character
// reference text either into the in-progress attribute value or as a run of
// Character tokens, per spec.md §4.3.2's "flush code points consumed as a
// character reference" step.
func (t *Tokenizer) appendCharRefText(s string) {
	if t.charRefInAttribute {
		t.attrValue = append(t.attrValue, []rune(s)...)
		return
	}
	p := t.charRefStartPos
	for _, r := range s {
		t.emitChar(p, r)
	}
}

// stateNamedCharacterReference performs a longest-prefix match of the
// upcoming characters against the named-reference table. It reads via
// PeekAhead and only Consumes exactly the matched length, rather than
// consuming speculatively and reconsuming the overrun: InputStream supports
// just one level of push-back (spec.md §4.1), and a failed or short match
// here routinely needs to give back more than one character.
func stateNamedCharacterReference(t *Tokenizer) stateFn {
	const maxNameLen = 34 // upper bound on lookahead; the longest key in namedCharRefs is 7 runes

	ahead := t.input.PeekAhead(maxNameLen)

	bestLen := 0
	var bestValue string
	bestHasSemicolon := false

	for n := 1; n <= len(ahead); n++ {
		c := ahead[n-1]
		if !(isASCIIAlnum(c) || c == ';') {
			break
		}
		if v, ok := namedCharRefs[string(ahead[:n])]; ok {
			bestLen = n
			bestValue = v
			bestHasSemicolon = c == ';'
		}
		if c == ';' {
			break
		}
	}

	if bestLen == 0 {
		// No match: nothing has been consumed yet, so the ambiguous-
		// ampersand path can just start consuming from here.
		return stateAmbiguousAmpersand
	}

	for i := 0; i < bestLen; i++ {
		t.input.Consume()
	}

	if !bestHasSemicolon {
		next := t.input.Peek()
		if t.charRefInAttribute && (next == '=' || isASCIIAlnum(next)) {
			// Per spec.md §4.3.2: in an attribute, a match with no
			// trailing ';' immediately followed by '=' or an
			// alphanumeric is treated as a literal ampersand run
			// rather than resolved, to preserve legacy attributes
			// like href="?a&b=c".
			t.dataBuf = append(t.dataBuf[:0], '&')
			t.dataBuf = append(t.dataBuf, ahead[:bestLen]...)
			t.flushCharRefLiteral()
			return t.returnState
		}
		t.reportErrAt(perr.MissingSemicolonAfterCharacterReference, t.charRefStartPos)
	}

	t.appendCharRefText(bestValue)
	return t.returnState
}

// stateAmbiguousAmpersand consumes a run of alphanumerics that didn't match
// any named reference and flushes them, plus the leading '&', literally.
func stateAmbiguousAmpersand(t *Tokenizer) stateFn {
	for {
		c := t.input.Peek()
		if !isASCIIAlnum(c) {
			break
		}
		t.input.Consume()
		t.dataBuf = append(t.dataBuf, c)
	}
	if t.input.Peek() == ';' {
		t.reportErr(perr.UnknownNamedCharacterReference)
	}
	t.flushCharRefLiteral()
	return t.returnState
}

func stateNumericCharacterReferenceStart(t *Tokenizer) stateFn {
	t.charRefCode = 0
	c := t.input.Peek()
	if c == 'x' || c == 'X' {
		t.input.Consume()
		t.dataBuf = append(t.dataBuf, c)
		return stateHexCharacterReferenceStart
	}
	return stateDecimalCharacterReferenceStart
}

func stateHexCharacterReferenceStart(t *Tokenizer) stateFn {
	if isHexDigit(t.input.Peek()) {
		return stateHexCharacterReference
	}
	t.reportErr(perr.AbsenceOfDigitsInNumericCharacterReference)
	t.flushCharRefLiteral()
	return t.returnState
}

func stateDecimalCharacterReferenceStart(t *Tokenizer) stateFn {
	if isASCIIDigit(t.input.Peek()) {
		return stateDecimalCharacterReference
	}
	t.reportErr(perr.AbsenceOfDigitsInNumericCharacterReference)
	t.flushCharRefLiteral()
	return t.returnState
}

func stateHexCharacterReference(t *Tokenizer) stateFn {
	for {
		c := t.input.Peek()
		switch {
		case isASCIIDigit(c):
			t.input.Consume()
			t.charRefCode = t.charRefCode*16 + int64(c-'0')
		case c >= 'a' && c <= 'f':
			t.input.Consume()
			t.charRefCode = t.charRefCode*16 + int64(c-'a'+10)
		case c >= 'A' && c <= 'F':
			t.input.Consume()
			t.charRefCode = t.charRefCode*16 + int64(c-'A'+10)
		case c == ';':
			t.input.Consume()
			return stateNumericCharacterReferenceEnd
		default:
			t.reportErr(perr.MissingSemicolonAfterCharacterReference)
			return stateNumericCharacterReferenceEnd
		}
		if t.charRefCode > 0x10FFFF*16 {
			// Clamp accumulation so a very long digit run can't
			// overflow; the end state reports out-of-range either way.
			t.charRefCode = 0x110000
		}
	}
}

func stateDecimalCharacterReference(t *Tokenizer) stateFn {
	for {
		c := t.input.Peek()
		switch {
		case isASCIIDigit(c):
			t.input.Consume()
			t.charRefCode = t.charRefCode*10 + int64(c-'0')
		case c == ';':
			t.input.Consume()
			return stateNumericCharacterReferenceEnd
		default:
			t.reportErr(perr.MissingSemicolonAfterCharacterReference)
			return stateNumericCharacterReferenceEnd
		}
		if t.charRefCode > 0x10FFFF*10 {
			t.charRefCode = 0x110000
		}
	}
}

// stateNumericCharacterReferenceEnd applies the substitutions spec.md
// §4.3.2 requires: null -> U+FFFD, out-of-range -> U+FFFD, surrogate ->
// U+FFFD, and the Windows-1252 C1-control replacement table for 0x80-0x9F.
func stateNumericCharacterReferenceEnd(t *Tokenizer) stateFn {
	code := t.charRefCode
	p := t.charRefStartPos

	switch {
	case code == 0:
		t.reportErrAt(perr.NullCharacterReference, p)
		code = 0xFFFD
	case code > 0x10FFFF:
		t.reportErrAt(perr.CharacterReferenceOutsideUnicodeRange, p)
		code = 0xFFFD
	case isSurrogate(rune(code)):
		t.reportErrAt(perr.SurrogateCharacterReference, p)
		code = 0xFFFD
	case isNoncharacter(rune(code)):
		t.reportErrAt(perr.NoncharacterCharacterReference, p)
	case code == 0x0D || (code >= 0x80 && code <= 0x9F):
		if repl, ok := numericControlReplacements[int(code)]; ok {
			t.reportErrAt(perr.ControlCharacterReference, p)
			code = int64(repl)
		} else if isDisallowedControl(rune(code)) {
			t.reportErrAt(perr.ControlCharacterReference, p)
		}
	case isDisallowedControl(rune(code)):
		t.reportErrAt(perr.ControlCharacterReference, p)
	}

	t.appendCharRefText(string(rune(code)))
	return t.returnState
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// numericControlReplacements maps the 0x80-0x9F C1-control range to the
// Windows-1252 code points browsers substitute instead of the raw control
// character, per the WHATWG numeric-character-reference-end table. 0x0D is
// deliberately absent: it only triggers a control-character-reference parse
// error (via the isDisallowedControl fallback below), the code point itself
// is left as U+000D.
var numericControlReplacements = map[int]rune{
	0x80: 0x20AC,
	0x81: 0x0081,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8D: 0x008D,
	0x8E: 0x017D,
	0x8F: 0x008F,
	0x90: 0x0090,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9D: 0x009D,
	0x9E: 0x017E,
	0x9F: 0x0178,
}

// namedCharRefs is a curated subset of the WHATWG named character reference
// table (spec.md §4.3.2 / SPEC_FULL §4.3.2: "a curated named-reference
// table, not the full ~2200-entry WHATWG table"), covering the entities
// that occur in ordinary markup plus the legacy no-semicolon forms.
var namedCharRefs = map[string]string{
	"amp;": "&", "amp": "&",
	"lt;": "<", "lt": "<",
	"gt;": ">", "gt": ">",
	"quot;": "\"", "quot": "\"",
	"apos;": "'",
	"AMP;":  "&", "AMP": "&",
	"LT;": "<", "LT": "<",
	"GT;": ">", "GT": ">",
	"QUOT;": "\"", "QUOT": "\"",
	"nbsp;": " ", "nbsp": " ",
	"copy;": "©", "copy": "©",
	"COPY;": "©", "COPY": "©",
	"reg;": "®", "reg": "®",
	"REG;": "®", "REG": "®",
	"trade;":   "™",
	"hellip;":  "…",
	"mdash;":   "—",
	"ndash;":   "–",
	"lsquo;":   "‘",
	"rsquo;":   "’",
	"ldquo;":   "“",
	"rdquo;":   "”",
	"bull;":    "•",
	"dagger;":  "†",
	"Dagger;":  "‡",
	"permil;":  "‰",
	"euro;":    "€",
	"cent;":    "¢", "cent": "¢",
	"pound;": "£", "pound": "£",
	"yen;": "¥", "yen": "¥",
	"sect;": "§", "sect": "§",
	"para;": "¶", "para": "¶",
	"middot;": "·", "middot": "·",
	"deg;": "°", "deg": "°",
	"plusmn;": "±", "plusmn": "±",
	"sup1;": "¹", "sup1": "¹",
	"sup2;": "²", "sup2": "²",
	"sup3;": "³", "sup3": "³",
	"frac12;": "½", "frac12": "½",
	"frac14;": "¼", "frac14": "¼",
	"frac34;": "¾", "frac34": "¾",
	"times;": "×", "times": "×",
	"divide;": "÷", "divide": "÷",
	"laquo;": "«", "laquo": "«",
	"raquo;": "»", "raquo": "»",
	"iquest;": "¿", "iquest": "¿",
	"iexcl;": "¡", "iexcl": "¡",
	"curren;": "¤", "curren": "¤",
	"brvbar;": "¦", "brvbar": "¦",
	"uml;": "¨", "uml": "¨",
	"ordf;": "ª", "ordf": "ª",
	"not;": "¬", "not": "¬",
	"shy;": "­", "shy": "­",
	"macr;": "¯", "macr": "¯",
	"acute;": "´", "acute": "´",
	"micro;": "µ", "micro": "µ",
	"cedil;": "¸", "cedil": "¸",
	"ordm;": "º", "ordm": "º",
	"szlig;": "ß", "szlig": "ß",
	"Aacute;": "Á", "Aacute": "Á",
	"aacute;": "á", "aacute": "á",
	"Agrave;": "À", "Agrave": "À",
	"agrave;": "à", "agrave": "à",
	"Acirc;": "Â", "Acirc": "Â",
	"acirc;": "â", "acirc": "â",
	"Atilde;": "Ã", "Atilde": "Ã",
	"atilde;": "ã", "atilde": "ã",
	"Auml;": "Ä", "Auml": "Ä",
	"auml;": "ä", "auml": "ä",
	"Aring;": "Å", "Aring": "Å",
	"aring;": "å", "aring": "å",
	"AElig;": "Æ", "AElig": "Æ",
	"aelig;": "æ", "aelig": "æ",
	"Ccedil;": "Ç", "Ccedil": "Ç",
	"ccedil;": "ç", "ccedil": "ç",
	"Eacute;": "É", "Eacute": "É",
	"eacute;": "é", "eacute": "é",
	"Egrave;": "È", "Egrave": "È",
	"egrave;": "è", "egrave": "è",
	"Ecirc;": "Ê", "Ecirc": "Ê",
	"ecirc;": "ê", "ecirc": "ê",
	"Euml;": "Ë", "Euml": "Ë",
	"euml;": "ë", "euml": "ë",
	"Iacute;": "Í", "Iacute": "Í",
	"iacute;": "í", "iacute": "í",
	"Igrave;": "Ì", "Igrave": "Ì",
	"igrave;": "ì", "igrave": "ì",
	"Icirc;": "Î", "Icirc": "Î",
	"icirc;": "î", "icirc": "î",
	"Iuml;": "Ï", "Iuml": "Ï",
	"iuml;": "ï", "iuml": "ï",
	"Ntilde;": "Ñ", "Ntilde": "Ñ",
	"ntilde;": "ñ", "ntilde": "ñ",
	"Oacute;": "Ó", "Oacute": "Ó",
	"oacute;": "ó", "oacute": "ó",
	"Ograve;": "Ò", "Ograve": "Ò",
	"ograve;": "ò", "ograve": "ò",
	"Ocirc;": "Ô", "Ocirc": "Ô",
	"ocirc;": "ô", "ocirc": "ô",
	"Otilde;": "Õ", "Otilde": "Õ",
	"otilde;": "õ", "otilde": "õ",
	"Ouml;": "Ö", "Ouml": "Ö",
	"ouml;": "ö", "ouml": "ö",
	"Oslash;": "Ø", "Oslash": "Ø",
	"oslash;": "ø", "oslash": "ø",
	"Uacute;": "Ú", "Uacute": "Ú",
	"uacute;": "ú", "uacute": "ú",
	"Ugrave;": "Ù", "Ugrave": "Ù",
	"ugrave;": "ù", "ugrave": "ù",
	"Ucirc;": "Û", "Ucirc": "Û",
	"ucirc;": "û", "ucirc": "û",
	"Uuml;": "Ü", "Uuml": "Ü",
	"uuml;": "ü", "uuml": "ü",
	"Yacute;": "Ý", "Yacute": "Ý",
	"yacute;": "ý", "yacute": "ý",
	"yuml;": "ÿ",
	"ETH;":    "Ð", "ETH": "Ð",
	"eth;":    "ð", "eth": "ð",
	"THORN;":  "Þ", "THORN": "Þ",
	"thorn;":  "þ", "thorn": "þ",
	"larr;":   "←",
	"uarr;":   "↑",
	"rarr;":   "→",
	"darr;":   "↓",
	"harr;":   "↔",
	"spades;": "♠",
	"clubs;":  "♣",
	"hearts;": "♥",
	"diams;":  "♦",
	"infin;":  "∞",
	"ne;":     "≠",
	"le;":     "≤",
	"ge;":     "≥",
	"alpha;":  "α",
	"beta;":   "β",
	"gamma;":  "γ",
	"delta;":  "δ",
	"pi;":     "π",
	"sigma;":  "σ",
	"omega;":  "ω",
	"Alpha;":  "Α",
	"Beta;":   "Β",
	"Gamma;":  "Γ",
	"Delta;":  "Δ",
	"Pi;":     "Π",
	"Sigma;":  "Σ",
	"Omega;":  "Ω",
}
