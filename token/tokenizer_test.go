package token

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlkit/htmlkit/perr"
)

// collect drives a Tokenizer to completion, returning every emitted token
// (including the terminal EOF).
func collect(t *testing.T, src string, sink perr.Sink) []Token {
	t.Helper()
	input := NewInputStream(strings.NewReader(src), sink)
	tz := NewTokenizer(input, sink)
	var toks []Token
	for {
		tok := tz.Next()
		require.False(t, tz.NeedMore(), "a strings.Reader source should never block")
		toks = append(toks, tok)
		if tok.Type == EOFToken {
			break
		}
	}
	return toks
}

// ignorePos drops Pos from comparison; most tests here care about token
// shape, not location (location is covered separately in TestPositionTracking).
var ignorePos = cmpopts.IgnoreFields(Token{}, "Pos")

func TestExactlyOneEOFTokenLast(t *testing.T) {
	toks := collect(t, "<p>hi</p>", nil)
	eofCount := 0
	for i, tok := range toks {
		if tok.Type == EOFToken {
			eofCount++
			assert.Equal(t, len(toks)-1, i, "EOF must be the last token")
		}
	}
	assert.Equal(t, 1, eofCount)
}

func TestDataCharacterTokens(t *testing.T) {
	toks := collect(t, "hi", nil)
	want := []Token{
		{Type: CharacterToken, Character: 'h'},
		{Type: CharacterToken, Character: 'i'},
		{Type: EOFToken},
	}
	if diff := cmp.Diff(want, toks, ignorePos); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestStartAndEndTag(t *testing.T) {
	toks := collect(t, "<p>hi</p>", nil)
	want := []Token{
		{Type: StartTagToken, Name: "p"},
		{Type: CharacterToken, Character: 'h'},
		{Type: CharacterToken, Character: 'i'},
		{Type: EndTagToken, Name: "p"},
		{Type: EOFToken},
	}
	if diff := cmp.Diff(want, toks, ignorePos); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTagNameLowercased(t *testing.T) {
	toks := collect(t, "<DIV>", nil)
	require.Len(t, toks, 2)
	assert.Equal(t, "div", toks[0].Name)
}

func TestAttributes(t *testing.T) {
	toks := collect(t, `<a href="x" class='y' disabled>`, nil)
	require.Len(t, toks, 2)
	assert.Equal(t, []Attribute{
		{Name: "href", Value: "x"},
		{Name: "class", Value: "y"},
		{Name: "disabled", Value: ""},
	}, toks[0].Attr)
}

func TestDuplicateAttributeFirstWins(t *testing.T) {
	var sink perr.CollectSink
	toks := collect(t, `<a href="first" href="second">`, &sink)
	require.Len(t, toks, 2)
	assert.Equal(t, []Attribute{{Name: "href", Value: "first"}}, toks[0].Attr)

	found := false
	for _, r := range sink.Errors {
		if r.Kind == perr.DuplicateAttribute {
			found = true
		}
	}
	assert.True(t, found, "expected a duplicate-attribute parse error")
}

func TestSelfClosingStartTag(t *testing.T) {
	toks := collect(t, `<br/>`, nil)
	require.Len(t, toks, 2)
	assert.True(t, toks[0].SelfClosing)
}

func TestComment(t *testing.T) {
	toks := collect(t, "<!-- hi -->", nil)
	require.Len(t, toks, 2)
	assert.Equal(t, CommentToken, toks[0].Type)
	assert.Equal(t, " hi ", toks[0].Text)
}

func TestAbruptClosingOfEmptyComment(t *testing.T) {
	var sink perr.CollectSink
	toks := collect(t, "<!-->", &sink)
	require.Len(t, toks, 2)
	assert.Equal(t, CommentToken, toks[0].Type)
	assert.Equal(t, "", toks[0].Text)
	assert.Equal(t, perr.AbruptClosingOfEmptyComment, sink.Errors[0].Kind)
}

func TestBogusCommentFromMarkupDeclaration(t *testing.T) {
	var sink perr.CollectSink
	toks := collect(t, "<!wtf>", &sink)
	require.Len(t, toks, 2)
	assert.Equal(t, CommentToken, toks[0].Type)
	assert.Equal(t, "wtf", toks[0].Text)
	assert.Equal(t, perr.IncorrectlyOpenedComment, sink.Errors[0].Kind)
}

func TestDoctypeBasic(t *testing.T) {
	toks := collect(t, "<!DOCTYPE html>", nil)
	require.Len(t, toks, 2)
	d := toks[0]
	assert.Equal(t, DoctypeToken, d.Type)
	assert.Equal(t, "html", d.Name)
	assert.False(t, d.HasPublicID)
	assert.False(t, d.HasSystemID)
	assert.False(t, d.ForceQuirks)
}

func TestDoctypeWithPublicAndSystemID(t *testing.T) {
	toks := collect(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`, nil)
	require.Len(t, toks, 2)
	d := toks[0]
	assert.True(t, d.HasPublicID)
	assert.Equal(t, "-//W3C//DTD HTML 4.01//EN", d.PublicID)
	assert.True(t, d.HasSystemID)
	assert.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", d.SystemID)
}

func TestDoctypeMissingNameForcesQuirks(t *testing.T) {
	var sink perr.CollectSink
	toks := collect(t, "<!DOCTYPE >", &sink)
	require.Len(t, toks, 2)
	assert.True(t, toks[0].ForceQuirks)
	assert.Equal(t, perr.MissingDoctypeName, sink.Errors[0].Kind)
}

func TestUnterminatedTagAtEOF(t *testing.T) {
	var sink perr.CollectSink
	toks := collect(t, "<p", &sink)
	// no StartTag emitted, only the terminal EOF
	require.Len(t, toks, 1)
	assert.Equal(t, EOFToken, toks[0].Type)
	require.NotEmpty(t, sink.Errors)
	assert.Equal(t, perr.EOFInTag, sink.Errors[0].Kind)
}

func TestNullCharacterReplacedWithFFFD(t *testing.T) {
	var sink perr.CollectSink
	toks := collect(t, "a\x00b", &sink)
	require.Len(t, toks, 4)
	assert.Equal(t, rune(0xFFFD), toks[1].Character)
	assert.Equal(t, perr.UnexpectedNullCharacter, sink.Errors[0].Kind)
}

func TestCRLFNormalizedToLF(t *testing.T) {
	toks := collect(t, "a\r\nb\rc", nil)
	var chars []rune
	for _, tok := range toks {
		if tok.Type == CharacterToken {
			chars = append(chars, tok.Character)
		}
	}
	assert.Equal(t, []rune{'a', '\n', 'b', '\n', 'c'}, chars)
}

func TestNamedCharacterReference(t *testing.T) {
	toks := collect(t, "a&amp;b", nil)
	var chars []rune
	for _, tok := range toks {
		if tok.Type == CharacterToken {
			chars = append(chars, tok.Character)
		}
	}
	assert.Equal(t, []rune{'a', '&', 'b'}, chars)
}

func TestNumericDecimalCharacterReference(t *testing.T) {
	toks := collect(t, "&#65;", nil)
	require.Len(t, toks, 2)
	assert.Equal(t, rune('A'), toks[0].Character)
}

func TestNumericHexCharacterReference(t *testing.T) {
	toks := collect(t, "&#x41;", nil)
	require.Len(t, toks, 2)
	assert.Equal(t, rune('A'), toks[0].Character)
}

func TestNumericCharacterReferenceNullReplaced(t *testing.T) {
	var sink perr.CollectSink
	toks := collect(t, "&#0;", &sink)
	require.Len(t, toks, 2)
	assert.Equal(t, rune(0xFFFD), toks[0].Character)
	assert.Equal(t, perr.NullCharacterReference, sink.Errors[0].Kind)
}

func TestAmbiguousAmpersandInAttributeValue(t *testing.T) {
	toks := collect(t, `<a href="x?a&bob=c">`, nil)
	require.Len(t, toks, 2)
	assert.Equal(t, "x?a&bob=c", toks[0].Attr[0].Value)
}

func TestRawTextScriptDoesNotTokenizeNestedTags(t *testing.T) {
	input := NewInputStream(strings.NewReader("a<b>c</script>d"), nil)
	tz := NewTokenizer(input, nil)
	tz.SetState("script")

	var toks []Token
	for {
		tok := tz.Next()
		toks = append(toks, tok)
		if tok.Type == EOFToken {
			break
		}
	}

	var text strings.Builder
	var sawEndTag bool
	for _, tok := range toks {
		switch tok.Type {
		case CharacterToken:
			text.WriteRune(tok.Character)
		case EndTagToken:
			assert.Equal(t, "script", tok.Name)
			sawEndTag = true
		}
	}
	assert.True(t, sawEndTag)
	assert.Equal(t, "a<b>cd", text.String())
}

func TestRCDATARecognizesCharacterReferences(t *testing.T) {
	input := NewInputStream(strings.NewReader("a&amp;b</title>"), nil)
	tz := NewTokenizer(input, nil)
	tz.SetState("title")

	var chars []rune
	for {
		tok := tz.Next()
		if tok.Type == CharacterToken {
			chars = append(chars, tok.Character)
		}
		if tok.Type == EOFToken {
			break
		}
	}
	assert.Equal(t, []rune{'a', '&', 'b'}, chars)
}

func TestEndTagWithAttributesIsParseError(t *testing.T) {
	var sink perr.CollectSink
	toks := collect(t, `<p></p class="x">`, &sink)
	require.Len(t, toks, 3)
	assert.Equal(t, perr.EndTagWithAttributes, sink.Errors[0].Kind)
}
