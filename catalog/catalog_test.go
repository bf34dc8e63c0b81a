package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVoid(t *testing.T) {
	for _, name := range []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "source", "track", "wbr"} {
		assert.Truef(t, IsVoid(name), "%s should be void", name)
	}
	for _, name := range []string{"div", "span", "p", "script", "style"} {
		assert.Falsef(t, IsVoid(name), "%s should not be void", name)
	}
}

func TestTokenizerModeAfterStart(t *testing.T) {
	cases := []struct {
		name string
		want TokenizerMode
	}{
		{"style", RAWTEXT},
		{"xmp", RAWTEXT},
		{"iframe", RAWTEXT},
		{"noembed", RAWTEXT},
		{"noframes", RAWTEXT},
		{"noscript", RAWTEXT},
		{"textarea", RCDATA},
		{"title", RCDATA},
		{"script", ScriptDataMode},
		{"plaintext", PlainText},
		{"div", Data},
		{"unknown-custom-element", Data},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, TokenizerModeAfterStart(c.name), "mode after <%s>", c.name)
	}
}

func TestLookupUnknownName(t *testing.T) {
	_, ok := Lookup("totally-not-an-html-tag-xyz")
	assert.False(t, ok)
}

func TestLookupKnownNameNoFlags(t *testing.T) {
	e, ok := Lookup("div")
	assert.True(t, ok)
	assert.Equal(t, Flags(0), e.Flags)
}

func TestOmitEndAllowed(t *testing.T) {
	for _, name := range []string{"li", "dt", "dd", "rt", "rp", "td", "th", "tr", "option", "optgroup", "p"} {
		e, ok := Lookup(name)
		assert.Truef(t, ok, "%s should be known", name)
		assert.NotZerof(t, e.Flags&OmitEndAllowed, "%s should allow omitted end tag", name)
	}
}

func TestForeignRoots(t *testing.T) {
	for _, name := range []string{"svg", "math"} {
		e, ok := Lookup(name)
		assert.True(t, ok)
		assert.NotZero(t, e.Flags&Foreign)
	}
}

func TestNameRoundTrip(t *testing.T) {
	e, ok := Lookup("script")
	assert.True(t, ok)
	assert.Equal(t, "script", Name(e.Atom))
}
