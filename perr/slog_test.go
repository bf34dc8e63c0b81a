package perr

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/htmlkit/htmlkit/pos"
)

func TestSlogSinkForwardsReports(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	sink := NewSlogSink(logger)

	sink.Report(UnexpectedNullCharacter, pos.Position{Row: 1, Col: 5})

	out := buf.String()
	assert.True(t, strings.Contains(out, "html parse error"))
	assert.True(t, strings.Contains(out, "unexpected-null-character"))
	assert.True(t, strings.Contains(out, "1:5"))
}

func TestNewSlogSinkNilDiscards(t *testing.T) {
	sink := NewSlogSink(nil)
	assert.NotPanics(t, func() {
		sink.Report(EOFInTag, pos.Position{Row: 1, Col: 1})
	})
}
