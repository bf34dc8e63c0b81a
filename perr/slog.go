package perr

import (
	"io"
	"log/slog"

	"github.com/htmlkit/htmlkit/pos"
)

// SlogSink adapts a *slog.Logger to the Sink interface (SPEC_FULL §10),
// forwarding every report as a structured Warn-level log entry, the way the
// teacher's pages.go defaults an absent *slog.Logger to a discarding
// handler rather than special-casing nil throughout the codebase.
type SlogSink struct {
	Logger *slog.Logger
}

// NewSlogSink wraps logger, or a discarding logger if logger is nil.
func NewSlogSink(logger *slog.Logger) SlogSink {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return SlogSink{Logger: logger}
}

func (s SlogSink) Report(kind Kind, p pos.Position) {
	s.Logger.Warn("html parse error", slog.String("kind", string(kind)), slog.String("pos", p.String()))
}
