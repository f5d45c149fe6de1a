package obs

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const RunIDKey = "run_id"

// NewLogger configures a zerolog logger using the provided format and level.
// Format "console" (or "text") selects the human readable writer; anything
// else writes JSON lines.
func NewLogger(out io.Writer, format, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if out == nil {
		out = os.Stderr
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// WithRun tags logger with a fresh run id and attaches it to ctx.
func WithRun(ctx context.Context, logger zerolog.Logger) (context.Context, string) {
	runID := uuid.NewString()
	l := logger.With().Str(RunIDKey, runID).Logger()
	return l.WithContext(ctx), runID
}
