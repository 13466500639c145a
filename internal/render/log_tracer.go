package render

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/rowreducer/matrix"
)

// LogTracer returns a tracer logging every step at debug level.
func LogTracer(logger zerolog.Logger) matrix.Tracer {
	return func(s matrix.Step) {
		logger.Debug().
			Str("kind", s.Kind.String()).
			Int("target", s.Target+1).
			Int("source", s.Source+1).
			Int("column", s.Column+1).
			Float64("factor", s.Factor).
			Msg(s.Message)
	}
}
