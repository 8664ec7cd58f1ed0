package main

import "github.com/rs/zerolog"

// zerologTracer adapts vtcore's Tracer provider to a zerolog.Logger.
type zerologTracer struct {
	log zerolog.Logger
}

func (t zerologTracer) Warnf(format string, args ...any) {
	t.log.Warn().Msgf(format, args...)
}
