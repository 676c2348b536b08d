// Package logging holds component loggers and context fields.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return ComponentOf(log.Logger, name)
}

// ComponentOf derives a component logger from base.
func ComponentOf(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("cmp", name).Logger()
}
