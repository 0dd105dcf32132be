package migrations

import (
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/bloglist/internal/logger"
)

// gooseLogger routes goose output through the service logger so
// migration lines share the JSON format of everything else.
type gooseLogger struct {
	log *logger.Logger
}

var _ goose.Logger = (*gooseLogger)(nil)

func newGooseLogger(log *logger.Logger) *gooseLogger {
	if log == nil {
		log = logger.Nop()
	}
	return &gooseLogger{log: log}
}

func (g *gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Info().Str("component", "goose").Msgf(strings.TrimSpace(format), v...)
}

func (g *gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Fatal().Str("component", "goose").Msgf(strings.TrimSpace(format), v...)
}
