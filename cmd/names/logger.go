package main

import (
	"github.com/rs/zerolog"
	"github.com/sirkon/dllist/internal/logging"
)

var _ logging.Logger = zeroLogger{}

// zeroLogger реализация logging.Logger поверх zerolog.
type zeroLogger struct {
	log zerolog.Logger
}

func (l zeroLogger) InvalidCount(input string) {
	l.log.Warn().Str("input", input).Msg("invalid names count")
}

func (l zeroLogger) CountOutOfRange(count int) {
	l.log.Warn().Int("count", count).Msg("names count out of range")
}

func (l zeroLogger) NameAdded(pos int, name string) {
	l.log.Debug().Int("pos", pos).Str("name", name).Msg("name added")
}

func (l zeroLogger) Done(count int) {
	l.log.Info().Int("count", count).Msg("names collected")
}
