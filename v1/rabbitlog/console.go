package rabbitlog

import (
	"context"

	"github.com/Aleph-Alpha/logship/v1/logger"
)

// consoleSink writes records to the local logger instead of the broker.
// The record level picks the logger level; see logger.ParseLevel.
type consoleSink struct {
	log  *logger.LoggerClient
	name string
}

func (s consoleSink) write(_ context.Context, rec Record) error {
	s.log.Log(rec.Level, rec.Message, nil, map[string]interface{}{"name": s.name}, rec.Meta)
	return nil
}

func (consoleSink) mode() Mode {
	return ModeConsole
}
