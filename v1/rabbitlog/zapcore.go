package rabbitlog

import (
	"context"

	"go.uber.org/zap/zapcore"

	"github.com/Aleph-Alpha/logship/v1/logger"
)

// core adapts a Transport to zapcore.Core.
type core struct {
	zapcore.LevelEnabler
	t      *Transport
	fields []zapcore.Field
}

// NewCore returns a zapcore.Core that ships entries through t. Entries below
// the transport level are dropped. Fields become record metadata and the
// entry level name becomes the record level.
//
// Example:
//
//	log := zap.New(zapcore.NewTee(consoleCore, rabbitlog.NewCore(transport)))
//	log.Info("order placed", zap.String("order_id", id))
func NewCore(t *Transport) zapcore.Core {
	return &core{
		LevelEnabler: logger.ParseLevel(t.cfg.Level),
		t:            t,
	}
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(c.fields[:len(c.fields):len(c.fields)], fields...)
	return &clone
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	if ent.LoggerName != "" {
		enc.AddString("logger", ent.LoggerName)
	}

	return c.t.Write(context.Background(), Record{
		Level:   ent.Level.String(),
		Message: ent.Message,
		Meta:    enc.Fields,
	})
}

func (c *core) Sync() error {
	return nil
}
