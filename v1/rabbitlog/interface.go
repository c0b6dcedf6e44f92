package rabbitlog

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Sink is the logging surface of a Transport.
//
// This interface is implemented by the concrete *Transport type.
type Sink interface {
	// Log ships one record. Metadata maps are merged; empty metadata is
	// dropped. A nil error means the record was accepted.
	Log(ctx context.Context, level, message string, meta ...map[string]interface{}) error

	// LogWithCallback ships one record and reports the outcome through cb:
	// cb(nil, true) on acceptance, cb(err, false) otherwise.
	LogWithCallback(ctx context.Context, level, message string, meta map[string]interface{}, cb Callback)

	// Write ships a prepared record.
	Write(ctx context.Context, rec Record) error

	// Close releases the broker channel and connection.
	Close() error
}

// Callback reports whether a record was accepted.
type Callback func(err error, accepted bool)

// Record is one log entry on its way to the broker. It lives for the
// duration of a single publish.
type Record struct {
	Level   string
	Message string
	Meta    map[string]interface{}
}

// Tracer is implemented by *tracer.Tracer.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
	RecordErrorOnSpan(span trace.Span, err error)
	GetCarrier(ctx context.Context) map[string]string
}

// Mode names the sink variant a Transport was built with.
type Mode string

const (
	// ModeBroker publishes to the exchange.
	ModeBroker Mode = "broker"

	// ModeConsole writes to the console logger.
	ModeConsole Mode = "console"
)

// recordWriter is the sink variant chosen at construction.
type recordWriter interface {
	write(ctx context.Context, rec Record) error
	mode() Mode
}
