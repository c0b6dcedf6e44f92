package rabbitlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/trace"
)

// wireMessage is the JSON body of every published record.
type wireMessage struct {
	Level   string                 `json:"level"`
	Message string                 `json:"message"`
	Name    string                 `json:"name"`
	Src     string                 `json:"src"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Log ships one record with the given level and message.
//
// Metadata maps are merged left to right; when nothing remains the record
// carries no metadata. There is no buffering: a call made before the
// channel exists fails with ErrNotInitialized.
//
// Example:
//
//	err := transport.Log(ctx, "info", "user signed in", map[string]interface{}{
//		"user_id": 42,
//	})
func (t *Transport) Log(ctx context.Context, level, message string, meta ...map[string]interface{}) error {
	return t.Write(ctx, Record{
		Level:   level,
		Message: message,
		Meta:    mergeMeta(meta...),
	})
}

// LogWithCallback ships one record and reports the outcome to cb: cb(nil,
// true) when the record was accepted and cb(err, false) otherwise. A nil cb
// is allowed.
func (t *Transport) LogWithCallback(ctx context.Context, level, message string, meta map[string]interface{}, cb Callback) {
	err := t.Log(ctx, level, message, meta)
	if cb == nil {
		return
	}
	if err != nil {
		cb(err, false)
		return
	}
	cb(nil, true)
}

// Write ships a prepared record through the configured sink.
func (t *Transport) Write(ctx context.Context, rec Record) error {
	if len(rec.Meta) == 0 {
		rec.Meta = nil
	}
	return t.writer.write(ctx, rec)
}

// brokerSink publishes records to the exchange.
type brokerSink struct {
	t *Transport
}

func (s brokerSink) write(ctx context.Context, rec Record) error {
	return s.t.publish(ctx, rec)
}

func (brokerSink) mode() Mode {
	return ModeBroker
}

// routingKey returns the fixed routing key if configured, else the level.
func (t *Transport) routingKey(level string) string {
	if t.cfg.RoutingKey != "" {
		return t.cfg.RoutingKey
	}
	return level
}

func (t *Transport) publish(ctx context.Context, rec Record) (err error) {
	start := time.Now()
	key := t.routingKey(rec.Level)
	var size int64

	if t.cfg.Tracer != nil {
		var span trace.Span
		ctx, span = t.cfg.Tracer.StartSpan(ctx, "rabbitlog.publish")
		defer func() {
			if err != nil {
				t.cfg.Tracer.RecordErrorOnSpan(span, err)
			}
			span.End()
		}()
	}
	defer func() {
		t.observeOperation("publish", t.cfg.Exchange, key, time.Since(start), err, size)
	}()

	body, err := json.Marshal(wireMessage{
		Level:   rec.Level,
		Message: rec.Message,
		Name:    t.cfg.Name,
		Src:     t.hostname,
		Meta:    rec.Meta,
	})
	if err != nil {
		return newError(ErrPublishFailed, fmt.Errorf("%w: %w", ErrEncoding, err))
	}

	msg := amqp.Publishing{
		Headers:      t.traceHeaders(ctx),
		ContentType:  t.cfg.PublishOptions.ContentType,
		DeliveryMode: amqp.Transient,
		MessageId:    uuid.NewString(),
		AppId:        t.cfg.Name,
		Timestamp:    t.cfg.Timestamp(),
		Body:         body,
	}
	if t.cfg.PublishOptions.Persistent {
		msg.DeliveryMode = amqp.Persistent
	}

	t.mu.RLock()
	if t.channel == nil {
		t.mu.RUnlock()
		return newError(ErrPublishFailed, ErrNotInitialized)
	}
	err = t.channel.PublishWithContext(ctx,
		t.cfg.Exchange,
		key,
		t.cfg.PublishOptions.Mandatory,
		false, // Immediate
		msg,
	)
	t.mu.RUnlock()

	if err != nil {
		return newError(ErrPublishFailed, err)
	}

	size = int64(len(body))
	t.emitDebug(fmt.Sprintf("Logged to %s/%s", t.cfg.Exchange, key))
	return nil
}

// traceHeaders carries the span context of ctx in message headers.
func (t *Transport) traceHeaders(ctx context.Context) amqp.Table {
	if t.cfg.Tracer == nil {
		return nil
	}
	carrier := t.cfg.Tracer.GetCarrier(ctx)
	if len(carrier) == 0 {
		return nil
	}
	headers := make(amqp.Table, len(carrier))
	for k, v := range carrier {
		headers[k] = v
	}
	return headers
}

// mergeMeta merges metadata maps, later maps winning. It returns nil when
// there is nothing to merge.
func mergeMeta(meta ...map[string]interface{}) map[string]interface{} {
	var merged map[string]interface{}
	for _, m := range meta {
		for k, v := range m {
			if merged == nil {
				merged = make(map[string]interface{}, len(m))
			}
			merged[k] = v
		}
	}
	return merged
}
