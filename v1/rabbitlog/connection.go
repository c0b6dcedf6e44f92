package rabbitlog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Initialize connects to the broker, opens the logging channel and declares
// the topic exchange.
//
// Concurrent calls share a single attempt. Calling Initialize on a transport
// that already has a channel, or on a console transport, returns nil without
// touching the broker. After a channel exception the connection is reused and
// only a new channel is opened.
//
// On failure every handle opened so far is closed and the error wraps
// ErrConnectionFailed or ErrChannelFailed together with the broker cause.
// The transport does not retry on its own.
//
// Example:
//
//	transport, _ := rabbitlog.NewTransport(rabbitlog.WithLazyInit(true))
//	if err := transport.Initialize(ctx); err != nil {
//		return err
//	}
func (t *Transport) Initialize(ctx context.Context) error {
	if t.writer.mode() == ModeConsole || t.Connected() {
		return nil
	}

	_, err, _ := t.initGroup.Do("initialize", func() (interface{}, error) {
		if t.Connected() {
			return nil, nil
		}
		return nil, t.connect(ctx)
	})
	return err
}

// Connected reports whether the logging channel is open.
func (t *Transport) Connected() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.channel != nil
}

func (t *Transport) connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return newError(ErrConnectionFailed, err)
	}

	t.mu.RLock()
	conn, gen := t.conn, t.gen
	t.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		var err error
		conn, err = t.dialBroker()
		if err != nil {
			t.closeAfterFailure()
			return newError(ErrConnectionFailed, err)
		}

		t.mu.Lock()
		if t.gen != gen {
			t.mu.Unlock()
			t.discard("connection", conn.Close)
			return newError(ErrConnectionFailed, ErrTransportClosed)
		}
		t.conn = conn
		t.mu.Unlock()

		t.watchConnection(conn)
		t.emitDebug("Connection established")
	}

	start := time.Now()
	ch, err := t.openChannel(conn)
	t.observeOperation("channel", t.cfg.Exchange, ExchangeKind, time.Since(start), err, 0)
	if err != nil {
		t.closeAfterFailure()
		return newError(ErrChannelFailed, err)
	}

	t.mu.Lock()
	if t.gen != gen {
		t.mu.Unlock()
		t.discard("channel", ch.Close)
		return newError(ErrConnectionFailed, ErrTransportClosed)
	}
	t.channel = ch
	t.mu.Unlock()

	t.watchChannel(ch)
	t.emitDebug("Channel created")
	return nil
}

func (t *Transport) dialBroker() (amqpConnection, error) {
	config, err := amqpConfig(t.cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	conn, err := t.dial(t.cfg.URL, config)
	t.observeOperation("connect", t.cfg.Host, "", time.Since(start), err, 0)
	return conn, err
}

// openChannel opens a channel on conn and declares the exchange on it.
func (t *Transport) openChannel(conn amqpConnection) (amqpChannel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		t.cfg.Exchange,
		ExchangeKind,
		t.cfg.ExchangeOptions.Durable,
		t.cfg.ExchangeOptions.AutoDelete,
		false, // Internal
		false, // NoWait
		nil,   // Arguments
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", t.cfg.Exchange, err)
	}
	return ch, nil
}

// watchConnection waits for conn to close. A close carrying a broker error
// other than the regular shutdown handshake drops both handles and is
// reported as ErrConnectionLost.
func (t *Transport) watchConnection(conn amqpConnection) {
	closed := conn.NotifyClose(make(chan *amqp.Error, 1))

	go func() {
		amqpErr := <-closed
		t.emitDebug("Connection closed")
		if isRegularClose(amqpErr) {
			return
		}

		t.mu.Lock()
		if t.conn == conn {
			t.conn = nil
			t.channel = nil
		}
		t.mu.Unlock()

		t.fail(newError(ErrConnectionLost, amqpErr))
	}()
}

// watchChannel waits for ch to close. Any broker error is reported as
// ErrChannelException and drops the channel handle.
func (t *Transport) watchChannel(ch amqpChannel) {
	closed := ch.NotifyClose(make(chan *amqp.Error, 1))

	go func() {
		amqpErr := <-closed
		t.emitDebug("Channel closed")
		if amqpErr == nil {
			return
		}

		t.mu.Lock()
		if t.channel == ch {
			t.channel = nil
		}
		t.mu.Unlock()

		t.fail(newError(ErrChannelException, amqpErr))
	}()
}

// isRegularClose reports whether a connection close notification is part of
// a normal shutdown.
func isRegularClose(amqpErr *amqp.Error) bool {
	if amqpErr == nil || amqpErr == amqp.ErrClosed {
		return true
	}
	return strings.Contains(strings.ToLower(amqpErr.Reason), "closing")
}

// Close closes the logging channel and then the connection.
//
// Both handles are released even when closing one of them fails; the
// failures are joined into the returned error. Closing a transport that was
// never initialized, or closing it twice, returns nil. An Initialize still in
// progress when Close runs releases what it opened and fails with
// ErrTransportClosed.
func (t *Transport) Close() error {
	t.mu.Lock()
	ch, conn := t.channel, t.conn
	t.channel, t.conn = nil, nil
	t.gen++
	t.mu.Unlock()

	var errs []error

	if ch != nil {
		start := time.Now()
		err := ch.Close()
		if errors.Is(err, amqp.ErrClosed) {
			err = nil
		}
		t.observeOperation("close", t.cfg.Exchange, "channel", time.Since(start), err, 0)
		if err != nil {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}

	if conn != nil && !conn.IsClosed() {
		start := time.Now()
		err := conn.Close()
		if errors.Is(err, amqp.ErrClosed) {
			err = nil
		}
		t.observeOperation("close", t.cfg.Host, "connection", time.Since(start), err, 0)
		if err != nil {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}

	return errors.Join(errs...)
}

// closeAfterFailure releases whatever a failed Initialize left behind.
func (t *Transport) closeAfterFailure() {
	if err := t.Close(); err != nil {
		t.log.Warn("failed to release broker handles after initialization failure", err, map[string]interface{}{
			"name": t.cfg.Name,
			"host": t.cfg.Host,
		})
	}
}

// discard closes a handle opened by an attempt that Close overtook.
func (t *Transport) discard(handle string, closeFn func() error) {
	if err := closeFn(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		t.log.Warn("failed to release "+handle+" opened after close", err, map[string]interface{}{
			"name": t.cfg.Name,
			"host": t.cfg.Host,
		})
	}
}
