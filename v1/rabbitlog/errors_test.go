package rabbitlog

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	cause := errors.New("boom")

	err := newError(ErrConnectionFailed, cause)
	assert.EqualError(t, err, "rabbitlog: connection failed: boom")
	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.ErrorIs(t, err, cause)

	assert.EqualError(t, newError(ErrNotInitialized, nil), "rabbitlog: transport not initialized")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"access refused", &amqp.Error{Code: amqp.AccessRefused}, ErrAccessDenied},
		{"not found", &amqp.Error{Code: amqp.NotFound}, ErrNotFound},
		{"resource locked", &amqp.Error{Code: amqp.ResourceLocked}, ErrResourceLocked},
		{"precondition failed", &amqp.Error{Code: amqp.PreconditionFailed}, ErrPreconditionFailed},
		{"content too large", &amqp.Error{Code: amqp.ContentTooLarge}, ErrMessageTooLarge},
		{"no route", &amqp.Error{Code: amqp.NoRoute}, ErrNoRoute},
		{"frame error", &amqp.Error{Code: amqp.FrameError}, ErrProtocol},
		{"internal error", &amqp.Error{Code: amqp.InternalError}, ErrServer},
		{"connection forced", &amqp.Error{Code: amqp.ConnectionForced}, ErrConnectionClosed},
		{"closed", amqp.ErrClosed, ErrConnectionClosed},
		{"wrapped amqp", newError(ErrChannelFailed, fmt.Errorf("declare: %w", &amqp.Error{Code: amqp.AccessRefused})), ErrAccessDenied},
		{"refused errno", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, ErrConnectionRefused},
		{"timeout errno", syscall.ETIMEDOUT, ErrTimeout},
		{"other errno", syscall.EHOSTUNREACH, ErrNetwork},
		{"deadline", context.DeadlineExceeded, ErrTimeout},
		{"refused text", errors.New("dial tcp: connection refused"), ErrConnectionRefused},
		{"timeout text", errors.New("i/o timeout"), ErrTimeout},
		{"unknown", errors.New("something else"), ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestErrorLabel(t *testing.T) {
	assert.Empty(t, errorLabel(nil))
	assert.Equal(t, "access_denied", errorLabel(&amqp.Error{Code: amqp.AccessRefused}))
	assert.Equal(t, "unknown_error", errorLabel(errors.New("x")))
}
