package rabbitlog

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Configuration errors, returned synchronously by NewTransport.
var (
	// ErrInvalidURLType is returned when no broker URL is configured. An
	// empty string is the only URL value Go lets through as the wrong kind.
	ErrInvalidURLType = errors.New("url must be of type string")

	// ErrInvalidURL is returned when the broker URL cannot be parsed.
	ErrInvalidURL = errors.New("Invalid URL")

	// ErrInvalidProtocol is returned when the URL scheme is not amqp.
	ErrInvalidProtocol = errors.New("Incorrect protocol, must be amqp")
)

// Connectivity errors, returned by Initialize.
var (
	// ErrConnectionFailed is returned when the broker connection cannot be established.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrChannelFailed is returned when the logging channel cannot be opened
	// or the exchange cannot be declared.
	ErrChannelFailed = errors.New("channel failed")

	// ErrTransportClosed is returned, wrapped in ErrConnectionFailed, when
	// Close runs while Initialize is still connecting.
	ErrTransportClosed = errors.New("transport closed")
)

// Runtime errors, delivered to the ErrorHandler.
var (
	// ErrConnectionLost is reported when the broker closes the connection with an error.
	ErrConnectionLost = errors.New("connection lost")

	// ErrChannelException is reported when the broker closes the logging channel.
	ErrChannelException = errors.New("channel exception")
)

// Publish errors, returned by Log and Write.
var (
	// ErrPublishFailed wraps every failed publish.
	ErrPublishFailed = errors.New("publish failed")

	// ErrNotInitialized is returned when no logging channel exists yet.
	ErrNotInitialized = errors.New("transport not initialized")

	// ErrEncoding is returned when a record cannot be encoded.
	ErrEncoding = errors.New("encoding failed")
)

// Broker-level classes returned by Classify.
var (
	// ErrAccessDenied is returned for AMQP 403 ACCESS_REFUSED.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound is returned for AMQP 404 NOT_FOUND, e.g. a missing exchange.
	ErrNotFound = errors.New("not found")

	// ErrResourceLocked is returned for AMQP 405 RESOURCE_LOCKED.
	ErrResourceLocked = errors.New("resource locked")

	// ErrPreconditionFailed is returned for AMQP 406 PRECONDITION_FAILED,
	// typically an exchange redeclared with different arguments.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrMessageTooLarge is returned for AMQP 311 CONTENT_TOO_LARGE.
	ErrMessageTooLarge = errors.New("message too large")

	// ErrNoRoute is returned for AMQP 312 NO_ROUTE and 313 NO_CONSUMERS.
	ErrNoRoute = errors.New("no route")

	// ErrProtocol is returned for frame, syntax and command errors.
	ErrProtocol = errors.New("protocol error")

	// ErrServer is returned for broker-side internal or resource errors.
	ErrServer = errors.New("server error")

	// ErrConnectionClosed is returned when the broker closed the connection
	// or channel (320 CONNECTION_FORCED, 504 CHANNEL_ERROR).
	ErrConnectionClosed = errors.New("connection closed")

	// ErrConnectionRefused is returned when nothing listens at the broker address.
	ErrConnectionRefused = errors.New("connection refused")

	// ErrTimeout is returned when a network operation timed out.
	ErrTimeout = errors.New("timeout")

	// ErrNetwork is returned for any other network or socket failure.
	ErrNetwork = errors.New("network error")

	// ErrUnknown is returned when no other class matches.
	ErrUnknown = errors.New("unknown error")
)

// newError scopes cause to the transport under the given kind. Both kind and
// cause stay reachable through errors.Is and errors.As.
func newError(kind, cause error) error {
	if cause == nil {
		return fmt.Errorf("rabbitlog: %w", kind)
	}
	return fmt.Errorf("rabbitlog: %w: %w", kind, cause)
}

// Classify maps an AMQP, network or syscall error onto one of the
// broker-level classes above. It returns nil for nil and ErrUnknown for
// anything it does not recognise. The result is meant for metric labels
// and branching, not for display.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var amqpErr *amqp.Error
	if errors.As(err, &amqpErr) {
		return classifyAMQPError(amqpErr)
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED:
			return ErrConnectionRefused
		case syscall.ETIMEDOUT:
			return ErrTimeout
		default:
			return ErrNetwork
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrTimeout
		}
		return ErrNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection refused"):
		return ErrConnectionRefused
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return ErrTimeout
	}
	return ErrUnknown
}

// classifyAMQPError maps AMQP reply codes.
func classifyAMQPError(amqpErr *amqp.Error) error {
	switch amqpErr.Code {
	case amqp.AccessRefused:
		return ErrAccessDenied
	case amqp.NotFound:
		return ErrNotFound
	case amqp.ResourceLocked:
		return ErrResourceLocked
	case amqp.PreconditionFailed:
		return ErrPreconditionFailed
	case amqp.ContentTooLarge:
		return ErrMessageTooLarge
	case amqp.NoRoute, amqp.NoConsumers:
		return ErrNoRoute
	case amqp.FrameError, amqp.SyntaxError, amqp.CommandInvalid, amqp.UnexpectedFrame, amqp.NotImplemented:
		return ErrProtocol
	case amqp.InternalError, amqp.ResourceError, amqp.NotAllowed:
		return ErrServer
	case amqp.ConnectionForced, amqp.ChannelError:
		return ErrConnectionClosed
	default:
		return ErrUnknown
	}
}

// errorLabel is the metric label for err.
func errorLabel(err error) string {
	if err == nil {
		return ""
	}
	return strings.ReplaceAll(Classify(err).Error(), " ", "_")
}
