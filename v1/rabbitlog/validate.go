package rabbitlog

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
)

// protocolFamily is matched against the URL scheme; amqp and amqps both pass.
const protocolFamily = "amqp"

// ValidateURL checks a broker address and returns its resolved host:port.
//
// The checks run in order: the address must be set (ErrInvalidURLType), it
// must parse as an absolute URL (ErrInvalidURL), its scheme must
// belong to the amqp family (ErrInvalidProtocol), and the AMQP client must
// accept it (ErrInvalidURL). A missing host defaults to localhost. No network
// activity takes place.
func ValidateURL(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", newError(ErrInvalidURLType, nil)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", newError(ErrInvalidURL, err)
	}
	if parsed.Scheme == "" {
		return "", newError(ErrInvalidURL, nil)
	}

	if !strings.Contains(strings.ToLower(parsed.Scheme), protocolFamily) {
		return "", newError(ErrInvalidProtocol, nil)
	}

	uri, err := amqp.ParseURI(raw)
	if err != nil {
		return "", newError(ErrInvalidURL, err)
	}

	return net.JoinHostPort(uri.Host, strconv.Itoa(uri.Port)), nil
}
