package rabbitlog

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
)

//go:generate mockgen -source=amqp.go -destination=mock_amqp_test.go -package=rabbitlog

// amqpConnection is the part of *amqp.Connection the transport relies on.
type amqpConnection interface {
	Channel() (amqpChannel, error)
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
	IsClosed() bool
	Close() error
}

// amqpChannel is the part of *amqp.Channel the transport relies on.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
	Close() error
}

// dialFunc opens a broker connection.
type dialFunc func(url string, config amqp.Config) (amqpConnection, error)

// connectionAdapter narrows *amqp.Connection to amqpConnection.
type connectionAdapter struct {
	*amqp.Connection
}

func (c connectionAdapter) Channel() (amqpChannel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func dialAMQP(url string, config amqp.Config) (amqpConnection, error) {
	conn, err := amqp.DialConfig(url, config)
	if err != nil {
		return nil, err
	}
	return connectionAdapter{Connection: conn}, nil
}

// amqpConfig translates SocketOptions into the client configuration.
func amqpConfig(cfg Config) (amqp.Config, error) {
	opts := cfg.SocketOptions

	props := amqp.NewConnectionProperties()
	for k, v := range opts.Properties {
		props[k] = v
	}
	name := opts.ConnectionName
	if name == "" {
		name = cfg.Name
	}
	props.SetClientConnectionName(name)

	config := amqp.Config{
		Vhost:      opts.Vhost,
		Heartbeat:  opts.Heartbeat,
		Locale:     opts.Locale,
		FrameSize:  opts.FrameSize,
		Properties: props,
	}
	if opts.DialTimeout > 0 {
		config.Dial = amqp.DefaultDial(opts.DialTimeout)
	}

	if strings.HasPrefix(strings.ToLower(cfg.URL), "amqps://") {
		tlsConfig, err := tlsConfig(opts.TLS)
		if err != nil {
			return amqp.Config{}, err
		}
		config.TLSClientConfig = tlsConfig
	}
	return config, nil
}

// tlsConfig builds the client TLS settings; nil means the client defaults.
func tlsConfig(opts TLSOptions) (*tls.Config, error) {
	if opts == (TLSOptions{}) {
		return nil, nil
	}

	config := &tls.Config{
		ServerName: opts.ServerName,
		MinVersion: tls.VersionTLS12,
	}

	if opts.CACertPath != "" {
		caCert, err := os.ReadFile(opts.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("no certificates found in %s", opts.CACertPath)
		}
		config.RootCAs = pool
	}

	if opts.ClientCertPath != "" && opts.ClientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(opts.ClientCertPath, opts.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert/key: %w", err)
		}
		config.Certificates = []tls.Certificate{cert}
	}
	return config, nil
}
