package rabbitlog

import (
	"os"
	"time"

	"github.com/Aleph-Alpha/logship/v1/logger"
	"github.com/Aleph-Alpha/logship/v1/observability"
)

const (
	// EnvPrefix prefixes every environment variable read by LoadConfig.
	EnvPrefix = "RABBITLOG"

	// EnvURL supplies the default broker URL when no explicit URL is given.
	EnvURL = EnvPrefix + "_URL"

	// DefaultName is the sink identifier used when none is configured.
	DefaultName = "rabbitmq-logger"

	// DefaultLevel is the default label/minimum severity.
	DefaultLevel = logger.Debug

	// DefaultURL points at a broker on the local host.
	DefaultURL = "amqp://localhost:5672"

	// DefaultExchange is the topic exchange log records are published to.
	DefaultExchange = "logs"

	// ExchangeKind is the only exchange type the transport declares.
	ExchangeKind = "topic"

	// DefaultContentType labels the JSON payload.
	DefaultContentType = "application/json"

	// DefaultHeartbeat is the AMQP heartbeat negotiated with the broker.
	DefaultHeartbeat = 10 * time.Second
)

// DebugFunc receives diagnostic trace messages. Without a custom DebugFunc
// the messages are logged at debug level: through a debug-level logger when
// Config.Logger is nil, and through Config.Logger otherwise, whose own level
// then decides whether they are kept.
type DebugFunc func(msg string)

// ErrorHandler receives errors raised outside of a caller's control flow:
// background initialization failures and broker-side connection or channel
// errors.
type ErrorHandler func(err error)

// Config is the resolved, immutable transport configuration.
// Build it with DefaultConfig, Resolve or LoadConfig; NewTransport copies it
// and never changes it afterwards.
type Config struct {
	// Name identifies this sink and is embedded in every message.
	Name string `yaml:"name" envconfig:"NAME"`

	// Level is the label/minimum severity. It gates the zap core and decides
	// whether a custom Debug function is honoured.
	Level string `yaml:"level" envconfig:"LEVEL"`

	// LogToConsole bypasses the broker entirely and writes to the console.
	LogToConsole bool `yaml:"log_to_console" envconfig:"LOG_TO_CONSOLE"`

	// URL is the broker address. It must use the amqp or amqps scheme.
	URL string `yaml:"url" envconfig:"URL"`

	// Host is the resolved host:port of URL. It is filled in during
	// validation and is informational only.
	Host string `yaml:"-" ignored:"true"`

	// SocketOptions are handed to the AMQP dialer.
	SocketOptions SocketOptions `yaml:"socket_options" envconfig:"SOCKET"`

	// Exchange is the topic exchange records are published to.
	Exchange string `yaml:"exchange" envconfig:"EXCHANGE"`

	// ExchangeOptions controls the exchange declaration.
	ExchangeOptions ExchangeOptions `yaml:"exchange_options" envconfig:"EXCHANGE"`

	// RoutingKey overrides the per-record routing key. When empty the
	// record level is used.
	RoutingKey string `yaml:"routing_key" envconfig:"ROUTING_KEY"`

	// PublishOptions controls message properties.
	PublishOptions PublishOptions `yaml:"publish_options" envconfig:"PUBLISH"`

	// Debug is a custom diagnostics sink. It is only used when Level is "debug";
	// otherwise diagnostics go to the default sink described on DebugFunc.
	Debug DebugFunc `yaml:"-" ignored:"true"`

	// LazyInit suppresses the automatic background connection. The caller
	// must run Initialize before logging.
	LazyInit bool `yaml:"lazy_init" envconfig:"LAZY_INIT"`

	// Timestamp stamps published messages.
	Timestamp func() time.Time `yaml:"-" ignored:"true"`

	// ErrorHandler receives asynchronous failures. Defaults to logging them.
	ErrorHandler ErrorHandler `yaml:"-" ignored:"true"`

	// Logger backs the console fallback, the default diagnostics sink and the
	// default ErrorHandler. Defaults to a console logger on stdout.
	Logger *logger.LoggerClient `yaml:"-" ignored:"true"`

	// Observer receives connect/channel/publish/close reports.
	Observer observability.Observer `yaml:"-" ignored:"true"`

	// Tracer adds a span per publish and propagates its context in headers.
	Tracer Tracer `yaml:"-" ignored:"true"`

	dial dialFunc
}

// ExchangeOptions mirrors the durability flags of the exchange declaration.
type ExchangeOptions struct {
	// Durable exchanges survive broker restarts.
	Durable bool `yaml:"durable" envconfig:"DURABLE"`

	// AutoDelete exchanges are removed once the last binding is gone.
	AutoDelete bool `yaml:"auto_delete" envconfig:"AUTO_DELETE"`
}

// PublishOptions controls the properties of each published message.
type PublishOptions struct {
	// ContentType of the payload. Defaults to application/json.
	ContentType string `yaml:"content_type" envconfig:"CONTENT_TYPE"`

	// Persistent marks messages for disk persistence on durable queues.
	Persistent bool `yaml:"persistent" envconfig:"PERSISTENT"`

	// Mandatory asks the broker to return unroutable messages. Returned
	// messages are not consumed by the transport.
	Mandatory bool `yaml:"mandatory" envconfig:"MANDATORY"`
}

// SocketOptions configure the broker connection.
type SocketOptions struct {
	// Heartbeat interval negotiated with the broker.
	Heartbeat time.Duration `yaml:"heartbeat" envconfig:"HEARTBEAT"`

	// DialTimeout bounds the TCP connect. Zero uses the AMQP client default.
	DialTimeout time.Duration `yaml:"dial_timeout" envconfig:"DIAL_TIMEOUT"`

	// Locale sent during the handshake.
	Locale string `yaml:"locale" envconfig:"LOCALE"`

	// ConnectionName is shown in the broker management UI. Defaults to Name.
	ConnectionName string `yaml:"connection_name" envconfig:"CONNECTION_NAME"`

	// Vhost overrides the virtual host from the URL.
	Vhost string `yaml:"vhost" envconfig:"VHOST"`

	// FrameSize caps the AMQP frame size. Zero lets the broker decide.
	FrameSize int `yaml:"frame_size" envconfig:"FRAME_SIZE"`

	// TLS configures certificates for amqps URLs.
	TLS TLSOptions `yaml:"tls" envconfig:"TLS"`

	// Properties are extra client properties sent to the broker.
	Properties map[string]interface{} `yaml:"properties" ignored:"true"`
}

// TLSOptions point at PEM files used for amqps connections.
type TLSOptions struct {
	// CACertPath verifies the broker certificate.
	CACertPath string `yaml:"ca_cert_path" envconfig:"CA_CERT_PATH"`

	// ClientCertPath and ClientKeyPath enable mutual TLS when both are set.
	ClientCertPath string `yaml:"client_cert_path" envconfig:"CLIENT_CERT_PATH"`
	ClientKeyPath  string `yaml:"client_key_path" envconfig:"CLIENT_KEY_PATH"`

	// ServerName must match a CN or SAN of the broker certificate.
	ServerName string `yaml:"server_name" envconfig:"SERVER_NAME"`
}

// DefaultConfig returns a fresh default configuration. Every call builds a
// new value, so callers can modify the result freely.
//
// The URL comes from RABBITLOG_URL when set, otherwise DefaultURL.
func DefaultConfig() Config {
	return Config{
		Name:         DefaultName,
		Level:        DefaultLevel,
		LogToConsole: false,
		URL:          defaultURL(),
		SocketOptions: SocketOptions{
			Heartbeat: DefaultHeartbeat,
			Locale:    "en_US",
		},
		Exchange: DefaultExchange,
		ExchangeOptions: ExchangeOptions{
			Durable:    true,
			AutoDelete: false,
		},
		PublishOptions: PublishOptions{
			ContentType: DefaultContentType,
		},
		Timestamp: defaultTimestamp,
	}
}

func defaultURL() string {
	if url, ok := os.LookupEnv(EnvURL); ok && url != "" {
		return url
	}
	return DefaultURL
}

func defaultTimestamp() time.Time {
	return time.Now().UTC()
}
