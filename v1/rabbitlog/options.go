package rabbitlog

import (
	"fmt"
	"maps"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Aleph-Alpha/logship/v1/logger"
	"github.com/Aleph-Alpha/logship/v1/observability"
)

// Option overrides one field of a Config. Options that are not passed leave
// the base value untouched.
type Option func(*Config)

// Resolve merges opts over base and returns the result. base is copied by
// value and its maps are cloned, so neither base nor previously resolved
// configurations are affected. No validation happens here.
func Resolve(base Config, opts ...Option) Config {
	cfg := base
	cfg.SocketOptions.Properties = maps.Clone(base.SocketOptions.Properties)
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// LoadConfig overlays RABBITLOG_* environment variables on DefaultConfig.
//
// Recognised variables include RABBITLOG_URL, RABBITLOG_NAME,
// RABBITLOG_LEVEL, RABBITLOG_LOG_TO_CONSOLE, RABBITLOG_EXCHANGE,
// RABBITLOG_EXCHANGE_DURABLE, RABBITLOG_EXCHANGE_AUTO_DELETE,
// RABBITLOG_ROUTING_KEY, RABBITLOG_LAZY_INIT, RABBITLOG_SOCKET_HEARTBEAT,
// RABBITLOG_SOCKET_TLS_CA_CERT_PATH and RABBITLOG_PUBLISH_CONTENT_TYPE.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("rabbitlog: load config: %w", err)
	}
	return cfg, nil
}

// WithConfig replaces the whole configuration.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		*cfg = c
		cfg.SocketOptions.Properties = maps.Clone(c.SocketOptions.Properties)
	}
}

// WithName sets the sink identifier.
func WithName(name string) Option {
	return func(cfg *Config) { cfg.Name = name }
}

// WithLevel sets the label/minimum severity.
func WithLevel(level string) Option {
	return func(cfg *Config) { cfg.Level = level }
}

// WithLogToConsole selects the console fallback.
func WithLogToConsole(enabled bool) Option {
	return func(cfg *Config) { cfg.LogToConsole = enabled }
}

// WithURL sets the broker address.
func WithURL(url string) Option {
	return func(cfg *Config) { cfg.URL = url }
}

// WithSocketOptions replaces the dialer options.
func WithSocketOptions(opts SocketOptions) Option {
	return func(cfg *Config) {
		cfg.SocketOptions = opts
		cfg.SocketOptions.Properties = maps.Clone(opts.Properties)
	}
}

// WithExchange sets the exchange name.
func WithExchange(exchange string) Option {
	return func(cfg *Config) { cfg.Exchange = exchange }
}

// WithExchangeOptions sets the exchange durability flags.
func WithExchangeOptions(opts ExchangeOptions) Option {
	return func(cfg *Config) { cfg.ExchangeOptions = opts }
}

// WithRoutingKey fixes the routing key for every record.
func WithRoutingKey(key string) Option {
	return func(cfg *Config) { cfg.RoutingKey = key }
}

// WithPublishOptions sets message properties.
func WithPublishOptions(opts PublishOptions) Option {
	return func(cfg *Config) { cfg.PublishOptions = opts }
}

// WithDebug installs a custom diagnostics sink.
func WithDebug(fn DebugFunc) Option {
	return func(cfg *Config) { cfg.Debug = fn }
}

// WithLazyInit suppresses the automatic background connection.
func WithLazyInit(lazy bool) Option {
	return func(cfg *Config) { cfg.LazyInit = lazy }
}

// WithTimestamp replaces the message clock.
func WithTimestamp(fn func() time.Time) Option {
	return func(cfg *Config) { cfg.Timestamp = fn }
}

// WithErrorHandler receives asynchronous failures.
func WithErrorHandler(fn ErrorHandler) Option {
	return func(cfg *Config) { cfg.ErrorHandler = fn }
}

// WithLogger sets the console/diagnostics logger.
func WithLogger(log *logger.LoggerClient) Option {
	return func(cfg *Config) { cfg.Logger = log }
}

// WithObserver attaches an operation observer, e.g. a *metrics.Metrics.
func WithObserver(observer observability.Observer) Option {
	return func(cfg *Config) { cfg.Observer = observer }
}

// WithTracer attaches a tracer, e.g. a *tracer.Tracer.
func WithTracer(tracer Tracer) Option {
	return func(cfg *Config) { cfg.Tracer = tracer }
}
