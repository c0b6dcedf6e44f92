package logger

// Supported level names. The aliases accepted by ParseLevel (warn, verbose,
// silly, http, ...) collapse onto these four.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Output encodings understood by NewLoggerClient.
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// Config defines the logger settings.
type Config struct {
	// Level is the minimum level written. Unknown values fall back to info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"ZAP_LOGGER_SERVICE_NAME"`

	// Encoding selects "json" (default) or "console" output.
	Encoding string `yaml:"encoding" envconfig:"ZAP_LOGGER_ENCODING"`

	// OutputPaths lists zap sinks ("stdout", "stderr", file paths).
	// Defaults to stderr.
	OutputPaths []string `yaml:"output_paths" envconfig:"ZAP_LOGGER_OUTPUT_PATHS"`
}
