// Package logger provides structured logging on top of go.uber.org/zap.
//
// LoggerClient wraps a *zap.Logger with the map-based field API shared by
// the logship packages:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "orders",
//	})
//	log.Info("User logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//	})
//	log.Error("Payment declined", err, nil)
//
// Level names are resolved by ParseLevel, which also understands the
// npm-style severities (verbose, silly, http) that upstream log producers
// emit, so a record's own level string can be used with Log:
//
//	log.Log("verbose", "cache warmed", nil) // written at debug
//
// Set Encoding to "console" and OutputPaths to []string{"stdout"} for a
// human-readable terminal logger; the rabbitlog console fallback is built
// that way.
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config { return logger.Config{Level: "debug"} }),
//	)
//
// Configuration can be read from the environment:
//
//	ZAP_LOGGER_LEVEL=debug
//	ZAP_LOGGER_ENCODING=console
//
// All methods are safe for concurrent use.
package logger
