package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/logship/v1/logger"
)

// FXModule provides a Uber FX module that configures distributed tracing for your application.
// It provides *Tracer from a tracer.Config and a *logger.LoggerClient, and
// shuts the provider down on application stop so pending spans are flushed.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		func(cfg Config, log *logger.LoggerClient) (*Tracer, error) {
			return NewClient(cfg, log)
		},
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the FX lifecycle.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down tracer", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}
