package rabbitlog

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/logship/v1/logger"
	"github.com/Aleph-Alpha/logship/v1/observability"
	"github.com/Aleph-Alpha/logship/v1/tracer"
)

// FXModule provides a *Transport and the Sink interface and ties the
// transport to the application lifecycle.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    rabbitlog.FXModule,
//	    fx.Provide(rabbitlog.LoadConfig),
//	)
var FXModule = fx.Module("rabbitlog",
	fx.Provide(
		NewTransportWithDI,
		fx.Annotate(
			func(t *Transport) Sink { return t },
			fx.As(new(Sink)),
		),
	),
	fx.Invoke(RegisterTransportLifecycle),
)

// TransportParams groups the dependencies needed to create a Transport.
type TransportParams struct {
	fx.In

	Config   Config
	Logger   *logger.LoggerClient   `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   *tracer.Tracer         `optional:"true"`
}

// NewTransportWithDI builds a Transport from injected dependencies. Injected
// collaborators take precedence over those set on Config.
func NewTransportWithDI(params TransportParams) (*Transport, error) {
	opts := []Option{WithConfig(params.Config)}
	if params.Logger != nil {
		opts = append(opts, WithLogger(params.Logger))
	}
	if params.Observer != nil {
		opts = append(opts, WithObserver(params.Observer))
	}
	if params.Tracer != nil {
		opts = append(opts, WithTracer(params.Tracer))
	}
	return NewTransport(opts...)
}

// RegisterTransportLifecycle connects a lazy transport when the application
// starts and closes the transport when it stops. A failed start aborts the
// application.
func RegisterTransportLifecycle(lc fx.Lifecycle, t *Transport) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !t.cfg.LazyInit {
				return nil
			}
			return t.Initialize(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return t.Close()
		},
	})
}
