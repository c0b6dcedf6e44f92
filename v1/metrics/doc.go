// Package metrics provides Prometheus-based monitoring for Go services.
//
// A *Metrics owns an isolated registry, a /metrics HTTP server and a small
// set of built-in collectors fed through the observability.Observer
// contract, so it can be attached directly to std clients:
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		Namespace:   "logship",
//		ServiceName: "checkout",
//	})
//	go m.Server.ListenAndServe()
//
//	transport = transport.WithObserver(m)
//
// Built-in series:
//   - <ns>_operations_total{component,operation,status}
//   - <ns>_operation_duration_seconds{component,operation}
//   - <ns>_payload_bytes_total{component,resource}
//
// Every series carries a constant service="<ServiceName>" label.
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule, // Provides *Metrics, MetricsCollector and observability.Observer
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{Address: ":9090", ServiceName: "checkout"}
//		}),
//	)
//
// # Configuration
//
//	METRICS_ADDRESS=:9090
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_NAMESPACE=logship
//	METRICS_SERVICE_NAME=checkout
//
// Custom collectors can be added with CreateCounter, CreateHistogram and
// CreateGauge; they share the namespace and service label.
//
// All methods are safe for concurrent use.
package metrics
