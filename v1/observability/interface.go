// Package observability defines the hook contract shared by the std clients
// for reporting operations to metrics and tracing backends.
//
// A component calls ObserveOperation once per finished operation. Observers
// must be safe for concurrent use and must not block the caller.
package observability

import "time"

// OperationContext describes a single finished operation.
type OperationContext struct {
	// Component is the reporting package, e.g. "rabbitlog".
	Component string

	// Operation is the kind of work performed, e.g. "connect" or "publish".
	Operation string

	// Resource is the primary target of the operation (exchange, host, ...).
	Resource string

	// SubResource carries secondary context such as a routing key.
	SubResource string

	// Duration is the wall time the operation took.
	Duration time.Duration

	// Error is the failure, or nil on success.
	Error error

	// Size is the payload size in bytes, when meaningful.
	Size int64

	// Metadata holds optional component-specific labels.
	Metadata map[string]interface{}
}

// Observer receives operation reports.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
