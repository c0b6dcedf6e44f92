package rabbitlog

import (
	"time"

	"github.com/Aleph-Alpha/logship/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
func (t *Transport) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64) {
	if t.cfg.Observer == nil {
		return
	}

	var metadata map[string]interface{}
	if err != nil {
		metadata = map[string]interface{}{"error_class": errorLabel(err)}
	}

	t.cfg.Observer.ObserveOperation(observability.OperationContext{
		Component:   "rabbitlog",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
