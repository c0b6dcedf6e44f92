// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// Basic Usage:
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "my-service",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "process-request")
//	defer span.End()
//
//	tracerClient.SetAttributes(span, map[string]interface{}{
//		"request.id": "abc-xyz",
//	})
//
// Trace context crosses process boundaries as a string map. GetCarrier
// produces it on the sending side (the rabbitlog transport copies it into
// AMQP message headers) and SetCarrierOnContext restores it on the
// receiving side.
package tracer
