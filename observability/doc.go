// Package observability provides OpenTelemetry metrics and tracing for
// streamkit applications, exporting over OTLP HTTP.
//
// InitMeter and InitTracer install global providers; StreamMetrics bundles
// the instruments for stream consumption and InstrumentStream wraps a
// stream so every pull is counted and timed.
package observability
