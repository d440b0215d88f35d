// Package bootstrap wires configuration, logging, and telemetry for
// streamkit programs and runs finite pipeline tasks with signal-based
// cancellation and graceful shutdown.
package bootstrap
