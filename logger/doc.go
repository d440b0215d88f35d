// Package logger provides structured logging for streamkit applications
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
// The stream and parse packages never log on their own — errors always
// surface to the caller — so logging here is for the surrounding
// application and the observability bootstrap.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("merge")
//	log.Info("sources drained", logger.Fields("sources", 3))
package logger
