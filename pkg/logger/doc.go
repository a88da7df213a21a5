// Package logger builds the diagnostic slog channel used across the module.
//
// The authentication result deliberately carries no failure detail, so this
// logger is the only place where an operator can tell a missing secret record
// from a corrupt one or from a plain wrong code. New creates a *slog.Logger
// configured by functional options: output format (text or json), minimum
// level, destination writer and static attributes.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(slog.String("service", "totpgate")),
//	)
package logger
