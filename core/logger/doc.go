// Package logger provides a structured logging facility based on Zap.
//
// Level "debug" selects zap's development config (ISO8601 timestamps, caller info);
// any other level selects the production config at that level. Format picks json or
// console encoding.
//
// WithRayID attaches the request's ray_id local, set by the rayid middleware, so all
// log lines of one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
