// Package logger builds the zap logger shared by the CLI commands and the
// report API.
//
// Level is one of debug, info, warn or error. Format selects the console
// encoder for terminals or json for log collectors.
//
// WithRayID tags an entry with the ray id the rayid middleware stored on the
// Fiber context, so every line of one request can be found together.
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Reconciliation started")
//
//	// In a handler:
//	logger.WithRayID(log, c).Error("Report failed", zap.Error(err))
package logger
