// Package logger builds the zap logger shared by the commands and the HTTP server.
//
// Level "debug" selects zap's development preset, anything else the production
// preset. Format "console" switches to colored console output.
//
// WithRayID attaches the ray_id the rayid middleware stored on a fiber
// context, so every line logged for a request can be correlated.
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	logger.WithRayID(log, c).Error("Handler failed", zap.Error(err))
package logger
