// Package logger provides a structured logging facility based on Zap.
//
// The development configuration is used at debug level and the production
// configuration otherwise; the encoding is either console or json.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches
// it to the log entry, so all logs of one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Spool scanned", zap.String("site", name))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
