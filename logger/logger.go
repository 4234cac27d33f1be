package logger

// Logger provides a standardized logging interface for the CRPT Go client.
// It defines methods for different log levels (Debug, Info, Warn, Error) to enable
// consistent logging throughout the client library. This interface allows users
// to plug in their preferred logging implementation (e.g., glog, logrus, zap, standard log)
// or use the provided Noop logger to disable logging entirely.
//
// The logger is used throughout the client for:
// - API request/response debugging
// - Rate-limit wait tracking
// - Batch submission status and errors
// - Connection and transport issues
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client, err := crpt_go.NewClient(10, crpt_go.WithLogger(myLogger))
//
//	// Using the bundled zap adapter
//	client, err := crpt_go.NewClient(10, crpt_go.WithLogger(logger.NewZap(zapLogger.Sugar())))
//
//	// Disable logging entirely (the default)
//	client, err := crpt_go.NewClient(10, crpt_go.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
