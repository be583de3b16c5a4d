// File: internal/ws/logger.go
package ws

// Logger matches the service layer's structured logging interface so the
// gateway can borrow the application logger without importing it.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}
