// File: internal/services/user_services/types.go
package user_services

import "context"

// Logger abstracts structured logging for the user-facing services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Uploader pushes a raw image payload to the media store and returns the
// hosted asset's public URL.
type Uploader interface {
	UploadImage(ctx context.Context, data string) (string, error)
}
