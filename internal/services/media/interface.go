// File: internal/services/media/interface.go
package media

import "context"

// ProviderStatus represents the health status of the media store provider.
type ProviderStatus struct {
	IsHealthy bool
	Message   string
}

// Provider uploads binary payloads to the external media store and returns
// a public URL. Uploads are never retried by this core.
type Provider interface {
	Upload(ctx context.Context, data string) (string, error)
	HealthCheck(ctx context.Context) error
}

type Service interface {
	UploadImage(ctx context.Context, data string) (string, error)
	GetProviderStatus() ProviderStatus
}
