// File: internal/services/media_service.go
package services

import (
	"context"

	"github.com/abudi-09/Chat-App/internal/services/media"
)

// MediaService is the façade over the external media store provider used
// by message ingestion and profile updates.
type MediaService struct {
	provider media.Provider
	logger   Logger
}

func NewMediaService(provider media.Provider, logger Logger) *MediaService {
	return &MediaService{provider: provider, logger: logger}
}

// UploadImage pushes the payload to the media store and returns the public
// URL. Callers treat any error as an upstream dependency failure.
func (s *MediaService) UploadImage(ctx context.Context, data string) (string, error) {
	url, err := s.provider.Upload(ctx, data)
	if err != nil {
		s.logger.Error("media upload failed", "error", err)
		return "", err
	}
	s.logger.Debug("media upload succeeded", "url", url)
	return url, nil
}

func (s *MediaService) GetProviderStatus() media.ProviderStatus {
	if err := s.provider.HealthCheck(context.Background()); err != nil {
		return media.ProviderStatus{IsHealthy: false, Message: err.Error()}
	}
	return media.ProviderStatus{IsHealthy: true, Message: "ok"}
}
