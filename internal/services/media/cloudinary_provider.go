// File: internal/services/media/cloudinary_provider.go
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// CloudinaryProvider uploads images through Cloudinary's unsigned upload
// endpoint. A failed upload aborts the calling operation; there are no
// retries anywhere in the send path.
type CloudinaryProvider struct {
	config *Config
	client *http.Client
}

func NewCloudinaryProvider(config *Config) *CloudinaryProvider {
	return &CloudinaryProvider{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Upload sends a data-URI or base64 image payload and returns the hosted
// asset's public URL.
func (p *CloudinaryProvider) Upload(ctx context.Context, data string) (string, error) {
	if strings.TrimSpace(data) == "" {
		return "", &MediaError{Type: ErrTypeValidation, Message: "empty image payload"}
	}
	if err := p.config.Validate(); err != nil {
		return "", &MediaError{Type: ErrTypeConfig, Message: "media store is not configured", Cause: err}
	}

	payload := map[string]interface{}{
		"file":          data,
		"upload_preset": p.config.UploadPreset,
		"public_id":     uuid.NewString(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &MediaError{Type: ErrTypeValidation, Message: "invalid upload payload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.uploadURL(), bytes.NewBuffer(body))
	if err != nil {
		return "", &MediaError{Type: ErrTypeNetwork, Message: "failed to create upload request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &MediaError{Type: ErrTypeNetwork, Message: "upload request failed", Cause: err}
	}
	defer resp.Body.Close()

	return p.handleResponse(resp)
}

func (p *CloudinaryProvider) handleResponse(resp *http.Response) (string, error) {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &MediaError{
			Type:    ErrTypeProvider,
			Code:    resp.StatusCode,
			Message: string(responseBody),
		}
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &MediaError{Type: ErrTypeProvider, Message: "unreadable provider response", Cause: err}
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	if result.URL != "" {
		return result.URL, nil
	}
	return "", &MediaError{Type: ErrTypeProvider, Message: "provider response missing asset URL"}
}

func (p *CloudinaryProvider) HealthCheck(ctx context.Context) error {
	if err := p.config.Validate(); err != nil {
		return &MediaError{Type: ErrTypeConfig, Message: "media store is not configured", Cause: err}
	}
	return nil
}
