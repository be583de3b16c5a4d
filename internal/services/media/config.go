// File: internal/services/media/config.go
package media

import (
	"fmt"
	"time"
)

type Config struct {
	CloudName    string
	UploadPreset string
	// APIURL overrides the default Cloudinary endpoint, mainly for tests.
	APIURL  string
	Timeout time.Duration
}

func (c *Config) Validate() error {
	if c.CloudName == "" && c.APIURL == "" {
		return fmt.Errorf("CLOUDINARY_CLOUD_NAME is required")
	}
	if c.UploadPreset == "" {
		return fmt.Errorf("CLOUDINARY_UPLOAD_PRESET is required")
	}
	return nil
}

func (c *Config) uploadURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	return fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.CloudName)
}
