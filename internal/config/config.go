// Package config loads runtime settings from process environment variables.
// Every Lambda receives its settings this way; a missing required variable is
// a fatal startup condition.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds runtime settings shared by the API handlers.
//
// Fields:
//   - PhotosTable: DynamoDB table holding photo metadata and the checklist config.
//   - PhotosBucket: S3 bucket holding original image bytes.
//   - AdminPassword: shared secret for the admin endpoints (query parameter "admin").
//   - DeleteRequestTopicARN: SNS topic receiving delete-request notifications.
//   - AdminBaseURL: public URL of the frontend, used to build admin deep links.
//   - Debug: when true, error envelopes include internal detail and debug logs
//     are emitted.
type Config struct {
	PhotosTable           string
	PhotosBucket          string
	AdminPassword         string
	DeleteRequestTopicARN string
	AdminBaseURL          string
	Debug                 bool
}

// Environment variable names.
const (
	EnvPhotosTable           = "PHOTOS_TABLE"
	EnvPhotosBucket          = "PHOTOS_BUCKET"
	EnvAdminPassword         = "ADMIN_PASSWORD"
	EnvDeleteRequestTopicARN = "DELETE_REQUEST_TOPIC_ARN"
	EnvAdminBaseURL          = "ADMIN_BASE_URL"
	EnvDebug                 = "DEBUG"
)

// Load reads the configuration from the environment. It returns an error
// naming every missing required variable so a misconfigured deployment fails
// loudly on the first look at the logs.
func Load() (*Config, error) {
	cfg := &Config{
		PhotosTable:           os.Getenv(EnvPhotosTable),
		PhotosBucket:          os.Getenv(EnvPhotosBucket),
		AdminPassword:         os.Getenv(EnvAdminPassword),
		DeleteRequestTopicARN: os.Getenv(EnvDeleteRequestTopicARN),
		AdminBaseURL:          strings.TrimRight(os.Getenv(EnvAdminBaseURL), "/"),
		Debug:                 os.Getenv(EnvDebug) == "true",
	}

	var missing []string
	for _, v := range []struct {
		name, value string
	}{
		{EnvPhotosTable, cfg.PhotosTable},
		{EnvPhotosBucket, cfg.PhotosBucket},
		{EnvAdminPassword, cfg.AdminPassword},
		{EnvDeleteRequestTopicARN, cfg.DeleteRequestTopicARN},
		{EnvAdminBaseURL, cfg.AdminBaseURL},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}
