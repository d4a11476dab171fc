package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/utils"
	"github.com/MKhiriev/pinvent/models"
)

// DefaultFilestackURL is the public Filestack REST API base.
const DefaultFilestackURL = "https://www.filestackapi.com/api"

type filestackUploader struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// filestackStoreResponse is the subset of the /store response we use.
type filestackStoreResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
}

// NewFilestackUploader constructs an [ImageUploader] that stores files
// through the Filestack store API.
func NewFilestackUploader(cfg config.Upload, log *logger.Logger) ImageUploader {
	baseURL := strings.TrimRight(cfg.FilestackURL, "/")
	if baseURL == "" {
		baseURL = DefaultFilestackURL
	}

	return &filestackUploader{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.FilestackAPIKey,
		logger: log,
	}
}

// Upload POSTs the raw file bytes to POST /store/S3?key=... and returns the
// hosted URL from the JSON response.
func (f *filestackUploader) Upload(ctx context.Context, file models.ImageFile) (models.Image, error) {
	log := logger.FromContext(ctx)

	var stored filestackStoreResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("key", f.apiKey).
		SetQueryParam("filename", file.Name).
		SetHeader("Content-Type", file.ContentType).
		SetBody(file.Data).
		SetResult(&stored).
		Post("/store/S3")
	if err != nil {
		log.Err(err).Str("func", "*filestackUploader.Upload").Msg("upload request failed")
		return models.Image{}, fmt.Errorf("filestack upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*filestackUploader.Upload").Int("status", resp.StatusCode()).Msg("upload rejected")
		return models.Image{}, err
	}
	if stored.URL == "" {
		return models.Image{}, ErrEmptyUploadResponse
	}

	return imageFromFile(file, stored.URL), nil
}

// imageFromFile builds the stored metadata of file. The client-reported name
// and type win over whatever the host echoes back.
func imageFromFile(file models.ImageFile, url string) models.Image {
	return models.Image{
		Name: file.Name,
		URL:  url,
		Type: file.ContentType,
		Size: utils.FormatFileSize(file.Size),
	}
}
