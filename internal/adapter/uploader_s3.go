package adapter

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/models"
)

// objectPutter is the part of *s3.Client used by the uploader.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Uploader struct {
	client    objectPutter
	bucket    string
	publicURL string
	now       func() time.Time

	logger *logger.Logger
}

// NewS3Uploader constructs an [ImageUploader] that stores files in an S3
// bucket. A non-empty S3Endpoint targets an S3-compatible store such as
// MinIO and switches to path-style addressing.
func NewS3Uploader(ctx context.Context, cfg config.Upload, log *logger.Logger) (ImageUploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Uploader(client, cfg, log), nil
}

func newS3Uploader(client objectPutter, cfg config.Upload, log *logger.Logger) *s3Uploader {
	publicURL := strings.TrimRight(cfg.S3PublicURL, "/")
	if publicURL == "" {
		publicURL = defaultS3PublicURL(cfg)
	}

	return &s3Uploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
		now:       time.Now,
		logger:    log,
	}
}

func (u *s3Uploader) Upload(ctx context.Context, file models.ImageFile) (models.Image, error) {
	log := logger.FromContext(ctx)

	key := u.objectKey(file.Name)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file.Data),
		ContentType:   aws.String(file.ContentType),
		ContentLength: aws.Int64(int64(len(file.Data))),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3Uploader.Upload").Str("key", key).Msg("error putting object")
		return models.Image{}, fmt.Errorf("s3 put object: %w", err)
	}

	return imageFromFile(file, u.publicURL+"/"+key), nil
}

// objectKey shards uploads by date: images/2026/3/14/<uuid>.png
func (u *s3Uploader) objectKey(name string) string {
	d := u.now()
	return fmt.Sprintf("images/%d/%d/%d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), strings.ToLower(path.Ext(name)))
}

func defaultS3PublicURL(cfg config.Upload) string {
	if cfg.S3Endpoint != "" {
		return strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
}

// nopUploader rejects every upload. Used when no provider is configured.
type nopUploader struct{}

// NewNopUploader returns an [ImageUploader] that always fails with
// [ErrUploadDisabled].
func NewNopUploader() ImageUploader {
	return nopUploader{}
}

func (nopUploader) Upload(context.Context, models.ImageFile) (models.Image, error) {
	return models.Image{}, ErrUploadDisabled
}
