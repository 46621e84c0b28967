// Package storage uploads console files (user avatars) to Google Cloud Storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	appconfig "mecanica_gestao/internal/infrastructure/config"
	"mecanica_gestao/internal/usecase/interfaces"

	"cloud.google.com/go/storage"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var ErrStorageDisabled = errors.New("object storage is not configured")

type writerFunc func(ctx context.Context, object string, contentType string) io.WriteCloser

// GCSStorage writes public-read objects into one bucket.
type GCSStorage struct {
	client    *storage.Client
	bucket    string
	publicURL string
	newWriter writerFunc
}

var _ interfaces.IObjectStorage = (*GCSStorage)(nil)

// NewGCSStorage prefers explicit JSON credentials and falls back to ADC.
func NewGCSStorage(ctx context.Context, cfg appconfig.StorageConfig) (*GCSStorage, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, ErrStorageDisabled
	}

	var opts []option.ClientOption
	if creds := strings.TrimSpace(cfg.CredentialsJSON); creds != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	if _, err := client.Bucket(cfg.Bucket).Attrs(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("gcs bucket %q not found or not accessible: %w", cfg.Bucket, err)
	}
	log.Info().Str("bucket", cfg.Bucket).Msg("[storage][gcs] client initialized")

	s := &GCSStorage{client: client, bucket: cfg.Bucket, publicURL: cfg.PublicBaseURL}
	s.newWriter = func(ctx context.Context, object string, contentType string) io.WriteCloser {
		wc := client.Bucket(s.bucket).Object(object).NewWriter(ctx)
		wc.ContentType = contentType
		wc.Metadata = map[string]string{"x-goog-acl": "public-read"}
		return wc
	}
	return s, nil
}

func (s *GCSStorage) Upload(ctx context.Context, path string, contentType string, r io.Reader) error {
	wc := s.newWriter(ctx, path, contentType)
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return fmt.Errorf("upload %s: %w", path, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("finish upload %s: %w", path, err)
	}
	log.Info().Str("bucket", s.bucket).Str("path", path).Msg("[storage][gcs] object uploaded")
	return nil
}

// PublicURL is <base>/<bucket>/<path>.
func (s *GCSStorage) PublicURL(path string) string {
	base := strings.TrimRight(s.publicURL, "/")
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	return base + "/" + s.bucket + "/" + strings.TrimLeft(path, "/")
}

func (s *GCSStorage) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Disabled stands in when no bucket is configured; uploads fail with ErrStorageDisabled.
type Disabled struct{}

var _ interfaces.IObjectStorage = Disabled{}

func (Disabled) Upload(context.Context, string, string, io.Reader) error { return ErrStorageDisabled }

func (Disabled) PublicURL(string) string { return "" }
