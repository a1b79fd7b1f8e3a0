// Package media brokers file uploads to the object storage bucket and
// issues time-limited signed URLs for display.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"vitrine/internal/infrastructure/objstore"
	sharedConfig "vitrine/internal/shared/config"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

const uploadPrefix = "uploads/"

// allowedTypes maps accepted upload content types to file extensions.
var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

// Upload describes a stored object returned to the admin UI.
type Upload struct {
	Key         string `json:"key"`
	Bucket      string `json:"bucket"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type Service struct {
	client    objstore.Client
	bucket    string
	public    bool
	signedTTL time.Duration
	maxBytes  int64
	logger    logger.Interface
}

func NewService(client objstore.Client, cfg *sharedConfig.StorageConfig, log logger.Interface) *Service {
	ttl := time.Duration(cfg.SignedURLTTLS) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}
	maxBytes := cfg.MaxUploadMB * 1024 * 1024
	if maxBytes <= 0 {
		maxBytes = 10 * 1024 * 1024
	}
	return &Service{
		client:    client,
		bucket:    cfg.Bucket,
		public:    cfg.PublicBucket,
		signedTTL: ttl,
		maxBytes:  maxBytes,
		logger:    log.Named("media"),
	}
}

// Bootstrap makes sure the configured bucket exists. Called once at
// startup before the server accepts uploads.
func (s *Service) Bootstrap(ctx context.Context) error {
	if err := s.client.EnsureBucket(ctx, s.bucket, s.public); err != nil {
		return fmt.Errorf("failed to prepare media bucket: %w", err)
	}
	return nil
}

// MaxBytes returns the upload size cap, used by the handler to bound
// multipart reads.
func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

// Store uploads a file and returns its object key. The key embeds a
// random UUID so uploads never collide or overwrite each other.
func (s *Service) Store(ctx context.Context, reader io.Reader, size int64, contentType string) (*Upload, error) {
	ext, ok := allowedTypes[contentType]
	if !ok {
		return nil, errors.NewValidationError("unsupported file type", contentType)
	}
	if size <= 0 {
		return nil, errors.NewValidationError("empty upload")
	}
	if size > s.maxBytes {
		return nil, errors.NewValidationError("file too large",
			fmt.Sprintf("limit is %d bytes", s.maxBytes))
	}

	key := uploadPrefix + uuid.NewString() + ext
	if err := s.client.Upload(ctx, s.bucket, key, reader, size, contentType); err != nil {
		s.logger.Error("upload failed", "key", key, "error", err)
		return nil, errors.NewUpstreamError("object storage")
	}

	s.logger.Info("file uploaded", "key", key, "size", size, "content_type", contentType)

	return &Upload{
		Key:         key,
		Bucket:      s.bucket,
		ContentType: contentType,
		Size:        size,
	}, nil
}

// SignedURL returns a capability URL for key, valid for the configured
// TTL. Keys outside the upload prefix are rejected.
func (s *Service) SignedURL(ctx context.Context, key string) (string, error) {
	if path.Clean("/"+key) != "/"+key || len(key) <= len(uploadPrefix) || key[:len(uploadPrefix)] != uploadPrefix {
		return "", errors.NewValidationError("invalid object key")
	}

	url, err := s.client.SignedURL(ctx, s.bucket, key, s.signedTTL)
	if err != nil {
		s.logger.Error("signed url issuance failed", "key", key, "error", err)
		return "", errors.NewUpstreamError("object storage")
	}
	return url, nil
}

// ListBuckets surfaces the buckets visible to the configured
// credentials for the admin dashboard.
func (s *Service) ListBuckets(ctx context.Context) ([]objstore.BucketInfo, error) {
	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		s.logger.Error("bucket listing failed", "error", err)
		return nil, errors.NewUpstreamError("object storage")
	}
	return buckets, nil
}
