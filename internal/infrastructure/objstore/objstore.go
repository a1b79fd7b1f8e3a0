// Package objstore brokers binary blobs to an S3-compatible object
// storage service and issues time-limited signed URLs for retrieval.
package objstore

import (
	"context"
	"io"
	"time"
)

// BucketInfo describes a bucket visible to the configured credentials.
type BucketInfo struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Client is the object storage contract consumed by the media service.
// Each call is an independent, potentially failing remote operation.
type Client interface {
	ListBuckets(ctx context.Context) ([]BucketInfo, error)

	// EnsureBucket creates the bucket when absent. public grants
	// anonymous read access to all objects in the bucket.
	EnsureBucket(ctx context.Context, name string, public bool) error

	Upload(ctx context.Context, bucket, path string, reader io.Reader, size int64, contentType string) error

	// SignedURL returns a capability URL granting temporary read access.
	SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}
