package objstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	sharedConfig "vitrine/internal/shared/config"
)

// MinioClient implements Client against any S3-compatible endpoint.
type MinioClient struct {
	client *minio.Client
	region string
}

// NewMinioClient creates a new MinioClient from storage configuration
func NewMinioClient(cfg *sharedConfig.StorageConfig) (*MinioClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &MinioClient{client: client, region: cfg.Region}, nil
}

func (c *MinioClient) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	buckets, err := c.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	infos := make([]BucketInfo, 0, len(buckets))
	for _, b := range buckets {
		infos = append(infos, BucketInfo{Name: b.Name, CreatedAt: b.CreationDate})
	}
	return infos, nil
}

func (c *MinioClient) EnsureBucket(ctx context.Context, name string, public bool) error {
	exists, err := c.client.BucketExists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", name, err)
	}

	if !exists {
		if err := c.client.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: c.region}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", name, err)
		}
	}

	if public {
		policy := fmt.Sprintf(`{
			"Version": "2012-10-17",
			"Statement": [{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}]
		}`, name)
		if err := c.client.SetBucketPolicy(ctx, name, policy); err != nil {
			return fmt.Errorf("failed to set bucket policy for %s: %w", name, err)
		}
	}

	return nil
}

func (c *MinioClient) Upload(ctx context.Context, bucket, path string, reader io.Reader, size int64, contentType string) error {
	_, err := c.client.PutObject(ctx, bucket, path, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, path, err)
	}
	return nil
}

func (c *MinioClient) SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	u, err := c.client.PresignedGetObject(ctx, bucket, path, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("failed to sign url for %s/%s: %w", bucket, path, err)
	}
	return u.String(), nil
}
