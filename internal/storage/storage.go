package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"scribe/internal/config"
)

// ErrNotFound indicates the requested object does not exist in the store.
var ErrNotFound = errors.New("object not found")

// ErrUpload indicates the rendered output could not be written durably.
var ErrUpload = errors.New("upload failed")

// ObjectStore is the contract the worker needs from the object store.
type ObjectStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Download(ctx context.Context, key, dest string) error
	Upload(ctx context.Context, key, src, contentType string) error
}

// Client implements ObjectStore against an S3-compatible endpoint.
type Client struct {
	mc     *minio.Client
	bucket string
}

// New connects to the configured object store endpoint.
func New(cfg config.Storage) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("object store client: %w", err)
	}
	return &Client{mc: mc, bucket: cfg.Bucket}, nil
}

// Bucket returns the configured bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}

// Exists reports whether the object is present.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.mc.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return false, nil
	}
	return false, fmt.Errorf("stat object %s: %w", key, err)
}

// Download copies the object to a local path.
func (c *Client) Download(ctx context.Context, key, dest string) error {
	if err := c.mc.FGetObject(ctx, c.bucket, key, dest, minio.GetObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return fmt.Errorf("download %s: %w", key, ErrNotFound)
		}
		return fmt.Errorf("download %s: %w", key, err)
	}
	return nil
}

// Upload writes a local file to the store under key.
func (c *Client) Upload(ctx context.Context, key, src, contentType string) error {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := c.mc.FPutObject(ctx, c.bucket, key, src, opts); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpload, key, err)
	}
	return nil
}
