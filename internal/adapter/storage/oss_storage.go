package storage

import (
	"context"
	"fmt"
	"strings"

	"easyway/internal/config"
	"easyway/internal/domain"
	"easyway/internal/logger"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"go.uber.org/zap"
)

// OSSStorage implements domain.ObjectStorage on an OSS bucket.
type OSSStorage struct {
	bucket        *oss.Bucket
	publicBaseURL string
}

// NewOSSStorage connects to the configured bucket. PublicBaseURL is the
// prefix under which uploaded objects are reachable.
func NewOSSStorage(cfg config.StorageConfig) (domain.ObjectStorage, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %q: %w", cfg.Bucket, err)
	}
	return &OSSStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Put uploads the file at localPath under objectKey and returns its public
// URL. The OSS SDK does not take a context, so cancellation is checked before
// the call.
func (s *OSSStorage) Put(ctx context.Context, objectKey, localPath, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	options := []oss.Option{}
	if contentType != "" {
		options = append(options, oss.ContentType(contentType))
	}
	if err := s.bucket.PutObjectFromFile(objectKey, localPath, options...); err != nil {
		logger.Get().Error("failed to upload object",
			zap.String("object_key", objectKey),
			zap.Error(err))
		return "", fmt.Errorf("oss put %q: %w", objectKey, err)
	}
	return s.publicBaseURL + "/" + objectKey, nil
}

// Delete removes an object from the bucket. OSS treats deleting a missing
// object as success, so retries are safe.
func (s *OSSStorage) Delete(ctx context.Context, objectKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.bucket.DeleteObject(objectKey); err != nil {
		return fmt.Errorf("oss delete %q: %w", objectKey, err)
	}
	return nil
}
