package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"ravelpix.com/photo-download-gateway/config/environment_variables"
)

// MinioStore talks to any S3-compatible endpoint through minio-go.
type MinioStore struct {
	client *minio.Client
}

func NewMinioStore() (*MinioStore, error) {
	envs := environment_variables.EnvironmentVariables
	opts := &minio.Options{
		Secure: envs.S3_USE_SSL,
		Region: envs.AWS_REGION,
	}
	if envs.S3_ACCESS_KEY != "" {
		opts.Creds = credentials.NewStaticV4(envs.S3_ACCESS_KEY, envs.S3_SECRET_KEY, "")
	} else {
		// Instance credentials when no static pair is configured.
		opts.Creds = credentials.NewIAM("")
	}
	client, err := minio.New(envs.S3_ENDPOINT, opts)
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}
	return &MinioStore{client: client}, nil
}

func (s *MinioStore) Head(ctx context.Context, bucket, key string) error {
	_, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	return err
}

func (s *MinioStore) Get(ctx context.Context, bucket, key, versionID string) (io.ReadCloser, int64, error) {
	statOpts := minio.StatObjectOptions{}
	getOpts := minio.GetObjectOptions{}
	if versionID != "" {
		statOpts.VersionID = versionID
		getOpts.VersionID = versionID
	}
	info, err := s.client.StatObject(ctx, bucket, key, statOpts)
	if err != nil {
		return nil, 0, err
	}
	obj, err := s.client.GetObject(ctx, bucket, key, getOpts)
	if err != nil {
		return nil, 0, err
	}
	return obj, info.Size, nil
}

func (s *MinioStore) Put(ctx context.Context, bucket, key, contentType string, r io.Reader) error {
	// Size -1 streams in parts; PutObject returns after the store commits.
	_, err := s.client.PutObject(ctx, bucket, key, r, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) HealthCheck(ctx context.Context) error {
	bucket := environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET
	ok, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("download bucket %q does not exist", bucket)
	}
	return nil
}
