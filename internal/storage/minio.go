package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/RMahshie/hornlab/pkg/models"
)

type minioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore creates a profile store on a MinIO server, creating the
// bucket when it does not exist yet
func NewMinioStore(ctx context.Context, cfg Config) (ProfileStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("MINIO_ENDPOINT is required")
	}

	// minio-go wants host:port without a scheme
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  miniocreds.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &minioStore{client: client, bucket: cfg.Bucket}, nil
}

// SaveProfile uploads a profile as JSON
func (m *minioStore) SaveProfile(ctx context.Context, key string, profile models.ExpansionProfile) error {
	data, err := EncodeProfile(profile)
	if err != nil {
		return err
	}

	_, err = m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: profileContentType})
	if err != nil {
		return fmt.Errorf("failed to upload profile: %w", err)
	}

	return nil
}

// LoadProfile downloads and decodes a profile
func (m *minioStore) LoadProfile(ctx context.Context, key string) (models.ExpansionProfile, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download profile: %w", err)
	}
	defer obj.Close()

	// GetObject is lazy: a missing key surfaces on the first read
	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: profile %s", models.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	return DecodeProfile(data)
}

// GenerateDownloadURL generates a pre-signed URL for downloading a profile
func (m *minioStore) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, downloadExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate download URL: %w", err)
	}
	return u.String(), nil
}

// DeleteProfile deletes a profile object
func (m *minioStore) DeleteProfile(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
