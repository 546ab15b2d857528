package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"taxi-translator-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// AudioStore archives incoming speech clips in object storage. Archiving is
// best-effort: recognition proceeds whether or not the clip was stored.
type AudioStore struct {
	client *minio.Client
	bucket string
	logger *logrus.Logger
}

func NewAudioStore(cfg *config.MinIOConfig, logger *logrus.Logger) (*AudioStore, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
	}).Info("Audio store initialized")

	store := &AudioStore{
		client: minioClient,
		bucket: cfg.BucketName,
		logger: logger,
	}

	if err := store.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure audio bucket, but continuing...")
	}

	return store, nil
}

func (s *AudioStore) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Audio bucket created")
	}
	return nil
}

// Archive stores one clip under a unique object name and returns that name.
func (s *AudioStore) Archive(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	ext := filepath.Ext(filename)
	objectName := fmt.Sprintf("clips/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to store audio clip: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"object": objectName,
		"bytes":  len(data),
	}).Debug("Audio clip archived")

	return objectName, nil
}
