package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// AssetService stores uploaded images (product photos, the company
// stamp) in object storage.
type AssetService struct {
	minioClient *minio.Client
	bucketName  string
}

func NewAssetService(minioClient *minio.Client, bucketName string) *AssetService {
	return &AssetService{minioClient: minioClient, bucketName: bucketName}
}

// Asset is the stored object reference returned after an upload.
type Asset struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
}

// Upload stores a file under a date-partitioned object name and
// returns a presigned URL for it.
func (s *AssetService) Upload(ctx context.Context, kind string, reader io.Reader, fileName string, fileSize int64, contentType string) (*Asset, error) {
	if s.minioClient == nil {
		return nil, fmt.Errorf("storage not configured")
	}
	if kind == "" {
		kind = "uploads"
	}

	objectName := fmt.Sprintf("%s/%s/%s%s", kind, time.Now().Format("2006/01/02"), uuid.New().String()[:8], filepath.Ext(fileName))

	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	url, err := s.URL(ctx, objectName)
	if err != nil {
		return nil, err
	}
	return &Asset{ObjectName: objectName, URL: url, Size: fileSize}, nil
}

// URL returns a presigned GET link for a stored object.
func (s *AssetService) URL(ctx context.Context, objectName string) (string, error) {
	if s.minioClient == nil {
		return "", fmt.Errorf("storage not configured")
	}
	u, err := s.minioClient.PresignedGetObject(ctx, s.bucketName, objectName, 7*24*time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("presign object: %w", err)
	}
	return u.String(), nil
}

// Delete removes a stored object.
func (s *AssetService) Delete(ctx context.Context, objectName string) error {
	if s.minioClient == nil {
		return fmt.Errorf("storage not configured")
	}
	return s.minioClient.RemoveObject(ctx, s.bucketName, objectName, minio.RemoveObjectOptions{})
}
