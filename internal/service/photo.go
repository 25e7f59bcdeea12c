package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/nestmate/backend/config"
)

// PhotoService stores profile and room photos in S3 and hands back the
// public URL the client persists on the user or room record.
type PhotoService struct {
	s3Config *config.S3Config
}

func NewPhotoService(s3Config *config.S3Config) *PhotoService {
	return &PhotoService{s3Config: s3Config}
}

var allowedPhotoExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

var (
	ErrUnknownPhotoKind     = errors.New("unknown photo kind")
	ErrUnsupportedPhotoType = errors.New("unsupported photo type")
)

// Upload stores the photo under {kind}/{uuid}{ext} and returns its public URL.
func (s *PhotoService) Upload(ctx context.Context, kind, filename string, body io.Reader) (string, error) {
	if kind != "profile" && kind != "room" {
		return "", ErrUnknownPhotoKind
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedPhotoExts[ext]
	if !ok {
		return "", ErrUnsupportedPhotoType
	}

	key := fmt.Sprintf("%s/%s%s", kind, uuid.New().String(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key), nil
}
