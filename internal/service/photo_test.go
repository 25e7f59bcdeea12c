package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestmate/backend/config"
	"github.com/nestmate/backend/internal/service"
)

func TestPhotoUploadRejectsUnknownKind(t *testing.T) {
	photos := service.NewPhotoService(&config.S3Config{BucketName: "test-bucket"})

	_, err := photos.Upload(context.Background(), "avatar", "pic.jpg", strings.NewReader("data"))
	require.True(t, errors.Is(err, service.ErrUnknownPhotoKind))
}

func TestPhotoUploadRejectsUnsupportedExtension(t *testing.T) {
	photos := service.NewPhotoService(&config.S3Config{BucketName: "test-bucket"})

	for _, name := range []string{"doc.pdf", "script.sh", "noext"} {
		_, err := photos.Upload(context.Background(), "profile", name, strings.NewReader("data"))
		require.True(t, errors.Is(err, service.ErrUnsupportedPhotoType), name)
	}
}
