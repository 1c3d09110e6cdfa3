package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/receitaria/backend/config"
)

// Images larger than this are rejected before touching S3.
const maxUploadBytes = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadService stores recipe and avatar images in S3 and hands back the
// public URL that goes into image_url / avatar columns.
type UploadService struct {
	s3Config *config.S3Config
}

// NewUploadService creates a new UploadService instance
func NewUploadService(s3Config *config.S3Config) *UploadService {
	return &UploadService{s3Config: s3Config}
}

// UploadImage reads the image data and uploads it under the given folder
// ("recipe-images" or "avatars") with a generated object key.
func (s *UploadService) UploadImage(ctx context.Context, r io.Reader, contentType, folder string) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) > maxUploadBytes {
		return "", fmt.Errorf("image exceeds %d byte limit", maxUploadBytes)
	}

	key := path.Join(folder, uuid.New().String()+ext)

	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[UploadService] Uploaded image to S3: %s", publicURL)

	return publicURL, nil
}
