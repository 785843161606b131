package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/platepost/backend/config"
)

// ImageService stores uploaded pictures. The default mode keeps the blob on
// the owning row and serves it base64-encoded inside JSON responses, which
// is what the existing web client renders. When an S3 bucket is configured
// the blob is additionally uploaded and the public URL recorded, so clients
// can migrate to URL references.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates an ImageService. s3Config may be nil, in which
// case images live only in the database.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// Store uploads the image to S3 when configured and returns the public URL,
// or "" when the blob alone is the storage. The caller keeps the blob either
// way.
func (s *ImageService) Store(ctx context.Context, data []byte, filename string) (string, error) {
	if s.s3Config == nil || len(data) == 0 {
		return "", nil
	}

	ext := path.Ext(filename)
	if ext == "" {
		ext = ".png"
	}
	key := fmt.Sprintf("recipe-images/%s%s", uuid.New().String(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/" + ext[1:]),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("uploaded image to S3: %s", url)
	return url, nil
}
