package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/kingrain94/bhms-api/internal/config"
)

var ErrInvalidImage = errors.New("file is not a supported image")

// S3API is the part of the S3 client the image store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ImageStorage resizes uploaded images and stores them as JPEG in S3.
type S3ImageStorage struct {
	client S3API
	config *config.S3Config
}

func NewS3ImageStorage(client S3API, cfg *config.S3Config) *S3ImageStorage {
	return &S3ImageStorage{
		client: client,
		config: cfg,
	}
}

func (s *S3ImageStorage) UploadImage(ctx context.Context, prefix string, data []byte) (string, error) {
	body, err := s.resize(data)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.jpg", prefix, uuid.New().String())
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}
	return s.config.ObjectURL(key), nil
}

// resize shrinks images wider than the configured width, keeping the aspect ratio.
func (s *S3ImageStorage) resize(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrInvalidImage
	}
	if s.config.MaxImageWidth > 0 && img.Bounds().Dx() > s.config.MaxImageWidth {
		img = imaging.Resize(img, s.config.MaxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
