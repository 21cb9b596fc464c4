package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/bhms-api/internal/config"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(params.Body)
		f.body = buf.Bytes()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testConfig() *config.S3Config {
	return &config.S3Config{
		BucketName:    "rooms",
		Region:        "us-east-1",
		PublicBaseURL: "https://cdn.example.com",
		MaxImageWidth: 100,
	}
}

func TestUploadImage_ResizesAndStoresJPEG(t *testing.T) {
	client := &fakeS3{}
	store := NewS3ImageStorage(client, testConfig())

	url, err := store.UploadImage(context.Background(), "rooms/o1/r1", pngBytes(t, 400, 200))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/rooms/o1/r1/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))
	assert.Equal(t, "rooms", *client.input.Bucket)
	assert.Equal(t, "image/jpeg", *client.input.ContentType)

	stored, err := imaging.Decode(bytes.NewReader(client.body))
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Bounds().Dx())
	assert.Equal(t, 50, stored.Bounds().Dy())
}

func TestUploadImage_KeepsSmallImages(t *testing.T) {
	client := &fakeS3{}
	store := NewS3ImageStorage(client, testConfig())

	_, err := store.UploadImage(context.Background(), "p", pngBytes(t, 60, 30))

	require.NoError(t, err)
	stored, err := imaging.Decode(bytes.NewReader(client.body))
	require.NoError(t, err)
	assert.Equal(t, 60, stored.Bounds().Dx())
}

func TestUploadImage_RejectsNonImages(t *testing.T) {
	client := &fakeS3{}
	store := NewS3ImageStorage(client, testConfig())

	_, err := store.UploadImage(context.Background(), "p", []byte("not an image"))

	assert.ErrorIs(t, err, ErrInvalidImage)
	assert.Nil(t, client.input)
}

func TestUploadImage_WrapsS3Errors(t *testing.T) {
	client := &fakeS3{err: errors.New("boom")}
	store := NewS3ImageStorage(client, testConfig())

	_, err := store.UploadImage(context.Background(), "p", pngBytes(t, 10, 10))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload image to S3")
}
