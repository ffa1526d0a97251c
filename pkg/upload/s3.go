package upload

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("upload")

// DefaultTimeout bounds a single upload
const DefaultTimeout = 30 * time.Second

// Config describes the destination bucket
type Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string // Optional, for S3-compatible stores
	Timeout  time.Duration
}

// S3Uploader publishes rendered images to an S3 bucket
type S3Uploader struct {
	client s3iface.S3API
	config Config
}

// NewS3Uploader creates an uploader backed by client
func NewS3Uploader(client s3iface.S3API, config Config) *S3Uploader {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &S3Uploader{client: client, config: config}
}

// NewS3UploaderFromConfig creates an uploader with a session built from the
// environment's default credential chain
func NewS3UploaderFromConfig(config Config) (*S3Uploader, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("no bucket configured")
	}

	awsConfig := &aws.Config{}
	if config.Region != "" {
		awsConfig.Region = aws.String(config.Region)
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3Uploader(s3.New(sess), config), nil
}

// Upload stores body under key and returns the full object key
func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.config.Timeout)
	defer cancel()

	fullKey := key
	if u.config.Prefix != "" {
		fullKey = path.Join(u.config.Prefix, key)
	}

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", fullKey, err)
	}

	logger.Noticef("uploaded s3://%s/%s (%d bytes)", u.config.Bucket, fullKey, len(body))
	return fullKey, nil
}

// RenderKey names an uploaded render after its scene and start time
func RenderKey(scene string, at time.Time, ext string) string {
	scene = strings.ReplaceAll(strings.ToLower(scene), " ", "-")
	return fmt.Sprintf("%s/%s%s", scene, at.UTC().Format("20060102-150405"), ext)
}

// ContentType returns the MIME type for an image file extension
func ContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".ppm":
		return "image/x-portable-pixmap"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
