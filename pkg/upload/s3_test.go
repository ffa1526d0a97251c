package upload

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/go-cmp/cmp"
)

// fakeS3 records PutObject calls
type fakeS3 struct {
	s3iface.S3API
	bucket      string
	key         string
	contentType string
	body        []byte
	hasDeadline bool
	err         error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	_, f.hasDeadline = ctx.Deadline()
	f.bucket = aws.StringValue(input.Bucket)
	f.key = aws.StringValue(input.Key)
	f.contentType = aws.StringValue(input.ContentType)
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestUpload(t *testing.T) {
	fake := &fakeS3{}
	uploader := NewS3Uploader(fake, Config{Bucket: "renders", Prefix: "nightly"})

	key, err := uploader.Upload(context.Background(), "cornell/1.png", "image/png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	got := struct{ Key, Bucket, ObjectKey, ContentType, Body string }{
		key, fake.bucket, fake.key, fake.contentType, string(fake.body),
	}
	want := struct{ Key, Bucket, ObjectKey, ContentType, Body string }{
		"nightly/cornell/1.png", "renders", "nightly/cornell/1.png", "image/png", "png-bytes",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Upload mismatch (-want +got):\n%s", diff)
	}
	if !fake.hasDeadline {
		t.Error("Expected the upload context to carry a timeout")
	}
}

func TestUploadError(t *testing.T) {
	putErr := errors.New("access denied")
	uploader := NewS3Uploader(&fakeS3{err: putErr}, Config{Bucket: "renders"})

	if _, err := uploader.Upload(context.Background(), "a.png", "image/png", nil); !errors.Is(err, putErr) {
		t.Errorf("Expected wrapped upload error, got %v", err)
	}
}

func TestNewS3UploaderFromConfigRequiresBucket(t *testing.T) {
	if _, err := NewS3UploaderFromConfig(Config{}); err == nil {
		t.Error("Expected an error without a bucket")
	}
}

func TestRenderKey(t *testing.T) {
	at := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	if got := RenderKey("Cornell Smoke", at, ".png"); got != "cornell-smoke/20240305-140709.png" {
		t.Errorf("Unexpected key %q", got)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		".png":  "image/png",
		".JPG":  "image/jpeg",
		".ppm":  "image/x-portable-pixmap",
		".webp": "application/octet-stream",
	}
	for ext, want := range tests {
		if got := ContentType(ext); got != want {
			t.Errorf("ContentType(%q) = %q, expected %q", ext, got, want)
		}
	}
}
