package export

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-whitted-raytracer/pkg/config"
)

// mockS3 records PutObject calls; other S3API methods are not implemented
type mockS3 struct {
	s3iface.S3API
	input    *s3.PutObjectInput
	body     []byte
	deadline bool
	err      error
}

func (m *mockS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	m.input = input
	_, m.deadline = ctx.Deadline()
	if input.Body != nil {
		m.body, _ = io.ReadAll(input.Body)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Publisher_Publish(t *testing.T) {
	mock := &mockS3{}
	publisher := NewS3PublisherWithClient(mock, config.S3Config{
		Bucket: "bucket",
		Region: "us-east-1",
		Prefix: "/renders/",
		CDNURL: "https://cdn.example.com/",
	})

	key, err := publisher.Publish(context.Background(), "mirror.png", []byte("image-bytes"), FormatPNG.ContentType())
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	if key != "renders/mirror.png" {
		t.Errorf("Expected key renders/mirror.png, got %q", key)
	}
	if aws.StringValue(mock.input.Bucket) != "bucket" || aws.StringValue(mock.input.Key) != key {
		t.Errorf("Unexpected put input %v", mock.input)
	}
	if aws.StringValue(mock.input.ContentType) != "image/png" {
		t.Errorf("Expected image/png, got %q", aws.StringValue(mock.input.ContentType))
	}
	if aws.Int64Value(mock.input.ContentLength) != int64(len("image-bytes")) || string(mock.body) != "image-bytes" {
		t.Errorf("Unexpected body %q (length %d)", mock.body, aws.Int64Value(mock.input.ContentLength))
	}
	if !mock.deadline {
		t.Error("Expected the upload context to carry a deadline")
	}
	if url := publisher.URL(key); url != "https://cdn.example.com/renders/mirror.png" {
		t.Errorf("Unexpected URL %q", url)
	}
}

func TestS3Publisher_Error(t *testing.T) {
	uploadErr := errors.New("access denied")
	publisher := NewS3PublisherWithClient(&mockS3{err: uploadErr}, config.S3Config{Bucket: "bucket", Region: "eu-west-1"})

	_, err := publisher.Publish(context.Background(), "a.png", []byte{1}, "image/png")
	if !errors.Is(err, uploadErr) {
		t.Errorf("Expected wrapped upload error, got %v", err)
	}
	if publisher.URL("a.png") != "" {
		t.Error("Expected no URL without a CDN")
	}
	if publisher.Key("a.png") != "a.png" {
		t.Errorf("Expected unprefixed key, got %q", publisher.Key("a.png"))
	}
}

func TestNewS3Publisher_RequiresBucket(t *testing.T) {
	if _, err := NewS3Publisher(config.S3Config{Region: "us-east-1"}); err == nil {
		t.Error("Expected error without a bucket")
	}

	publisher, err := NewS3Publisher(config.S3Config{
		Bucket:    "bucket",
		Region:    "us-east-1",
		AccessKey: "key",
		SecretKey: "secret",
		Endpoint:  "http://localhost:9000",
	})
	if err != nil {
		t.Fatalf("NewS3Publisher() error: %v", err)
	}
	if publisher.Key("x.png") != "x.png" {
		t.Errorf("Unexpected key %q", publisher.Key("x.png"))
	}
}
