// Package s3store puts files into an S3 (or S3-compatible) bucket with their
// resolved content type.
package s3store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/mimeset/mimeset/pkg/config"
)

// API is the subset of the S3 client used by Store
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ API = (*s3.Client)(nil)

// Object is a single upload
type Object struct {
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
	SHA256      string // stored as object metadata when set
}

// Store writes objects to one bucket
type Store struct {
	client API
	bucket string
}

// NewClient builds an S3 client from cfg. Static credentials are used when both
// keys are set, otherwise the default AWS credential chain applies. A custom
// endpoint switches to path-style addressing for S3-compatible servers.
func NewClient(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	awsConf, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.Credentials.AccessKey != "" && cfg.Credentials.SecretKey != "" {
		awsConf.Credentials = credentials.NewStaticCredentialsProvider(cfg.Credentials.AccessKey, cfg.Credentials.SecretKey, "")
	}
	awsConf.Region = cfg.Region

	return s3.NewFromConfig(awsConf, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// New returns a store writing to bucket through client
func New(client API, bucket string) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 client is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is empty")
	}
	return &Store{client: client, bucket: bucket}, nil
}

// Bucket returns the bucket name
func (s *Store) Bucket() string { return s.bucket }

// Put uploads obj and returns its s3:// location
func (s *Store) Put(ctx context.Context, obj Object) (string, error) {
	if obj.Key == "" {
		return "", fmt.Errorf("object key is required")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(obj.Key),
		Body:   obj.Body,
	}
	if obj.ContentType != "" {
		input.ContentType = aws.String(obj.ContentType)
	}
	if obj.Size > 0 {
		input.ContentLength = aws.Int64(obj.Size)
	}
	if obj.SHA256 != "" {
		input.Metadata = map[string]string{"sha256": obj.SHA256}
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("failed to put %s: %s: %w", obj.Key, apiErr.ErrorCode(), err)
		}
		return "", fmt.Errorf("failed to put %s: %w", obj.Key, err)
	}

	return fmt.Sprintf("s3://%s/%s", s.bucket, obj.Key), nil
}

// Key builds an object key of the form prefix/uploader/<uuid>/name.
// Empty segments are dropped.
func Key(prefix, uploader, name string) string {
	var parts []string
	for _, p := range []string{prefix, uploader} {
		if p = strings.Trim(p, "/"); p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, uuid.NewString(), path.Base(name))
	return path.Join(parts...)
}
