package upload

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the subset of the S3 API that S3Storage uses.
// Narrow on purpose so tests can substitute a fake.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Storage ships validated uploads into an S3 bucket. The "directory" of a
// move is used as the key prefix inside the bucket.
type S3Storage struct {
	client S3Client
	bucket string
}

// S3Option configures S3Storage creation.
type S3Option func(*S3Storage)

// WithS3Client sets a pre-configured client, skipping AWS config loading.
func WithS3Client(client S3Client) S3Option {
	return func(s *S3Storage) { s.client = client }
}

// NewS3Storage creates an S3-backed storage for the given bucket.
// Credentials and region come from the default AWS config chain unless a
// client is supplied via WithS3Client.
func NewS3Storage(ctx context.Context, bucket string, opts ...S3Option) (*S3Storage, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	s := &S3Storage{bucket: bucket}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		s.client = s3.NewFromConfig(cfg)
	}

	return s, nil
}

// Exists reports whether the bucket is reachable. S3 has no real
// directories, so any prefix within a reachable bucket is a valid target.
func (s *S3Storage) Exists(ctx context.Context, _ string) bool {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	return err == nil
}

// Move uploads src under dir/name and removes the local temporary file.
func (s *S3Storage) Move(ctx context.Context, src, dir, name string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path.Join(dir, name)),
		Body:   f,
	}); err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}

	_ = f.Close()
	_ = os.Remove(src)
	return nil
}
