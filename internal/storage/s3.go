package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	apperrors "permitpro-backend/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used for document storage
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Options configures the S3 storage driver
type S3Options struct {
	Bucket   string
	Region   string
	Prefix   string
	Endpoint string
}

// S3Storage keeps documents as objects in an S3 bucket
type S3Storage struct {
	client S3API
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3Storage wraps an S3 client
func NewS3Storage(client S3API, bucket, prefix string) *S3Storage {
	return &S3Storage{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// NewS3StorageFromConfig builds an S3 client from the default AWS credential chain
func NewS3StorageFromConfig(ctx context.Context, opts S3Options) (*S3Storage, error) {
	if opts.Bucket == "" {
		return nil, apperrors.NewConfigurationError("S3_BUCKET is required for the s3 storage driver")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3Storage(client, opts.Bucket, opts.Prefix), nil
}

func (s *S3Storage) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// Save uploads the reader as a new object
func (s *S3Storage) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := NewStoredName(originalName, s.now())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", name, err)
	}
	return name, nil
}

// Open streams an object back
func (s *S3Storage) Open(ctx context.Context, storedPath string) (io.ReadCloser, error) {
	name, err := cleanStoredPath(storedPath)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, apperrors.ErrStoredFileNotFound
		}
		return nil, fmt.Errorf("get object %q: %w", name, err)
	}
	return out.Body, nil
}

// Remove deletes an object
func (s *S3Storage) Remove(ctx context.Context, storedPath string) error {
	name, err := cleanStoredPath(storedPath)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", name, err)
	}
	return nil
}
