package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	apperrors "permitpro-backend/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 keeps objects in memory
type fakeS3 struct {
	objects map[string][]byte
	putErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3StorageRoundTrip(t *testing.T) {
	fake := newFakeS3()
	s := NewS3Storage(fake, "permits", "uploads")
	ctx := context.Background()

	name, err := s.Save(ctx, "plan.pdf", strings.NewReader("plan bytes"))
	require.NoError(t, err)
	assert.Contains(t, fake.objects, "permits/uploads/"+name)

	rc, err := s.Open(ctx, name)
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	assert.Equal(t, "plan bytes", string(data))

	require.NoError(t, s.Remove(ctx, name))
	_, err = s.Open(ctx, name)
	assert.ErrorIs(t, err, apperrors.ErrStoredFileNotFound)
}

func TestS3StorageWithoutPrefix(t *testing.T) {
	fake := newFakeS3()
	s := NewS3Storage(fake, "permits", "")

	name, err := s.Save(context.Background(), "plan.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Contains(t, fake.objects, "permits/"+name)
}

func TestS3StoragePutFailure(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("access denied")
	s := NewS3Storage(fake, "permits", "")

	_, err := s.Save(context.Background(), "plan.pdf", strings.NewReader("x"))
	assert.ErrorContains(t, err, "access denied")
}

func TestS3StorageRejectsTraversal(t *testing.T) {
	s := NewS3Storage(newFakeS3(), "permits", "uploads")
	_, err := s.Open(context.Background(), "../other/key")
	assert.ErrorIs(t, err, apperrors.ErrStoredFileNotFound)
}

func TestNewS3StorageFromConfigRequiresBucket(t *testing.T) {
	_, err := NewS3StorageFromConfig(context.Background(), S3Options{Region: "us-east-1"})
	assert.True(t, apperrors.IsConfiguration(err))
}
