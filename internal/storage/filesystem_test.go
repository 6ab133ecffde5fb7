package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "permitpro-backend/internal/errors"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FilesystemStorageTestSuite struct {
	suite.Suite
	storage *FilesystemStorage
	ctx     context.Context
}

func (suite *FilesystemStorageTestSuite) SetupTest() {
	suite.storage = NewFilesystemStorage(memfs.New())
	suite.storage.now = func() time.Time { return time.UnixMilli(1700000000000) }
	suite.ctx = context.Background()
}

func (suite *FilesystemStorageTestSuite) TestSaveAndOpenRoundTrip() {
	name, err := suite.storage.Save(suite.ctx, "Site Plan.PDF", strings.NewReader("%PDF-1.4 content"))
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(name, "1700000000000-"))
	suite.True(strings.HasSuffix(name, ".pdf"))

	rc, err := suite.storage.Open(suite.ctx, name)
	suite.Require().NoError(err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	suite.Require().NoError(err)
	suite.Equal("%PDF-1.4 content", string(data))
}

func (suite *FilesystemStorageTestSuite) TestSaveGeneratesDistinctNames() {
	first, err := suite.storage.Save(suite.ctx, "survey.png", strings.NewReader("a"))
	suite.Require().NoError(err)
	second, err := suite.storage.Save(suite.ctx, "survey.png", strings.NewReader("b"))
	suite.Require().NoError(err)
	suite.NotEqual(first, second)
}

func (suite *FilesystemStorageTestSuite) TestOpenMissing() {
	_, err := suite.storage.Open(suite.ctx, "1-missing.pdf")
	suite.ErrorIs(err, apperrors.ErrStoredFileNotFound)
}

func (suite *FilesystemStorageTestSuite) TestOpenRejectsTraversal() {
	suite.Require().NoError(util.WriteFile(suite.storage.fs, "secret.txt", []byte("x"), 0o644))

	for _, p := range []string{"../secret.txt", "dir/secret.txt", "..", ""} {
		_, err := suite.storage.Open(suite.ctx, p)
		suite.ErrorIs(err, apperrors.ErrStoredFileNotFound, p)
	}
}

func (suite *FilesystemStorageTestSuite) TestRemove() {
	name, err := suite.storage.Save(suite.ctx, "plan.pdf", strings.NewReader("x"))
	suite.Require().NoError(err)

	suite.NoError(suite.storage.Remove(suite.ctx, name))
	_, err = suite.storage.Open(suite.ctx, name)
	suite.ErrorIs(err, apperrors.ErrStoredFileNotFound)
	suite.ErrorIs(suite.storage.Remove(suite.ctx, name), apperrors.ErrStoredFileNotFound)
}

func (suite *FilesystemStorageTestSuite) TestSaveHonoursCancelledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()
	_, err := suite.storage.Save(ctx, "plan.pdf", strings.NewReader("x"))
	suite.ErrorIs(err, context.Canceled)
}

func TestFilesystemStorageTestSuite(t *testing.T) {
	suite.Run(t, new(FilesystemStorageTestSuite))
}

func TestNewStoredName(t *testing.T) {
	now := time.UnixMilli(42)

	name := NewStoredName("photo.JPG", now)
	assert.Regexp(t, `^42-[0-9a-f-]{36}\.jpg$`, name)

	name = NewStoredName("README", now)
	assert.Regexp(t, `^42-[0-9a-f-]{36}$`, name)

	name = NewStoredName("weird.ext with spaces", now)
	assert.Regexp(t, `^42-[0-9a-f-]{36}$`, name)
}

func TestNewOSStorage(t *testing.T) {
	dir := t.TempDir() + "/uploads"
	s, err := NewOSStorage(dir)
	require.NoError(t, err)

	name, err := s.Save(context.Background(), "a.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	rc, err := s.Open(context.Background(), name)
	require.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "hello", string(data))
}

func TestNewSelectsDriver(t *testing.T) {
	store, err := New(context.Background(), Options{Driver: "", UploadsDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FilesystemStorage{}, store)

	store, err = New(context.Background(), Options{Driver: "Filesystem", UploadsDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FilesystemStorage{}, store)

	_, err = New(context.Background(), Options{Driver: "ftp"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownStorage)

	_, err = New(context.Background(), Options{Driver: DriverS3})
	assert.True(t, apperrors.IsConfiguration(err))
}
