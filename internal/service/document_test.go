package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/mocks"
	"permitpro-backend/internal/service"
	"permitpro-backend/internal/storage"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockDocumentRepositoryInterface
	mockPackageRepo *mocks.MockPackageRepositoryInterface
	fs              billy.Filesystem
	service         *service.DocumentService
	ctx             context.Context
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockPackageRepo = mocks.NewMockPackageRepositoryInterface(suite.ctrl)
	suite.fs = memfs.New()
	suite.service = service.NewDocumentService(suite.mockRepo, suite.mockPackageRepo, storage.NewFilesystemStorage(suite.fs))
	suite.ctx = context.Background()
}

func (suite *DocumentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DocumentServiceTestSuite) storedFiles() []string {
	infos, err := suite.fs.ReadDir("/")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

func (suite *DocumentServiceTestSuite) TestUpload_StoresAndRegisters() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil)
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Document) error {
		d.ID = 20
		return nil
	})

	doc, err := suite.service.Upload(suite.ctx, 1, "Site Plan.PDF", strings.NewReader("%PDF-1.4"), "")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(20), doc.ID)
	assert.Equal(suite.T(), "Site Plan.PDF", doc.FileName)
	assert.Equal(suite.T(), service.DefaultDocumentVersion, doc.Version)
	assert.Equal(suite.T(), service.DefaultUploaderName, doc.UploaderName)
	assert.True(suite.T(), strings.HasSuffix(doc.FilePath, ".pdf"))

	stored := suite.storedFiles()
	require.Len(suite.T(), stored, 1)
	assert.Equal(suite.T(), doc.FilePath, stored[0])

	f, err := suite.fs.Open(doc.FilePath)
	require.NoError(suite.T(), err)
	defer f.Close()
	body, _ := io.ReadAll(f)
	assert.Equal(suite.T(), "%PDF-1.4", string(body))
}

func (suite *DocumentServiceTestSuite) TestUpload_UsesUploaderName() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil)
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	doc, err := suite.service.Upload(suite.ctx, 1, "survey.png", strings.NewReader("png"), "Dana Inspector")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Dana Inspector", doc.UploaderName)
}

func (suite *DocumentServiceTestSuite) TestUpload_PackageNotFound() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(9)).Return(false, nil)

	_, err := suite.service.Upload(suite.ctx, 9, "plan.pdf", strings.NewReader("x"), "")

	assert.ErrorIs(suite.T(), err, apperrors.ErrPackageNotFound)
	assert.Empty(suite.T(), suite.storedFiles())
}

func (suite *DocumentServiceTestSuite) TestUpload_MissingFileName() {
	_, err := suite.service.Upload(suite.ctx, 1, "  ", strings.NewReader("x"), "")

	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingDocumentFile)
}

func (suite *DocumentServiceTestSuite) TestUpload_RemovesBytesWhenRegistrationFails() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil)
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(errors.New("insert failed"))

	_, err := suite.service.Upload(suite.ctx, 1, "plan.pdf", strings.NewReader("x"), "")

	assert.ErrorContains(suite.T(), err, "failed to register document")
	assert.Empty(suite.T(), suite.storedFiles())
}

func (suite *DocumentServiceTestSuite) TestRegister_StripsDirectories() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil)
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	doc, err := suite.service.Register(suite.ctx, 1, "../../etc/plan.pdf", "1700000000000-abc.pdf", "Admin User")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "plan.pdf", doc.FileName)
	assert.Equal(suite.T(), "1700000000000-abc.pdf", doc.FilePath)
}

func (suite *DocumentServiceTestSuite) TestRegister_RequiresStoredPath() {
	_, err := suite.service.Register(suite.ctx, 1, "plan.pdf", "", "")

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *DocumentServiceTestSuite) TestListByPackage() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil)
	suite.mockRepo.EXPECT().GetByPackageID(suite.ctx, uint(1)).Return([]models.Document{{ID: 2}, {ID: 1}}, nil)

	docs, err := suite.service.ListByPackage(suite.ctx, 1)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), docs, 2)
}

func (suite *DocumentServiceTestSuite) TestGet_NotFound() {
	suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(1), uint(3)).Return(nil, apperrors.ErrDocumentNotFound)

	_, err := suite.service.Get(suite.ctx, 1, 3)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDocumentNotFound)
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
