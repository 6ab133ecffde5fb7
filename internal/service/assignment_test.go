package service_test

import (
	"context"
	"testing"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/mocks"
	"permitpro-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockRepo              *mocks.MockAssignmentRepositoryInterface
	mockPackageRepo       *mocks.MockPackageRepositoryInterface
	mockSubcontractorRepo *mocks.MockSubcontractorRepositoryInterface
	service               *service.AssignmentService
	ctx                   context.Context
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockPackageRepo = mocks.NewMockPackageRepositoryInterface(suite.ctrl)
	suite.mockSubcontractorRepo = mocks.NewMockSubcontractorRepositoryInterface(suite.ctrl)
	suite.service = service.NewAssignmentService(suite.mockRepo, suite.mockPackageRepo, suite.mockSubcontractorRepo, validator.New())
	suite.ctx = context.Background()
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) TestAssign_DefaultsTradeType() {
	sc := subcontractor(5, "Volt Electric", "Electrical")
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil)
	suite.mockSubcontractorRepo.EXPECT().GetByID(suite.ctx, uint(5)).Return(sc, nil)
	suite.mockRepo.EXPECT().Get(suite.ctx, uint(1), uint(5)).Return(nil, apperrors.ErrAssignmentNotFound)
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *models.PackageSubcontractor) error {
		assert.Equal(suite.T(), "Electrical", a.TradeType)
		a.ID = 8
		return nil
	})

	assignment, err := suite.service.Assign(suite.ctx, 1, &service.AssignSubcontractorRequest{SubcontractorID: 5})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(8), assignment.ID)
	assert.Same(suite.T(), sc, assignment.Subcontractor)
}

func (suite *AssignmentServiceTestSuite) TestAssign_ExplicitTradeType() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil)
	suite.mockSubcontractorRepo.EXPECT().GetByID(suite.ctx, uint(5)).Return(subcontractor(5, "Volt Electric", "Electrical"), nil)
	suite.mockRepo.EXPECT().Get(suite.ctx, uint(1), uint(5)).Return(nil, apperrors.ErrAssignmentNotFound)
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	assignment, err := suite.service.Assign(suite.ctx, 1, &service.AssignSubcontractorRequest{SubcontractorID: 5, TradeType: "Low Voltage"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Low Voltage", assignment.TradeType)
}

func (suite *AssignmentServiceTestSuite) TestAssign_AlreadyAssigned() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil)
	suite.mockSubcontractorRepo.EXPECT().GetByID(suite.ctx, uint(5)).Return(subcontractor(5, "Volt Electric", "Electrical"), nil)
	suite.mockRepo.EXPECT().Get(suite.ctx, uint(1), uint(5)).Return(&models.PackageSubcontractor{ID: 3}, nil)

	_, err := suite.service.Assign(suite.ctx, 1, &service.AssignSubcontractorRequest{SubcontractorID: 5})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentExists)
}

func (suite *AssignmentServiceTestSuite) TestAssign_PackageNotFound() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(false, nil)

	_, err := suite.service.Assign(suite.ctx, 1, &service.AssignSubcontractorRequest{SubcontractorID: 5})

	assert.ErrorIs(suite.T(), err, apperrors.ErrPackageNotFound)
}

func (suite *AssignmentServiceTestSuite) TestAssign_SubcontractorNotFound() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil)
	suite.mockSubcontractorRepo.EXPECT().GetByID(suite.ctx, uint(5)).Return(nil, apperrors.ErrSubcontractorNotFound)

	_, err := suite.service.Assign(suite.ctx, 1, &service.AssignSubcontractorRequest{SubcontractorID: 5})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSubcontractorNotFound)
}

func (suite *AssignmentServiceTestSuite) TestAssign_MissingSubcontractorID() {
	_, err := suite.service.Assign(suite.ctx, 1, &service.AssignSubcontractorRequest{})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestRemove() {
	suite.mockRepo.EXPECT().Delete(suite.ctx, uint(1), uint(5)).Return(nil)
	assert.NoError(suite.T(), suite.service.Remove(suite.ctx, 1, 5))

	suite.mockRepo.EXPECT().Delete(suite.ctx, uint(1), uint(6)).Return(apperrors.ErrAssignmentNotFound)
	assert.ErrorIs(suite.T(), suite.service.Remove(suite.ctx, 1, 6), apperrors.ErrAssignmentNotFound)
}

func (suite *AssignmentServiceTestSuite) TestListByPackage() {
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil)
	suite.mockRepo.EXPECT().GetByPackageID(suite.ctx, uint(1)).Return([]models.PackageSubcontractor{{ID: 1}, {ID: 2}}, nil)

	result, err := suite.service.ListByPackage(suite.ctx, 1)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
}

func (suite *AssignmentServiceTestSuite) TestAssignConflictRemoveScenario() {
	links := map[uint]models.PackageSubcontractor{}
	suite.mockPackageRepo.EXPECT().Exists(suite.ctx, uint(1)).Return(true, nil).AnyTimes()
	suite.mockSubcontractorRepo.EXPECT().GetByID(suite.ctx, uint(5)).Return(subcontractor(5, "Volt Electric", "Electrical"), nil).AnyTimes()
	suite.mockRepo.EXPECT().Get(suite.ctx, uint(1), uint(5)).DoAndReturn(func(_ context.Context, _, subID uint) (*models.PackageSubcontractor, error) {
		if link, ok := links[subID]; ok {
			return &link, nil
		}
		return nil, apperrors.ErrAssignmentNotFound
	}).Times(2)
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *models.PackageSubcontractor) error {
		a.ID = 12
		links[a.SubcontractorID] = *a
		return nil
	})
	suite.mockRepo.EXPECT().Delete(suite.ctx, uint(1), uint(5)).DoAndReturn(func(_ context.Context, _, subID uint) error {
		delete(links, subID)
		return nil
	})
	suite.mockRepo.EXPECT().GetByPackageID(suite.ctx, uint(1)).DoAndReturn(func(_ context.Context, _ uint) ([]models.PackageSubcontractor, error) {
		result := make([]models.PackageSubcontractor, 0, len(links))
		for _, link := range links {
			result = append(result, link)
		}
		return result, nil
	})

	assignment, err := suite.service.Assign(suite.ctx, 1, &service.AssignSubcontractorRequest{SubcontractorID: 5, TradeType: "Electrical"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Electrical", assignment.TradeType)

	_, err = suite.service.Assign(suite.ctx, 1, &service.AssignSubcontractorRequest{SubcontractorID: 5})
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentExists)
	assert.True(suite.T(), apperrors.IsConflict(err))

	require.NoError(suite.T(), suite.service.Remove(suite.ctx, 1, 5))

	remaining, err := suite.service.ListByPackage(suite.ctx, 1)
	require.NoError(suite.T(), err)
	for _, link := range remaining {
		assert.NotEqual(suite.T(), uint(5), link.SubcontractorID)
	}
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
