package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/mocks"
	"permitpro-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChecklistTemplateServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockChecklistTemplateRepositoryInterface
	service  *service.ChecklistTemplateService
	ctx      context.Context
}

func (suite *ChecklistTemplateServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockChecklistTemplateRepositoryInterface(suite.ctrl)
	suite.service = service.NewChecklistTemplateService(suite.mockRepo, validator.New())
	suite.ctx = context.Background()
}

func (suite *ChecklistTemplateServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func shedTemplate(id uint) *models.ChecklistTemplate {
	items := service.DefaultChecklistItems(models.PermitTypeShed)
	for i := range items {
		items[i].ID = uint(i + 1)
		items[i].TemplateID = id
	}
	return &models.ChecklistTemplate{
		BaseModel:  models.BaseModel{ID: id, UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		County:     "Orange",
		PermitType: models.PermitTypeShed,
		Items:      items,
	}
}

func (suite *ChecklistTemplateServiceTestSuite) TestOptions() {
	opts := suite.service.Options()

	assert.Len(suite.T(), opts.Counties, 67)
	assert.Contains(suite.T(), opts.Counties, "Miami-Dade")
	assert.Equal(suite.T(), models.PermitTypes, opts.PermitTypes)
}

func (suite *ChecklistTemplateServiceTestSuite) TestResolve_Existing() {
	existing := shedTemplate(4)
	suite.mockRepo.EXPECT().GetByKey(suite.ctx, "Orange", models.PermitTypeShed).Return(existing, nil)

	template, err := suite.service.Resolve(suite.ctx, "  Orange ", models.PermitTypeShed)

	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), existing, template)
}

func (suite *ChecklistTemplateServiceTestSuite) TestResolve_CreatesFromDefaults() {
	suite.mockRepo.EXPECT().GetByKey(suite.ctx, "Lee", models.PermitTypeMobileHome).Return(nil, apperrors.ErrChecklistTemplateNotFound)
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, t *models.ChecklistTemplate) error {
		t.ID = 9
		return nil
	})

	template, err := suite.service.Resolve(suite.ctx, "Lee", models.PermitTypeMobileHome)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(9), template.ID)
	assert.Len(suite.T(), template.Items, 10)
	for i, item := range template.Items {
		assert.True(suite.T(), item.IsRequired)
		assert.False(suite.T(), item.IsCustom)
		assert.Equal(suite.T(), i, item.Order)
	}
	assert.Equal(suite.T(), "Site Plan", template.Items[0].Name)
}

func (suite *ChecklistTemplateServiceTestSuite) TestResolve_ConflictRefetches() {
	winner := shedTemplate(2)
	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByKey(suite.ctx, "Orange", models.PermitTypeShed).Return(nil, apperrors.ErrChecklistTemplateNotFound),
		suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(apperrors.ErrChecklistTemplateExists),
		suite.mockRepo.EXPECT().GetByKey(suite.ctx, "Orange", models.PermitTypeShed).Return(winner, nil),
	)

	template, err := suite.service.Resolve(suite.ctx, "Orange", models.PermitTypeShed)

	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), winner, template)
}

func (suite *ChecklistTemplateServiceTestSuite) TestResolve_InvalidPermitType() {
	_, err := suite.service.Resolve(suite.ctx, "Orange", models.PermitType("Pool Permit"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPermitType)
}

func (suite *ChecklistTemplateServiceTestSuite) TestResolve_MissingCounty() {
	_, err := suite.service.Resolve(suite.ctx, "   ", models.PermitTypeShed)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ChecklistTemplateServiceTestSuite) TestResolve_RepositoryError() {
	suite.mockRepo.EXPECT().GetByKey(suite.ctx, "Orange", models.PermitTypeShed).Return(nil, errors.New("db down"))

	_, err := suite.service.Resolve(suite.ctx, "Orange", models.PermitTypeShed)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to get checklist template")
}

func (suite *ChecklistTemplateServiceTestSuite) TestAddCustomItem_Success() {
	template := shedTemplate(3)
	updated := shedTemplate(3)
	updated.Items = append(updated.Items, models.ChecklistItem{ID: 50, TemplateID: 3, Name: "HOA Approval", IsCustom: true, Order: 6})

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(template, nil),
		suite.mockRepo.EXPECT().AddItem(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, item *models.ChecklistItem) error {
			assert.Equal(suite.T(), "HOA Approval", item.Name)
			assert.True(suite.T(), item.IsCustom)
			assert.False(suite.T(), item.IsRequired)
			assert.Equal(suite.T(), 6, item.Order)
			assert.Equal(suite.T(), uint(3), item.TemplateID)
			return nil
		}),
		suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(updated, nil),
	)

	result, err := suite.service.AddCustomItem(suite.ctx, 3, &service.AddChecklistItemRequest{Name: " HOA Approval "})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Items, 7)
}

func (suite *ChecklistTemplateServiceTestSuite) TestAddCustomItem_DuplicateName() {
	suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(shedTemplate(3), nil)

	_, err := suite.service.AddCustomItem(suite.ctx, 3, &service.AddChecklistItemRequest{Name: "site plan"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrChecklistItemExists)
}

func (suite *ChecklistTemplateServiceTestSuite) TestAddCustomItem_EmptyName() {
	_, err := suite.service.AddCustomItem(suite.ctx, 3, &service.AddChecklistItemRequest{Name: "  "})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ChecklistTemplateServiceTestSuite) TestAddCustomItem_TemplateNotFound() {
	suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(77)).Return(nil, apperrors.ErrChecklistTemplateNotFound)

	_, err := suite.service.AddCustomItem(suite.ctx, 77, &service.AddChecklistItemRequest{Name: "Extra"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrChecklistTemplateNotFound)
}

func (suite *ChecklistTemplateServiceTestSuite) TestRemoveCustomItem_Success() {
	template := shedTemplate(3)
	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(template, nil),
		suite.mockRepo.EXPECT().GetItem(suite.ctx, uint(3), uint(50)).Return(&models.ChecklistItem{ID: 50, TemplateID: 3, IsCustom: true}, nil),
		suite.mockRepo.EXPECT().DeleteItem(suite.ctx, uint(3), uint(50)).Return(nil),
		suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(template, nil),
	)

	result, err := suite.service.RemoveCustomItem(suite.ctx, 3, 50)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(3), result.ID)
}

func (suite *ChecklistTemplateServiceTestSuite) TestRemoveCustomItem_DefaultItemRejected() {
	suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(shedTemplate(3), nil)
	suite.mockRepo.EXPECT().GetItem(suite.ctx, uint(3), uint(1)).Return(&models.ChecklistItem{ID: 1, TemplateID: 3, IsCustom: false}, nil)

	_, err := suite.service.RemoveCustomItem(suite.ctx, 3, 1)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDefaultItemRemoval)
}

func (suite *ChecklistTemplateServiceTestSuite) TestRemoveCustomItem_ItemNotFound() {
	suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(shedTemplate(3), nil)
	suite.mockRepo.EXPECT().GetItem(suite.ctx, uint(3), uint(99)).Return(nil, apperrors.ErrChecklistItemNotFound)

	_, err := suite.service.RemoveCustomItem(suite.ctx, 3, 99)

	assert.ErrorIs(suite.T(), err, apperrors.ErrChecklistItemNotFound)
}

func (suite *ChecklistTemplateServiceTestSuite) TestResetToDefault_RestoresMissingDefaults() {
	template := shedTemplate(3)
	// drop "Property Survey" and add a custom item
	template.Items = append(template.Items[:2], template.Items[3:]...)
	template.Items = append(template.Items, models.ChecklistItem{ID: 60, TemplateID: 3, Name: "Fence Permit", IsCustom: true, Order: 6})

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(template, nil),
		suite.mockRepo.EXPECT().ResetItems(suite.ctx, uint(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ uint, add []models.ChecklistItem) error {
			assert.Len(suite.T(), add, 1)
			assert.Equal(suite.T(), "Property Survey", add[0].Name)
			assert.Equal(suite.T(), 2, add[0].Order)
			assert.True(suite.T(), add[0].IsRequired)
			return nil
		}),
		suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(shedTemplate(3), nil),
	)

	result, err := suite.service.ResetToDefault(suite.ctx, 3)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Items, 6)
}

func (suite *ChecklistTemplateServiceTestSuite) TestResetToDefault_RepositoryError() {
	suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(shedTemplate(3), nil)
	suite.mockRepo.EXPECT().ResetItems(suite.ctx, uint(3), gomock.Any()).Return(errors.New("tx aborted"))

	_, err := suite.service.ResetToDefault(suite.ctx, 3)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to reset checklist template")
}

func (suite *ChecklistTemplateServiceTestSuite) TestExport() {
	template := shedTemplate(3)
	template.Items = append(template.Items, models.ChecklistItem{ID: 60, Name: "Fence Permit", IsCustom: true, Order: 6})
	suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(template, nil)

	export, err := suite.service.Export(suite.ctx, 3)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Orange", export.County)
	assert.Equal(suite.T(), models.PermitTypeShed, export.PermitType)
	assert.Len(suite.T(), export.Checklist.Items, 6)
	assert.Equal(suite.T(), []string{"Fence Permit"}, export.Checklist.CustomItems)
	assert.Equal(suite.T(), template.UpdatedAt, export.Checklist.LastModified)
	assert.WithinDuration(suite.T(), time.Now(), export.ExportDate, time.Minute)
	assert.Equal(suite.T(), "Orange_Shed_Permit_checklist.json", export.FileName())
}

func (suite *ChecklistTemplateServiceTestSuite) TestImport_ReplacesCustomItems() {
	existing := shedTemplate(3)
	existing.Items = append(existing.Items, models.ChecklistItem{ID: 60, Name: "Old Custom", IsCustom: true, Order: 6})

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByKey(suite.ctx, "Orange", models.PermitTypeShed).Return(existing, nil),
		suite.mockRepo.EXPECT().ResetItems(suite.ctx, uint(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ uint, add []models.ChecklistItem) error {
			names := make([]string, 0, len(add))
			for _, item := range add {
				assert.True(suite.T(), item.IsCustom)
				names = append(names, item.Name)
			}
			// defaults and blanks are skipped, duplicates collapse
			assert.Equal(suite.T(), []string{"HOA Approval", "Tree Removal"}, names)
			assert.Equal(suite.T(), 6, add[0].Order)
			assert.Equal(suite.T(), 7, add[1].Order)
			return nil
		}),
		suite.mockRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(existing, nil),
	)

	_, err := suite.service.Import(suite.ctx, &service.ChecklistExport{
		County:     "Orange",
		PermitType: models.PermitTypeShed,
		Checklist: service.ChecklistExportBody{
			CustomItems: []string{"HOA Approval", "site plan", "", "Tree Removal", "hoa approval"},
		},
	})

	assert.NoError(suite.T(), err)
}

func (suite *ChecklistTemplateServiceTestSuite) TestImport_InvalidPayload() {
	_, err := suite.service.Import(suite.ctx, &service.ChecklistExport{PermitType: models.PermitTypeShed})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestChecklistTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChecklistTemplateServiceTestSuite))
}

func TestDefaultChecklistItems_UnknownPermitType(t *testing.T) {
	assert.Empty(t, service.DefaultChecklistItems(models.PermitType("Fence Permit")))
	assert.Len(t, service.DefaultChecklistItems(models.PermitTypeModularHome), 11)
}
