//go:build integration
// +build integration

package repository

import (
	"testing"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ChecklistTemplateRepositoryTestSuite tests the ChecklistTemplateRepository
type ChecklistTemplateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ChecklistTemplateRepository
	factories     *testutils.FactorySet
}

func (suite *ChecklistTemplateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewChecklistTemplateRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ChecklistTemplateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ChecklistTemplateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ChecklistTemplateRepositoryTestSuite) TestCreateAndGetByKey() {
	ctx := suite.baseTestSuite.Ctx
	tpl := suite.factories.ChecklistTemplate.Create("Orange", models.PermitTypeShed, 3)
	suite.Require().NoError(suite.repo.Create(ctx, tpl))

	found, err := suite.repo.GetByKey(ctx, "Orange", models.PermitTypeShed)
	suite.Require().NoError(err)
	suite.Equal(tpl.ID, found.ID)
	suite.Require().Len(found.Items, 3)
	suite.Equal("Item 1", found.Items[0].Name)

	_, err = suite.repo.GetByKey(ctx, "Orange", models.PermitTypeMobileHome)
	suite.ErrorIs(err, apperrors.ErrChecklistTemplateNotFound)
}

func (suite *ChecklistTemplateRepositoryTestSuite) TestDuplicateKey() {
	ctx := suite.baseTestSuite.Ctx
	suite.Require().NoError(suite.repo.Create(ctx, suite.factories.ChecklistTemplate.Create("Lee", models.PermitTypeShed, 1)))

	err := suite.repo.Create(ctx, suite.factories.ChecklistTemplate.Create("Lee", models.PermitTypeShed, 1))
	suite.ErrorIs(err, apperrors.ErrChecklistTemplateExists)
}

func (suite *ChecklistTemplateRepositoryTestSuite) TestAddAndDeleteItem() {
	ctx := suite.baseTestSuite.Ctx
	tpl := suite.factories.ChecklistTemplate.Create("Polk", models.PermitTypeModularHome, 2)
	suite.Require().NoError(suite.repo.Create(ctx, tpl))

	custom := &models.ChecklistItem{TemplateID: tpl.ID, Name: "HOA Approval", IsCustom: true, Order: 3}
	suite.Require().NoError(suite.repo.AddItem(ctx, custom))

	got, err := suite.repo.GetItem(ctx, tpl.ID, custom.ID)
	suite.Require().NoError(err)
	suite.True(got.IsCustom)

	suite.Require().NoError(suite.repo.DeleteItem(ctx, tpl.ID, custom.ID))
	suite.ErrorIs(suite.repo.DeleteItem(ctx, tpl.ID, custom.ID), apperrors.ErrChecklistItemNotFound)

	orphan := &models.ChecklistItem{TemplateID: 999, Name: "Nope", Order: 1}
	suite.ErrorIs(suite.repo.AddItem(ctx, orphan), apperrors.ErrChecklistTemplateNotFound)
}

func (suite *ChecklistTemplateRepositoryTestSuite) TestResetItemsKeepsDefaults() {
	ctx := suite.baseTestSuite.Ctx
	tpl := suite.factories.ChecklistTemplate.Create("Polk", models.PermitTypeShed, 2)
	suite.Require().NoError(suite.repo.Create(ctx, tpl))
	defaultIDs := []uint{tpl.Items[0].ID, tpl.Items[1].ID}

	suite.Require().NoError(suite.repo.AddItem(ctx, &models.ChecklistItem{TemplateID: tpl.ID, Name: "Custom", IsCustom: true, Order: 3}))

	restored := []models.ChecklistItem{{Name: "Item 3", IsRequired: true, Order: 3}}
	suite.Require().NoError(suite.repo.ResetItems(ctx, tpl.ID, restored))

	reloaded, err := suite.repo.GetByID(ctx, tpl.ID)
	suite.Require().NoError(err)
	suite.Require().Len(reloaded.Items, 3)
	suite.Equal(defaultIDs[0], reloaded.Items[0].ID)
	suite.Equal(defaultIDs[1], reloaded.Items[1].ID)
	suite.Equal("Item 3", reloaded.Items[2].Name)
	for _, item := range reloaded.Items {
		suite.False(item.IsCustom)
	}
}

func (suite *ChecklistTemplateRepositoryTestSuite) TestGetAllOrdering() {
	ctx := suite.baseTestSuite.Ctx
	suite.Require().NoError(suite.repo.Create(ctx, suite.factories.ChecklistTemplate.Create("Orange", models.PermitTypeShed, 1)))
	suite.Require().NoError(suite.repo.Create(ctx, suite.factories.ChecklistTemplate.Create("Brevard", models.PermitTypeShed, 1)))

	all, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("Brevard", all[0].County)
}

func TestChecklistTemplateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ChecklistTemplateRepositoryTestSuite))
}
