//go:build integration
// +build integration

package repository_test

import (
	"context"
	"sync"
	"testing"

	"permitpro-backend/internal/database/models"
	"permitpro-backend/internal/repository"
	"permitpro-backend/internal/service"
	"permitpro-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// TemplateResolveTestSuite runs ChecklistTemplateService.Resolve against a real database
type TemplateResolveTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *service.ChecklistTemplateService
}

func (suite *TemplateResolveTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	repo := repository.NewChecklistTemplateRepository(suite.baseTestSuite.DB)
	suite.service = service.NewChecklistTemplateService(repo, validator.New())
}

func (suite *TemplateResolveTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TemplateResolveTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TemplateResolveTestSuite) TestConcurrentResolveCreatesOneTemplate() {
	ctx := suite.baseTestSuite.Ctx
	counties := []string{"Orange", "Lee", "Polk", "Duval", "Brevard"}

	for _, county := range counties {
		results := make([]*models.ChecklistTemplate, 2)
		errs := make([]error, 2)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				results[i], errs[i] = suite.service.Resolve(ctx, county, models.PermitTypeShed)
			}(i)
		}
		close(start)
		wg.Wait()

		suite.Require().NoError(errs[0], county)
		suite.Require().NoError(errs[1], county)

		var count int64
		suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.ChecklistTemplate{}).
			Where("county = ? AND permit_type = ?", county, models.PermitTypeShed).
			Count(&count).Error)
		suite.Equal(int64(1), count, county)

		suite.Equal(results[0].ID, results[1].ID, county)
		suite.Equal(itemIDs(results[0]), itemIDs(results[1]), county)
		suite.NotEmpty(results[0].Items, county)

		stored := suite.resolveAgain(ctx, county)
		suite.Equal(itemIDs(results[0]), itemIDs(stored), county)
	}
}

func (suite *TemplateResolveTestSuite) resolveAgain(ctx context.Context, county string) *models.ChecklistTemplate {
	tpl, err := suite.service.Resolve(ctx, county, models.PermitTypeShed)
	suite.Require().NoError(err)
	return tpl
}

func itemIDs(tpl *models.ChecklistTemplate) []uint {
	ids := make([]uint, 0, len(tpl.Items))
	for _, item := range tpl.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestTemplateResolveTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateResolveTestSuite))
}
