package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"permitpro-backend/internal/api/handlers"
	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/mocks"
	"permitpro-backend/internal/service"
	"permitpro-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PackageHandlerTestSuite defines the test suite for PackageHandler
type PackageHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPackageServiceInterface
	handler     *handlers.PackageHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *PackageHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPackageServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPackageHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	router := suite.httpSuite.Router
	router.GET("/permits", suite.handler.ListPackages)
	router.POST("/permits", suite.handler.CreatePackage)
	router.GET("/permits/:id", suite.handler.GetPackage)
	router.PUT("/permits/:id", suite.handler.UpdatePackage)
	router.PUT("/permits/:id/contractor", suite.handler.AssignContractor)
}

func (suite *PackageHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func samplePackage(id uint) *models.Package {
	pkg := &models.Package{
		CustomerName:    "John Doe",
		PropertyAddress: "123 Main St",
		County:          "Miami-Dade",
		PermitType:      models.PermitTypeMobileHome,
		Status:          models.PackageStatusDraft,
		Documents:       []models.Document{},
		Subcontractors:  []models.PackageSubcontractor{},
	}
	pkg.ID = id
	return pkg
}

func (suite *PackageHandlerTestSuite) TestListPackages_Success() {
	suite.mockService.EXPECT().List(gomock.Any()).Return([]models.Package{*samplePackage(2), *samplePackage(1)}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/permits", nil)

	var got []models.Package
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Len(got, 2)
	suite.Equal(uint(2), got[0].ID)
	suite.Equal("John Doe", got[0].CustomerName)
}

func (suite *PackageHandlerTestSuite) TestListPackages_ServiceError() {
	suite.mockService.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/permits", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to fetch packages")
	suite.NotContains(recorder.Body.String(), "db down")
}

func (suite *PackageHandlerTestSuite) TestGetPackage_Success() {
	suite.mockService.EXPECT().GetByID(gomock.Any(), uint(7)).Return(samplePackage(7), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/permits/7", nil)

	var got models.Package
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(uint(7), got.ID)
	suite.Equal(models.PermitTypeMobileHome, got.PermitType)
}

func (suite *PackageHandlerTestSuite) TestGetPackage_InvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/permits/abc", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid package ID")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/permits/0", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid package ID")
}

func (suite *PackageHandlerTestSuite) TestGetPackage_NotFound() {
	suite.mockService.EXPECT().GetByID(gomock.Any(), uint(99)).Return(nil, apperrors.ErrPackageNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/permits/99", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "package not found")
}

func (suite *PackageHandlerTestSuite) TestCreatePackage_Success() {
	body := service.CreatePackageRequest{
		CustomerName:    "Jane Smith",
		PropertyAddress: "456 Oak Ave",
		County:          "Orange",
		PermitType:      models.PermitTypeModularHome,
	}
	created := samplePackage(3)
	created.CustomerName = body.CustomerName
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreatePackageRequest) (*models.Package, error) {
			suite.Equal(body, *req)
			return created, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/permits", body)

	var got models.Package
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	suite.Equal(uint(3), got.ID)
	suite.Equal("Jane Smith", got.CustomerName)
}

func (suite *PackageHandlerTestSuite) TestCreatePackage_MalformedBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/permits", "not an object")
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *PackageHandlerTestSuite) TestCreatePackage_ValidationError() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("propertyAddress", "is required"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/permits", map[string]string{"customerName": "X"})

	var got handlers.ErrorResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &got)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("propertyAddress", got.Field)
}

func (suite *PackageHandlerTestSuite) TestUpdatePackage_Status() {
	status := models.PackageStatusSubmitted
	updated := samplePackage(4)
	updated.Status = status
	suite.mockService.EXPECT().
		Update(gomock.Any(), uint(4), &service.UpdatePackageRequest{Status: &status}).
		Return(updated, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/permits/4", map[string]string{"status": "Submitted"})

	var got models.Package
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(models.PackageStatusSubmitted, got.Status)
}

func (suite *PackageHandlerTestSuite) TestUpdatePackage_InvalidStatus() {
	suite.mockService.EXPECT().
		Update(gomock.Any(), uint(4), gomock.Any()).
		Return(nil, apperrors.ErrInvalidStatus)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/permits/4", map[string]string{"status": "Archived"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "status")
}

func (suite *PackageHandlerTestSuite) TestAssignContractor_ByLicense() {
	contractorID := uint(5)
	updated := samplePackage(4)
	updated.ContractorID = &contractorID
	suite.mockService.EXPECT().
		AssignContractor(gomock.Any(), uint(4), service.ContractorRef{ContractorLicense: "LIC-5"}).
		Return(updated, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/permits/4/contractor", map[string]string{"contractorLicense": "LIC-5"})

	var got models.Package
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	if assert.NotNil(suite.T(), got.ContractorID) {
		suite.Equal(contractorID, *got.ContractorID)
	}
}

func (suite *PackageHandlerTestSuite) TestAssignContractor_UnknownContractor() {
	suite.mockService.EXPECT().
		AssignContractor(gomock.Any(), uint(4), gomock.Any()).
		Return(nil, apperrors.ErrContractorNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/permits/4/contractor", map[string]int{"contractorId": 42})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "contractor not found")
}

func TestPackageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PackageHandlerTestSuite))
}
