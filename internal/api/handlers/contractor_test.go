package handlers_test

import (
	"net/http"
	"testing"

	"permitpro-backend/internal/api/handlers"
	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/mocks"
	"permitpro-backend/internal/repository"
	"permitpro-backend/internal/service"
	"permitpro-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContractorHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockContractors    *mocks.MockContractorServiceInterface
	mockSubcontractors *mocks.MockSubcontractorServiceInterface
	httpSuite          *testutils.HTTPTestSuite
}

func (suite *ContractorHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContractors = mocks.NewMockContractorServiceInterface(suite.ctrl)
	suite.mockSubcontractors = mocks.NewMockSubcontractorServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	contractors := handlers.NewContractorHandler(suite.mockContractors)
	subcontractors := handlers.NewSubcontractorHandler(suite.mockSubcontractors)

	router := suite.httpSuite.Router
	router.GET("/contractors", contractors.ListContractors)
	router.POST("/contractors", contractors.CreateContractor)
	router.GET("/contractors/:id", contractors.GetContractor)
	router.PUT("/contractors/:id", contractors.UpdateContractor)
	router.DELETE("/contractors/:id", contractors.DeleteContractor)
	router.PUT("/contractors/:id/reassign-packages", contractors.ReassignPackages)

	router.GET("/subcontractors", subcontractors.ListSubcontractors)
	router.POST("/subcontractors", subcontractors.CreateSubcontractor)
	router.GET("/subcontractors/:id", subcontractors.GetSubcontractor)
	router.PUT("/subcontractors/:id", subcontractors.UpdateSubcontractor)
	router.DELETE("/subcontractors/:id", subcontractors.DeleteSubcontractor)
}

func (suite *ContractorHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContractorHandlerTestSuite) TestListContractors() {
	suite.mockContractors.EXPECT().List(gomock.Any()).Return([]service.ContractorResponse{
		{
			ID:            1,
			CompanyName:   "Acme Builders",
			LicenseNumber: "CGC-1",
			Packages: []repository.PackageSummary{
				{ID: 4, CustomerName: "John Doe", Status: string(models.PackageStatusDraft)},
			},
		},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/contractors", nil)

	var got []service.ContractorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Require().Len(got, 1)
	suite.Equal("Acme Builders", got[0].CompanyName)
	suite.Require().Len(got[0].Packages, 1)
	suite.Equal("John Doe", got[0].Packages[0].CustomerName)
}

func (suite *ContractorHandlerTestSuite) TestCreateContractor_Created() {
	body := service.CreateContractorRequest{
		CompanyName:   "Acme Builders",
		LicenseNumber: "CGC-1",
		Address:       "1 Builder Way",
		PhoneNumber:   "555-0100",
	}
	created := &models.Contractor{CompanyName: body.CompanyName, LicenseNumber: body.LicenseNumber}
	created.ID = 12
	suite.mockContractors.EXPECT().Create(gomock.Any(), &body).Return(created, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/contractors", body)

	var got models.Contractor
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	suite.Equal(uint(12), got.ID)
}

func (suite *ContractorHandlerTestSuite) TestCreateContractor_DuplicateLicense() {
	suite.mockContractors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrContractorExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/contractors", map[string]string{"licenseNumber": "CGC-1"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

func (suite *ContractorHandlerTestSuite) TestGetContractor_NotFound() {
	suite.mockContractors.EXPECT().GetByID(gomock.Any(), uint(5)).Return(nil, apperrors.ErrContractorNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/contractors/5", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "contractor not found")
}

func (suite *ContractorHandlerTestSuite) TestUpdateContractor() {
	phone := "555-0199"
	updated := &models.Contractor{PhoneNumber: phone}
	updated.ID = 5
	suite.mockContractors.EXPECT().
		Update(gomock.Any(), uint(5), &service.UpdateContractorRequest{PhoneNumber: &phone}).
		Return(updated, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/contractors/5", map[string]string{"phoneNumber": phone})

	var got models.Contractor
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(phone, got.PhoneNumber)
}

func (suite *ContractorHandlerTestSuite) TestDeleteContractor_Success() {
	suite.mockContractors.EXPECT().Delete(gomock.Any(), uint(5)).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/contractors/5", nil)

	var got handlers.MessageResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal("Contractor deleted successfully", got.Message)
}

func (suite *ContractorHandlerTestSuite) TestDeleteContractor_InUse() {
	suite.mockContractors.EXPECT().Delete(gomock.Any(), uint(5)).Return(apperrors.NewContractorInUseError([]apperrors.PackageRef{
		{ID: 1, CustomerName: "John Doe"},
		{ID: 2, CustomerName: "Jane Smith"},
	}))

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/contractors/5", nil)

	var got handlers.ContractorInUseResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &got)
	suite.Equal("Cannot delete contractor with assigned packages", got.Error)
	suite.Equal(2, got.PackageCount)
	suite.Len(got.Packages, 2)
	suite.Contains(got.Message, "2 package(s)")
}

func (suite *ContractorHandlerTestSuite) TestReassignPackages() {
	suite.mockContractors.EXPECT().
		ReassignPackages(gomock.Any(), uint(5), &service.ReassignPackagesRequest{NewContractorID: 6}).
		Return(&service.ReassignPackagesResponse{
			Message:           "Successfully reassigned 3 package(s) to Beta Homes",
			ReassignedCount:   3,
			NewContractorName: "Beta Homes",
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/contractors/5/reassign-packages", map[string]int{"newContractorId": 6})

	var got service.ReassignPackagesResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(int64(3), got.ReassignedCount)
	suite.Equal("Beta Homes", got.NewContractorName)
}

func (suite *ContractorHandlerTestSuite) TestReassignPackages_SameContractor() {
	suite.mockContractors.EXPECT().
		ReassignPackages(gomock.Any(), uint(5), gomock.Any()).
		Return(nil, apperrors.ErrSameContractor)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/contractors/5/reassign-packages", map[string]int{"newContractorId": 5})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "newContractorId")
}

func (suite *ContractorHandlerTestSuite) TestSubcontractorLifecycle() {
	created := &models.Subcontractor{CompanyName: "Sparky Electric", TradeType: "Electrical"}
	created.ID = 3
	suite.mockSubcontractors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
	suite.mockSubcontractors.EXPECT().GetByID(gomock.Any(), uint(3)).Return(&service.SubcontractorResponse{ID: 3, CompanyName: "Sparky Electric", TradeType: "Electrical"}, nil)
	suite.mockSubcontractors.EXPECT().Delete(gomock.Any(), uint(3)).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/subcontractors", map[string]string{"companyName": "Sparky Electric", "tradeType": "Electrical"})
	suite.Equal(http.StatusCreated, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/subcontractors/3", nil)
	var got service.SubcontractorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal("Electrical", got.TradeType)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/subcontractors/3", nil)
	var msg handlers.MessageResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &msg)
	suite.Equal("Subcontractor deleted successfully", msg.Message)
}

func (suite *ContractorHandlerTestSuite) TestSubcontractorUpdate_NotFound() {
	suite.mockSubcontractors.EXPECT().Update(gomock.Any(), uint(9), gomock.Any()).Return(nil, apperrors.ErrSubcontractorNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/subcontractors/9", map[string]string{"tradeType": "Plumbing"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "subcontractor not found")
}

func TestContractorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContractorHandlerTestSuite))
}
