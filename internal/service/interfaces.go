package service

import (
	"context"
	"io"

	"permitpro-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for the login service
type UserServiceInterface interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}

// ChecklistTemplateServiceInterface defines the interface for checklist template service
type ChecklistTemplateServiceInterface interface {
	Options() *ChecklistOptionsResponse
	Resolve(ctx context.Context, county string, permitType models.PermitType) (*models.ChecklistTemplate, error)
	List(ctx context.Context) ([]models.ChecklistTemplate, error)
	GetByID(ctx context.Context, id uint) (*models.ChecklistTemplate, error)
	AddCustomItem(ctx context.Context, templateID uint, req *AddChecklistItemRequest) (*models.ChecklistTemplate, error)
	RemoveCustomItem(ctx context.Context, templateID, itemID uint) (*models.ChecklistTemplate, error)
	ResetToDefault(ctx context.Context, templateID uint) (*models.ChecklistTemplate, error)
	Export(ctx context.Context, templateID uint) (*ChecklistExport, error)
	Import(ctx context.Context, export *ChecklistExport) (*models.ChecklistTemplate, error)
}

// PackageServiceInterface defines the interface for package service
type PackageServiceInterface interface {
	Create(ctx context.Context, req *CreatePackageRequest) (*models.Package, error)
	List(ctx context.Context) ([]models.Package, error)
	GetByID(ctx context.Context, id uint) (*models.Package, error)
	Update(ctx context.Context, id uint, req *UpdatePackageRequest) (*models.Package, error)
	UpdateStatus(ctx context.Context, id uint, status models.PackageStatus) (*models.Package, error)
	AssignContractor(ctx context.Context, id uint, ref ContractorRef) (*models.Package, error)
}

// ContractorServiceInterface defines the interface for contractor service
type ContractorServiceInterface interface {
	Create(ctx context.Context, req *CreateContractorRequest) (*models.Contractor, error)
	List(ctx context.Context) ([]ContractorResponse, error)
	GetByID(ctx context.Context, id uint) (*ContractorResponse, error)
	Update(ctx context.Context, id uint, req *UpdateContractorRequest) (*models.Contractor, error)
	Delete(ctx context.Context, id uint) error
	ReassignPackages(ctx context.Context, id uint, req *ReassignPackagesRequest) (*ReassignPackagesResponse, error)
}

// SubcontractorServiceInterface defines the interface for subcontractor registry service
type SubcontractorServiceInterface interface {
	Create(ctx context.Context, req *CreateSubcontractorRequest) (*models.Subcontractor, error)
	List(ctx context.Context) ([]SubcontractorResponse, error)
	GetByID(ctx context.Context, id uint) (*SubcontractorResponse, error)
	Update(ctx context.Context, id uint, req *UpdateSubcontractorRequest) (*models.Subcontractor, error)
	Delete(ctx context.Context, id uint) error
}

// AssignmentServiceInterface defines the interface for subcontractor assignment service
type AssignmentServiceInterface interface {
	Assign(ctx context.Context, packageID uint, req *AssignSubcontractorRequest) (*models.PackageSubcontractor, error)
	Remove(ctx context.Context, packageID, subcontractorID uint) error
	ListByPackage(ctx context.Context, packageID uint) ([]models.PackageSubcontractor, error)
}

// DocumentServiceInterface defines the interface for document service
type DocumentServiceInterface interface {
	Register(ctx context.Context, packageID uint, fileName, storedPath, uploaderName string) (*models.Document, error)
	Upload(ctx context.Context, packageID uint, fileName string, r io.Reader, uploaderName string) (*models.Document, error)
	ListByPackage(ctx context.Context, packageID uint) ([]models.Document, error)
	Get(ctx context.Context, packageID, documentID uint) (*models.Document, error)
}

// PackageChecklistServiceInterface defines the interface for package checklist service
type PackageChecklistServiceInterface interface {
	Get(ctx context.Context, packageID uint) (*models.PackageChecklist, error)
	UpdateItems(ctx context.Context, packageID uint, req *UpdateChecklistRequest, actor string) (*models.PackageChecklist, error)
}

var (
	_ UserServiceInterface              = (*UserService)(nil)
	_ ChecklistTemplateServiceInterface = (*ChecklistTemplateService)(nil)
	_ PackageServiceInterface           = (*PackageService)(nil)
	_ ContractorServiceInterface        = (*ContractorService)(nil)
	_ SubcontractorServiceInterface     = (*SubcontractorService)(nil)
	_ AssignmentServiceInterface        = (*AssignmentService)(nil)
	_ DocumentServiceInterface          = (*DocumentService)(nil)
	_ PackageChecklistServiceInterface  = (*PackageChecklistService)(nil)
)
