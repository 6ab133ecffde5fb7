package repository

import (
	"context"

	"permitpro-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ContractorRepositoryInterface defines the interface for contractor repository operations
type ContractorRepositoryInterface interface {
	Create(ctx context.Context, contractor *models.Contractor) error
	GetByID(ctx context.Context, id uint) (*models.Contractor, error)
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Contractor, error)
	GetAll(ctx context.Context) ([]models.Contractor, error)
	Update(ctx context.Context, contractor *models.Contractor) error
	Delete(ctx context.Context, id uint) error
}

// SubcontractorRepositoryInterface defines the interface for subcontractor repository operations
type SubcontractorRepositoryInterface interface {
	Create(ctx context.Context, subcontractor *models.Subcontractor) error
	GetByID(ctx context.Context, id uint) (*models.Subcontractor, error)
	GetAll(ctx context.Context) ([]models.Subcontractor, error)
	Update(ctx context.Context, subcontractor *models.Subcontractor) error
	Delete(ctx context.Context, id uint) error
}

// PackageRepositoryInterface defines the interface for package repository operations
type PackageRepositoryInterface interface {
	CreateWithChecklist(ctx context.Context, pkg *models.Package, checklist *models.PackageChecklist) error
	GetByID(ctx context.Context, id uint) (*models.Package, error)
	GetAll(ctx context.Context) ([]models.Package, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	GetSummariesByContractorIDs(ctx context.Context, contractorIDs []uint) ([]PackageSummary, error)
	ReassignContractor(ctx context.Context, fromContractorID, toContractorID uint) (int64, error)
}

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	Create(ctx context.Context, document *models.Document) error
	GetByID(ctx context.Context, packageID, documentID uint) (*models.Document, error)
	GetByPackageID(ctx context.Context, packageID uint) ([]models.Document, error)
}

// AssignmentRepositoryInterface defines the interface for package-subcontractor link operations
type AssignmentRepositoryInterface interface {
	Create(ctx context.Context, assignment *models.PackageSubcontractor) error
	Get(ctx context.Context, packageID, subcontractorID uint) (*models.PackageSubcontractor, error)
	Delete(ctx context.Context, packageID, subcontractorID uint) error
	GetByPackageID(ctx context.Context, packageID uint) ([]models.PackageSubcontractor, error)
	GetSummariesBySubcontractorIDs(ctx context.Context, subcontractorIDs []uint) ([]AssignmentSummary, error)
}

// ChecklistTemplateRepositoryInterface defines the interface for checklist template repository operations
type ChecklistTemplateRepositoryInterface interface {
	Create(ctx context.Context, template *models.ChecklistTemplate) error
	GetByID(ctx context.Context, id uint) (*models.ChecklistTemplate, error)
	GetByKey(ctx context.Context, county string, permitType models.PermitType) (*models.ChecklistTemplate, error)
	GetAll(ctx context.Context) ([]models.ChecklistTemplate, error)
	AddItem(ctx context.Context, item *models.ChecklistItem) error
	GetItem(ctx context.Context, templateID, itemID uint) (*models.ChecklistItem, error)
	DeleteItem(ctx context.Context, templateID, itemID uint) error
	ResetItems(ctx context.Context, templateID uint, add []models.ChecklistItem) error
}

// PackageChecklistRepositoryInterface defines the interface for package checklist repository operations
type PackageChecklistRepositoryInterface interface {
	GetByPackageID(ctx context.Context, packageID uint) (*models.PackageChecklist, error)
	UpdateItems(ctx context.Context, items []models.PackageChecklistItem) error
}
