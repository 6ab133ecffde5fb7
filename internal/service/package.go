package service

import (
	"context"
	"fmt"
	"strings"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// PackageService handles the permit package lifecycle
type PackageService struct {
	repo           repository.PackageRepositoryInterface
	contractorRepo repository.ContractorRepositoryInterface
	templates      ChecklistTemplateServiceInterface
	validator      *validator.Validate
}

// NewPackageService creates a new package service
func NewPackageService(repo repository.PackageRepositoryInterface, contractorRepo repository.ContractorRepositoryInterface, templates ChecklistTemplateServiceInterface, validator *validator.Validate) *PackageService {
	return &PackageService{
		repo:           repo,
		contractorRepo: contractorRepo,
		templates:      templates,
		validator:      validator,
	}
}

// ContractorRef points at a contractor either by ID or by license number. ID wins when both are set.
type ContractorRef struct {
	ContractorID      *uint  `json:"contractorId,omitempty"`
	ContractorLicense string `json:"contractorLicense,omitempty" validate:"max=100"`
}

// IsSet reports whether the reference names a contractor
func (r ContractorRef) IsSet() bool {
	return (r.ContractorID != nil && *r.ContractorID != 0) || strings.TrimSpace(r.ContractorLicense) != ""
}

// CreatePackageRequest represents the request to create a package
type CreatePackageRequest struct {
	CustomerName    string            `json:"customerName" validate:"required,max=200"`
	PropertyAddress string            `json:"propertyAddress" validate:"required,max=300"`
	County          string            `json:"county" validate:"required,max=100"`
	PermitType      models.PermitType `json:"permitType" validate:"required"`
	ContractorRef
}

// UpdatePackageRequest represents a partial package update. Nil fields are left untouched.
type UpdatePackageRequest struct {
	CustomerName    *string               `json:"customerName,omitempty" validate:"omitempty,min=1,max=200"`
	PropertyAddress *string               `json:"propertyAddress,omitempty" validate:"omitempty,min=1,max=300"`
	County          *string               `json:"county,omitempty" validate:"omitempty,min=1,max=100"`
	PermitType      *models.PermitType    `json:"permitType,omitempty"`
	Status          *models.PackageStatus `json:"status,omitempty"`
	ContractorRef
}

// UpdateStatusRequest represents a status change
type UpdateStatusRequest struct {
	Status models.PackageStatus `json:"status" validate:"required"`
}

// Create validates the request, resolves the checklist template and stores the package with its checklist
func (s *PackageService) Create(ctx context.Context, req *CreatePackageRequest) (*models.Package, error) {
	trimAll(&req.CustomerName, &req.PropertyAddress, &req.County)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !req.PermitType.IsValid() {
		return nil, apperrors.ErrInvalidPermitType
	}

	pkg := &models.Package{
		CustomerName:    req.CustomerName,
		PropertyAddress: req.PropertyAddress,
		County:          req.County,
		PermitType:      req.PermitType,
		Status:          models.PackageStatusDraft,
	}

	if req.ContractorRef.IsSet() {
		contractor, err := s.resolveContractor(ctx, req.ContractorRef)
		if err != nil {
			return nil, err
		}
		pkg.ContractorID = &contractor.ID
	}

	template, err := s.templates.Resolve(ctx, req.County, req.PermitType)
	if err != nil {
		return nil, err
	}

	checklist := &models.PackageChecklist{
		TemplateID: template.ID,
		Items:      make([]models.PackageChecklistItem, 0, len(template.Items)),
	}
	for _, item := range template.Items {
		checklist.Items = append(checklist.Items, models.PackageChecklistItem{
			ChecklistItemID: item.ID,
			Name:            item.Name,
			IsRequired:      item.IsRequired,
			Order:           item.Order,
			IsCompleted:     false,
		})
	}

	if err := s.repo.CreateWithChecklist(ctx, pkg, checklist); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create package: %w", err)
	}

	return s.GetByID(ctx, pkg.ID)
}

// List returns every package with its relations, newest first
func (s *PackageService) List(ctx context.Context) ([]models.Package, error) {
	packages, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}

// GetByID returns a package with its relations
func (s *PackageService) GetByID(ctx context.Context, id uint) (*models.Package, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return pkg, nil
}

// Update applies a partial update. Changing county or permit type keeps the existing checklist.
func (s *PackageService) Update(ctx context.Context, id uint, req *UpdatePackageRequest) (*models.Package, error) {
	trimAll(req.CustomerName, req.PropertyAddress, req.County)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	updates := make(map[string]interface{})
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.PropertyAddress != nil {
		updates["property_address"] = *req.PropertyAddress
	}
	if req.County != nil {
		updates["county"] = *req.County
	}
	if req.PermitType != nil {
		if !req.PermitType.IsValid() {
			return nil, apperrors.ErrInvalidPermitType
		}
		updates["permit_type"] = *req.PermitType
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check package: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrPackageNotFound
	}

	if req.ContractorRef.IsSet() {
		contractor, err := s.resolveContractor(ctx, req.ContractorRef)
		if err != nil {
			return nil, err
		}
		updates["contractor_id"] = contractor.ID
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to update package: %w", err)
		}
	}
	return s.GetByID(ctx, id)
}

// UpdateStatus moves a package to another status. Any valid status may follow any other.
func (s *PackageService) UpdateStatus(ctx context.Context, id uint, status models.PackageStatus) (*models.Package, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	return s.Update(ctx, id, &UpdatePackageRequest{Status: &status})
}

// AssignContractor points a package at an existing contractor
func (s *PackageService) AssignContractor(ctx context.Context, id uint, ref ContractorRef) (*models.Package, error) {
	if !ref.IsSet() {
		return nil, apperrors.NewValidationError("contractorId", "contractorId or contractorLicense is required")
	}
	return s.Update(ctx, id, &UpdatePackageRequest{ContractorRef: ref})
}

func (s *PackageService) resolveContractor(ctx context.Context, ref ContractorRef) (*models.Contractor, error) {
	var (
		contractor *models.Contractor
		err        error
	)
	if ref.ContractorID != nil && *ref.ContractorID != 0 {
		contractor, err = s.contractorRepo.GetByID(ctx, *ref.ContractorID)
	} else {
		contractor, err = s.contractorRepo.GetByLicenseNumber(ctx, strings.TrimSpace(ref.ContractorLicense))
	}
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrContractorNotFound
		}
		return nil, fmt.Errorf("failed to resolve contractor: %w", err)
	}
	return contractor, nil
}
