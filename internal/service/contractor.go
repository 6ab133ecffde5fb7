package service

import (
	"context"
	"fmt"
	"time"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ContractorService handles business logic for contractors, including the delete and reassign rules
type ContractorService struct {
	repo        repository.ContractorRepositoryInterface
	packageRepo repository.PackageRepositoryInterface
	validator   *validator.Validate
}

// NewContractorService creates a new contractor service
func NewContractorService(repo repository.ContractorRepositoryInterface, packageRepo repository.PackageRepositoryInterface, validator *validator.Validate) *ContractorService {
	return &ContractorService{
		repo:        repo,
		packageRepo: packageRepo,
		validator:   validator,
	}
}

// CreateContractorRequest represents the request to create a contractor
type CreateContractorRequest struct {
	CompanyName   string `json:"companyName" validate:"required,max=200"`
	LicenseNumber string `json:"licenseNumber" validate:"required,max=100"`
	Address       string `json:"address" validate:"required,max=300"`
	PhoneNumber   string `json:"phoneNumber" validate:"required,max=50"`
	Email         string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	ContactPerson string `json:"contactPerson,omitempty" validate:"max=200"`
}

// UpdateContractorRequest represents a partial contractor update
type UpdateContractorRequest struct {
	CompanyName   *string `json:"companyName,omitempty" validate:"omitempty,min=1,max=200"`
	LicenseNumber *string `json:"licenseNumber,omitempty" validate:"omitempty,min=1,max=100"`
	Address       *string `json:"address,omitempty" validate:"omitempty,min=1,max=300"`
	PhoneNumber   *string `json:"phoneNumber,omitempty" validate:"omitempty,min=1,max=50"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	ContactPerson *string `json:"contactPerson,omitempty" validate:"omitempty,max=200"`
}

// ReassignPackagesRequest represents the request to move every package of a contractor to another one
type ReassignPackagesRequest struct {
	NewContractorID uint `json:"newContractorId"`
}

// ReassignPackagesResponse reports the outcome of a bulk reassignment
type ReassignPackagesResponse struct {
	Message           string `json:"message"`
	ReassignedCount   int64  `json:"reassignedCount"`
	NewContractorName string `json:"newContractorName"`
}

// ContractorResponse is a contractor together with the packages assigned to it
type ContractorResponse struct {
	ID            uint                        `json:"id"`
	CompanyName   string                      `json:"companyName"`
	LicenseNumber string                      `json:"licenseNumber"`
	Address       string                      `json:"address"`
	PhoneNumber   string                      `json:"phoneNumber"`
	Email         string                      `json:"email,omitempty"`
	ContactPerson string                      `json:"contactPerson,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
	Packages      []repository.PackageSummary `json:"packages"`
}

// Create creates a new contractor
func (s *ContractorService) Create(ctx context.Context, req *CreateContractorRequest) (*models.Contractor, error) {
	trimAll(&req.CompanyName, &req.LicenseNumber, &req.Address, &req.PhoneNumber, &req.Email, &req.ContactPerson)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	contractor := &models.Contractor{
		CompanyName:   req.CompanyName,
		LicenseNumber: req.LicenseNumber,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		ContactPerson: req.ContactPerson,
	}
	if err := s.repo.Create(ctx, contractor); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create contractor: %w", err)
	}
	return contractor, nil
}

// List returns every contractor with its package summaries, newest first
func (s *ContractorService) List(ctx context.Context) ([]ContractorResponse, error) {
	contractors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}

	ids := make([]uint, 0, len(contractors))
	for _, c := range contractors {
		ids = append(ids, c.ID)
	}
	summaries, err := s.packageRepo.GetSummariesByContractorIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load contractor packages: %w", err)
	}

	byContractor := make(map[uint][]repository.PackageSummary, len(contractors))
	for _, summary := range summaries {
		byContractor[summary.ContractorID] = append(byContractor[summary.ContractorID], summary)
	}

	responses := make([]ContractorResponse, 0, len(contractors))
	for i := range contractors {
		responses = append(responses, *s.toResponse(&contractors[i], byContractor[contractors[i].ID]))
	}
	return responses, nil
}

// GetByID returns a contractor with its package summaries
func (s *ContractorService) GetByID(ctx context.Context, id uint) (*ContractorResponse, error) {
	contractor, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	summaries, err := s.packageRepo.GetSummariesByContractorIDs(ctx, []uint{id})
	if err != nil {
		return nil, fmt.Errorf("failed to load contractor packages: %w", err)
	}
	return s.toResponse(contractor, summaries), nil
}

// Update applies a partial update to a contractor
func (s *ContractorService) Update(ctx context.Context, id uint, req *UpdateContractorRequest) (*models.Contractor, error) {
	trimAll(req.CompanyName, req.LicenseNumber, req.Address, req.PhoneNumber, req.Email, req.ContactPerson)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	contractor, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		contractor.CompanyName = *req.CompanyName
	}
	if req.LicenseNumber != nil {
		contractor.LicenseNumber = *req.LicenseNumber
	}
	if req.Address != nil {
		contractor.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		contractor.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		contractor.Email = *req.Email
	}
	if req.ContactPerson != nil {
		contractor.ContactPerson = *req.ContactPerson
	}

	if err := s.repo.Update(ctx, contractor); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update contractor: %w", err)
	}
	return contractor, nil
}

// Delete removes a contractor that has no packages assigned
func (s *ContractorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	if err := s.inUse(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		if apperrors.IsConflict(err) {
			// A package was assigned after the check above; report it the same way
			if inUseErr := s.inUse(ctx, id); inUseErr != nil {
				return inUseErr
			}
			return err
		}
		return fmt.Errorf("failed to delete contractor: %w", err)
	}
	return nil
}

// inUse returns a ContractorInUseError listing the contractor's packages, or nil when it has none
func (s *ContractorService) inUse(ctx context.Context, id uint) error {
	summaries, err := s.packageRepo.GetSummariesByContractorIDs(ctx, []uint{id})
	if err != nil {
		return fmt.Errorf("failed to check contractor packages: %w", err)
	}
	if len(summaries) == 0 {
		return nil
	}
	refs := make([]apperrors.PackageRef, 0, len(summaries))
	for _, summary := range summaries {
		refs = append(refs, apperrors.PackageRef{ID: summary.ID, CustomerName: summary.CustomerName})
	}
	return apperrors.NewContractorInUseError(refs)
}

// ReassignPackages moves every package of a contractor to another contractor
func (s *ContractorService) ReassignPackages(ctx context.Context, id uint, req *ReassignPackagesRequest) (*ReassignPackagesResponse, error) {
	if req.NewContractorID == 0 {
		return nil, apperrors.NewValidationError("newContractorId", "New contractor ID is required")
	}
	if req.NewContractorID == id {
		return nil, apperrors.ErrSameContractor
	}

	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}
	newContractor, err := s.repo.GetByID(ctx, req.NewContractorID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrNewContractorNotFound
		}
		return nil, fmt.Errorf("failed to get new contractor: %w", err)
	}

	count, err := s.packageRepo.ReassignContractor(ctx, id, newContractor.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to reassign packages: %w", err)
	}

	return &ReassignPackagesResponse{
		Message:           fmt.Sprintf("Successfully reassigned %d package(s) to %s", count, newContractor.CompanyName),
		ReassignedCount:   count,
		NewContractorName: newContractor.CompanyName,
	}, nil
}

func (s *ContractorService) get(ctx context.Context, id uint) (*models.Contractor, error) {
	contractor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get contractor: %w", err)
	}
	return contractor, nil
}

func (s *ContractorService) toResponse(contractor *models.Contractor, packages []repository.PackageSummary) *ContractorResponse {
	if packages == nil {
		packages = []repository.PackageSummary{}
	}
	return &ContractorResponse{
		ID:            contractor.ID,
		CompanyName:   contractor.CompanyName,
		LicenseNumber: contractor.LicenseNumber,
		Address:       contractor.Address,
		PhoneNumber:   contractor.PhoneNumber,
		Email:         contractor.Email,
		ContactPerson: contractor.ContactPerson,
		CreatedAt:     contractor.CreatedAt,
		UpdatedAt:     contractor.UpdatedAt,
		Packages:      packages,
	}
}
