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

// SubcontractorService handles the global subcontractor registry
type SubcontractorService struct {
	repo           repository.SubcontractorRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	validator      *validator.Validate
}

// NewSubcontractorService creates a new subcontractor service
func NewSubcontractorService(repo repository.SubcontractorRepositoryInterface, assignmentRepo repository.AssignmentRepositoryInterface, validator *validator.Validate) *SubcontractorService {
	return &SubcontractorService{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		validator:      validator,
	}
}

// CreateSubcontractorRequest represents the request to register a subcontractor
type CreateSubcontractorRequest struct {
	CompanyName   string `json:"companyName" validate:"required,max=200"`
	TradeType     string `json:"tradeType" validate:"required,max=100"`
	LicenseNumber string `json:"licenseNumber,omitempty" validate:"max=100"`
	Address       string `json:"address,omitempty" validate:"max=300"`
	PhoneNumber   string `json:"phoneNumber,omitempty" validate:"max=50"`
	Email         string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	ContactPerson string `json:"contactPerson,omitempty" validate:"max=200"`
}

// UpdateSubcontractorRequest represents a partial subcontractor update
type UpdateSubcontractorRequest struct {
	CompanyName   *string `json:"companyName,omitempty" validate:"omitempty,min=1,max=200"`
	TradeType     *string `json:"tradeType,omitempty" validate:"omitempty,min=1,max=100"`
	LicenseNumber *string `json:"licenseNumber,omitempty" validate:"omitempty,max=100"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=300"`
	PhoneNumber   *string `json:"phoneNumber,omitempty" validate:"omitempty,max=50"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	ContactPerson *string `json:"contactPerson,omitempty" validate:"omitempty,max=200"`
}

// SubcontractorResponse is a subcontractor together with its package assignments
type SubcontractorResponse struct {
	ID            uint                           `json:"id"`
	CompanyName   string                         `json:"companyName"`
	TradeType     string                         `json:"tradeType"`
	LicenseNumber string                         `json:"licenseNumber,omitempty"`
	Address       string                         `json:"address,omitempty"`
	PhoneNumber   string                         `json:"phoneNumber,omitempty"`
	Email         string                         `json:"email,omitempty"`
	ContactPerson string                         `json:"contactPerson,omitempty"`
	CreatedAt     time.Time                      `json:"createdAt"`
	UpdatedAt     time.Time                      `json:"updatedAt"`
	Packages      []repository.AssignmentSummary `json:"packages"`
}

// Create registers a new subcontractor
func (s *SubcontractorService) Create(ctx context.Context, req *CreateSubcontractorRequest) (*models.Subcontractor, error) {
	trimAll(&req.CompanyName, &req.TradeType, &req.LicenseNumber, &req.Address, &req.PhoneNumber, &req.Email, &req.ContactPerson)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	subcontractor := &models.Subcontractor{
		CompanyName:   req.CompanyName,
		TradeType:     req.TradeType,
		LicenseNumber: req.LicenseNumber,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		ContactPerson: req.ContactPerson,
	}
	if err := s.repo.Create(ctx, subcontractor); err != nil {
		return nil, fmt.Errorf("failed to create subcontractor: %w", err)
	}
	return subcontractor, nil
}

// List returns every subcontractor with its assignments, newest first
func (s *SubcontractorService) List(ctx context.Context) ([]SubcontractorResponse, error) {
	subcontractors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcontractors: %w", err)
	}

	ids := make([]uint, 0, len(subcontractors))
	for _, sc := range subcontractors {
		ids = append(ids, sc.ID)
	}
	summaries, err := s.assignmentRepo.GetSummariesBySubcontractorIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load subcontractor assignments: %w", err)
	}

	bySubcontractor := make(map[uint][]repository.AssignmentSummary, len(subcontractors))
	for _, summary := range summaries {
		bySubcontractor[summary.SubcontractorID] = append(bySubcontractor[summary.SubcontractorID], summary)
	}

	responses := make([]SubcontractorResponse, 0, len(subcontractors))
	for i := range subcontractors {
		responses = append(responses, *toSubcontractorResponse(&subcontractors[i], bySubcontractor[subcontractors[i].ID]))
	}
	return responses, nil
}

// GetByID returns a subcontractor with its assignments
func (s *SubcontractorService) GetByID(ctx context.Context, id uint) (*SubcontractorResponse, error) {
	subcontractor, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	summaries, err := s.assignmentRepo.GetSummariesBySubcontractorIDs(ctx, []uint{id})
	if err != nil {
		return nil, fmt.Errorf("failed to load subcontractor assignments: %w", err)
	}
	return toSubcontractorResponse(subcontractor, summaries), nil
}

// Update applies a partial update to a subcontractor
func (s *SubcontractorService) Update(ctx context.Context, id uint, req *UpdateSubcontractorRequest) (*models.Subcontractor, error) {
	trimAll(req.CompanyName, req.TradeType, req.LicenseNumber, req.Address, req.PhoneNumber, req.Email, req.ContactPerson)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	subcontractor, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		subcontractor.CompanyName = *req.CompanyName
	}
	if req.TradeType != nil {
		subcontractor.TradeType = *req.TradeType
	}
	if req.LicenseNumber != nil {
		subcontractor.LicenseNumber = *req.LicenseNumber
	}
	if req.Address != nil {
		subcontractor.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		subcontractor.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		subcontractor.Email = *req.Email
	}
	if req.ContactPerson != nil {
		subcontractor.ContactPerson = *req.ContactPerson
	}

	if err := s.repo.Update(ctx, subcontractor); err != nil {
		return nil, fmt.Errorf("failed to update subcontractor: %w", err)
	}
	return subcontractor, nil
}

// Delete removes a subcontractor together with its package assignments
func (s *SubcontractorService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete subcontractor: %w", err)
	}
	return nil
}

func (s *SubcontractorService) get(ctx context.Context, id uint) (*models.Subcontractor, error) {
	subcontractor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get subcontractor: %w", err)
	}
	return subcontractor, nil
}

func toSubcontractorResponse(sc *models.Subcontractor, packages []repository.AssignmentSummary) *SubcontractorResponse {
	if packages == nil {
		packages = []repository.AssignmentSummary{}
	}
	return &SubcontractorResponse{
		ID:            sc.ID,
		CompanyName:   sc.CompanyName,
		TradeType:     sc.TradeType,
		LicenseNumber: sc.LicenseNumber,
		Address:       sc.Address,
		PhoneNumber:   sc.PhoneNumber,
		Email:         sc.Email,
		ContactPerson: sc.ContactPerson,
		CreatedAt:     sc.CreatedAt,
		UpdatedAt:     sc.UpdatedAt,
		Packages:      packages,
	}
}
