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

// AssignmentService attaches subcontractors to packages
type AssignmentService struct {
	repo              repository.AssignmentRepositoryInterface
	packageRepo       repository.PackageRepositoryInterface
	subcontractorRepo repository.SubcontractorRepositoryInterface
	validator         *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repo repository.AssignmentRepositoryInterface, packageRepo repository.PackageRepositoryInterface, subcontractorRepo repository.SubcontractorRepositoryInterface, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		repo:              repo,
		packageRepo:       packageRepo,
		subcontractorRepo: subcontractorRepo,
		validator:         validator,
	}
}

// AssignSubcontractorRequest represents the request to attach a subcontractor to a package
type AssignSubcontractorRequest struct {
	SubcontractorID uint   `json:"subcontractorId" validate:"required"`
	TradeType       string `json:"tradeType,omitempty" validate:"max=100"`
}

// Assign links a subcontractor to a package. A subcontractor can be linked to a package only once.
func (s *AssignmentService) Assign(ctx context.Context, packageID uint, req *AssignSubcontractorRequest) (*models.PackageSubcontractor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if err := s.ensurePackage(ctx, packageID); err != nil {
		return nil, err
	}
	subcontractor, err := s.subcontractorRepo.GetByID(ctx, req.SubcontractorID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get subcontractor: %w", err)
	}

	_, err = s.repo.Get(ctx, packageID, req.SubcontractorID)
	if err == nil {
		return nil, apperrors.ErrAssignmentExists
	}
	if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}

	tradeType := strings.TrimSpace(req.TradeType)
	if tradeType == "" {
		tradeType = subcontractor.TradeType
	}

	assignment := &models.PackageSubcontractor{
		PackageID:       packageID,
		SubcontractorID: subcontractor.ID,
		TradeType:       tradeType,
	}
	// The unique index still guards against a concurrent duplicate
	if err := s.repo.Create(ctx, assignment); err != nil {
		if apperrors.IsConflict(err) || apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to assign subcontractor: %w", err)
	}
	assignment.Subcontractor = subcontractor
	return assignment, nil
}

// Remove unlinks a subcontractor from a package
func (s *AssignmentService) Remove(ctx context.Context, packageID, subcontractorID uint) error {
	if err := s.repo.Delete(ctx, packageID, subcontractorID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to remove subcontractor: %w", err)
	}
	return nil
}

// ListByPackage returns the subcontractors assigned to a package
func (s *AssignmentService) ListByPackage(ctx context.Context, packageID uint) ([]models.PackageSubcontractor, error) {
	if err := s.ensurePackage(ctx, packageID); err != nil {
		return nil, err
	}
	assignments, err := s.repo.GetByPackageID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list package subcontractors: %w", err)
	}
	return assignments, nil
}

func (s *AssignmentService) ensurePackage(ctx context.Context, packageID uint) error {
	exists, err := s.packageRepo.Exists(ctx, packageID)
	if err != nil {
		return fmt.Errorf("failed to check package: %w", err)
	}
	if !exists {
		return apperrors.ErrPackageNotFound
	}
	return nil
}
