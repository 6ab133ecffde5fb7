package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// PackageChecklistService ticks and unticks items on a package checklist
type PackageChecklistService struct {
	repo        repository.PackageChecklistRepositoryInterface
	packageRepo repository.PackageRepositoryInterface
	validator   *validator.Validate
	now         func() time.Time
}

// NewPackageChecklistService creates a new package checklist service
func NewPackageChecklistService(repo repository.PackageChecklistRepositoryInterface, packageRepo repository.PackageRepositoryInterface, validator *validator.Validate) *PackageChecklistService {
	return &PackageChecklistService{
		repo:        repo,
		packageRepo: packageRepo,
		validator:   validator,
		now:         time.Now,
	}
}

// ChecklistItemUpdate is the new state of one checklist item
type ChecklistItemUpdate struct {
	ChecklistItemID uint    `json:"checklistItemId" validate:"required"`
	IsCompleted     bool    `json:"isCompleted"`
	Notes           *string `json:"notes,omitempty"`
	CompletedBy     *string `json:"completedBy,omitempty" validate:"omitempty,max=200"`
}

// UpdateChecklistRequest represents the request body of PUT /permits/:id/checklist
type UpdateChecklistRequest struct {
	Items []ChecklistItemUpdate `json:"items" validate:"required,min=1,dive"`
}

// Get returns the checklist of a package
func (s *PackageChecklistService) Get(ctx context.Context, packageID uint) (*models.PackageChecklist, error) {
	exists, err := s.packageRepo.Exists(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to check package: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrPackageNotFound
	}

	checklist, err := s.repo.GetByPackageID(ctx, packageID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get package checklist: %w", err)
	}
	return checklist, nil
}

// UpdateItems applies every item update of the request atomically.
// Completing an item stamps completedAt; reopening it clears completedAt and completedBy.
func (s *PackageChecklistService) UpdateItems(ctx context.Context, packageID uint, req *UpdateChecklistRequest, actor string) (*models.PackageChecklist, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	checklist, err := s.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}

	byTemplateItem := make(map[uint]int, len(checklist.Items))
	for i, item := range checklist.Items {
		byTemplateItem[item.ChecklistItemID] = i
	}

	now := s.now()
	changed := make([]models.PackageChecklistItem, 0, len(req.Items))
	for _, update := range req.Items {
		idx, ok := byTemplateItem[update.ChecklistItemID]
		if !ok {
			return nil, apperrors.ErrPackageChecklistItemNotFound
		}
		item := checklist.Items[idx]

		switch {
		case update.IsCompleted && !item.IsCompleted:
			item.IsCompleted = true
			stamp := now
			item.CompletedAt = &stamp
			item.CompletedBy = completedBy(update.CompletedBy, actor)
		case update.IsCompleted && update.CompletedBy != nil:
			item.CompletedBy = strings.TrimSpace(*update.CompletedBy)
		case !update.IsCompleted:
			item.IsCompleted = false
			item.CompletedAt = nil
			item.CompletedBy = ""
		}
		if update.Notes != nil {
			item.Notes = strings.TrimSpace(*update.Notes)
		}

		checklist.Items[idx] = item
		changed = append(changed, item)
	}

	if err := s.repo.UpdateItems(ctx, changed); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update package checklist: %w", err)
	}
	return checklist, nil
}

func completedBy(requested *string, actor string) string {
	if requested != nil && strings.TrimSpace(*requested) != "" {
		return strings.TrimSpace(*requested)
	}
	return actor
}
