package repository

import (
	"context"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"

	"gorm.io/gorm"
)

var _ PackageChecklistRepositoryInterface = (*PackageChecklistRepository)(nil)

// PackageChecklistRepository handles database operations for per-package checklists
type PackageChecklistRepository struct {
	db *gorm.DB
}

// NewPackageChecklistRepository creates a new package checklist repository
func NewPackageChecklistRepository(db *gorm.DB) *PackageChecklistRepository {
	return &PackageChecklistRepository{db: db}
}

// GetByPackageID retrieves the checklist of a package with its ordered items
func (r *PackageChecklistRepository) GetByPackageID(ctx context.Context, packageID uint) (*models.PackageChecklist, error) {
	var checklist models.PackageChecklist
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("package_checklist_items.sort_order ASC")
		}).
		Where("package_id = ?", packageID).
		First(&checklist).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrPackageChecklistNotFound, nil)
	}
	return &checklist, nil
}

// UpdateItems writes the completion fields of the given items in one transaction
func (r *PackageChecklistRepository) UpdateItems(ctx context.Context, items []models.PackageChecklistItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			item := items[i]
			result := tx.Model(&models.PackageChecklistItem{}).
				Where("id = ?", item.ID).
				Updates(map[string]interface{}{
					"is_completed": item.IsCompleted,
					"completed_at": item.CompletedAt,
					"completed_by": item.CompletedBy,
					"notes":        item.Notes,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperrors.ErrPackageChecklistItemNotFound
			}
		}
		if len(items) > 0 {
			return tx.Model(&models.PackageChecklist{}).
				Where("id = ?", items[0].PackageChecklistID).
				Update("updated_at", gorm.Expr("NOW()")).Error
		}
		return nil
	})
}
