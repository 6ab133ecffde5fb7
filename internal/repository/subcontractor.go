package repository

import (
	"context"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"

	"gorm.io/gorm"
)

var _ SubcontractorRepositoryInterface = (*SubcontractorRepository)(nil)

// SubcontractorRepository handles database operations for the subcontractor registry
type SubcontractorRepository struct {
	db *gorm.DB
}

// NewSubcontractorRepository creates a new subcontractor repository
func NewSubcontractorRepository(db *gorm.DB) *SubcontractorRepository {
	return &SubcontractorRepository{db: db}
}

// Create creates a new subcontractor
func (r *SubcontractorRepository) Create(ctx context.Context, subcontractor *models.Subcontractor) error {
	return r.db.WithContext(ctx).Create(subcontractor).Error
}

// GetByID retrieves a subcontractor by ID
func (r *SubcontractorRepository) GetByID(ctx context.Context, id uint) (*models.Subcontractor, error) {
	var subcontractor models.Subcontractor
	err := r.db.WithContext(ctx).First(&subcontractor, id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrSubcontractorNotFound, nil)
	}
	return &subcontractor, nil
}

// GetAll retrieves all subcontractors, newest first
func (r *SubcontractorRepository) GetAll(ctx context.Context) ([]models.Subcontractor, error) {
	var subcontractors []models.Subcontractor
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&subcontractors).Error; err != nil {
		return nil, err
	}
	return subcontractors, nil
}

// Update saves every column of the subcontractor
func (r *SubcontractorRepository) Update(ctx context.Context, subcontractor *models.Subcontractor) error {
	return r.db.WithContext(ctx).Save(subcontractor).Error
}

// Delete removes a subcontractor; its package assignments go with it
func (r *SubcontractorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subcontractor_id = ?", id).Delete(&models.PackageSubcontractor{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Subcontractor{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrSubcontractorNotFound
		}
		return nil
	})
}
