package repository

import (
	"context"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"

	"gorm.io/gorm"
)

var _ AssignmentRepositoryInterface = (*AssignmentRepository)(nil)

// AssignmentRepository handles database operations for package-subcontractor links
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create links a subcontractor to a package. The (package, subcontractor) unique index rejects duplicates.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.PackageSubcontractor) error {
	err := r.db.WithContext(ctx).Omit("Subcontractor").Create(assignment).Error
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return apperrors.ErrPackageNotFound
	}
	return translateError(err, nil, apperrors.ErrAssignmentExists)
}

// Get retrieves the link between a package and a subcontractor
func (r *AssignmentRepository) Get(ctx context.Context, packageID, subcontractorID uint) (*models.PackageSubcontractor, error) {
	var assignment models.PackageSubcontractor
	err := r.db.WithContext(ctx).
		Preload("Subcontractor").
		Where("package_id = ? AND subcontractor_id = ?", packageID, subcontractorID).
		First(&assignment).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrAssignmentNotFound, nil)
	}
	return &assignment, nil
}

// Delete removes the link between a package and a subcontractor
func (r *AssignmentRepository) Delete(ctx context.Context, packageID, subcontractorID uint) error {
	result := r.db.WithContext(ctx).
		Where("package_id = ? AND subcontractor_id = ?", packageID, subcontractorID).
		Delete(&models.PackageSubcontractor{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

// GetByPackageID retrieves the subcontractors assigned to a package in assignment order
func (r *AssignmentRepository) GetByPackageID(ctx context.Context, packageID uint) ([]models.PackageSubcontractor, error) {
	var assignments []models.PackageSubcontractor
	err := r.db.WithContext(ctx).
		Preload("Subcontractor").
		Where("package_id = ?", packageID).
		Order("created_at ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetSummariesBySubcontractorIDs returns the package assignments of the given subcontractors
func (r *AssignmentRepository) GetSummariesBySubcontractorIDs(ctx context.Context, subcontractorIDs []uint) ([]AssignmentSummary, error) {
	summaries := []AssignmentSummary{}
	if len(subcontractorIDs) == 0 {
		return summaries, nil
	}
	err := r.db.WithContext(ctx).
		Table("package_subcontractors AS ps").
		Select("ps.id, ps.package_id, ps.subcontractor_id, ps.trade_type, p.customer_name, p.property_address, p.status").
		Joins("JOIN packages p ON p.id = ps.package_id").
		Where("ps.subcontractor_id IN ?", subcontractorIDs).
		Order("ps.created_at DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
