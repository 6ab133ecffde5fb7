package repository

import (
	"context"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"

	"gorm.io/gorm"
)

var _ ContractorRepositoryInterface = (*ContractorRepository)(nil)

// ContractorRepository handles database operations for contractors
type ContractorRepository struct {
	db *gorm.DB
}

// NewContractorRepository creates a new contractor repository
func NewContractorRepository(db *gorm.DB) *ContractorRepository {
	return &ContractorRepository{db: db}
}

// Create creates a new contractor
func (r *ContractorRepository) Create(ctx context.Context, contractor *models.Contractor) error {
	err := r.db.WithContext(ctx).Create(contractor).Error
	return translateError(err, nil, apperrors.ErrContractorExists)
}

// GetByID retrieves a contractor by ID
func (r *ContractorRepository) GetByID(ctx context.Context, id uint) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.WithContext(ctx).First(&contractor, id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrContractorNotFound, nil)
	}
	return &contractor, nil
}

// GetByLicenseNumber retrieves a contractor by license number
func (r *ContractorRepository) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.WithContext(ctx).First(&contractor, "license_number = ?", licenseNumber).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrContractorNotFound, nil)
	}
	return &contractor, nil
}

// GetAll retrieves all contractors, newest first
func (r *ContractorRepository) GetAll(ctx context.Context) ([]models.Contractor, error) {
	var contractors []models.Contractor
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contractors).Error; err != nil {
		return nil, err
	}
	return contractors, nil
}

// Update saves every column of the contractor
func (r *ContractorRepository) Update(ctx context.Context, contractor *models.Contractor) error {
	err := r.db.WithContext(ctx).Save(contractor).Error
	return translateError(err, nil, apperrors.ErrContractorExists)
}

// Delete removes a contractor. A package still pointing at it makes the store reject the delete.
func (r *ContractorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Contractor{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return apperrors.ErrContractorReferenced
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrContractorNotFound
	}
	return nil
}
