package repository

import (
	"context"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ PackageRepositoryInterface = (*PackageRepository)(nil)

// PackageRepository handles database operations for permit packages
type PackageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository
func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// withRelations eager-loads everything the API returns with a package
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Contractor").
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("documents.created_at DESC")
		}).
		Preload("Subcontractors", func(db *gorm.DB) *gorm.DB {
			return db.Order("package_subcontractors.created_at ASC")
		}).
		Preload("Subcontractors.Subcontractor").
		Preload("Checklist").
		Preload("Checklist.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("package_checklist_items.sort_order ASC")
		})
}

// CreateWithChecklist inserts the package and its checklist in a single transaction
func (r *PackageRepository) CreateWithChecklist(ctx context.Context, pkg *models.Package, checklist *models.PackageChecklist) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(pkg).Error; err != nil {
			if isForeignKeyViolation(err) {
				return apperrors.ErrContractorNotFound
			}
			return err
		}

		checklist.PackageID = pkg.ID
		if err := tx.Create(checklist).Error; err != nil {
			return translateError(err, nil, apperrors.ErrPackageChecklistExists)
		}
		pkg.Checklist = checklist
		return nil
	})
}

// GetByID retrieves a package with all relations
func (r *PackageRepository) GetByID(ctx context.Context, id uint) (*models.Package, error) {
	var pkg models.Package
	err := withRelations(r.db.WithContext(ctx)).First(&pkg, id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrPackageNotFound, nil)
	}
	return &pkg, nil
}

// GetAll retrieves every package with all relations, newest first
func (r *PackageRepository) GetAll(ctx context.Context) ([]models.Package, error) {
	var packages []models.Package
	err := withRelations(r.db.WithContext(ctx)).Order("packages.created_at DESC").Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

// Exists reports whether a package with the given ID exists
func (r *PackageRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Package{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update applies column updates to a package
func (r *PackageRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Package{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return apperrors.ErrContractorNotFound
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrPackageNotFound
	}
	return nil
}

// GetSummariesByContractorIDs returns the packages assigned to any of the given contractors, newest first
func (r *PackageRepository) GetSummariesByContractorIDs(ctx context.Context, contractorIDs []uint) ([]PackageSummary, error) {
	summaries := []PackageSummary{}
	if len(contractorIDs) == 0 {
		return summaries, nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.Package{}).
		Select("id, customer_name, status, contractor_id").
		Where("contractor_id IN ?", contractorIDs).
		Order("created_at DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// ReassignContractor moves every package of one contractor to another in one statement
func (r *PackageRepository) ReassignContractor(ctx context.Context, fromContractorID, toContractorID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Package{}).
		Where("contractor_id = ?", fromContractorID).
		Update("contractor_id", toContractorID)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return 0, apperrors.ErrNewContractorNotFound
		}
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
