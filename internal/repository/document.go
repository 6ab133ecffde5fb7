package repository

import (
	"context"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"

	"gorm.io/gorm"
)

var _ DocumentRepositoryInterface = (*DocumentRepository)(nil)

// DocumentRepository handles database operations for uploaded documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create records a document. Documents are never updated afterwards.
func (r *DocumentRepository) Create(ctx context.Context, document *models.Document) error {
	err := r.db.WithContext(ctx).Create(document).Error
	if err != nil && isForeignKeyViolation(err) {
		return apperrors.ErrPackageNotFound
	}
	return err
}

// GetByID retrieves one document of a package
func (r *DocumentRepository) GetByID(ctx context.Context, packageID, documentID uint) (*models.Document, error) {
	var document models.Document
	err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID).
		First(&document, documentID).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrDocumentNotFound, nil)
	}
	return &document, nil
}

// GetByPackageID retrieves the documents of a package, newest first
func (r *DocumentRepository) GetByPackageID(ctx context.Context, packageID uint) ([]models.Document, error) {
	var documents []models.Document
	err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID).
		Order("created_at DESC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}
