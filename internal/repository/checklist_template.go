package repository

import (
	"context"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"

	"gorm.io/gorm"
)

var _ ChecklistTemplateRepositoryInterface = (*ChecklistTemplateRepository)(nil)

// ChecklistTemplateRepository handles database operations for checklist templates and their items
type ChecklistTemplateRepository struct {
	db *gorm.DB
}

// NewChecklistTemplateRepository creates a new checklist template repository
func NewChecklistTemplateRepository(db *gorm.DB) *ChecklistTemplateRepository {
	return &ChecklistTemplateRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("checklist_items.sort_order ASC, checklist_items.id ASC")
}

// Create inserts a template together with its items. GORM wraps the association insert in the same transaction.
func (r *ChecklistTemplateRepository) Create(ctx context.Context, template *models.ChecklistTemplate) error {
	err := r.db.WithContext(ctx).Create(template).Error
	return translateError(err, nil, apperrors.ErrChecklistTemplateExists)
}

// GetByID retrieves a template with its ordered items
func (r *ChecklistTemplateRepository) GetByID(ctx context.Context, id uint) (*models.ChecklistTemplate, error) {
	var template models.ChecklistTemplate
	err := r.db.WithContext(ctx).Preload("Items", orderedItems).First(&template, id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrChecklistTemplateNotFound, nil)
	}
	return &template, nil
}

// GetByKey retrieves the template for a county and permit type
func (r *ChecklistTemplateRepository) GetByKey(ctx context.Context, county string, permitType models.PermitType) (*models.ChecklistTemplate, error) {
	var template models.ChecklistTemplate
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("county = ? AND permit_type = ?", county, permitType).
		First(&template).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrChecklistTemplateNotFound, nil)
	}
	return &template, nil
}

// GetAll retrieves every template ordered by county then permit type
func (r *ChecklistTemplateRepository) GetAll(ctx context.Context) ([]models.ChecklistTemplate, error) {
	var templates []models.ChecklistTemplate
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Order("county ASC, permit_type ASC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// AddItem appends an item to a template
func (r *ChecklistTemplateRepository) AddItem(ctx context.Context, item *models.ChecklistItem) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if err != nil && isForeignKeyViolation(err) {
		return apperrors.ErrChecklistTemplateNotFound
	}
	return err
}

// GetItem retrieves one item of a template
func (r *ChecklistTemplateRepository) GetItem(ctx context.Context, templateID, itemID uint) (*models.ChecklistItem, error) {
	var item models.ChecklistItem
	err := r.db.WithContext(ctx).Where("template_id = ?", templateID).First(&item, itemID).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrChecklistItemNotFound, nil)
	}
	return &item, nil
}

// DeleteItem removes one item of a template
func (r *ChecklistTemplateRepository) DeleteItem(ctx context.Context, templateID, itemID uint) error {
	result := r.db.WithContext(ctx).
		Where("template_id = ? AND id = ?", templateID, itemID).
		Delete(&models.ChecklistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrChecklistItemNotFound
	}
	return nil
}

// ResetItems drops every custom item of a template and inserts the given items, atomically
func (r *ChecklistTemplateRepository) ResetItems(ctx context.Context, templateID uint, add []models.ChecklistItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ? AND is_custom = ?", templateID, true).Delete(&models.ChecklistItem{}).Error; err != nil {
			return err
		}
		if len(add) > 0 {
			for i := range add {
				add[i].TemplateID = templateID
			}
			if err := tx.Create(&add).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.ChecklistTemplate{}).Where("id = ?", templateID).Update("updated_at", gorm.Expr("NOW()")).Error
	})
}
