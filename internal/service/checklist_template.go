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

// ChecklistTemplateService resolves and maintains county/permit-type checklist templates
type ChecklistTemplateService struct {
	repo      repository.ChecklistTemplateRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewChecklistTemplateService creates a new checklist template service
func NewChecklistTemplateService(repo repository.ChecklistTemplateRepositoryInterface, validator *validator.Validate) *ChecklistTemplateService {
	return &ChecklistTemplateService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// ResolveTemplateRequest identifies a template by county and permit type
type ResolveTemplateRequest struct {
	County     string            `json:"county" validate:"required,max=100"`
	PermitType models.PermitType `json:"permitType" validate:"required"`
}

// AddChecklistItemRequest represents the request to add a custom item to a template
type AddChecklistItemRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// ChecklistOptionsResponse lists the values a client can pick from when building a template
type ChecklistOptionsResponse struct {
	Counties    []string            `json:"counties"`
	PermitTypes []models.PermitType `json:"permitTypes"`
}

// ChecklistExportBody is the checklist part of an exported template
type ChecklistExportBody struct {
	Items        []string  `json:"items"`
	CustomItems  []string  `json:"customItems"`
	LastModified time.Time `json:"lastModified"`
}

// ChecklistExport is the portable JSON form of a template
type ChecklistExport struct {
	County     string              `json:"county" validate:"required,max=100"`
	PermitType models.PermitType   `json:"permitType" validate:"required"`
	Checklist  ChecklistExportBody `json:"checklist"`
	ExportDate time.Time           `json:"exportDate"`
}

// FileName returns the download name used for an exported template
func (e *ChecklistExport) FileName() string {
	return fmt.Sprintf("%s_%s_checklist.json", e.County, strings.Join(strings.Fields(string(e.PermitType)), "_"))
}

// Options returns the county and permit type lists
func (s *ChecklistTemplateService) Options() *ChecklistOptionsResponse {
	return &ChecklistOptionsResponse{
		Counties:    FloridaCounties,
		PermitTypes: models.PermitTypes,
	}
}

// Resolve returns the template for a county and permit type, creating it from the defaults on first use
func (s *ChecklistTemplateService) Resolve(ctx context.Context, county string, permitType models.PermitType) (*models.ChecklistTemplate, error) {
	req := &ResolveTemplateRequest{County: strings.TrimSpace(county), PermitType: permitType}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !req.PermitType.IsValid() {
		return nil, apperrors.ErrInvalidPermitType
	}

	template, err := s.repo.GetByKey(ctx, req.County, req.PermitType)
	if err == nil {
		return template, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get checklist template: %w", err)
	}

	template = &models.ChecklistTemplate{
		County:     req.County,
		PermitType: req.PermitType,
		Items:      DefaultChecklistItems(req.PermitType),
	}
	if err := s.repo.Create(ctx, template); err != nil {
		if !apperrors.IsConflict(err) {
			return nil, fmt.Errorf("failed to create checklist template: %w", err)
		}
		// Lost a race with a concurrent creator; the winner's row is the template
		template, err = s.repo.GetByKey(ctx, req.County, req.PermitType)
		if err != nil {
			return nil, fmt.Errorf("failed to get checklist template after conflict: %w", err)
		}
	}
	return template, nil
}

// List returns every template
func (s *ChecklistTemplateService) List(ctx context.Context) ([]models.ChecklistTemplate, error) {
	templates, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist templates: %w", err)
	}
	return templates, nil
}

// GetByID returns one template with its items
func (s *ChecklistTemplateService) GetByID(ctx context.Context, id uint) (*models.ChecklistTemplate, error) {
	template, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get checklist template: %w", err)
	}
	return template, nil
}

// AddCustomItem appends a non-required custom item to a template
func (s *ChecklistTemplateService) AddCustomItem(ctx context.Context, templateID uint, req *AddChecklistItemRequest) (*models.ChecklistTemplate, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	template, err := s.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	nextOrder := 0
	for _, item := range template.Items {
		if strings.EqualFold(item.Name, req.Name) {
			return nil, apperrors.ErrChecklistItemExists
		}
		if item.Order >= nextOrder {
			nextOrder = item.Order + 1
		}
	}

	item := &models.ChecklistItem{
		TemplateID: templateID,
		Name:       req.Name,
		IsRequired: false,
		IsCustom:   true,
		Order:      nextOrder,
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add checklist item: %w", err)
	}
	return s.GetByID(ctx, templateID)
}

// RemoveCustomItem deletes a custom item. Default items cannot be removed.
func (s *ChecklistTemplateService) RemoveCustomItem(ctx context.Context, templateID, itemID uint) (*models.ChecklistTemplate, error) {
	if _, err := s.GetByID(ctx, templateID); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, templateID, itemID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get checklist item: %w", err)
	}
	if !item.IsCustom {
		return nil, apperrors.ErrDefaultItemRemoval
	}

	if err := s.repo.DeleteItem(ctx, templateID, itemID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete checklist item: %w", err)
	}
	return s.GetByID(ctx, templateID)
}

// ResetToDefault removes all custom items and restores any missing default items
func (s *ChecklistTemplateService) ResetToDefault(ctx context.Context, templateID uint) (*models.ChecklistTemplate, error) {
	template, err := s.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ResetItems(ctx, templateID, missingDefaults(template)); err != nil {
		return nil, fmt.Errorf("failed to reset checklist template: %w", err)
	}
	return s.GetByID(ctx, templateID)
}

// Export renders a template in its portable JSON form
func (s *ChecklistTemplateService) Export(ctx context.Context, templateID uint) (*ChecklistExport, error) {
	template, err := s.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	body := ChecklistExportBody{
		Items:        []string{},
		CustomItems:  []string{},
		LastModified: template.UpdatedAt,
	}
	for _, item := range template.Items {
		if item.IsCustom {
			body.CustomItems = append(body.CustomItems, item.Name)
		} else {
			body.Items = append(body.Items, item.Name)
		}
	}

	return &ChecklistExport{
		County:     template.County,
		PermitType: template.PermitType,
		Checklist:  body,
		ExportDate: s.now().UTC(),
	}, nil
}

// Import resolves the exported template and replaces its custom items with the imported ones
func (s *ChecklistTemplateService) Import(ctx context.Context, export *ChecklistExport) (*models.ChecklistTemplate, error) {
	if err := s.validator.Struct(export); err != nil {
		return nil, validationError(err)
	}

	template, err := s.Resolve(ctx, export.County, export.PermitType)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(template.Items))
	nextOrder := 0
	for _, item := range template.Items {
		if item.IsCustom {
			continue
		}
		existing[strings.ToLower(item.Name)] = true
		if item.Order >= nextOrder {
			nextOrder = item.Order + 1
		}
	}

	add := missingDefaults(template)
	for _, item := range add {
		existing[strings.ToLower(item.Name)] = true
		if item.Order >= nextOrder {
			nextOrder = item.Order + 1
		}
	}
	for _, name := range export.Checklist.CustomItems {
		name = strings.TrimSpace(name)
		if name == "" || existing[strings.ToLower(name)] {
			continue
		}
		existing[strings.ToLower(name)] = true
		add = append(add, models.ChecklistItem{
			Name:       name,
			IsRequired: false,
			IsCustom:   true,
			Order:      nextOrder,
		})
		nextOrder++
	}

	if err := s.repo.ResetItems(ctx, template.ID, add); err != nil {
		return nil, fmt.Errorf("failed to import checklist template: %w", err)
	}
	return s.GetByID(ctx, template.ID)
}

// missingDefaults returns the default items not currently on the template, keeping their default order
func missingDefaults(template *models.ChecklistTemplate) []models.ChecklistItem {
	present := make(map[string]bool, len(template.Items))
	for _, item := range template.Items {
		if !item.IsCustom {
			present[item.Name] = true
		}
	}

	var missing []models.ChecklistItem
	for _, item := range DefaultChecklistItems(template.PermitType) {
		if !present[item.Name] {
			missing = append(missing, item)
		}
	}
	return missing
}
