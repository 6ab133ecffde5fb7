package models

import (
	"time"
)

// ChecklistTemplate is the county and permit-type specific list of items used to seed package checklists
type ChecklistTemplate struct {
	BaseModel
	County     string     `json:"county" gorm:"not null;size:100;uniqueIndex:idx_checklist_template_key"`
	PermitType PermitType `json:"permitType" gorm:"type:varchar(50);not null;uniqueIndex:idx_checklist_template_key"`

	// Relationships
	Items []ChecklistItem `json:"items" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ChecklistTemplate
func (ChecklistTemplate) TableName() string {
	return "checklist_templates"
}

// ChecklistItem is one entry of a template
type ChecklistItem struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	TemplateID uint   `json:"templateId" gorm:"not null;index"`
	Name       string `json:"name" gorm:"not null;size:255"`
	IsRequired bool   `json:"isRequired" gorm:"not null"`
	IsCustom   bool   `json:"isCustom" gorm:"not null"`
	Order      int    `json:"order" gorm:"column:sort_order;not null"`
}

// TableName returns the table name for ChecklistItem
func (ChecklistItem) TableName() string {
	return "checklist_items"
}

// PackageChecklist is the per-package copy of a template
type PackageChecklist struct {
	BaseModel
	PackageID  uint `json:"packageId" gorm:"not null;uniqueIndex"`
	TemplateID uint `json:"templateId" gorm:"not null;index"`

	// Relationships
	Items []PackageChecklistItem `json:"items" gorm:"foreignKey:PackageChecklistID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PackageChecklist
func (PackageChecklist) TableName() string {
	return "package_checklists"
}

// PackageChecklistItem tracks completion of one template item for one package.
// Name, IsRequired and Order are copied from the template item at creation time.
type PackageChecklistItem struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	PackageChecklistID uint       `json:"packageChecklistId" gorm:"not null;uniqueIndex:idx_package_checklist_item"`
	ChecklistItemID    uint       `json:"checklistItemId" gorm:"not null;uniqueIndex:idx_package_checklist_item"`
	Name               string     `json:"name" gorm:"not null;size:255"`
	IsRequired         bool       `json:"isRequired" gorm:"not null"`
	Order              int        `json:"order" gorm:"column:sort_order;not null"`
	IsCompleted        bool       `json:"isCompleted" gorm:"not null"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	CompletedBy        string     `json:"completedBy,omitempty" gorm:"size:200"`
	Notes              string     `json:"notes,omitempty" gorm:"type:text"`
}

// TableName returns the table name for PackageChecklistItem
func (PackageChecklistItem) TableName() string {
	return "package_checklist_items"
}
