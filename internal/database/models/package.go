package models

// Package is a permit application bundle for one customer, property and permit type
type Package struct {
	BaseModel
	CustomerName    string        `json:"customerName" gorm:"not null;size:200"`
	PropertyAddress string        `json:"propertyAddress" gorm:"not null;size:300"`
	County          string        `json:"county" gorm:"not null;size:100;index"`
	PermitType      PermitType    `json:"permitType" gorm:"type:varchar(50);not null"`
	Status          PackageStatus `json:"status" gorm:"type:varchar(20);not null;default:'Draft';index"`
	ContractorID    *uint         `json:"contractorId" gorm:"index"`

	// Relationships
	Contractor     *Contractor            `json:"contractor,omitempty" gorm:"foreignKey:ContractorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Documents      []Document             `json:"documents" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Subcontractors []PackageSubcontractor `json:"subcontractors" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Checklist      *PackageChecklist      `json:"checklist,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Package
func (Package) TableName() string {
	return "packages"
}
