package models

import (
	"time"
)

// Subcontractor is an entry in the global subcontractor registry
type Subcontractor struct {
	BaseModel
	CompanyName   string `json:"companyName" gorm:"not null;size:200"`
	LicenseNumber string `json:"licenseNumber,omitempty" gorm:"size:100"`
	Address       string `json:"address,omitempty" gorm:"size:300"`
	PhoneNumber   string `json:"phoneNumber,omitempty" gorm:"size:50"`
	Email         string `json:"email,omitempty" gorm:"size:255"`
	ContactPerson string `json:"contactPerson,omitempty" gorm:"size:200"`
	TradeType     string `json:"tradeType" gorm:"not null;size:100"`
}

// TableName returns the table name for Subcontractor
func (Subcontractor) TableName() string {
	return "subcontractors"
}

// PackageSubcontractor links a subcontractor to a package with a package-specific trade type
type PackageSubcontractor struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PackageID       uint      `json:"packageId" gorm:"not null;uniqueIndex:idx_package_subcontractor"`
	SubcontractorID uint      `json:"subcontractorId" gorm:"not null;uniqueIndex:idx_package_subcontractor;index"`
	TradeType       string    `json:"tradeType" gorm:"not null;size:100"`
	CreatedAt       time.Time `json:"createdAt"`

	// Relationships
	Subcontractor *Subcontractor `json:"subcontractor,omitempty" gorm:"foreignKey:SubcontractorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PackageSubcontractor
func (PackageSubcontractor) TableName() string {
	return "package_subcontractors"
}
