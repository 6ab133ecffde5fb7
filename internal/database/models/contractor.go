package models

// Contractor is the licensed general contractor responsible for a package
type Contractor struct {
	BaseModel
	CompanyName   string `json:"companyName" gorm:"not null;size:200"`
	LicenseNumber string `json:"licenseNumber" gorm:"uniqueIndex;not null;size:100"`
	Address       string `json:"address" gorm:"not null;size:300"`
	PhoneNumber   string `json:"phoneNumber" gorm:"not null;size:50"`
	Email         string `json:"email,omitempty" gorm:"size:255"`
	ContactPerson string `json:"contactPerson,omitempty" gorm:"size:200"`
}

// TableName returns the table name for Contractor
func (Contractor) TableName() string {
	return "contractors"
}
