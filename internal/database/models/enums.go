package models

// PermitType defines the kinds of permits a package can be filed for
type PermitType string

const (
	PermitTypeMobileHome  PermitType = "Mobile Home Permit"
	PermitTypeModularHome PermitType = "Modular Home Permit"
	PermitTypeShed        PermitType = "Shed Permit"
)

// PermitTypes lists every supported permit type in display order
var PermitTypes = []PermitType{
	PermitTypeMobileHome,
	PermitTypeModularHome,
	PermitTypeShed,
}

// IsValid reports whether the permit type is one of the supported values
func (p PermitType) IsValid() bool {
	for _, t := range PermitTypes {
		if p == t {
			return true
		}
	}
	return false
}

// PackageStatus defines where a package is in its filing workflow
type PackageStatus string

const (
	PackageStatusDraft     PackageStatus = "Draft"
	PackageStatusSubmitted PackageStatus = "Submitted"
	PackageStatusCompleted PackageStatus = "Completed"
)

// PackageStatuses lists every supported package status
var PackageStatuses = []PackageStatus{
	PackageStatusDraft,
	PackageStatusSubmitted,
	PackageStatusCompleted,
}

// IsValid reports whether the status is one of the supported values
func (s PackageStatus) IsValid() bool {
	for _, st := range PackageStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// UserRoleAdministrator is the role given to seeded accounts
const UserRoleAdministrator = "Administrator"
