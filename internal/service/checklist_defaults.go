package service

import (
	"permitpro-backend/internal/database/models"
)

// defaultChecklistItems holds the items every new template starts with, per permit type
var defaultChecklistItems = map[models.PermitType][]string{
	models.PermitTypeMobileHome: {
		"Site Plan",
		"Foundation Design",
		"Manufacturer's Installation Instructions",
		"Electrical Permit",
		"Plumbing Permit",
		"HVAC Permit",
		"Soil Test Report",
		"Flood Zone Determination",
		"Property Survey",
		"Building Code Compliance Certificate",
	},
	models.PermitTypeModularHome: {
		"Site Plan",
		"Foundation Design",
		"Modular Unit Specifications",
		"Electrical Permit",
		"Plumbing Permit",
		"HVAC Permit",
		"Soil Test Report",
		"Flood Zone Determination",
		"Property Survey",
		"State Modular Program Approval",
		"Building Code Compliance Certificate",
	},
	models.PermitTypeShed: {
		"Site Plan",
		"Shed Design/Specifications",
		"Property Survey",
		"Flood Zone Determination",
		"Electrical Permit (if applicable)",
		"Plumbing Permit (if applicable)",
	},
}

// FloridaCounties lists the counties offered when creating a package
var FloridaCounties = []string{
	"Alachua", "Baker", "Bay", "Bradford", "Brevard", "Broward", "Calhoun", "Charlotte",
	"Citrus", "Clay", "Collier", "Columbia", "DeSoto", "Dixie", "Duval", "Escambia",
	"Flagler", "Franklin", "Gadsden", "Gilchrist", "Glades", "Gulf", "Hamilton", "Hardee",
	"Hendry", "Hernando", "Highlands", "Hillsborough", "Holmes", "Indian River", "Jackson",
	"Jefferson", "Lafayette", "Lake", "Lee", "Leon", "Levy", "Liberty", "Madison",
	"Manatee", "Marion", "Martin", "Miami-Dade", "Monroe", "Nassau", "Okaloosa",
	"Okeechobee", "Orange", "Osceola", "Palm Beach", "Pasco", "Pinellas", "Polk",
	"Putnam", "Santa Rosa", "Sarasota", "Seminole", "St. Johns", "St. Lucie", "Sumter",
	"Suwannee", "Taylor", "Union", "Volusia", "Wakulla", "Walton", "Washington",
}

// DefaultChecklistItems returns the default template items for a permit type, ordered from zero
func DefaultChecklistItems(permitType models.PermitType) []models.ChecklistItem {
	names := defaultChecklistItems[permitType]
	items := make([]models.ChecklistItem, 0, len(names))
	for i, name := range names {
		items = append(items, models.ChecklistItem{
			Name:       name,
			IsRequired: true,
			IsCustom:   false,
			Order:      i,
		})
	}
	return items
}
