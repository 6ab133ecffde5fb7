package testutils

import (
	"fmt"

	"permitpro-backend/internal/database/models"

	"github.com/google/uuid"
)

// ContractorFactory builds contractors with unique license numbers
type ContractorFactory struct{}

func NewContractorFactory() *ContractorFactory {
	return &ContractorFactory{}
}

// Create creates a test Contractor with default values
func (f *ContractorFactory) Create() *models.Contractor {
	return &models.Contractor{
		CompanyName:   "Test Builders LLC",
		LicenseNumber: "CGC-" + uuid.NewString()[:8],
		Address:       "1 Test Way, Miami, FL",
		PhoneNumber:   "(305) 555-0100",
		Email:         "office@testbuilders.com",
	}
}

// WithName sets a custom company name
func (f *ContractorFactory) WithName(name string) *models.Contractor {
	c := f.Create()
	c.CompanyName = name
	return c
}

// WithLicense sets a custom license number
func (f *ContractorFactory) WithLicense(license string) *models.Contractor {
	c := f.Create()
	c.LicenseNumber = license
	return c
}

// SubcontractorFactory builds registry subcontractors
type SubcontractorFactory struct{}

func NewSubcontractorFactory() *SubcontractorFactory {
	return &SubcontractorFactory{}
}

// Create creates a test Subcontractor with default values
func (f *SubcontractorFactory) Create() *models.Subcontractor {
	return &models.Subcontractor{
		CompanyName: "Test Electric",
		TradeType:   "Electrical",
		PhoneNumber: "(305) 555-0200",
	}
}

// WithTrade sets the company name and trade type
func (f *SubcontractorFactory) WithTrade(name, trade string) *models.Subcontractor {
	s := f.Create()
	s.CompanyName = name
	s.TradeType = trade
	return s
}

// PackageFactory builds Draft packages
type PackageFactory struct{}

func NewPackageFactory() *PackageFactory {
	return &PackageFactory{}
}

// Create creates a test Package with default values
func (f *PackageFactory) Create() *models.Package {
	return &models.Package{
		CustomerName:    "John Doe",
		PropertyAddress: "123 Main St, Miami, FL",
		County:          "Miami-Dade",
		PermitType:      models.PermitTypeMobileHome,
		Status:          models.PackageStatusDraft,
	}
}

// WithCustomer sets the customer name
func (f *PackageFactory) WithCustomer(name string) *models.Package {
	p := f.Create()
	p.CustomerName = name
	return p
}

// WithContractor links the package to a contractor
func (f *PackageFactory) WithContractor(contractorID uint) *models.Package {
	p := f.Create()
	p.ContractorID = &contractorID
	return p
}

// ChecklistTemplateFactory builds templates with numbered default items
type ChecklistTemplateFactory struct{}

func NewChecklistTemplateFactory() *ChecklistTemplateFactory {
	return &ChecklistTemplateFactory{}
}

// Create creates a template for the county and permit type with n required default items
func (f *ChecklistTemplateFactory) Create(county string, permitType models.PermitType, n int) *models.ChecklistTemplate {
	tpl := &models.ChecklistTemplate{County: county, PermitType: permitType}
	for i := 1; i <= n; i++ {
		tpl.Items = append(tpl.Items, models.ChecklistItem{
			Name:       fmt.Sprintf("Item %d", i),
			IsRequired: true,
			Order:      i,
		})
	}
	return tpl
}

// UserFactory builds login users
type UserFactory struct{}

func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Email: uuid.NewString()[:8] + "@permitpro.com",
		Name:  "Test User",
		Role:  models.UserRoleAdministrator,
	}
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Contractor        *ContractorFactory
	Subcontractor     *SubcontractorFactory
	Package           *PackageFactory
	ChecklistTemplate *ChecklistTemplateFactory
	User              *UserFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Contractor:        NewContractorFactory(),
		Subcontractor:     NewSubcontractorFactory(),
		Package:           NewPackageFactory(),
		ChecklistTemplate: NewChecklistTemplateFactory(),
		User:              NewUserFactory(),
	}
}
