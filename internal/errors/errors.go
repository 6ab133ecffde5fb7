package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a write that collides with existing state,
// such as a duplicate unique key or a reference that blocks a delete
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("%s conflicts with existing data", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// PackageRef identifies a package blocking a contractor delete
type PackageRef struct {
	ID           uint   `json:"id"`
	CustomerName string `json:"customerName"`
}

// ContractorInUseError is returned when a contractor still has packages assigned
type ContractorInUseError struct {
	PackageCount int
	Packages     []PackageRef
}

func (e *ContractorInUseError) Error() string {
	return "Cannot delete contractor with assigned packages"
}

// Detail returns the human readable hint shown to API callers
func (e *ContractorInUseError) Detail() string {
	return fmt.Sprintf("This contractor has %d package(s) assigned. Please reassign or remove the packages first.", e.PackageCount)
}

// Is enables errors.Is() comparison for ContractorInUseError
func (e *ContractorInUseError) Is(target error) bool {
	_, ok := target.(*ContractorInUseError)
	return ok
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound                 = &NotFoundError{Entity: "user"}
	ErrPackageNotFound              = &NotFoundError{Entity: "package"}
	ErrContractorNotFound           = &NotFoundError{Entity: "contractor"}
	ErrNewContractorNotFound        = &NotFoundError{Entity: "new contractor"}
	ErrSubcontractorNotFound        = &NotFoundError{Entity: "subcontractor"}
	ErrAssignmentNotFound           = &NotFoundError{Entity: "subcontractor assignment"}
	ErrDocumentNotFound             = &NotFoundError{Entity: "document"}
	ErrChecklistTemplateNotFound    = &NotFoundError{Entity: "checklist template"}
	ErrChecklistItemNotFound        = &NotFoundError{Entity: "checklist item"}
	ErrPackageChecklistNotFound     = &NotFoundError{Entity: "package checklist"}
	ErrPackageChecklistItemNotFound = &NotFoundError{Entity: "package checklist item"}
	ErrStoredFileNotFound           = &NotFoundError{Entity: "stored file"}
)

// Conflict Errors
var (
	ErrUserExists              = &ConflictError{Entity: "user", Message: "already exists with this email"}
	ErrContractorExists        = &ConflictError{Entity: "contractor", Message: "already exists with this license number"}
	ErrChecklistTemplateExists = &ConflictError{Entity: "checklist template", Message: "already exists for this county and permit type"}
	ErrChecklistItemExists     = &ConflictError{Entity: "checklist item", Message: "already exists on this template"}
	ErrAssignmentExists        = &ConflictError{Entity: "subcontractor assignment", Message: "already exists for this package"}
	ErrPackageChecklistExists  = &ConflictError{Entity: "package checklist", Message: "already exists for this package"}
	ErrContractorReferenced    = &ConflictError{Entity: "contractor", Message: "is still referenced by packages"}
)

// Business Logic Errors
var (
	ErrInvalidStatus       = &ValidationError{Field: "status", Message: "must be one of Draft, Submitted, Completed"}
	ErrInvalidPermitType   = &ValidationError{Field: "permitType", Message: "must be one of Mobile Home Permit, Modular Home Permit, Shed Permit"}
	ErrSameContractor      = &ValidationError{Field: "newContractorId", Message: "must differ from the current contractor"}
	ErrDefaultItemRemoval  = &ValidationError{Field: "itemId", Message: "only custom items can be removed"}
	ErrMissingDocumentFile = &ValidationError{Field: "document", Message: "No file uploaded"}
)

// Authentication Errors
var (
	ErrMissingToken     = &AuthenticationError{Message: "authorization header required"}
	ErrInvalidToken     = &AuthenticationError{Message: "invalid or expired token"}
	ErrJWTSecretMissing = &ConfigurationError{Message: "JWT secret is not configured"}
	ErrUnknownStorage   = errors.New("unknown storage driver")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsContractorInUse checks if an error is a ContractorInUseError
func IsContractorInUse(err error) bool {
	var inUseErr *ContractorInUseError
	return errors.As(err, &inUseErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, message string) error {
	return &ConflictError{Entity: entity, Message: message}
}

// NewContractorInUseError creates a ContractorInUseError listing the blocking packages
func NewContractorInUseError(packages []PackageRef) error {
	return &ContractorInUseError{PackageCount: len(packages), Packages: packages}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
