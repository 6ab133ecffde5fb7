package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PackageSummary is the slim package projection used by contractor listings and delete checks
type PackageSummary struct {
	ID           uint   `json:"id"`
	CustomerName string `json:"customerName"`
	Status       string `json:"status"`
	ContractorID uint   `json:"-"`
}

// AssignmentSummary is a package-subcontractor link joined with the package it points at
type AssignmentSummary struct {
	ID              uint   `json:"id"`
	PackageID       uint   `json:"packageId"`
	SubcontractorID uint   `json:"-"`
	TradeType       string `json:"tradeType"`
	CustomerName    string `json:"customerName"`
	PropertyAddress string `json:"propertyAddress"`
	Status          string `json:"status"`
}

// translateError maps store errors onto the given domain errors. A nil target leaves that class untouched.
func translateError(err error, notFound, conflict error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if conflict != nil && isUniqueViolation(err) {
		return conflict
	}
	return err
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, pgUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasSQLState(err, pgForeignKeyViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
