package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/logger"
	"permitpro-backend/internal/repository"
	"permitpro-backend/internal/storage"
)

// DefaultUploaderName is recorded when an upload carries no authenticated user
const DefaultUploaderName = "Admin User"

// DefaultDocumentVersion is the version recorded on every new document
const DefaultDocumentVersion = "1.0"

// DocumentService records uploaded documents against packages
type DocumentService struct {
	repo        repository.DocumentRepositoryInterface
	packageRepo repository.PackageRepositoryInterface
	storage     storage.Storage
}

// NewDocumentService creates a new document service
func NewDocumentService(repo repository.DocumentRepositoryInterface, packageRepo repository.PackageRepositoryInterface, store storage.Storage) *DocumentService {
	return &DocumentService{
		repo:        repo,
		packageRepo: packageRepo,
		storage:     store,
	}
}

// Register records metadata for bytes that were already stored
func (s *DocumentService) Register(ctx context.Context, packageID uint, fileName, storedPath, uploaderName string) (*models.Document, error) {
	fileName = filepath.Base(strings.TrimSpace(fileName))
	if fileName == "" || fileName == "." {
		return nil, apperrors.NewValidationError("fileName", "is required")
	}
	if strings.TrimSpace(storedPath) == "" {
		return nil, apperrors.NewValidationError("filePath", "is required")
	}
	if strings.TrimSpace(uploaderName) == "" {
		uploaderName = DefaultUploaderName
	}

	if err := s.ensurePackage(ctx, packageID); err != nil {
		return nil, err
	}
	return s.register(ctx, packageID, fileName, storedPath, uploaderName)
}

func (s *DocumentService) register(ctx context.Context, packageID uint, fileName, storedPath, uploaderName string) (*models.Document, error) {
	document := &models.Document{
		FileName:     fileName,
		FilePath:     storedPath,
		Version:      DefaultDocumentVersion,
		UploaderName: uploaderName,
		PackageID:    packageID,
	}
	if err := s.repo.Create(ctx, document); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register document: %w", err)
	}
	return document, nil
}

// Upload stores the bytes and registers the document. Stored bytes are removed again if registration fails.
func (s *DocumentService) Upload(ctx context.Context, packageID uint, fileName string, r io.Reader, uploaderName string) (*models.Document, error) {
	fileName = filepath.Base(strings.TrimSpace(fileName))
	if fileName == "" || fileName == "." {
		return nil, apperrors.ErrMissingDocumentFile
	}
	if strings.TrimSpace(uploaderName) == "" {
		uploaderName = DefaultUploaderName
	}
	if err := s.ensurePackage(ctx, packageID); err != nil {
		return nil, err
	}

	storedPath, err := s.storage.Save(ctx, fileName, r)
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	document, err := s.register(ctx, packageID, fileName, storedPath, uploaderName)
	if err != nil {
		if rmErr := s.storage.Remove(context.WithoutCancel(ctx), storedPath); rmErr != nil {
			logger.WithContext(ctx).WithError(rmErr).WithField("stored_path", storedPath).Warn("failed to remove orphaned upload")
		}
		return nil, err
	}
	return document, nil
}

// ListByPackage returns the documents of a package, newest first
func (s *DocumentService) ListByPackage(ctx context.Context, packageID uint) ([]models.Document, error) {
	if err := s.ensurePackage(ctx, packageID); err != nil {
		return nil, err
	}

	documents, err := s.repo.GetByPackageID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, nil
}

// Get returns one document of a package
func (s *DocumentService) Get(ctx context.Context, packageID, documentID uint) (*models.Document, error) {
	document, err := s.repo.GetByID(ctx, packageID, documentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return document, nil
}

func (s *DocumentService) ensurePackage(ctx context.Context, packageID uint) error {
	exists, err := s.packageRepo.Exists(ctx, packageID)
	if err != nil {
		return fmt.Errorf("failed to check package: %w", err)
	}
	if !exists {
		return apperrors.ErrPackageNotFound
	}
	return nil
}
