package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/logger"
	"permitpro-backend/internal/service"
	"permitpro-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// DocumentFormField is the multipart field carrying the uploaded file
const DocumentFormField = "document"

// DocumentHandler handles document uploads and downloads
type DocumentHandler struct {
	documents      service.DocumentServiceInterface
	packages       service.PackageServiceInterface
	storage        storage.Storage
	maxUploadBytes int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents service.DocumentServiceInterface, packages service.PackageServiceInterface, store storage.Storage, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{
		documents:      documents,
		packages:       packages,
		storage:        store,
		maxUploadBytes: maxUploadBytes,
	}
}

// ListDocuments handles GET /api/permits/:id/documents
// @Summary List the documents of a package
// @Tags documents
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {array} models.Document
// @Failure 404 {object} ErrorResponse "Package not found"
// @Security BearerAuth
// @Router /permits/{id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	documents, err := h.documents.ListByPackage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch documents")
		return
	}
	c.JSON(http.StatusOK, documents)
}

// GetDocument handles GET /api/permits/:id/documents/:documentId
// @Summary Get one document of a package
// @Tags documents
// @Produce json
// @Param id path int true "Package ID"
// @Param documentId path int true "Document ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /permits/{id}/documents/{documentId} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}
	documentID, ok := parseID(c, "documentId", "document")
	if !ok {
		return
	}

	document, err := h.documents.Get(c.Request.Context(), id, documentID)
	if err != nil {
		respondError(c, err, "Failed to fetch document")
		return
	}
	c.JSON(http.StatusOK, document)
}

// UploadDocument handles POST /api/permits/:id/documents
// @Summary Upload a document to a package
// @Description Stores the file from the "document" form field and returns the updated package
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Package ID"
// @Param document formData file true "Document file"
// @Success 200 {object} models.Package
// @Failure 400 {object} ErrorResponse "No file uploaded"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 500 {object} ErrorResponse "Failed to upload document"
// @Security BearerAuth
// @Router /permits/{id}/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	header, err := c.FormFile(DocumentFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
		default:
			badRequest(c, apperrors.ErrMissingDocumentFile.Message)
		}
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err, "Failed to upload document")
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	if _, err := h.documents.Upload(ctx, id, header.Filename, file, actorName(c)); err != nil {
		respondError(c, err, "Failed to upload document")
		return
	}

	pkg, err := h.packages.GetByID(ctx, id)
	if err != nil {
		respondError(c, err, "Failed to upload document")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// ServeUpload handles GET /uploads/*filepath and streams a stored document
// @Summary Download a stored document
// @Tags documents
// @Produce octet-stream
// @Param filepath path string true "Stored file path"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "File not found"
// @Router /uploads/{filepath} [get]
func (h *DocumentHandler) ServeUpload(c *gin.Context) {
	storedPath := strings.TrimPrefix(c.Param("filepath"), "/")

	rc, err := h.storage.Open(c.Request.Context(), storedPath)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoredFileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		respondError(c, err, "Failed to read document")
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(storedPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).WithField("stored_path", storedPath).Warn("document stream interrupted")
	}
}
