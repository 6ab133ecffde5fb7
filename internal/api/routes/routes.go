package routes

import (
	"context"

	"permitpro-backend/internal/api/handlers"
	"permitpro-backend/internal/api/middleware"
	"permitpro-backend/internal/auth"
	"permitpro-backend/internal/config"
	"permitpro-backend/internal/database"
	"permitpro-backend/internal/repository"
	"permitpro-backend/internal/service"
	"permitpro-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, store storage.Storage, authService *auth.AuthService) *gin.Engine {
	// Create router
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	contractorRepo := repository.NewContractorRepository(db)
	subcontractorRepo := repository.NewSubcontractorRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	templateRepo := repository.NewChecklistTemplateRepository(db)
	packageChecklistRepo := repository.NewPackageChecklistRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, authService, validate)
	templateService := service.NewChecklistTemplateService(templateRepo, validate)
	packageService := service.NewPackageService(packageRepo, contractorRepo, templateService, validate)
	contractorService := service.NewContractorService(contractorRepo, packageRepo, validate)
	subcontractorService := service.NewSubcontractorService(subcontractorRepo, assignmentRepo, validate)
	assignmentService := service.NewAssignmentService(assignmentRepo, packageRepo, subcontractorRepo, validate)
	documentService := service.NewDocumentService(documentRepo, packageRepo, store)
	packageChecklistService := service.NewPackageChecklistService(packageChecklistRepo, packageRepo, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}, Version)
	authHandler := handlers.NewAuthHandler(userService)
	packageHandler := handlers.NewPackageHandler(packageService)
	documentHandler := handlers.NewDocumentHandler(documentService, packageService, store, cfg.MaxUploadBytes())
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	checklistHandler := handlers.NewChecklistHandler(packageChecklistService)
	contractorHandler := handlers.NewContractorHandler(contractorService)
	subcontractorHandler := handlers.NewSubcontractorHandler(subcontractorService)
	templateHandler := handlers.NewChecklistTemplateHandler(templateService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stored documents, linked from Document.filePath
	router.GET("/uploads/*filepath", documentHandler.ServeUpload)

	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(authMiddleware.Protect())
	{
		permits := protected.Group("/permits")
		{
			permits.GET("", packageHandler.ListPackages)
			permits.POST("", packageHandler.CreatePackage)
			permits.GET("/:id", packageHandler.GetPackage)
			permits.PUT("/:id", packageHandler.UpdatePackage)
			permits.PUT("/:id/contractor", packageHandler.AssignContractor)

			permits.GET("/:id/documents", documentHandler.ListDocuments)
			permits.POST("/:id/documents", documentHandler.UploadDocument)
			permits.GET("/:id/documents/:documentId", documentHandler.GetDocument)

			permits.GET("/:id/subcontractors", assignmentHandler.ListAssignments)
			permits.POST("/:id/subcontractors", assignmentHandler.AssignSubcontractor)
			permits.DELETE("/:id/subcontractors/:subcontractorId", assignmentHandler.RemoveSubcontractor)

			permits.GET("/:id/checklist", checklistHandler.GetChecklist)
			permits.PUT("/:id/checklist", checklistHandler.UpdateChecklist)
		}

		contractors := protected.Group("/contractors")
		{
			contractors.GET("", contractorHandler.ListContractors)
			contractors.POST("", contractorHandler.CreateContractor)
			contractors.GET("/:id", contractorHandler.GetContractor)
			contractors.PUT("/:id", contractorHandler.UpdateContractor)
			contractors.DELETE("/:id", contractorHandler.DeleteContractor)
			contractors.PUT("/:id/reassign-packages", contractorHandler.ReassignPackages)
		}

		subcontractors := protected.Group("/subcontractors")
		{
			subcontractors.GET("", subcontractorHandler.ListSubcontractors)
			subcontractors.POST("", subcontractorHandler.CreateSubcontractor)
			subcontractors.GET("/:id", subcontractorHandler.GetSubcontractor)
			subcontractors.PUT("/:id", subcontractorHandler.UpdateSubcontractor)
			subcontractors.DELETE("/:id", subcontractorHandler.DeleteSubcontractor)
		}

		templates := protected.Group("/checklist-templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.POST("", templateHandler.ResolveTemplate)
			templates.GET("/options", templateHandler.GetOptions)
			templates.POST("/import", templateHandler.ImportTemplate)
			templates.GET("/:id", templateHandler.GetTemplate)
			templates.POST("/:id/items", templateHandler.AddItem)
			templates.DELETE("/:id/items/:itemId", templateHandler.RemoveItem)
			templates.POST("/:id/reset", templateHandler.ResetTemplate)
			templates.GET("/:id/export", templateHandler.ExportTemplate)
		}
	}

	return router
}
