package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
)

// SetupRoutes sets up all the API routes for version 1. The stateless
// parsing routes and the document routes sit behind the auth middleware;
// health and the login flow do not.
func SetupRoutes(r *gin.Engine,
	authSettings *config.AuthSettings,
	documentExtractionService documents.DocumentExtractionService,
	documentMetadataService documents.DocumentMetadataService) error {

	authMiddleware, err := NewAuthMiddleware(authSettings)
	if err != nil {
		return fmt.Errorf("failed to create auth middleware: %w", err)
	}

	v1 := r.Group(BasePath)

	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: Version})
	})

	// Auth Routes
	if authSettings.Enabled {
		authHandler := NewAuthHandler(authSettings)
		v1.GET("/auth/login", authHandler.Login)
		v1.GET("/auth/callback", authHandler.Callback)
	}

	secured := v1.Group("", authMiddleware)

	// Parsing Routes
	extractionHandler := NewExtractionHandler()
	secured.POST("/dates/parse", extractionHandler.ParseDate)
	secured.POST("/fields/extract", extractionHandler.ExtractFields)

	// Documents Routes
	documentHandler := NewDocumentHandler(documentExtractionService, documentMetadataService)
	secured.POST("/documents", documentHandler.Create)
	secured.POST("/documents/image", documentHandler.UploadImage)
	secured.GET("/documents", documentHandler.List)
	secured.GET("/documents/:id", documentHandler.GetByID)
	secured.PATCH("/documents/:id/dates", documentHandler.ResolveDate)
	secured.DELETE("/documents/:id", documentHandler.DeleteByID)

	return nil
}
