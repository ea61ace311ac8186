// Package handlers provides the HTTP surface for the directory,
// bridging the transport layer and business logic and translating
// between request payloads and domain models.
package handlers

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tradesite/directory/internal/directory/models"
	"github.com/tradesite/directory/internal/directory/upload"
	"github.com/tradesite/directory/internal/directory/validation"
)

// DirectoryController defines the business logic interface that the
// HTTP handlers invoke.
type DirectoryController interface {
	ListTrades(ctx context.Context) ([]models.Trade, error)
	ValidateTradeIDs(ctx context.Context, ids []uint) (validation.FieldErrors, error)
	CreateSubcontractor(ctx context.Context, sub *models.Submission) (*models.Subcontractor, error)
	Search(ctx context.Context, filter *models.SearchFilter) (*models.SearchResult, error)
	GetSite(ctx context.Context, identifier string) (*models.Subcontractor, error)
}

// Uploader stores multipart uploads and returns the generated filename.
type Uploader interface {
	Save(file *multipart.FileHeader, subdir string) (string, error)
}

// DirectoryHandler serves the wizard, search, and site endpoints.
type DirectoryHandler struct {
	service DirectoryController
	uploads Uploader
	logger  *zap.Logger
}

// NewDirectoryHandler constructs a DirectoryHandler with the given
// service, upload store, and logger.
func NewDirectoryHandler(service DirectoryController, uploads Uploader, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		uploads: uploads,
		logger:  logger.Named("http_handler"),
	}
}

// respondFieldErrors reports recoverable per-field validation failures.
func respondFieldErrors(c *gin.Context, errs validation.FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

var _ Uploader = (*upload.Store)(nil)
