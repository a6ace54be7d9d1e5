package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/strutil"
)

// MaxImageSize is the largest image accepted by POST /documents/image
const MaxImageSize = 10 << 20

// DocumentHandler defines the interface for handling document-related operations
type DocumentHandler interface {
	Create(ctx *gin.Context)
	UploadImage(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	ResolveDate(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type documentHandler struct {
	documentExtractionService documents.DocumentExtractionService
	documentMetadataService   documents.DocumentMetadataService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentExtractionService documents.DocumentExtractionService, documentMetadataService documents.DocumentMetadataService) DocumentHandler {
	return &documentHandler{
		documentExtractionService: documentExtractionService,
		documentMetadataService:   documentMetadataService,
	}
}

// Create extracts and stores a transcribed document
// @Summary Store a document from its text
// @Tags Document
// @Accept json
// @Produce json
// @Param requestBody body ExtractRequest true "Document text and optional country"
// @Success 201 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Router /documents [post]
func (handler *documentHandler) Create(ctx *gin.Context) {
	var request ExtractRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid document data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	userID := PrincipalFrom(ctx).Subject
	document, err := handler.documentExtractionService.ExtractFromText(ctx, userID, request.Text, request.Country)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error extracting document: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, newDocumentResponse(document))
}

// UploadImage transcribes an uploaded image and stores the extracted document
// @Summary Store a document from an image
// @Tags Document
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document image"
// @Param country formData string false "Country hint"
// @Success 201 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /documents/image [post]
func (handler *documentHandler) UploadImage(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form data: file is required"})
		return
	}

	if header.Size > MaxImageSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Message: fmt.Sprintf("image exceeds %d bytes", MaxImageSize)})
		return
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not open image: %v", err)})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, MaxImageSize))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not read image: %v", err)})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(image)
	}

	userID := PrincipalFrom(ctx).Subject
	document, err := handler.documentExtractionService.ExtractFromImage(ctx, userID, image, mimeType, ctx.PostForm("country"))
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error extracting document: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, newDocumentResponse(document))
}

// List fetches the caller's documents optionally with query parameters
// @Summary List documents
// @Tags Document
// @Produce json
// @Param country query string false "Country code"
// @Param documentType query string false "Document type"
// @Param status query string false "Review status"
// @Param idNumber query string false "Identity number"
// @Param dateTimeCreated query string false "Created at or after (RFC3339)"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param sortBy query string false "Sort column"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {array} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Router /documents [get]
func (handler *documentHandler) List(ctx *gin.Context) {
	query := documents.NewDocumentQuery()
	query.UserID = PrincipalFrom(ctx).Subject

	if country := ctx.Query("country"); len(country) > 0 {
		query.Country = strings.ToUpper(country)
	}

	if documentType := ctx.Query("documentType"); len(documentType) > 0 {
		query.DocumentType = strings.ToUpper(documentType)
	}

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if idNumber := ctx.Query("idNumber"); len(idNumber) > 0 {
		query.IDNumber = idNumber
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err)})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	list, err := handler.documentMetadataService.List(ctx, query)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []DocumentResponse{}
	for _, document := range list {
		listResponse = append(listResponse, newDocumentResponse(document))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID fetches a document by ID
// @Summary Get a document
// @Tags Document
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Router /documents/{id} [get]
func (handler *documentHandler) GetByID(ctx *gin.Context) {
	document, ok := handler.ownedDocument(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, newDocumentResponse(document))
}

// ResolveDate settles an ambiguous date with the format chosen by a reviewer
// @Summary Resolve a document date
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param requestBody body ResolveDateRequest true "Date field and format"
// @Success 200 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /documents/{id}/dates [patch]
func (handler *documentHandler) ResolveDate(ctx *gin.Context) {
	var request ResolveDateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid date data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	if _, ok := handler.ownedDocument(ctx); !ok {
		return
	}

	document, err := handler.documentMetadataService.ResolveDate(ctx, ctx.Param("id"), request.Field, dates.Format(request.Format))
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("could not resolve %s: %v", request.Field, err)})
		return
	}

	ctx.JSON(http.StatusOK, newDocumentResponse(document))
}

// DeleteByID deletes a document by ID
// @Summary Delete a document
// @Tags Document
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /documents/{id} [delete]
func (handler *documentHandler) DeleteByID(ctx *gin.Context) {
	if _, ok := handler.ownedDocument(ctx); !ok {
		return
	}

	documentID := ctx.Param("id")
	if err := handler.documentMetadataService.DeleteByID(ctx, documentID); err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("could not delete document with id %s: %v", documentID, err)})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ownedDocument loads the document named by the id path parameter. Documents
// of other users are reported as missing.
func (handler *documentHandler) ownedDocument(ctx *gin.Context) (*documents.Document, bool) {
	documentID := ctx.Param("id")

	document, err := handler.documentMetadataService.GetByID(ctx, documentID)
	if err == nil && document.UserID != PrincipalFrom(ctx).Subject {
		err = documents.ErrNotFound
	}
	if err != nil {
		status := statusFor(err)
		message := fmt.Sprintf("could not load document with id %s: %v", documentID, err)
		if errors.Is(err, documents.ErrNotFound) {
			message = fmt.Sprintf("document with id %s not found", documentID)
		}
		ctx.JSON(status, ErrorResponse{Message: message})
		return nil, false
	}

	return document, true
}
