package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/fields"
)

// ExtractionHandler defines the interface for the stateless parsing endpoints
type ExtractionHandler interface {
	ParseDate(ctx *gin.Context)
	ExtractFields(ctx *gin.Context)
}

type extractionHandler struct{}

// NewExtractionHandler creates a new ExtractionHandler
func NewExtractionHandler() ExtractionHandler {
	return &extractionHandler{}
}

// ParseDate classifies a single date string
// @Summary Disambiguate a date
// @Tags Dates
// @Accept json
// @Produce json
// @Param requestBody body ParseDateRequest true "Date and optional country"
// @Success 200 {object} DateResultResponse
// @Failure 400 {object} ErrorResponse
// @Router /dates/parse [post]
func (handler *extractionHandler) ParseDate(ctx *gin.Context) {
	var request ParseDateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid date data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newDateResultResponse(dates.Parse(request.Value, request.Country)))
}

// ExtractFields reads the fields of a transcribed document without storing it
// @Summary Extract document fields
// @Tags Fields
// @Accept json
// @Produce json
// @Param requestBody body ExtractRequest true "Document text and optional country"
// @Success 200 {object} FieldsResponse
// @Failure 400 {object} ErrorResponse
// @Router /fields/extract [post]
func (handler *extractionHandler) ExtractFields(ctx *gin.Context) {
	var request ExtractRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid document data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newFieldsResponse(fields.Extract(request.Text, request.Country)))
}
