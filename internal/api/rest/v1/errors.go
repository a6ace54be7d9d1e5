package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
)

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, documents.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, documents.ErrInvalidArgument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, documents.ErrOCRUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
