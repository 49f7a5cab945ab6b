package api

import (
	stderrors "errors"
	"net/http"

	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category"`
}

// handleError maps application errors to a status code and one user category
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	category := errors.UserCategoryOf(err)
	message := category.Message()
	var statusCode int

	switch errors.TypeOf(err) {
	case errors.NoInputError, errors.InputTooShortError:
		statusCode = http.StatusBadRequest
	case errors.ValidationError:
		statusCode = http.StatusBadRequest
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			message = appErr.Message
		}
	case errors.NotFoundError:
		statusCode = http.StatusNotFound
	case errors.TransportError, errors.ResponseValidationError, errors.TranslationError:
		statusCode = http.StatusBadGateway
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("Request failed",
			ports.F("request_id", requestIDFrom(c)),
			ports.F("path", c.FullPath()),
			ports.F("error", err.Error()))
	}

	c.JSON(statusCode, ErrorResponse{Error: message, Category: string(category)})
}
