package httpserver

import (
	"errors"
	"net/http"

	"beerhall/internal/domain"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Message: message})
}

// respondDomainError maps the error taxonomy to HTTP statuses: validation
// failures carry their message to the form, not-found becomes 404, anything
// else is a generic 500 without internal detail.
func respondDomainError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusUnprocessableEntity, ve.Message)
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	default:
		respondError(c, http.StatusInternalServerError, "something went wrong")
	}
}
