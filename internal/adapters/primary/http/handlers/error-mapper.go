package handlers

import (
	"errors"
	"net/http"

	"cheese-api/internal/adapters/primary/http/dto"
	"cheese-api/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	var ve *domain.ValidationError

	switch {
	// Validation errors
	case errors.As(err, &ve):
		c.Header("Content-Type", mimeJSONLD+"; charset=utf-8")
		c.JSON(http.StatusBadRequest, dto.ToConstraintViolationList(ve))

	// Not found errors
	case errors.Is(err, domain.ErrCheeseListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidPage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
