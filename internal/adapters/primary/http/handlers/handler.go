package handlers

import (
	"time"

	"cheese-api/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	listingSvc *services.CheeseListingService
	now        func() time.Time
}

func New(listingSvc *services.CheeseListingService) *Handler {
	return &Handler{
		listingSvc: listingSvc,
		now:        time.Now,
	}
}

// RegisterRoutes mounts the resource on r, which is expected to be the /api group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Cheese Listings
	r.GET("/cheeses", h.ListCheeseListings)
	r.POST("/cheeses", h.CreateCheeseListing)
	r.GET("/cheeses/:id", h.GetCheeseListing)
	r.PUT("/cheeses/:id", h.UpdateCheeseListing)

	// JSON-LD
	r.GET("/contexts/cheeses", h.GetCheeseContext)
}
