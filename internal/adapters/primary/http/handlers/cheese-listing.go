package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"cheese-api/internal/adapters/primary/http/dto"
	"cheese-api/internal/core/domain"
	"cheese-api/internal/core/ports/output"
	"cheese-api/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListCheeseListings(c *gin.Context) {
	format, ok := negotiate(c)
	if !ok {
		return
	}

	page := 0
	if raw, present := c.GetQuery("page"); present {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			mapDomainError(c, domain.ErrInvalidPage)
			return
		}
		page = n
	}

	query := services.ListQuery{
		Title: c.Query("title"),
		Price: parsePriceRange(c),
		Page:  page,
	}

	result, err := h.listingSvc.List(c.Request.Context(), query)
	if err != nil {
		log.WithError(err).Error("list cheese listings failed")
		mapDomainError(c, err)
		return
	}

	now := h.now()
	switch format {
	case mimeJSONLD:
		writeJSONLD(c, http.StatusOK, dto.ToHydraCollection(result, c.Request.URL.Query(), now))
	case mimeHAL:
		writeHAL(c, http.StatusOK, dto.ToHALCollection(result, c.Request.URL.Query(), now))
	case mimeCSV:
		writeCSV(c, http.StatusOK, dto.ToCheeseListingResponses(result.Items, now))
	case mimeHTML:
		writeHTML(c, http.StatusOK, "Cheeses", result.TotalItems, dto.ToCheeseListingResponses(result.Items, now))
	default:
		c.JSON(http.StatusOK, dto.ToCheeseListingResponses(result.Items, now))
	}
}

func (h *Handler) GetCheeseListing(c *gin.Context) {
	format, ok := negotiate(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	listing, err := h.listingSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	h.writeItem(c, format, http.StatusOK, listing)
}

func (h *Handler) CreateCheeseListing(c *gin.Context) {
	format, ok := negotiate(c)
	if !ok {
		return
	}

	var req dto.CreateCheeseListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.listingSvc.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		if !domain.IsValidationError(err) {
			log.WithError(err).Error("create cheese listing failed")
		}
		mapDomainError(c, err)
		return
	}

	c.Header("Location", dto.IRI(listing.ID()))
	h.writeItem(c, format, http.StatusCreated, listing)
}

func (h *Handler) UpdateCheeseListing(c *gin.Context) {
	format, ok := negotiate(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateCheeseListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.listingSvc.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		if !domain.IsValidationError(err) {
			log.WithError(err).WithField("id", id).Error("update cheese listing failed")
		}
		mapDomainError(c, err)
		return
	}

	h.writeItem(c, format, http.StatusOK, listing)
}

func (h *Handler) GetCheeseContext(c *gin.Context) {
	writeJSONLD(c, http.StatusOK, dto.CheeseContext())
}

func (h *Handler) writeItem(c *gin.Context, format string, status int, listing *domain.CheeseListing) {
	now := h.now()
	switch format {
	case mimeJSONLD:
		writeJSONLD(c, status, dto.ToJSONLDCheeseListing(listing, now))
	case mimeHAL:
		writeHAL(c, status, dto.ToHALCheeseListing(listing, now))
	case mimeCSV:
		writeCSV(c, status, []dto.CheeseListingResponse{dto.ToCheeseListingResponse(listing, now)})
	case mimeHTML:
		writeHTML(c, status, listing.Title(), 0, []dto.CheeseListingResponse{dto.ToCheeseListingResponse(listing, now)})
	default:
		c.JSON(status, dto.ToCheeseListingResponse(listing, now))
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cheese listing id"})
		return 0, false
	}
	return id, true
}

// parsePriceRange reads price[gt|gte|lt|lte|between]. Values that are not
// integers are ignored, as is a between value that is not "min..max".
func parsePriceRange(c *gin.Context) ports.PriceRange {
	var r ports.PriceRange

	r.Gt = queryInt(c, "price[gt]")
	r.Gte = queryInt(c, "price[gte]")
	r.Lt = queryInt(c, "price[lt]")
	r.Lte = queryInt(c, "price[lte]")

	if between := c.Query("price[between]"); between != "" {
		parts := strings.SplitN(between, "..", 2)
		if len(parts) == 2 {
			low, errLow := strconv.Atoi(strings.TrimSpace(parts[0]))
			high, errHigh := strconv.Atoi(strings.TrimSpace(parts[1]))
			if errLow == nil && errHigh == nil {
				r.Gte = &low
				r.Lte = &high
			}
		}
	}

	return r
}

func queryInt(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
