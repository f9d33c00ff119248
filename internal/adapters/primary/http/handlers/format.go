package handlers

import (
	"bytes"
	"net/http"

	"cheese-api/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	mimeJSONLD = "application/ld+json"
	mimeJSON   = "application/json"
	mimeHAL    = "application/hal+json"
	mimeCSV    = "text/csv"
	mimeHTML   = "text/html"
)

// offeredFormats is in preference order; the first one wins when the
// client sends no Accept header or a wildcard.
var offeredFormats = []string{mimeJSONLD, mimeJSON, mimeHAL, mimeCSV, mimeHTML}

// negotiate picks the response format, writing 406 when none is acceptable.
func negotiate(c *gin.Context) (string, bool) {
	format := c.NegotiateFormat(offeredFormats...)
	if format == "" {
		c.JSON(http.StatusNotAcceptable, gin.H{
			"error": "requested format is not supported, use one of application/ld+json, application/json, application/hal+json, text/csv, text/html",
		})
		return "", false
	}
	return format, true
}

func writeJSONLD(c *gin.Context, status int, body interface{}) {
	c.Header("Content-Type", mimeJSONLD+"; charset=utf-8")
	c.JSON(status, body)
}

func writeHAL(c *gin.Context, status int, body interface{}) {
	c.Header("Content-Type", mimeHAL+"; charset=utf-8")
	c.JSON(status, body)
}

func writeCSV(c *gin.Context, status int, items []dto.CheeseListingResponse) {
	var buf bytes.Buffer
	if err := dto.WriteCSV(&buf, items); err != nil {
		log.WithError(err).Error("encode csv failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(status, mimeCSV+"; charset=utf-8", buf.Bytes())
}
