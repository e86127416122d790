package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/muambr/fashionscrape/internal/obs"
	"github.com/muambr/fashionscrape/models"
	"github.com/muambr/fashionscrape/scrapeengine"
)

// ScrapeHandler handles product-scrape requests.
type ScrapeHandler struct{}

func NewScrapeHandler() *ScrapeHandler {
	return &ScrapeHandler{}
}

// scrapeRequest is the validated request body for POST /api/v1/scrape.
type scrapeRequest struct {
	URL        string  `json:"url" binding:"required"`
	TimeoutSec float64 `json:"timeout_secs"`
}

// ScrapeProduct handles GET /api/v1/scrape?url=... or POST /api/v1/scrape
// with a JSON body {"url": "...", "timeout_secs": 30}.
func (h *ScrapeHandler) ScrapeProduct(c *gin.Context) {
	requestID := uuid.New().String()

	req, validationErr := h.parseRequest(c)
	if validationErr != nil {
		h.sendErrorResponse(c, http.StatusBadRequest, validationErr.Error())
		return
	}

	obs.Info("scrape requested", obs.String("request_id", requestID), obs.String("url", req.URL))

	result, err := scrapeengine.ScrapeURL(c.Request.Context(), req.URL, req.TimeoutSec)
	if err != nil {
		h.sendScrapeError(c, requestID, req.URL, err)
		return
	}

	c.Header("X-Request-ID", requestID)
	c.JSON(http.StatusOK, result)
}

func (h *ScrapeHandler) parseRequest(c *gin.Context) (scrapeRequest, error) {
	var req scrapeRequest

	if c.Request.Method == http.MethodGet {
		req.URL = c.Query("url")
		if req.URL == "" {
			return req, errors.New("missing required query parameter: url")
		}
		return req, nil
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *ScrapeHandler) sendScrapeError(c *gin.Context, requestID, pageURL string, err error) {
	var notFashion *models.NotFashionProductError
	var unsupported *models.UnsupportedProductError

	switch {
	case errors.As(err, &notFashion):
		h.sendErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &unsupported):
		h.sendErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		obs.Error("scrape failed", obs.String("request_id", requestID), obs.String("url", pageURL), obs.Err(err))
		h.sendErrorResponse(c, http.StatusInternalServerError, "scrape failed")
	}
}

func (h *ScrapeHandler) sendErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
