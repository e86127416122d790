package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muambr/fashionscrape/internal/config"
)

// AdminHandler handles administrative endpoints.
type AdminHandler struct {
	cfg config.Config
}

// NewAdminHandler creates a new AdminHandler from the process environment.
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{cfg: config.Load()}
}

// EngineStatus reports which approaches can actually run given the
// credentials currently configured, plus the timing budget they operate
// under.
func (h *AdminHandler) EngineStatus(c *gin.Context) {
	approaches := gin.H{
		"curlcffi_gemini":       h.cfg.HasGenAI(),
		"curlcffi_gemini_proxy": h.cfg.HasGenAI() && h.cfg.HasProxy(),
		"requests_gemini":       h.cfg.HasGenAI(),
		"cloudflare_gemini":     h.cfg.HasGenAI() && h.cfg.HasWorker(),
		"gemini_fast":           h.cfg.HasGenAI(),
		"serpapi_google":        h.cfg.HasSerpAPI(),
		"serpapi_images_url":    h.cfg.HasSerpAPI(),
		"serpapi_images_title":  h.cfg.HasSerpAPI(),
	}

	enabled := 0
	for _, v := range approaches {
		if v == true {
			enabled++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"approaches":    approaches,
		"enabled_count": enabled,
		"credentials": gin.H{
			"genai":   h.cfg.HasGenAI(),
			"serpapi": h.cfg.HasSerpAPI(),
			"proxy":   h.cfg.HasProxy(),
			"worker":  h.cfg.HasWorker(),
		},
		"deadlines_ms": gin.H{
			"request_timeout":  h.cfg.RequestTimeout.Milliseconds(),
			"image_title_wait": h.cfg.ImageTitleWait.Milliseconds(),
			"soft_deadline":    h.cfg.SoftDeadline.Milliseconds(),
			"hard_deadline":    h.cfg.HardDeadline.Milliseconds(),
		},
	})
}
