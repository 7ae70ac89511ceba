package handler

import (
	"moodmeter/internal/config"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "healthy",
		Search:     configured(h.cfg.SearchAPIKey != ""),
		Completion: configured(h.cfg.CompletionConfigured()),
		Provider:   h.cfg.MoodProvider,
	})
}

func configured(ok bool) string {
	if ok {
		return "configured"
	}
	return "missing"
}
