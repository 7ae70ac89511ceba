package handler

import (
	"context"
	"errors"
	"log/slog"
	"moodmeter/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MoodService interface {
	Check(ctx context.Context, country string) model.MoodReport
	Analyze(ctx context.Context, headlines []string) model.MoodResult
}

type MoodHandler struct {
	service MoodService
}

func NewMoodHandler(service MoodService) *MoodHandler {
	return &MoodHandler{service: service}
}

// PostMood runs the full country check. Upstream failures still answer 200
// with the fallback mood so the caller always has something to display.
func (h *MoodHandler) PostMood(c *gin.Context) {
	country, err := bindCountry(c)
	if errors.Is(err, errMissingCountry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgCountryRequired})
		return
	}
	if err != nil {
		slog.Warn("invalid mood request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	report := h.service.Check(c.Request.Context(), country)
	c.JSON(http.StatusOK, toMoodResponse(report))
}

func (h *MoodHandler) PostAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid analyze request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	res := h.service.Analyze(c.Request.Context(), req.Headlines)

	c.JSON(http.StatusOK, AnalyzeResponse{
		Mood:        string(res.Mood),
		Explanation: res.Explanation,
		Color:       model.ColorFor(res.Mood),
	})
}
