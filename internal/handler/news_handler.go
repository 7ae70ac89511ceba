package handler

import (
	"context"
	"errors"
	"log/slog"
	"moodmeter/internal/model"
	"moodmeter/pkg/news"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NewsLookup interface {
	Lookup(ctx context.Context, country string) ([]model.HeadlineItem, error)
}

type NewsHandler struct {
	lookup NewsLookup
}

func NewNewsHandler(lookup NewsLookup) *NewsHandler {
	return &NewsHandler{lookup: lookup}
}

// PostNews answers malformed bodies with the generic 500 rather than 400; any
// failure other than a missing country is a fetch error here.
func (h *NewsHandler) PostNews(c *gin.Context) {
	country, err := bindCountry(c)
	if errors.Is(err, errMissingCountry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgCountryRequired})
		return
	}
	if err != nil {
		slog.Error("error reading news request", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgFetchFailed})
		return
	}

	items, err := h.lookup.Lookup(c.Request.Context(), country)
	if errors.Is(err, news.ErrMissingCountry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgCountryRequired})
		return
	}
	if err != nil {
		attrs := []any{"country", country, "kind", news.Kind(err), "error", err}
		var upstream *news.UpstreamError
		if errors.As(err, &upstream) {
			attrs = append(attrs, "status", upstream.StatusCode)
		}
		slog.Error("error fetching news", attrs...)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgFetchFailed})
		return
	}

	c.JSON(http.StatusOK, NewsResponse{NewsResults: toHeadlineResponses(items)})
}
