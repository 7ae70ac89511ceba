package handler

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errMissingCountry = errors.New("country is required")
	errMalformedBody  = errors.New("malformed request body")
)

const (
	msgCountryRequired = "Country is required"
	msgFetchFailed     = "Error fetching news"
	msgInvalidBody     = "Invalid request body"
)

// bindCountry reads {"country": "..."}. An empty body counts as a missing
// country; any other decode failure is errMalformedBody.
func bindCountry(c *gin.Context) (string, error) {
	var req CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return "", errMissingCountry
		}
		return "", errMalformedBody
	}

	country := strings.TrimSpace(req.Country)
	if country == "" {
		return "", errMissingCountry
	}

	return country, nil
}
