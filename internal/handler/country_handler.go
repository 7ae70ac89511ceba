package handler

import (
	"moodmeter/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetCountries(c *gin.Context) {
	countries := model.FilterCountries(c.Query("q"))
	if countries == nil {
		countries = []string{}
	}

	c.JSON(http.StatusOK, CountriesResponse{
		Countries: countries,
		Total:     len(countries),
	})
}
