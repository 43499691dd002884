package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatrat/planner"
)

type EstimateRequest struct {
	Origin     string `json:"origin"`
	CityID     string `json:"city_id"`
	CityName   string `json:"city_name"`
	Days       int    `json:"days"`
	People     int    `json:"people"`
	DirectMode string `json:"direct_mode"`
	HubMode    string `json:"hub_mode"`
}

func (a *App) EstimateCost(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cityID, err := cityIDFromRequest(req.CityID, req.CityName)
	if err != nil {
		renderError(c, err)
		return
	}

	breakdown, err := a.Estimator.Estimate(planner.EstimateRequest{
		Origin:     planner.Slugify(req.Origin),
		CityID:     cityID,
		Days:       req.Days,
		People:     req.People,
		DirectMode: req.DirectMode,
		HubMode:    req.HubMode,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
