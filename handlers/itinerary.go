package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatrat/planner"
)

// ItineraryRequest accepts the city in exactly one of two modes: city_id
// from an explicit suggestion pick, or city_name as free-typed text that
// gets slugified server-side. The two can disagree, so the caller has to
// state which one it used.
type ItineraryRequest struct {
	CityID   string `json:"city_id"`
	CityName string `json:"city_name"`
	Days     int    `json:"days" binding:"required"`
}

type ItineraryResponse struct {
	ItineraryID string            `json:"itinerary_id"`
	PDFURL      string            `json:"pdf_url"`
	Itinerary   planner.Itinerary `json:"itinerary"`
	Notice      string            `json:"notice,omitempty"`
}

func (a *App) GenerateItinerary(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cityID, err := cityIDFromRequest(req.CityID, req.CityName)
	if err != nil {
		renderError(c, err)
		return
	}

	itinerary, err := a.Resolver.Resolve(cityID, req.Days)
	if err != nil {
		renderError(c, err)
		return
	}

	id := a.Store.Put(itinerary)
	resp := ItineraryResponse{
		ItineraryID: id,
		PDFURL:      "/api/download/" + id,
		Itinerary:   itinerary,
	}
	if itinerary.CoveredDays < itinerary.RequestedDays {
		free := itinerary.RequestedDays - itinerary.CoveredDays
		resp.Notice = fmt.Sprintf("Curated plans cover the first %d days. The remaining %d are yours to explore freely.",
			itinerary.CoveredDays, free)
	}

	c.JSON(http.StatusOK, resp)
}

func cityIDFromRequest(cityID, cityName string) (string, error) {
	switch {
	case cityID != "" && cityName != "":
		return "", &planner.ValidationError{Field: "city", Reason: "provide city_id or city_name, not both"}
	case cityID != "":
		return cityID, nil
	case cityName != "":
		return planner.Slugify(cityName), nil
	default:
		return "", &planner.ValidationError{Field: "city", Reason: "a city must be selected"}
	}
}
