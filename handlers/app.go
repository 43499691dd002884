package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatrat/config"
	"yatrat/dataset"
	"yatrat/planner"
	"yatrat/services"
)

// App wires the loaded snapshot and the planner components into the HTTP
// layer. One App is constructed at startup and shared by every handler; no
// package-level state.
type App struct {
	Cfg       *config.Config
	Snapshot  *dataset.Snapshot
	Index     *planner.CityIndex
	Resolver  *planner.Resolver
	Estimator *planner.Estimator
	Store     *services.ItineraryStore
}

func NewApp(cfg *config.Config, snap *dataset.Snapshot) *App {
	return &App{
		Cfg:       cfg,
		Snapshot:  snap,
		Index:     planner.NewCityIndex(snap.Cities, cfg.IndexOptions()),
		Resolver:  planner.NewResolver(snap.Records, cfg.Policy()),
		Estimator: planner.NewEstimator(snap.Profiles),
		Store:     services.NewItineraryStore(cfg.ItineraryTTL),
	}
}

func (a *App) Routes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/cities/search", a.SearchCities)
		api.POST("/itinerary", a.GenerateItinerary)
		api.POST("/estimate", a.EstimateCost)
		api.GET("/download/:id", a.DownloadItinerary)
	}
}

// renderError maps the planner error taxonomy onto HTTP statuses. Every
// case is a user-facing message; nothing here is fatal.
func renderError(c *gin.Context, err error) {
	var verr *planner.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, planner.ErrCityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found. Pick one from the suggestions."})
	case errors.Is(err, planner.ErrNoPlan):
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not available for the selected city and days."})
	case errors.Is(err, planner.ErrDataUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Travel data is temporarily unavailable. Please try again."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}
