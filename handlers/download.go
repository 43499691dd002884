package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yatrat/services"
)

// DownloadItinerary renders a previously generated itinerary as a PDF. The
// bytes are produced on demand; only the resolved itinerary itself is kept
// in the store.
func (a *App) DownloadItinerary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing itinerary ID"})
		return
	}

	stored, ok := a.Store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found or expired. Generate it again."})
		return
	}

	pdfBytes, err := services.GenerateItineraryPDF(stored.Itinerary, time.Now().UTC())
	if err != nil {
		log.Printf("❌ PDF generation failed for itinerary %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=yatrat-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (a *App) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "Yatrat API",
		"cities":    len(a.Snapshot.Cities),
		"loaded_at": a.Snapshot.LoadedAt,
		"policy":    a.Resolver.Policy(),
	})
}
