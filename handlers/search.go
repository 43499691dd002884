package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yatrat/planner"
)

type SearchResponse struct {
	Query   string         `json:"query"`
	Seq     int64          `json:"seq,omitempty"`
	Results []planner.City `json:"results"`
}

// SearchCities answers autocomplete queries. The optional seq parameter is
// echoed back untouched: the widget tags each keystroke with a
// monotonically increasing number and applies only the response whose seq
// matches its latest query, so reordered responses can never paint stale
// suggestions.
func (a *App) SearchCities(c *gin.Context) {
	query := c.Query("q")
	seq, _ := strconv.ParseInt(c.Query("seq"), 10, 64)

	results := a.Index.Search(query)
	if results == nil {
		results = []planner.City{}
	}

	c.JSON(http.StatusOK, SearchResponse{
		Query:   query,
		Seq:     seq,
		Results: results,
	})
}
